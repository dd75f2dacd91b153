package patloc

// Per-role entry points, one thin wrapper per supported role. The step
// layer mostly calls these; the generic dispatch path is ByRole.

// Alert resolves an alert locator on page for field.
func (r *Resolver) Alert(page, field string) (Resolution, error) { return r.Resolve(page, RoleAlert, field) }

// Avatar resolves an avatar locator on page for field.
func (r *Resolver) Avatar(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleAvatar, field)
}

// Badge resolves a badge locator on page for field.
func (r *Resolver) Badge(page, field string) (Resolution, error) { return r.Resolve(page, RoleBadge, field) }

// Banner resolves a banner locator on page for field.
func (r *Resolver) Banner(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleBanner, field)
}

// Breadcrumb resolves a breadcrumb locator on page for field.
func (r *Resolver) Breadcrumb(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleBreadcrumb, field)
}

// Button resolves a button locator on page for field.
func (r *Resolver) Button(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleButton, field)
}

// Card resolves a card locator on page for field.
func (r *Resolver) Card(page, field string) (Resolution, error) { return r.Resolve(page, RoleCard, field) }

// Cell resolves a table-cell locator on page for field.
func (r *Resolver) Cell(page, field string) (Resolution, error) { return r.Resolve(page, RoleCell, field) }

// Checkbox resolves a checkbox locator on page for field.
func (r *Resolver) Checkbox(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleCheckbox, field)
}

// Chip resolves a chip locator on page for field.
func (r *Resolver) Chip(page, field string) (Resolution, error) { return r.Resolve(page, RoleChip, field) }

// Column resolves a column locator on page for field.
func (r *Resolver) Column(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleColumn, field)
}

// DatePicker resolves a date-picker locator on page for field.
func (r *Resolver) DatePicker(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleDatePicker, field)
}

// Dialog resolves a dialog locator on page for field.
func (r *Resolver) Dialog(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleDialog, field)
}

// Div resolves a div locator on page for field.
func (r *Resolver) Div(page, field string) (Resolution, error) { return r.Resolve(page, RoleDiv, field) }

// Dropdown resolves a dropdown locator on page for field.
func (r *Resolver) Dropdown(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleDropdown, field)
}

// DropdownItem resolves a dropdown-item locator on page for field.
func (r *Resolver) DropdownItem(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleDropdownItem, field)
}

// Element resolves a generic element locator on page for field.
func (r *Resolver) Element(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleElement, field)
}

// FileInput resolves a file-input locator on page for field.
func (r *Resolver) FileInput(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleFileInput, field)
}

// Form resolves a form locator on page for field.
func (r *Resolver) Form(page, field string) (Resolution, error) { return r.Resolve(page, RoleForm, field) }

// Grid resolves a grid locator on page for field.
func (r *Resolver) Grid(page, field string) (Resolution, error) { return r.Resolve(page, RoleGrid, field) }

// Header resolves a header locator on page for field.
func (r *Resolver) Header(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleHeader, field)
}

// Icon resolves an icon locator on page for field.
func (r *Resolver) Icon(page, field string) (Resolution, error) { return r.Resolve(page, RoleIcon, field) }

// Image resolves an image locator on page for field.
func (r *Resolver) Image(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleImage, field)
}

// Input resolves an input-field locator on page for field.
func (r *Resolver) Input(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleInput, field)
}

// InputValue resolves an input-field locator with an explicit field value.
func (r *Resolver) InputValue(page, field, value string) (Resolution, error) {
	return r.ResolveValue(page, RoleInput, field, value)
}

// Label resolves a label locator on page for field.
func (r *Resolver) Label(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleLabel, field)
}

// Link resolves a link locator on page for field.
func (r *Resolver) Link(page, field string) (Resolution, error) { return r.Resolve(page, RoleLink, field) }

// List resolves a list locator on page for field.
func (r *Resolver) List(page, field string) (Resolution, error) { return r.Resolve(page, RoleList, field) }

// ListItem resolves a list-item locator on page for field.
func (r *Resolver) ListItem(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleListItem, field)
}

// Menu resolves a menu locator on page for field.
func (r *Resolver) Menu(page, field string) (Resolution, error) { return r.Resolve(page, RoleMenu, field) }

// MenuItem resolves a menu-item locator on page for field.
func (r *Resolver) MenuItem(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleMenuItem, field)
}

// Modal resolves a modal locator on page for field.
func (r *Resolver) Modal(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleModal, field)
}

// Option resolves an option locator on page for field.
func (r *Resolver) Option(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleOption, field)
}

// Paginator resolves a paginator locator on page for field.
func (r *Resolver) Paginator(page, field string) (Resolution, error) {
	return r.Resolve(page, RolePaginator, field)
}

// Panel resolves a panel locator on page for field.
func (r *Resolver) Panel(page, field string) (Resolution, error) {
	return r.Resolve(page, RolePanel, field)
}

// ProgressBar resolves a progress-bar locator on page for field.
func (r *Resolver) ProgressBar(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleProgressBar, field)
}

// Radio resolves a radio-button locator on page for field.
func (r *Resolver) Radio(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleRadio, field)
}

// Row resolves a table-row locator on page for field.
func (r *Resolver) Row(page, field string) (Resolution, error) { return r.Resolve(page, RoleRow, field) }

// SearchBox resolves a search-box locator on page for field.
func (r *Resolver) SearchBox(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleSearchBox, field)
}

// Section resolves a section locator on page for field.
func (r *Resolver) Section(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleSection, field)
}

// Select resolves a select locator on page for field.
func (r *Resolver) Select(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleSelect, field)
}

// Slider resolves a slider locator on page for field.
func (r *Resolver) Slider(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleSlider, field)
}

// Span resolves a span locator on page for field.
func (r *Resolver) Span(page, field string) (Resolution, error) { return r.Resolve(page, RoleSpan, field) }

// Spinner resolves a spinner locator on page for field.
func (r *Resolver) Spinner(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleSpinner, field)
}

// Tab resolves a tab locator on page for field.
func (r *Resolver) Tab(page, field string) (Resolution, error) { return r.Resolve(page, RoleTab, field) }

// Table resolves a table locator on page for field.
func (r *Resolver) Table(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleTable, field)
}

// Text resolves a text locator on page for field.
func (r *Resolver) Text(page, field string) (Resolution, error) { return r.Resolve(page, RoleText, field) }

// Textarea resolves a textarea locator on page for field.
func (r *Resolver) Textarea(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleTextarea, field)
}

// Tile resolves a tile locator on page for field.
func (r *Resolver) Tile(page, field string) (Resolution, error) { return r.Resolve(page, RoleTile, field) }

// Toggle resolves a toggle locator on page for field.
func (r *Resolver) Toggle(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleToggle, field)
}

// Toolbar resolves a toolbar locator on page for field.
func (r *Resolver) Toolbar(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleToolbar, field)
}

// Tooltip resolves a tooltip locator on page for field.
func (r *Resolver) Tooltip(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleTooltip, field)
}

// Tree resolves a tree locator on page for field.
func (r *Resolver) Tree(page, field string) (Resolution, error) { return r.Resolve(page, RoleTree, field) }

// TreeItem resolves a tree-item locator on page for field.
func (r *Resolver) TreeItem(page, field string) (Resolution, error) {
	return r.Resolve(page, RoleTreeItem, field)
}
