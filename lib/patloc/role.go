package patloc

// Role is the functional category of a UI element. It selects which
// template family applies when no explicit override is configured. The set
// is closed: dispatch by name goes through LookupRole instead of any kind of
// runtime reflection.
type Role string

// The supported element roles. Values are the canonical key fragments, so a
// role's template lives under "<code>.pattern.<value>".
const (
	RoleAlert        Role = "alert"
	RoleAvatar       Role = "avatar"
	RoleBadge        Role = "badge"
	RoleBanner       Role = "banner"
	RoleBreadcrumb   Role = "breadcrumb"
	RoleButton       Role = "button"
	RoleCard         Role = "card"
	RoleCell         Role = "cell"
	RoleCheckbox     Role = "checkbox"
	RoleChip         Role = "chip"
	RoleColumn       Role = "column"
	RoleDatePicker   Role = "datePicker"
	RoleDialog       Role = "dialog"
	RoleDiv          Role = "div"
	RoleDropdown     Role = "dropdown"
	RoleDropdownItem Role = "dropdownItem"
	RoleElement      Role = "element"
	RoleFileInput    Role = "fileInput"
	RoleForm         Role = "form"
	RoleGrid         Role = "grid"
	RoleHeader       Role = "header"
	RoleIcon         Role = "icon"
	RoleImage        Role = "image"
	RoleInput        Role = "input"
	RoleLabel        Role = "label"
	RoleLink         Role = "link"
	RoleList         Role = "list"
	RoleListItem     Role = "listItem"
	RoleMenu         Role = "menu"
	RoleMenuItem     Role = "menuItem"
	RoleModal        Role = "modal"
	RoleOption       Role = "option"
	RolePaginator    Role = "paginator"
	RolePanel        Role = "panel"
	RoleProgressBar  Role = "progressBar"
	RoleRadio        Role = "radio"
	RoleRow          Role = "row"
	RoleSearchBox    Role = "searchBox"
	RoleSection      Role = "section"
	RoleSelect       Role = "select"
	RoleSlider       Role = "slider"
	RoleSpan         Role = "span"
	RoleSpinner      Role = "spinner"
	RoleTab          Role = "tab"
	RoleTable        Role = "table"
	RoleText         Role = "text"
	RoleTextarea     Role = "textarea"
	RoleTile         Role = "tile"
	RoleToggle       Role = "toggle"
	RoleToolbar      Role = "toolbar"
	RoleTooltip      Role = "tooltip"
	RoleTree         Role = "tree"
	RoleTreeItem     Role = "treeItem"
)

// AllRoles lists every supported role in key-fragment order.
//
//nolint:gochecknoglobals
var AllRoles = []Role{
	RoleAlert, RoleAvatar, RoleBadge, RoleBanner, RoleBreadcrumb,
	RoleButton, RoleCard, RoleCell, RoleCheckbox, RoleChip, RoleColumn,
	RoleDatePicker, RoleDialog, RoleDiv, RoleDropdown, RoleDropdownItem,
	RoleElement, RoleFileInput, RoleForm, RoleGrid, RoleHeader, RoleIcon,
	RoleImage, RoleInput, RoleLabel, RoleLink, RoleList, RoleListItem,
	RoleMenu, RoleMenuItem, RoleModal, RoleOption, RolePaginator, RolePanel,
	RoleProgressBar, RoleRadio, RoleRow, RoleSearchBox, RoleSection,
	RoleSelect, RoleSlider, RoleSpan, RoleSpinner, RoleTab, RoleTable,
	RoleText, RoleTextarea, RoleTile, RoleToggle, RoleToolbar, RoleTooltip,
	RoleTree, RoleTreeItem,
}

//nolint:gochecknoglobals
var rolesByName = func() map[string]Role {
	m := make(map[string]Role, len(AllRoles))
	for _, role := range AllRoles {
		m[string(role)] = role
	}
	return m
}()

// Form-input-like roles: the only ones that take part in label association.
//
//nolint:gochecknoglobals
var inputLikeRoles = map[Role]struct{}{
	RoleCheckbox:   {},
	RoleDatePicker: {},
	RoleDropdown:   {},
	RoleFileInput:  {},
	RoleInput:      {},
	RoleRadio:      {},
	RoleSearchBox:  {},
	RoleSelect:     {},
	RoleSlider:     {},
	RoleTextarea:   {},
	RoleToggle:     {},
}

// InputLike reports whether resolving the role should attempt label
// association before template substitution.
func (r Role) InputLike() bool {
	_, ok := inputLikeRoles[r]
	return ok
}

// LookupRole maps a role name to its Role. The name is normalized first, so
// "date picker" and "datePicker" both resolve. It does not strip role-family
// prefixes; that is configuration and handled by Resolver.ByRole.
func LookupRole(name string) (Role, bool) {
	role, ok := rolesByName[Normalize(name)]
	return role, ok
}
