package patloc

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/patloc/lib/bundle"
	"github.com/qaforge/patloc/lib/testutils"
)

const buttonTemplate = `"xpath=//button[text()='${loc.auto.fieldName}']", "xpath=//input[@value='${loc.auto.fieldName}']"`

type probeFunc func(candidates []string) (string, error)

func (f probeFunc) ForValue(candidates []string) (string, error) { return f(candidates) }

func TestResolveExplicitOverride(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	b.Set("loc.qaf.loginPage.button.logIn", "css=#login-btn")

	res, err := r.Resolve("Login Page", RoleButton, "Log In")
	require.NoError(t, err)
	assert.True(t, res.IsExplicit())
	assert.Equal(t, []string{"css=#login-btn"}, res.All())
}

func TestResolveOverridePlausibility(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	// too short to be a locator, must fall through to the template
	b.Set("loc.qaf.loginPage.button.logIn", "abc")

	res, err := r.Resolve("Login Page", RoleButton, "Log In")
	require.NoError(t, err)
	assert.False(t, res.IsExplicit())
	assert.Len(t, res.Candidates, 2)
}

func TestResolveFromTemplate(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)

	res, err := r.Resolve("Login Page", RoleButton, "Login")
	require.NoError(t, err)
	assert.False(t, res.IsExplicit())
	assert.Equal(t, []string{
		"xpath=//button[text()='Login']",
		"xpath=//input[@value='Login']",
	}, res.All())
	assert.Equal(t, "Login : [button] Field", res.Description)
}

func TestResolveFieldInstance(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button",
		`"xpath=(//button[text()='${loc.auto.fieldName}'])[${loc.auto.fieldInstance}]"`)

	res, err := r.Resolve("Orders", RoleButton, "Submit[2]")
	require.NoError(t, err)
	assert.Equal(t, []string{"xpath=(//button[text()='Submit'])[2]"}, res.All())
	assert.Equal(t, "Submit : [button] Field", res.Description)

	_, err = r.Resolve("Orders", RoleButton, "Submit[oops]")
	var malformed MalformedFieldError
	require.ErrorAs(t, err, &malformed)
}

func TestResolveWriteBackCache(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)

	first, err := r.Resolve("Login Page", RoleButton, "Login")
	require.NoError(t, err)

	// the generated result lands in the override slot as a composite doc
	cached, ok := b.Get("loc.qaf.loginPage.button.login")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(cached, "{"))

	// a template change after the first resolution must not be observed
	b.Set("loc.qaf.pattern.button", `"css=button.changed-${loc.auto.fieldName}"`)
	second, err := r.Resolve("Login Page", RoleButton, "Login")
	require.NoError(t, err)
	assert.False(t, second.IsExplicit())
	assert.Equal(t, first.All(), second.All())
	assert.Equal(t, first.Description, second.Description)
}

func TestResolveBlankTemplate(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	// long enough to pass the plausibility check, but only blank separators
	b.Set("loc.qaf.pattern.button", "  |  |  ")

	_, err := r.Resolve("Login Page", RoleButton, "Login")
	var missing MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "loc.qaf.pattern.button", missing.Key)

	// nothing may be cached for the failed resolution
	_, ok := b.Get("loc.qaf.loginPage.button.login")
	assert.False(t, ok)
}

func TestResolveAlternativeKeys(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	b.Set("loginPage.submit", "css=#submit-page")
	b.Set("submit.button", "css=#submit-role")
	b.Set("submit", "css=#submit-bare")

	// page.field is the first shorthand tried
	res, err := r.Resolve("Login Page", RoleButton, "Submit")
	require.NoError(t, err)
	assert.True(t, res.IsExplicit())
	assert.Equal(t, []string{"css=#submit-page"}, res.All())

	// then field.role
	res, err = r.Resolve("Checkout", RoleButton, "Submit")
	require.NoError(t, err)
	assert.Equal(t, []string{"css=#submit-role"}, res.All())

	// then the bare field
	res, err = r.Resolve("Checkout", RoleLink, "Submit")
	require.NoError(t, err)
	assert.Equal(t, []string{"css=#submit-bare"}, res.All())

	// the primary override still beats every shorthand
	b.Set("loc.qaf.loginPage.button.submit", "css=#submit-primary")
	res, err = r.Resolve("Login Page", RoleButton, "Submit")
	require.NoError(t, err)
	assert.Equal(t, []string{"css=#submit-primary"}, res.All())
}

func TestResolveAlternativeKeyPlausibility(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	// implausibly short shorthand values fall through to generation
	b.Set("loginPage.login", "abc")
	b.Set("login", "login")

	res, err := r.Resolve("Login Page", RoleButton, "Login")
	require.NoError(t, err)
	assert.False(t, res.IsExplicit())
	assert.Len(t, res.Candidates, 2)
}

func TestResolveMissingTemplate(t *testing.T) {
	t.Parallel()
	r, _ := newTestResolver(t, Options{}, nil)

	_, err := r.Resolve("Home Page", RoleModal, "Confirm")
	var missing MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "loc.qaf.pattern.modal", missing.Key)
	assert.Contains(t, err.Error(), "loc.qaf.pattern.modal")
}

func TestResolveBadTemplate(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.link", `"xpath=//a[text()='${loc.auto.feildName}']"`)

	_, err := r.Resolve("Home Page", RoleLink, "Contacts")
	var bad BadTemplateError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, []string{"${loc.auto.feildName}"}, bad.Placeholders)
}

func TestResolveValue(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.radio", `"xpath=//input[@type='radio'][@value='${loc.auto.fieldValue}']"`)

	res, err := r.ResolveValue("Signup", RoleRadio, "Plan", "premium")
	require.NoError(t, err)
	assert.Equal(t, []string{"xpath=//input[@type='radio'][@value='premium']"}, res.All())
}

func TestByRole(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)

	res, err := r.ByRole("Login Page", "Button", "Login")
	require.NoError(t, err)
	assert.Len(t, res.All(), 2)

	// configured role-family prefixes are stripped before dispatch
	_, err = r.ByRole("Login Page", "d365_button", "Login")
	require.NoError(t, err)

	_, err = r.ByRole("Login Page", "hologram", "Login")
	var unknown UnknownRoleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hologram", unknown.Name)
}

func TestResolveLabelAssociation(t *testing.T) {
	t.Parallel()
	var seen []string
	probe := probeFunc(func(candidates []string) (string, error) {
		seen = candidates
		return "user_name", nil
	})
	r, b := newTestResolver(t, Options{}, probe)
	b.Set("loc.qaf.pattern.input", `"xpath=//input[@id='${loc.auto.forValue}']"`)
	b.Set("loc.qaf.pattern.label", `"xpath=//label[text()='${loc.auto.fieldName}']"`)

	res, err := r.Resolve("Signup", RoleInput, "User Name")
	require.NoError(t, err)
	assert.Equal(t, []string{"xpath=//label[text()='User Name']"}, seen)
	assert.Equal(t, []string{"xpath=//input[@id='user_name']"}, res.All())
}

func TestResolveLabelAssociationSkipped(t *testing.T) {
	t.Parallel()
	t.Run("nil probe", func(t *testing.T) {
		t.Parallel()
		r, b := newTestResolver(t, Options{}, nil)
		b.Set("loc.qaf.pattern.input", `"xpath=//input[@id='${loc.auto.forValue}']"`)
		res, err := r.Resolve("Signup", RoleInput, "User Name")
		require.NoError(t, err)
		assert.Equal(t, []string{"xpath=//input[@id='']"}, res.All())
	})
	t.Run("no label template", func(t *testing.T) {
		t.Parallel()
		probe := probeFunc(func([]string) (string, error) {
			t.Fatal("probe must not be called without a label template")
			return "", nil
		})
		r, b := newTestResolver(t, Options{}, probe)
		b.Set("loc.qaf.pattern.input", `"xpath=//input[@id='${loc.auto.forValue}']"`)
		res, err := r.Resolve("Signup", RoleInput, "User Name")
		require.NoError(t, err)
		assert.Equal(t, []string{"xpath=//input[@id='']"}, res.All())
	})
	t.Run("probe error", func(t *testing.T) {
		t.Parallel()
		probeErr := errors.New("session gone")
		probe := probeFunc(func([]string) (string, error) { return "", probeErr })
		r, b := newTestResolver(t, Options{}, probe)
		b.Set("loc.qaf.pattern.input", `"xpath=//input[@id='${loc.auto.forValue}']"`)
		b.Set("loc.qaf.pattern.label", `"xpath=//label[text()='${loc.auto.fieldName}']"`)
		_, err := r.Resolve("Signup", RoleInput, "User Name")
		require.ErrorIs(t, err, probeErr)
	})
}

func TestResolveMissingTemplateLogged(t *testing.T) {
	t.Parallel()
	logger, hook := testutils.NewLoggerWithHook()
	r := New(bundle.New(logger), Options{}, nil, logger)

	_, err := r.Resolve("Home Page", RoleModal, "Confirm")
	require.Error(t, err)

	var logged bool
	for _, entry := range hook.Drain() {
		if entry.Level == logrus.ErrorLevel {
			logged = true
			assert.Equal(t, "loc.qaf.pattern.modal", entry.Data["key"])
		}
	}
	assert.True(t, logged, "missing template must be logged at error level")
}

func TestRoles(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	b.Set("loc.qaf.pattern.link", `"xpath=//a[text()='${loc.auto.fieldName}']"`)
	b.Set("loc.qaf.loginPage.button.login", "css=#login")

	assert.Equal(t, []Role{RoleButton, RoleLink}, r.Roles())
}

func TestCheckTemplates(t *testing.T) {
	t.Parallel()
	r, b := newTestResolver(t, Options{}, nil)
	b.Set("loc.qaf.pattern.button", buttonTemplate)
	b.Set("loc.qaf.pattern.hologram", `"css=#x-${loc.auto.fieldName}"`)
	b.Set("loc.qaf.pattern.link", "x")
	b.Set("loc.qaf.pattern.input", `"css=input[name='${loc.auto.fildName}']"`)

	errs := r.CheckTemplates()
	require.Len(t, errs, 3)

	var unknown UnknownRoleError
	require.ErrorAs(t, errs[0], &unknown)
	assert.Equal(t, "hologram", unknown.Name)

	var missing MissingTemplateError
	require.ErrorAs(t, errs[1], &missing)
	assert.Equal(t, "loc.qaf.pattern.link", missing.Key)

	var bad BadTemplateError
	require.ErrorAs(t, errs[2], &bad)
	assert.Equal(t, "loc.qaf.pattern.input", bad.Key)
}
