package patloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Parallel()
	testdata := []struct {
		input    string
		name     string
		instance string
	}{
		{"Submit", "Submit", "1"},
		{"Submit[2]", "Submit", "2"},
		{"Save and Close[3]", "Save and Close", "3"},
		{"Field[1]", "Field", "1"},
		{"Search [10]", "Search", "10"},
		{" Login ", "Login", "1"},
		{"Oddly]Named", "Oddly]Named", "1"},
	}
	for _, td := range testdata {
		td := td
		t.Run(td.input, func(t *testing.T) {
			t.Parallel()
			name, instance, err := ParseField(td.input)
			require.NoError(t, err)
			assert.Equal(t, td.name, name)
			assert.Equal(t, td.instance, instance)
		})
	}
}

func TestParseFieldMalformed(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"Submit[]", "Submit[x]", "Submit[2x]", "Submit[-1]", "[2]"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, _, err := ParseField(input)
			require.Error(t, err)
			var malformed MalformedFieldError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, err.Error(), input)
		})
	}
}
