package color_test

import (
	"testing"

	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    color.Color
		fails       bool
	}{
		{description: "full_name", input: "red", expected: color.Red},
		{description: "upper_case_with_spaces", input: "  BLUE ", expected: color.Blue},
		{description: "initial_letter", input: "g", expected: color.Green},
		{description: "yellow", input: "yellow", expected: color.Yellow},
		{description: "wild_is_not_selectable", input: "wild", fails: true},
		{description: "unknown", input: "purple", fails: true},
		{description: "empty", input: "", fails: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result, err := color.ByName(scenario.input)
			if scenario.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, result)
		})
	}
}

func TestReal(t *testing.T) {
	for _, c := range color.All {
		require.True(t, c.Real(), c.Name())
	}
	require.False(t, color.Wild.Real())
	require.False(t, color.None.Real())
}
