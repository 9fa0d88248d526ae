package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is a card color. Wild marks the intrinsic color of Wild and
// WildDrawFour cards and is never a color a play can be matched against.
type Color int

const (
	None Color = iota
	Red
	Blue
	Green
	Yellow
	Wild
)

// All lists the four real colors in their stable iteration order.
var All = []Color{Red, Blue, Green, Yellow}

type palette struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palettes = map[Color]palette{
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Wild: {
		name:          "wild",
		colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if p, ok := palettes[c]; ok {
		return p.name
	}
	return "none"
}

// Real reports whether c is one of the four colors a play can match.
func (c Color) Real() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := palettes[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Name()
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range All {
		p := palettes[candidate]
		if p.name == name || p.name[:1] == name {
			return candidate, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
