package printers

import (
	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Terminal colours and their usual xterm values.
var ansi = []struct {
	attr color.Attribute
	hex  string
}{
	{color.FgRed, "#cd0000"},
	{color.FgGreen, "#00cd00"},
	{color.FgYellow, "#cdcd00"},
	{color.FgBlue, "#0000ee"},
	{color.FgMagenta, "#cd00cd"},
	{color.FgCyan, "#00cdcd"},
	{color.FgWhite, "#e5e5e5"},
	{color.FgHiBlack, "#7f7f7f"},
	{color.FgHiRed, "#ff0000"},
	{color.FgHiGreen, "#00ff00"},
	{color.FgHiYellow, "#ffff00"},
	{color.FgHiBlue, "#5c5cff"},
	{color.FgHiMagenta, "#ff00ff"},
	{color.FgHiCyan, "#00ffff"},
	{color.FgHiWhite, "#ffffff"},
}

// Attribute picks the terminal colour closest to hex in Lab space. Invalid
// colours map to the default foreground.
func Attribute(hex string) color.Attribute {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Reset
	}
	best := color.Reset
	bestDist := -1.0
	for _, a := range ansi {
		ac, _ := colorful.Hex(a.hex)
		if d := c.DistanceLab(ac); bestDist < 0 || d < bestDist {
			best, bestDist = a.attr, d
		}
	}
	return best
}
