package cli

import (
	"github.com/fatih/color"

	"github.com/almglabs/almg/internal/trajectory"
)

// Per-zone terminal colors, shared by track, analyze, and visualize.
var zoneColors = map[trajectory.Zone]*color.Color{
	trajectory.ZoneGreen:  color.New(color.FgHiGreen),
	trajectory.ZoneGold:   color.New(color.FgHiYellow),
	trajectory.ZoneYellow: color.New(color.FgYellow),
	trajectory.ZoneRed:    color.New(color.FgHiRed),
	trajectory.ZonePurple: color.New(color.FgHiMagenta),
}

// Per-zone plot glyphs for the ASCII grid and its legend.
var zoneGlyphs = map[trajectory.Zone]rune{
	trajectory.ZoneGreen:  '●',
	trajectory.ZoneGold:   '◉',
	trajectory.ZoneYellow: '○',
	trajectory.ZoneRed:    '◎',
	trajectory.ZonePurple: '◯',
}

// zoneLabel returns the zone name wrapped in its terminal color.
func zoneLabel(z trajectory.Zone) string {
	c, ok := zoneColors[z]
	if !ok {
		return string(z)
	}
	return c.Sprint(string(z))
}

// zoneGlyph returns the plot glyph for a zone, colored for the terminal.
func zoneGlyph(z trajectory.Zone) string {
	glyph, ok := zoneGlyphs[z]
	if !ok {
		glyph = '?'
	}
	c, ok := zoneColors[z]
	if !ok {
		return string(glyph)
	}
	return c.Sprint(string(glyph))
}
