package tui

import "strings"

const bigTextRows = 5

// bigFont holds 5-row block glyphs for the countdown display.
var bigFont = map[rune][bigTextRows]string{
	'0': {
		" ████ ",
		"██  ██",
		"██  ██",
		"██  ██",
		" ████ ",
	},
	'1': {
		"  ██  ",
		" ███  ",
		"  ██  ",
		"  ██  ",
		"██████",
	},
	'2': {
		"█████ ",
		"    ██",
		"  ███ ",
		" ██   ",
		"██████",
	},
	'3': {
		"█████ ",
		"    ██",
		" ████ ",
		"    ██",
		"█████ ",
	},
	'4': {
		"██  ██",
		"██  ██",
		"██████",
		"    ██",
		"    ██",
	},
	'5': {
		"██████",
		"██    ",
		"█████ ",
		"    ██",
		"█████ ",
	},
	'6': {
		" ████ ",
		"██    ",
		"█████ ",
		"██  ██",
		" ████ ",
	},
	'7': {
		"██████",
		"    ██",
		"   ██ ",
		"  ██  ",
		"  ██  ",
	},
	'8': {
		" ████ ",
		"██  ██",
		" ████ ",
		"██  ██",
		" ████ ",
	},
	'9': {
		" ████ ",
		"██  ██",
		" █████",
		"    ██",
		" ████ ",
	},
	':': {
		"  ",
		"██",
		"  ",
		"██",
		"  ",
	},
	'-': {
		"      ",
		"      ",
		"██████",
		"      ",
		"      ",
	},
}

// BigText renders s in the block font, one glyph column per rune. Runes
// outside the font render as blanks of digit width.
func BigText(s string) string {
	rows := make([]strings.Builder, bigTextRows)
	for i, r := range s {
		glyph, ok := bigFont[r]
		if !ok {
			glyph = [bigTextRows]string{"      ", "      ", "      ", "      ", "      "}
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(glyph[row])
		}
	}
	lines := make([]string, bigTextRows)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
