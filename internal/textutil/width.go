package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		width += w
	}
	return width
}

// PadRight appends spaces until text occupies at least width columns.
func PadRight(text string, width int) string {
	gap := width - DisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
