package render

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// widthCache memoizes rune display widths. Combining runes report 0.
type widthCache struct {
	ascii   [128]int // width+1, 0 means unset
	asciiMu sync.RWMutex
	wide    sync.Map
}

func (c *widthCache) runeWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		c.asciiMu.RLock()
		width := c.ascii[ru]
		c.asciiMu.RUnlock()

		if width == 0 {
			actualWidth := runewidth.RuneWidth(ru)
			if actualWidth < 0 {
				actualWidth = 0
			}
			c.asciiMu.Lock()
			c.ascii[ru] = actualWidth + 1
			c.asciiMu.Unlock()
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := c.wide.Load(ru); ok {
		return cached.(int)
	}

	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	c.wide.Store(ru, width)
	return width
}

func (c *widthCache) measure(text string) int {
	width := 0
	for _, ru := range text {
		width += c.runeWidth(ru)
	}
	return width
}

// truncate shortens text to maxWidth cells, ending with an ellipsis when
// anything was cut.
func (c *widthCache) truncate(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if c.measure(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := c.runeWidth('…')
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0

	for _, ru := range text {
		runeWidth := c.runeWidth(ru)
		if currentWidth+runeWidth > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}

	builder.WriteString(ellipsis)
	return builder.String()
}
