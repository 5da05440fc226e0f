package launcher

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/strutfield/ipenrich/internal/tui"
)

const menuInnerWidth = 36

type menuItem struct {
	key   string
	label string
}

var menuItems = []menuItem{
	{"f", "IP lookup form"},
	{"q", "Quit"},
}

// menuView draws the box-framed launcher menu.
func (m Model) menuView() string {
	inner := menuInnerWidth
	if m.width > 0 && m.width-4 < inner {
		inner = m.width - 4
	}
	if inner < 10 {
		inner = 10
	}

	var sb strings.Builder
	rule := strings.Repeat("─", inner)

	sb.WriteString("┌" + rule + "┐\n")
	sb.WriteString("│" + centerPad("IP ENRICH", inner) + "│\n")
	sb.WriteString("├" + rule + "┤\n")
	for _, item := range menuItems {
		line := "  " + tui.KeyHintStyle.Render(item.key) + "  " + item.label
		sb.WriteString("│" + boxPad(line, inner) + "│\n")
	}
	sb.WriteString("└" + rule + "┘")

	return tui.MenuStyle.Render(sb.String())
}

// boxPad fits styled text into a box row of the given width.
func boxPad(s string, width int) string {
	s = truncate.String(s, uint(width))
	if pad := width - ansi.PrintableRuneWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func centerPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return truncate.String(s, uint(width))
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
