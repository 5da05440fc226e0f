package tui

// Surface is anything that can display a one-line status message.
type Surface interface {
	Write(text string)
}

// Line is a single-line status surface. Write is idempotent: setting the
// text it already shows changes nothing, so callers can re-assert state
// freely without causing redraw churn.
type Line struct {
	text     string
	fallback string
}

// NewLine returns a status line showing fallback, which Reset restores.
func NewLine(fallback string) *Line {
	return &Line{text: fallback, fallback: fallback}
}

// Write sets the status text. A write of the current text is a no-op.
func (l *Line) Write(text string) {
	if text == l.text {
		return
	}
	l.text = text
}

// Reset restores the fallback text.
func (l *Line) Reset() {
	l.Write(l.fallback)
}

// Text returns the current status text.
func (l *Line) Text() string {
	return l.text
}
