package launcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strutfield/ipenrich/internal/config"
	"github.com/strutfield/ipenrich/internal/tui"
)

// formEntry is one submitted input and its outcome.
type formEntry struct {
	input  string
	output string
	err    error
	at     time.Time
}

// formModel is the lookup form body view. It owns a single-line input, a
// scrollback of results, and the in-flight state of the current submit. A
// form is created fresh on every open and discarded on close.
type formModel struct {
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	transform Transform
	running   bool
	pending   string
	entries   []formEntry

	mdRenderer *tui.MarkdownRenderer

	ready  bool
	width  int
	height int
}

func newFormModel(transform Transform, width, height int) *formModel {
	ti := textinput.New()
	ti.Placeholder = "Enter an IP address..."
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	// Renderer errors fall back to plain text output.
	mdRenderer, _ := tui.NewMarkdownRenderer(width)

	f := &formModel{
		input:      ti,
		spinner:    sp,
		transform:  transform,
		mdRenderer: mdRenderer,
	}
	if width > 0 && height > 0 {
		f.setSize(width, height)
	}
	return f
}

func (f *formModel) init() tea.Cmd {
	return textinput.Blink
}

func (f *formModel) setSize(width, height int) {
	f.width = width
	f.height = height
	f.input.Width = width - 6

	if f.mdRenderer != nil {
		f.mdRenderer.SetWidth(width - 4)
	}

	// Header, status bar, and the bordered input each take fixed rows.
	vpHeight := height - 7
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !f.ready {
		f.viewport = viewport.New(width, vpHeight)
		f.ready = true
	} else {
		f.viewport.Width = width
		f.viewport.Height = vpHeight
	}
	f.refreshViewport()
}

// handleKey processes a key the chord machine forwarded to the form.
func (f *formModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return f.submit()
	case "ctrl+u":
		f.input.Reset()
		return nil
	case "ctrl+y":
		f.copyLastResult()
		return nil
	case "pgup":
		f.viewport.ViewUp()
		return nil
	case "pgdown":
		f.viewport.ViewDown()
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// submit starts the transform for the current input. The buffer clears
// immediately so the user can type the next query while this one runs.
// A submit while one is already running is ignored.
func (f *formModel) submit() tea.Cmd {
	if f.running {
		return nil
	}
	value := strings.TrimSpace(f.input.Value())
	if value == "" {
		return nil
	}

	f.input.Reset()
	f.running = true
	f.pending = value
	f.refreshViewport()

	transform := f.transform
	return tea.Batch(
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), config.DefaultLookupTimeout)
			defer cancel()
			out, err := transform(ctx, value)
			return formResultMsg{input: value, output: out, err: err}
		},
		f.spinner.Tick,
	)
}

// finish records the outcome of the in-flight submit.
func (f *formModel) finish(msg formResultMsg) {
	f.running = false
	f.pending = ""
	f.entries = append(f.entries, formEntry{
		input:  msg.input,
		output: msg.output,
		err:    msg.err,
		at:     time.Now().UTC(),
	})
	f.refreshViewport()
}

// update passes non-key messages through to the input component.
func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *formModel) tick(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return cmd
}

func (f *formModel) copyLastResult() {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].err == nil {
			// Clipboard access can fail on headless terminals; nothing
			// useful to do about it here.
			_ = clipboard.WriteAll(f.entries[i].output)
			return
		}
	}
}

// renderMarkdown renders the output as markdown, falling back to the raw
// text on error.
func (f *formModel) renderMarkdown(content string) string {
	if f.mdRenderer == nil {
		return content
	}
	rendered, err := f.mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

func (f *formModel) refreshViewport() {
	if !f.ready {
		return
	}

	var sb strings.Builder
	for _, e := range f.entries {
		stamp := e.at.Format("2006-01-02T15:04:05Z")
		sb.WriteString(tui.ResultTimestampStyle.Render(fmt.Sprintf("[%s] %s", stamp, e.input)))
		sb.WriteString("\n")
		if e.err != nil {
			sb.WriteString(tui.ErrorStyle.Render("Error: " + e.err.Error()))
		} else {
			sb.WriteString(f.renderMarkdown(e.output))
		}
		sb.WriteString("\n\n")
	}

	if f.running {
		sb.WriteString(f.spinner.View())
		sb.WriteString(" Looking up " + f.pending + "...")
	}

	f.viewport.SetContent(sb.String())
	f.viewport.GotoBottom()
}

func (f *formModel) view() string {
	if !f.ready {
		return "Initializing..."
	}

	// Respinning the viewport content keeps the spinner frame current.
	if f.running {
		f.refreshViewport()
	}

	inputBox := tui.InputBoxStyle.Width(f.width - 4).Render(f.input.View())
	help := tui.HelpStyle.Render("enter: look up  •  ctrl+y: copy last  •  esc: back to menu")

	return fmt.Sprintf("%s\n%s\n%s", f.viewport.View(), inputBox, help)
}
