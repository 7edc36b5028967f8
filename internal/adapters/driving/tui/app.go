// Package tui implements the interactive chat session over Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// answerMsg carries a completed answer back into the update loop.
type answerMsg struct {
	answer domain.Answer
}

// errMsg carries a failed question back into the update loop.
type errMsg struct {
	err error
}

// App is the chat TUI following the Elm architecture. It implements
// tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	input      textinput.Model
	spin       spinner.Model
	transcript viewport.Model

	width  int
	height int
	ready  bool

	// waiting is true while a question is in flight.
	waiting bool

	// pending is the question currently being answered.
	pending string

	// lastErr is the most recent failure, shown until the next question.
	lastErr error
}

// NewApp creates the chat application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "Ask a question about the corpus"
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.NewStyles(nil),
		input:  input,
		spin:   spin,
	}, nil
}

// WithContext sets the context used for question handling.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit

		case tea.KeyEnter:
			if a.waiting {
				return a, nil
			}
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				return a, nil
			}
			a.waiting = true
			a.pending = question
			a.lastErr = nil
			a.input.SetValue("")
			a.refresh()
			return a, tea.Batch(a.spin.Tick, a.ask(question))
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		viewHeight := msg.Height - 6
		if viewHeight < 3 {
			viewHeight = 3
		}
		if !a.ready {
			a.transcript = viewport.New(msg.Width, viewHeight)
			a.ready = true
		} else {
			a.transcript.Width = msg.Width
			a.transcript.Height = viewHeight
		}
		a.input.Width = msg.Width - 6
		a.refresh()
		return a, nil

	case answerMsg:
		a.waiting = false
		a.pending = ""
		a.refresh()
		return a, nil

	case errMsg:
		a.waiting = false
		a.pending = ""
		a.lastErr = msg.err
		a.refresh()
		return a, nil

	case spinner.TickMsg:
		if !a.waiting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.transcript, cmd = a.transcript.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// ask runs the question against the session off the update loop.
func (a *App) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.ports.Session.Ask(a.ctx, question)
		if err != nil {
			return errMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

// refresh re-renders the transcript viewport and scrolls to the bottom.
func (a *App) refresh() {
	if !a.ready {
		return
	}
	a.transcript.SetContent(a.renderTranscript())
	a.transcript.GotoBottom()
}

// renderTranscript renders the session turns plus any in-flight question.
func (a *App) renderTranscript() string {
	var b strings.Builder

	turns := a.ports.Session.Transcript()
	if len(turns) == 0 && !a.waiting {
		b.WriteString(a.styles.Muted.Render("No questions yet. Type one below and press Enter."))
		b.WriteString("\n")
	}

	for _, turn := range turns {
		switch turn.Role {
		case domain.RoleUser:
			b.WriteString(a.styles.Question.Render("You: " + turn.Content))
		case domain.RoleAssistant:
			b.WriteString(a.styles.Answer.Render(turn.Content))
		}
		b.WriteString("\n\n")
	}

	if a.waiting {
		b.WriteString(a.styles.Question.Render("You: " + a.pending))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(a.spin.View() + "Thinking..."))
		b.WriteString("\n")
	}

	if a.lastErr != nil {
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %v", a.lastErr)))
		b.WriteString("\n")
	}

	return b.String()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting chat..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("docqa chat"))
	b.WriteString("\n")
	b.WriteString(a.transcript.View())
	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("Enter: ask | Esc: quit"))
	return b.String()
}
