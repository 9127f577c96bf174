package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sessionrender "github.com/funanimation/fa-cli/internal/adapters/render/session"
	"github.com/funanimation/fa-cli/internal/application"
)

const redrawInterval = time.Second

type tickMsg time.Time

// Model is the live session view. The session's own poller keeps the state
// fresh in the background; the model only re-reads the snapshot on a redraw
// tick and quits on q or ctrl+c.
type Model struct {
	session  *application.Session
	spinner  spinner.Model
	snapshot application.Snapshot
	opts     sessionrender.RenderOptions
}

func NewModel(session *application.Session, opts sessionrender.RenderOptions) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		session:  session,
		spinner:  s,
		snapshot: session.Snapshot(),
		opts:     opts,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, redrawTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		m.snapshot = m.session.Snapshot()
		return m, redrawTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string {
	view := sessionrender.View(m.snapshot, m.opts)

	footer := "press q to quit"
	if !m.snapshot.LastRefreshAt.IsZero() {
		footer = "updated " + m.snapshot.LastRefreshAt.Format("15:04:05") + ", " + footer
	}
	if m.snapshot.Submitting {
		footer = m.spinner.View() + " submitting..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, view, "", footer)
}

func redrawTick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the live view and blocks until the user quits.
func Run(session *application.Session, opts sessionrender.RenderOptions) error {
	p := tea.NewProgram(NewModel(session, opts))
	_, err := p.Run()
	return err
}
