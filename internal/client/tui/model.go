// Package tui renders the dashboard in the terminal with Bubble Tea. The
// model holds no task state of its own: it draws the latest snapshot of the
// dashboard controller and forwards key presses to it.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qwik2do/internal/client/dashboard"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

const helpLine = "enter add • ↑/↓ select • ctrl+x done • ctrl+d delete • ctrl+o sign out • ctrl+c quit"

// Controller is the part of dashboard.Controller the view drives. Subscribe
// must deliver the current state to fn before returning.
type Controller interface {
	Snapshot() dashboard.Snapshot
	Subscribe(fn func(dashboard.Snapshot)) func()
	SetPending(text string)
	Add(ctx context.Context, text string) error
	Delete(ctx context.Context, taskID string)
	SetCompleted(ctx context.Context, taskID string, completed bool) error
	SignOut(ctx context.Context)
}

type Model struct {
	// children
	input textinput.Model

	// supplied
	ctrl        Controller
	updates     chan dashboard.Snapshot
	unsubscribe func()

	// state
	snap      dashboard.Snapshot
	cursor    int
	alert     string
	width     int
	signedOut bool
	quitting  bool

	// configuration
	cmdTimeout time.Duration
}

// New subscribes to ctrl. Snapshots are coalesced so a slow terminal only
// ever sees the latest one.
func New(ctrl Controller, cmdTimeout time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 280
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	input.Focus()

	m := &Model{
		input:      input,
		ctrl:       ctrl,
		updates:    make(chan dashboard.Snapshot, 1),
		cmdTimeout: cmdTimeout,
	}

	// Subscribe replays the current state, so taking it from the channel
	// leaves no gap between the first snapshot and later updates.
	m.unsubscribe = ctrl.Subscribe(m.push)
	select {
	case m.snap = <-m.updates:
	default:
		m.snap = ctrl.Snapshot()
	}
	m.input.SetValue(m.snap.Pending)
	return m
}

func (m *Model) push(s dashboard.Snapshot) {
	for {
		select {
		case m.updates <- s:
			return
		default:
			select {
			case <-m.updates:
			default:
			}
		}
	}
}

// SignedOut reports whether the dashboard ended because the session did.
func (m *Model) SignedOut() bool {
	return m.signedOut
}

// Close stops listening to the controller.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) waitForSnapshot() tea.Msg {
	return snapshotMsg{snap: <-m.updates}
}

func (m *Model) newTimeout() (context.Context, context.CancelFunc) {
	if m.cmdTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), m.cmdTimeout)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSnapshot, textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = msg.snap
		if m.snap.Identity == nil {
			m.signedOut = true
			m.quitting = true
			return m, tea.Quit
		}
		m.clampCursor()
		return m, m.waitForSnapshot
	case addDoneMsg:
		if msg.err != nil {
			m.alert = "Could not add the task. Press enter to try again."
			return m, nil
		}
		m.alert = ""
		m.input.Reset()
		return m, nil
	case toggleDoneMsg:
		if msg.err != nil {
			m.alert = "Could not update the task."
		}
		return m, nil
	case actionDoneMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		return m, m.addCmd(text)
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.snap.Tasks)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyCtrlD:
		if task, ok := m.selected(); ok {
			return m, m.deleteCmd(task.ID)
		}
		return m, nil
	case tea.KeyCtrlX:
		if task, ok := m.selected(); ok {
			return m, m.toggleCmd(task.ID, !task.Completed)
		}
		return m, nil
	case tea.KeyCtrlO:
		return m, m.signOutCmd()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.ctrl.SetPending(v)
	}
	return m, cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Tasks) {
		m.cursor = len(m.snap.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Tasks) {
		return models.Task{}, false
	}
	return m.snap.Tasks[m.cursor], true
}

func (m *Model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.newTimeout()
		defer cancel()
		return addDoneMsg{err: m.ctrl.Add(ctx, text)}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.newTimeout()
		defer cancel()
		m.ctrl.Delete(ctx, id)
		return actionDoneMsg{}
	}
}

func (m *Model) toggleCmd(id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.newTimeout()
		defer cancel()
		return toggleDoneMsg{err: m.ctrl.SetCompleted(ctx, id, completed)}
	}
}

func (m *Model) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.newTimeout()
		defer cancel()
		m.ctrl.SignOut(ctx)
		return actionDoneMsg{}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		clockStyle.Render(m.snap.Clock), "  ", faintStyle.Render(m.snap.Date))
	b.WriteString(header)
	b.WriteString("\n")

	if w := m.snap.Weather; w != nil {
		b.WriteString(weatherStyle.Render(fmt.Sprintf("%s, %.0f°C", w.Description, w.TemperatureC)))
		b.WriteString("\n")
	}
	if m.snap.Background != "" {
		b.WriteString(faintStyle.Render("photo: " + m.snap.Background))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.snap.Identity != nil {
		b.WriteString(headerStyle.Render(m.snap.Identity.Email + "'s tasks"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle.Render(helpLine))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderTasks() string {
	if m.snap.Status == dashboard.StatusLoading {
		return faintStyle.Render("Loading tasks…") + "\n"
	}
	if len(m.snap.Tasks) == 0 {
		return faintStyle.Render("No tasks yet.") + "\n"
	}

	var b strings.Builder
	for i, t := range m.snap.Tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		box := "[ ] "
		text := t.Text
		if t.Completed {
			box = "[x] "
			text = doneStyle.Render(text)
		}
		b.WriteString(pointer + box + text + "\n")
	}
	return b.String()
}
