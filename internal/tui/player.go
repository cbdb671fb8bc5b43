// Package tui is the interactive terminal host for a dissolve: it owns
// the frame clock, feeds elapsed time into the transition, and draws
// the working image as half-block cells.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benstone/3dmm-dissolve/internal/dissolve"
	"github.com/benstone/3dmm-dissolve/internal/imageio"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type model struct {
	buffers *imageio.Buffers
	tr      *dissolve.Transition

	playing  bool
	lastTick time.Time
	interval time.Duration

	width  int
	height int
}

type tickMsg time.Time

func newModel(b *imageio.Buffers, tr *dissolve.Transition, fps float64) model {
	return model{
		buffers:  b,
		tr:       tr,
		interval: time.Duration(float64(time.Second) / fps),
		width:    80,
		height:   24,
	}
}

// Run plays the dissolve in the terminal. SPACE starts and pauses, ESC
// or r restarts, q quits.
func Run(b *imageio.Buffers, tr *dissolve.Transition, fps float64) error {
	_, err := tea.NewProgram(newModel(b, tr, fps), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing {
				m.lastTick = time.Now()
				return m, m.tick()
			}
		case "esc", "r":
			m.buffers.Restart()
			m.tr.Reset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.playing {
			return m, nil
		}
		now := time.Time(msg)
		delta := now.Sub(m.lastTick)
		if delta < 0 {
			delta = 0
		}
		m.lastTick = now

		running, _ := m.tr.Update(delta)
		if !running {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	frameRows := m.height - 2
	if frameRows < 1 {
		frameRows = 1
	}
	frame := Frame(m.buffers.Working(), m.width, frameRows)

	status := green.Render("paused")
	switch {
	case m.playing:
		status = yellow.Render("running")
	case !m.tr.Running():
		status = cyan.Render("done")
	}

	info := fmt.Sprintf("%s  %s  %s",
		status,
		dim.Render(fmt.Sprintf("%5.1f%%  t=%.2fs", 100*m.tr.Progress(), m.tr.Elapsed().Seconds())),
		dim.Render("space play/pause · esc restart · q quit"))

	return frame + info
}
