// Package tui is a terminal renderer for the game.
//
// The model only keeps the last view it received; every key press that changes the game is
// turned into an event and sent to the use case, whose answer replaces the view.
// Models are meant to be driven by a single bubbletea program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const gridSide = 3

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*tictactoe.View, error)
	Dispatch(ctx context.Context, sessionID string, event tictactoe.Event) (*tictactoe.View, error)
}

type focus int

const (
	focusBoard focus = iota
	focusMoves
)

// viewMsg carries the use case's answer back into Update.
type viewMsg struct {
	view *tictactoe.View
	err  error
}

type Model struct {
	ctx         context.Context
	gameUseCase gameUseCase
	sessionID   string

	keys keyMap
	help help.Model

	game     tictactoe.View
	loaded   bool
	cursor   int
	selected int
	focus    focus
	err      error
}

func New(ctx context.Context, gameUseCase gameUseCase, sessionID string) Model {
	return Model{
		ctx:         ctx,
		gameUseCase: gameUseCase,
		sessionID:   sessionID,
		keys:        defaultKeyMap(),
		help:        help.New(),
		cursor:      4,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		view, err := m.gameUseCase.GetOrCreateGame(m.ctx, m.sessionID)
		return viewMsg{view: view, err: err}
	}
}

func (m Model) dispatch(event tictactoe.Event) tea.Cmd {
	return func() tea.Msg {
		view, err := m.gameUseCase.Dispatch(m.ctx, m.sessionID, event)
		return viewMsg{view: view, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		if msg.view != nil {
			m.game = *msg.view
			m.loaded = true
			m.selected = m.game.Step
		}
		m.err = msg.err

		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusBoard {
			m.focus = focusMoves
			m.selected = m.game.Step
		} else {
			m.focus = focusBoard
		}

	case key.Matches(msg, m.keys.Reset):
		return m, m.dispatch(tictactoe.ResetRequested{})

	case key.Matches(msg, m.keys.Cell):
		cell := int(msg.String()[0] - '1')
		m.cursor = cell

		return m, m.dispatch(tictactoe.CellClicked{Index: cell})

	case key.Matches(msg, m.keys.Select):
		if m.focus == focusMoves {
			return m, m.dispatch(tictactoe.HistoryLinkClicked{Step: m.selected})
		}

		return m, m.dispatch(tictactoe.CellClicked{Index: m.cursor})

	case key.Matches(msg, m.keys.Up):
		m.move(-gridSide, -1)

	case key.Matches(msg, m.keys.Down):
		m.move(gridSide, 1)

	case key.Matches(msg, m.keys.Left):
		if m.focus == focusBoard && m.cursor%gridSide > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.focus == focusBoard && m.cursor%gridSide < gridSide-1 {
			m.cursor++
		}
	}

	return m, nil
}

// move - shifts the board cursor by boardDelta or the move selection by listDelta, depending on focus.
func (m *Model) move(boardDelta, listDelta int) {
	if m.focus == focusMoves {
		m.selected = clamp(m.selected+listDelta, 0, len(m.game.Moves)-1)
		return
	}

	if next := m.cursor + boardDelta; next >= 0 && next < gridSide*gridSide {
		m.cursor = next
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return errorStyle.Render("failed to load game: "+m.err.Error()) + "\n"
		}

		return "Loading...\n"
	}

	board := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Tic-Tac-Toe"), m.renderBoard(), m.renderStatus())
	body := lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(board), panelStyle.Render(m.renderMoves()))

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderBoard() string {
	separator := gridStyle.Render(strings.Repeat("─", 3) + "┼" + strings.Repeat("─", 3) + "┼" + strings.Repeat("─", 3))
	bar := gridStyle.Render("│")

	rows := make([]string, 0, 2*gridSide-1)
	for row := range gridSide {
		cells := make([]string, 0, 2*gridSide-1)
		for col := range gridSide {
			if col > 0 {
				cells = append(cells, bar)
			}
			cells = append(cells, m.renderCell(row*gridSide+col))
		}

		if row > 0 {
			rows = append(rows, separator)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(cell int) string {
	value := m.game.Board[cell]

	var mark string
	switch value {
	case "X":
		mark = xStyle.Render(value)
	case "O":
		mark = oStyle.Render(value)
	default:
		mark = mutedStyle.Render(fmt.Sprintf("%d", cell+1))
	}

	if m.focus == focusBoard && cell == m.cursor {
		return cursorStyle.Render(mark)
	}

	return cellStyle.Render(mark)
}

func (m Model) renderStatus() string {
	if m.game.Winner != "" {
		return winnerStyle.Render(m.game.Status)
	}

	return statusStyle.Render(m.game.Status)
}

func (m Model) renderMoves() string {
	lines := make([]string, 0, len(m.game.Moves)+1)
	lines = append(lines, titleStyle.Render("Moves"))

	for i, link := range m.game.Moves {
		pointer := "  "
		if m.focus == focusMoves && i == m.selected {
			pointer = "> "
		}

		label := fmt.Sprintf("%d. %s", i+1, link.Label)
		if link.Current {
			label = currentStyle.Render(label)
		}

		lines = append(lines, pointer+label)
	}

	return strings.Join(lines, "\n")
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}

	return v
}
