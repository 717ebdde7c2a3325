package tictactoe

import (
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// MoveLink - one entry of the move list; selecting it jumps to Step.
type MoveLink struct {
	Label   string `json:"label"`
	Step    int    `json:"step"`
	Current bool   `json:"current,omitempty"`
}

// View - everything a renderer needs to draw the game. It is rebuilt from the game on every change.
type View struct {
	Board      [entity.BoardSize]string `json:"board"`
	Status     string                   `json:"status"`
	Winner     string                   `json:"winner,omitempty"`
	NextPlayer string                   `json:"next_player,omitempty"`
	Step       int                      `json:"step"`
	Moves      []MoveLink               `json:"moves"`
}

func (that Game) View() View {
	board := that.Current()
	winner := board.Winner()

	view := View{
		Board: board.Strings(),
		Step:  that.step,
		Moves: that.moveList(),
	}

	if winner != entity.EmptyCell {
		view.Winner = winner.String()
		view.Status = "Winner: " + winner.String()
	} else {
		view.NextPlayer = that.NextPlayer().String()
		view.Status = "Next player: " + that.NextPlayer().String()
	}

	return view
}

func (that Game) moveList() []MoveLink {
	history := that.snapshots()

	moves := make([]MoveLink, 0, len(history))
	for step := range history {
		moves = append(moves, MoveLink{
			Label:   moveLabel(step),
			Step:    step,
			Current: step == that.step,
		})
	}

	return moves
}

func moveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}

	return "Go to move #" + strconv.Itoa(step)
}
