package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const (
	colorX    = "#E06C75"
	colorO    = "#61AFEF"
	colorLine = "#98C379"
	colorDim  = "#5C6370"
)

type renderer struct {
	output *termenv.Output
}

func newRenderer(output *termenv.Output) *renderer {
	return &renderer{output: output}
}

// board draws the grid, free cells show the 1-9 key that plays them.
func (that *renderer) board(board tictactoe.Board) string {
	line, hasLine := tictactoe.WinningLine(board)
	onLine := func(i int) bool {
		return hasLine && (line[0] == i || line[1] == i || line[2] == i)
	}

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			cells = append(cells, that.cell(board[i], i, onLine(i)))
		}

		sb.WriteString(" " + strings.Join(cells, " │ ") + "\n")
		if row < 2 {
			sb.WriteString(that.output.String("───┼───┼───").Foreground(that.output.Color(colorDim)).String() + "\n")
		}
	}

	return sb.String()
}

func (that *renderer) cell(mark tictactoe.Mark, index int, highlight bool) string {
	switch mark {
	case tictactoe.X, tictactoe.O:
		color := colorX
		if mark == tictactoe.O {
			color = colorO
		}
		if highlight {
			color = colorLine
		}

		style := that.output.String(string(mark)).Foreground(that.output.Color(color)).Bold()
		if highlight {
			style = style.Underline()
		}

		return style.String()
	default:
		return that.output.String(fmt.Sprint(index + 1)).Foreground(that.output.Color(colorDim)).String()
	}
}

func (that *renderer) score(session *entity.Session) string {
	x := that.output.String(fmt.Sprintf("X: %d", session.Score.X)).Foreground(that.output.Color(colorX)).String()
	o := that.output.String(fmt.Sprintf("O: %d", session.Score.O)).Foreground(that.output.Color(colorO)).String()

	return fmt.Sprintf("Round %d   %s   %s   (first to %d)", session.Round, x, o, session.WinThreshold)
}

func (that *renderer) roundResult(result *entity.RoundResult) string {
	var sb strings.Builder
	sb.WriteString(that.board(result.Board))

	switch result.Outcome.Status {
	case tictactoe.Win:
		sb.WriteString(fmt.Sprintf("%s wins this round!\n", result.Outcome.Winner))
	case tictactoe.Draw:
		sb.WriteString("It's a draw!\n")
	}

	if result.MatchWinner != tictactoe.Empty {
		banner := fmt.Sprintf("Player %s has won the game!", result.MatchWinner)
		sb.WriteString(that.output.String(banner).Bold().String() + "\n")
	}

	return sb.String()
}
