package tictactoe

import (
	"errors"
	"math"
)

var ErrNoLegalMoves = errors.New("no legal moves")

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// BestMove - best cell for O, the bot side of a game against the computer.
func BestMove(board Board) (int, error) {
	return BestMoveFor(board, O)
}

// BestMoveFor runs a full minimax search with player as the maximizer.
// Among equally scored cells the lowest index wins.
func BestMoveFor(board Board, player Mark) (int, error) {
	if !player.IsPlayer() {
		return -1, ErrInvalidPlayer
	}

	if EvaluateOutcome(board).IsTerminal() {
		return -1, ErrNoLegalMoves
	}

	bestScore := math.MinInt
	move := -1

	for i := range board {
		if board[i] != Empty {
			continue
		}

		child := board
		child[i] = player

		if score := Minimax(child, player, false); score > bestScore {
			bestScore = score
			move = i
		}
	}

	return move, nil
}

// MoveScores returns the minimax score of every legal cell for player.
func MoveScores(board Board, player Mark) (map[int]int, error) {
	if !player.IsPlayer() {
		return nil, ErrInvalidPlayer
	}

	if EvaluateOutcome(board).IsTerminal() {
		return nil, ErrNoLegalMoves
	}

	scores := make(map[int]int, BoardSize)
	for _, i := range board.EmptyCells() {
		child := board
		child[i] = player
		scores[i] = Minimax(child, player, false)
	}

	return scores, nil
}

// Minimax scores board from ai's point of view. maximizing tells whose move it is:
// ai when true, the opponent otherwise. Board is passed by value so every branch works
// on its own copy. A mark that is not a player scores as a draw.
func Minimax(board Board, ai Mark, maximizing bool) int {
	if !ai.IsPlayer() {
		return scoreDraw
	}

	if winner, ok := Winner(board); ok {
		if winner == ai {
			return scoreWin
		}
		return scoreLoss
	}

	if IsFull(board) {
		return scoreDraw
	}

	mover := Opponent(ai)
	bestScore := math.MaxInt
	if maximizing {
		mover = ai
		bestScore = math.MinInt
	}

	for i := range board {
		if board[i] != Empty {
			continue
		}

		child := board
		child[i] = mover

		score := Minimax(child, ai, !maximizing)
		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}
