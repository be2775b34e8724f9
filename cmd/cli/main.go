// Command cli plays tic-tac-toe in the terminal, against the computer or a second player.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

func main() {
	mode := flag.String("mode", entity.ModeBot, "game mode: bot or 2p")
	threshold := flag.Int("threshold", entity.DefaultWinThreshold, "round wins needed to take the match")
	verbose := flag.Bool("v", false, "log game events to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sessionService := service.NewSessionService(repository.NewMemorySessionRepository(), *threshold)
	gamePlay := service.NewGamePlayService(logger, sessionService, service.NewBotService())

	game := newConsole(gamePlay, newRenderer(termenv.NewOutput(os.Stdout)), os.Stdin, os.Stdout)
	if err := game.run(context.Background(), *mode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type console struct {
	gamePlay service.GamePlayService
	render   *renderer
	in       *bufio.Scanner
	out      io.Writer
}

func newConsole(gamePlay service.GamePlayService, render *renderer, in io.Reader, out io.Writer) *console {
	return &console{
		gamePlay: gamePlay,
		render:   render,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

func (that *console) run(ctx context.Context, mode string) error {
	session, err := that.gamePlay.StartSession(ctx, mode)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	defer func() {
		_ = that.gamePlay.EndSession(ctx, session.ID)
	}()

	fmt.Fprintln(that.out, "Keys 1-9 play a cell, h asks for a hint, r restarts, q quits.")

	for {
		fmt.Fprint(that.out, "\n"+that.render.score(session)+"\n"+that.render.board(session.Board))
		fmt.Fprintf(that.out, "%s to move > ", session.Turn)

		if !that.in.Scan() {
			return that.in.Err()
		}

		input := strings.TrimSpace(strings.ToLower(that.in.Text()))
		switch input {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "restart":
			if session, err = that.gamePlay.Restart(ctx, session.ID); err != nil {
				return fmt.Errorf("failed to restart: %w", err)
			}
			continue
		case "h", "hint":
			cell, err := that.gamePlay.Hint(ctx, session.ID)
			if err != nil {
				return fmt.Errorf("failed to get hint: %w", err)
			}
			fmt.Fprintf(that.out, "Try %d\n", cell+1)
			continue
		}

		key, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(that.out, "unknown command %q\n", input)
			continue
		}

		result, err := that.gamePlay.MakeTurn(ctx, session.ID, tictactoe.Empty, key-1)
		if err != nil {
			if errors.Is(err, tictactoe.ErrInvalidCell) || errors.Is(err, tictactoe.ErrCellOccupied) {
				fmt.Fprintf(that.out, "cell %d can't be played\n", key)
				continue
			}
			return fmt.Errorf("failed to play: %w", err)
		}

		for _, move := range result.Moves[1:] {
			fmt.Fprintf(that.out, "%s plays %d\n", move.Player, move.Cell+1)
		}

		if result.Outcome.IsTerminal() && result.Session.LastRound != nil {
			fmt.Fprint(that.out, "\n"+that.render.roundResult(result.Session.LastRound))
		}

		session = result.Session
	}
}
