package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
)

const playHelp = `commands:
  e2e4     play a move given by origin and destination
  undo     take back the last move
  moves    list the legal moves
  board    print the board
  help     show this text
  quit     leave the shell
`

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play moves interactively from standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := game.New(a.cfg)
			a.cfg.Logf(config.Summary, "game %s", g.ID)
			return runShell(g, a.cfg, cmd.InOrStdin())
		},
	}
}

// runShell reads one command per line until quit or end of input.
func runShell(g *game.Game, cfg *config.Config, in io.Reader) error {
	out := cfg.OutputFile
	if err := writeBoard(g, cfg); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", g.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, playHelp)
		case "board":
			if err := writeBoard(g, cfg); err != nil {
				return err
			}
		case "moves":
			output.WriteMoves(out, g.LegalMoves(), cfg.Output.Notation)
		case "undo":
			m, ok := g.UndoLast()
			if !ok {
				fmt.Fprintln(out, "nothing to undo")
				continue
			}
			fmt.Fprintf(out, "took back %s\n", output.FormatMove(m, cfg.Output.Notation))
		default:
			m, err := g.TryMoveText(line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "played %s\n", output.FormatMove(m, cfg.Output.Notation))
			if err := writeBoard(g, cfg); err != nil {
				return err
			}
			switch {
			case len(g.LegalMoves()) == 0:
				fmt.Fprintf(out, "%s has no legal moves\n", g.ToMove())
			case g.InCheck():
				fmt.Fprintf(out, "%s is in check\n", g.ToMove())
			}
		}
	}
}

func writeBoard(g *game.Game, cfg *config.Config) error {
	board := g.CurrentBoard()
	return output.WriteBoard(cfg.OutputFile, &board, cfg.Output.Coordinates)
}
