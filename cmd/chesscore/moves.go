package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
)

func newMovesCmd(a *app) *cobra.Command {
	var (
		showBoard bool
		notation  string
	)
	cmd := &cobra.Command{
		Use:   "moves [move ...]",
		Short: "Replay coordinate moves from the start and list the legal replies",
		Example: "  chesscore moves e2e4 e7e5\n" +
			"  chesscore moves --notation short --board g1f3",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("notation") {
				n, err := config.ParseNotation(notation)
				if err != nil {
					return err
				}
				a.cfg.Output.Notation = n
			}

			g, err := replay(a.cfg, args)
			if err != nil {
				return err
			}
			if showBoard {
				board := g.CurrentBoard()
				if err := output.WriteBoard(a.cfg.OutputFile, &board, a.cfg.Output.Coordinates); err != nil {
					return err
				}
			}
			moves := g.LegalMoves()
			a.cfg.Logf(config.Summary, "%d legal moves for %s", len(moves), g.ToMove())
			output.WriteMoves(a.cfg.OutputFile, moves, a.cfg.Output.Notation)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBoard, "board", false, "print the board before the move list")
	cmd.Flags().StringVar(&notation, "notation", "", "move notation: short or coordinate")
	return cmd
}

// replay starts a game and plays every coordinate move in order.
func replay(cfg *config.Config, moves []string) (*game.Game, error) {
	g := game.New(cfg)
	for _, text := range moves {
		if _, err := g.TryMoveText(text); err != nil {
			return nil, err
		}
	}
	return g, nil
}
