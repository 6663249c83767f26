package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	depth := flag.Int("depth", cfg.SearchDepth, "search depth (0 uses the difficulty preset)")
	difficulty := flag.String("difficulty", cfg.Difficulty, "easy, medium or hard")
	tieBreak := flag.String("tiebreak", cfg.TieBreak, "lowest or random")
	seed := flag.Int64("seed", cfg.RandomSeed, "random tie-break seed")
	humanFirst := flag.Bool("first", cfg.HumanFirst, "human plays the first disk")
	flag.Parse()

	// keep the board readable: only warnings reach the terminal
	logger.Setup("warn", true)

	opts, err := bot.ConfigOptions(*depth, *difficulty, *tieBreak, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid engine configuration")
	}
	engine := bot.NewEngine(opts...)
	session := game.NewGameSession(engine, bot.ParseDifficulty(*difficulty), engine.Depth(), *humanFirst)

	if err := play(context.Background(), session, os.Stdin, os.Stdout, newRenderer(os.Stdout)); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// play runs one game on the given streams until it ends or input runs out.
func play(ctx context.Context, session *game.GameSession, in io.Reader, out io.Writer, r *renderer) error {
	report, err := session.Start(ctx)
	if err != nil {
		return err
	}
	printMoves(out, report)

	scanner := bufio.NewScanner(in)
	for report.Result == domain.ResultInProgress {
		fmt.Fprint(out, r.board(session.Game.Board))
		fmt.Fprintf(out, "Your move (1-%d, q to quit): ", domain.Columns)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "q") {
			return nil
		}

		column, err := parseColumn(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		report, err = session.HandleHumanMove(ctx, column)
		if err != nil {
			fmt.Fprintln(out, err)
			if len(report.Moves) == 0 {
				continue
			}
			return err
		}
		printMoves(out, report)
	}

	fmt.Fprint(out, r.board(session.Game.Board))
	fmt.Fprintln(out, r.outcome(report.State))
	return nil
}

func printMoves(out io.Writer, report game.TurnReport) {
	for _, m := range report.Moves {
		if m.Player == domain.AutomatedPiece {
			fmt.Fprintf(out, "Bot plays column %d\n", m.Column+1)
		}
	}
}
