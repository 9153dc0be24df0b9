package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/config"
	"github.com/kjansen/chessmind/internal/errors"
	"github.com/kjansen/chessmind/internal/game"
	"github.com/kjansen/chessmind/internal/record"
	"github.com/kjansen/chessmind/internal/search"
)

// player decides the next move for one colour.
type player interface {
	// NextMove returns the move to play, or done=true to resign the session.
	NextMove(st *game.State) (move chess.Move, done bool, err error)
	Name() string
}

// app runs one game from start to a terminal outcome (or a quit command).
type app struct {
	state    *game.State
	white    player
	black    player
	renderer *renderer
	logger   *zap.SugaredLogger
	maxPlies int
}

func newApp(st *game.State, cfg config.Config, logger *zap.SugaredLogger) (*app, error) {
	renderer := newRenderer(os.Stdout, !*noColour)
	input := bufio.NewScanner(os.Stdin)

	human := &humanPlayer{input: input, out: os.Stdout}
	engineAI := newEnginePlayer(cfg, logger)

	a := &app{
		state:    st,
		renderer: renderer,
		logger:   logger,
		maxPlies: *maxPlies,
	}

	switch *mode {
	case "pvp":
		a.white, a.black = human, human
	case "pve":
		switch *humanIs {
		case "white":
			a.white, a.black = human, engineAI
		case "black":
			a.white, a.black = engineAI, human
		default:
			return nil, fmt.Errorf("unknown side %q: want white or black", *humanIs)
		}
	case "eve":
		a.white, a.black = engineAI, engineAI
	default:
		return nil, fmt.Errorf("unknown mode %q: want pvp, pve, or eve", *mode)
	}
	return a, nil
}

// run drives the turn loop until the game ends or a player quits.
func (a *app) run() error {
	a.logger.Infow("game started",
		"mode", *mode,
		"fen", a.state.FEN(),
	)

	for {
		a.renderer.Render(a.state)

		outcome := a.state.Outcome()
		if outcome.IsTerminal() {
			a.renderer.Announce(outcome)
			a.logger.Infow("game over",
				"outcome", outcome.String(),
				"plies", a.state.PlyCount(),
				"fen", a.state.FEN(),
			)
			return a.saveTranscript()
		}
		if a.maxPlies > 0 && a.state.PlyCount() >= a.maxPlies {
			fmt.Println("Game aborted: ply limit reached.")
			a.logger.Infow("game aborted", "plies", a.state.PlyCount())
			return nil
		}

		current := a.white
		if a.state.ToMove() == chess.Black {
			current = a.black
		}

		move, done, err := current.NextMove(a.state)
		if err != nil {
			return err
		}
		if done {
			a.logger.Infow("game quit", "plies", a.state.PlyCount())
			return nil
		}
		if move == (chess.Move{}) {
			// The player handled a command (undo, fen, moves); redraw.
			continue
		}

		if err := a.state.Apply(move); err != nil {
			// Engine moves come from the legal set, so only human input
			// can land here.
			fmt.Printf("Illegal move: %s\n", move)
			a.logger.Debugw("illegal move rejected", "move", move.String(), "err", err)
			continue
		}
		a.logger.Infow("move played",
			"player", current.Name(),
			"move", move.String(),
			"ply", a.state.PlyCount(),
		)
	}
}

// saveTranscript writes the finished game to the -save path, picking the
// format from the file extension.
func (a *app) saveTranscript() error {
	if *savePath == "" {
		return nil
	}
	file, err := os.Create(*savePath)
	if err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}
	defer file.Close()

	var writer record.Writer = record.NewTextWriter(file)
	if strings.HasSuffix(*savePath, ".json") {
		writer = record.NewJSONWriter(file)
	}
	if err := writer.WriteRecord(record.FromState(a.state)); err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}
	a.logger.Infow("transcript saved", "path", *savePath)
	return nil
}

// humanPlayer reads coordinate moves and session commands from a scanner.
type humanPlayer struct {
	input *bufio.Scanner
	out   *os.File
}

func (h *humanPlayer) Name() string { return "human" }

// NextMove prompts until it has a parseable move or a handled command.
// Commands: undo, fen, moves, quit. A zero move with done=false means a
// command was handled and the caller should redraw.
func (h *humanPlayer) NextMove(st *game.State) (chess.Move, bool, error) {
	for {
		fmt.Fprintf(h.out, "%s to move> ", colourName(st.ToMove()))
		if !h.input.Scan() {
			return chess.Move{}, true, h.input.Err()
		}
		text := strings.TrimSpace(strings.ToLower(h.input.Text()))

		switch text {
		case "":
			continue
		case "quit", "exit", "q":
			return chess.Move{}, true, nil
		case "fen":
			fmt.Fprintln(h.out, st.FEN())
			continue
		case "moves":
			fmt.Fprintln(h.out, strings.Join(legalMoveStrings(st), " "))
			continue
		case "undo":
			// Take back a full turn in pve so the human moves again.
			if _, err := st.Undo(); err != nil {
				fmt.Fprintln(h.out, "Nothing to undo.")
				continue
			}
			if *mode == "pve" {
				if _, err := st.Undo(); err != nil && err != errors.ErrNoHistory {
					return chess.Move{}, false, err
				}
			}
			return chess.Move{}, false, nil
		case "help", "?":
			fmt.Fprintln(h.out, "Enter a move like e2e4 or e7e8q. Commands: undo, fen, moves, quit.")
			continue
		}

		move, err := chess.ParseMove(text)
		if err != nil {
			fmt.Fprintf(h.out, "Cannot read %q: type a move like e2e4, or 'help'.\n", text)
			continue
		}
		if move, err = h.completePromotion(st, move); err != nil {
			return chess.Move{}, true, err
		}
		return move, false, nil
	}
}

// completePromotion prompts for a piece when a pawn move reaches the last
// rank without a promotion suffix.
func (h *humanPlayer) completePromotion(st *game.State, move chess.Move) (chess.Move, error) {
	if move.Promotion != chess.Empty {
		return move, nil
	}
	board := st.Board()
	if chess.ExtractPiece(board.At(move.From)) != chess.Pawn {
		return move, nil
	}
	if move.To.Rank != chess.PromotionRank(st.ToMove()) {
		return move, nil
	}

	for {
		fmt.Fprint(h.out, "Promote to (q/r/b/n)? ")
		if !h.input.Scan() {
			return move, h.input.Err()
		}
		text := strings.TrimSpace(strings.ToLower(h.input.Text()))
		if len(text) != 1 {
			continue
		}
		piece, ok := chess.PromotionFromLetter(text[0])
		if !ok {
			continue
		}
		move.Promotion = piece
		return move, nil
	}
}

// enginePlayer picks moves with the alpha-beta search, or uniformly at
// random when -random is set.
type enginePlayer struct {
	opts   search.Options
	rng    *rand.Rand
	random bool
	logger *zap.SugaredLogger
}

func newEnginePlayer(cfg config.Config, logger *zap.SugaredLogger) *enginePlayer {
	return &enginePlayer{
		opts: search.Options{
			Depth:     cfg.SearchDepth,
			TimeLimit: time.Duration(cfg.MoveTimeMs) * time.Millisecond,
		},
		rng:    newRand(),
		random: *randomAI,
		logger: logger,
	}
}

func (e *enginePlayer) Name() string { return "engine" }

func (e *enginePlayer) NextMove(st *game.State) (chess.Move, bool, error) {
	if e.random {
		move, err := search.RandomMove(st, e.rng)
		if err != nil {
			return chess.Move{}, false, err
		}
		fmt.Printf("%s plays %s (random)\n", colourName(st.ToMove()), move)
		return move, false, nil
	}

	result, err := search.Search(st, e.opts)
	if err != nil {
		return chess.Move{}, false, err
	}
	fmt.Printf("%s plays %s\n", colourName(st.ToMove()), result.Move)
	e.logger.Infow("search finished",
		"move", result.Move.String(),
		"score", result.Score,
		"mate", search.IsMateScore(result.Score),
		"nodes", result.Nodes,
		"depth", result.Depth,
		"elapsed", result.Time,
	)
	return result.Move, false, nil
}

func legalMoveStrings(st *game.State) []string {
	moves := st.LegalMoves()
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = move.String()
	}
	return out
}

func colourName(colour chess.Colour) string {
	if colour == chess.White {
		return "White"
	}
	return "Black"
}
