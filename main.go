package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/menu"
	"treasurehunt/pkg/game/messages"
	"treasurehunt/pkg/game/renderer"
	"treasurehunt/pkg/game/renderer/tui"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/server"
	"treasurehunt/pkg/game/state"
)

// errQuit is returned when the player leaves from the start menu
var errQuit = errors.New("quit")

// config holds the command-line settings of the host
type config struct {
	difficulty string
	visibility string
	seed       int64
	level      int
	compact    bool
	serve      bool
	addr       string
}

// envOr returns the environment variable key, or def when it is unset
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	var cfg config
	flag.StringVar(&cfg.difficulty, "difficulty", "", "difficulty preset: easy, normal or hard (empty opens the start menu)")
	flag.Int64Var(&cfg.seed, "seed", 0, "board seed (0 picks one from the clock)")
	flag.IntVar(&cfg.level, "level", 1, "starting level (for developer testing)")
	flag.BoolVar(&cfg.compact, "compact", false, "play on the compact 5x5 board")
	flag.StringVar(&cfg.visibility, "visibility", "", "field-of-view shape: square, plus or diamond (empty keeps the difficulty's)")
	store := flag.String("store", envOr("TREASURE_STORE", leaderboard.BackendJSON), "leaderboard backend: json, sqlite, postgres or memory")
	dbFile := flag.String("db", os.Getenv("TREASURE_DB_FILE"), "leaderboard file for the json and sqlite backends")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL connection string for the postgres backend")
	flag.BoolVar(&cfg.serve, "serve", false, "serve the HTTP API instead of the terminal game")
	flag.StringVar(&cfg.addr, "addr", envOr("TREASURE_ADDR", ":8080"), "HTTP listen address")
	flag.Parse()

	messages.Init()

	st, err := leaderboard.Open(*store, *dbFile, *dsn)
	if err != nil {
		log.Fatalf("open leaderboard: %v", err)
	}
	board := leaderboard.NewBoard(st, log.New(os.Stderr, "[leaderboard] ", log.LstdFlags))

	if err := withBoard(board, func(b *leaderboard.Board) error { return start(cfg, b) }); err != nil {
		log.Fatal(err)
	}
}

// withBoard runs fn and closes board afterwards, whatever fn returned
func withBoard(board *leaderboard.Board, fn func(*leaderboard.Board) error) error {
	err := fn(board)
	if cerr := board.Close(); cerr != nil {
		log.Printf("close leaderboard: %v", cerr)
	}
	return err
}

// start runs the HTTP API or the terminal game until it stops
func start(cfg config, board *leaderboard.Board) error {
	if cfg.serve {
		if err := server.NewServer(board, nil).ListenAndServe(cfg.addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
		return nil
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()

	ctx := context.Background()
	s, err := newSession(ctx, cfg, board)
	if errors.Is(err, errQuit) {
		renderer.ShowMessage(gotext.Get("GOODBYE"))
		return nil
	}
	if err != nil {
		return err
	}
	return run(ctx, s, board)
}

// newSession builds the first game from the flags, asking through the start menu
// when no difficulty was given
func newSession(ctx context.Context, cfg config, board *leaderboard.Board) (*state.GameSession, error) {
	var (
		d  rules.Difficulty
		ok bool
	)
	if cfg.difficulty == "" {
		if d, ok = menu.RunMainMenu(ctx, board); !ok {
			return nil, errQuit
		}
	} else if d, ok = rules.ParseDifficulty(cfg.difficulty); !ok {
		return nil, fmt.Errorf("unknown difficulty %q", cfg.difficulty)
	}

	opts := gameplay.Options{
		Difficulty: d,
		Seed:       cfg.seed,
		Level:      cfg.level,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if cfg.compact {
		opts.Rows, opts.Cols = rules.CompactGridSize, rules.CompactGridSize
	}
	if cfg.visibility != "" {
		shape, err := world.ParseShape(cfg.visibility)
		if err != nil {
			return nil, err
		}
		opts.Shape = &shape
	}

	s, err := gameplay.NewSession(opts)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	return s, nil
}

// run is the terminal game loop: draw a frame, read one command, apply it
func run(ctx context.Context, s *state.GameSession, board *leaderboard.Board) error {
	var reply gameplay.Reply
	for {
		if _, err := gameplay.Poll(s); err != nil {
			return fmt.Errorf("new board: %w", err)
		}

		renderer.Clear()
		if reply.ShowScores {
			renderer.ShowScores(reply.Scores)
			renderer.ShowMessage("")
		}
		renderer.RenderFrame(gameplay.TakeSnapshot(s))

		var err error
		reply, err = gameplay.ProcessIntent(ctx, s, board, renderer.GetInput())
		if err != nil {
			return fmt.Errorf("new board: %w", err)
		}
		if reply.Quit {
			renderer.ShowMessage(gotext.Get("GOODBYE"))
			return nil
		}
	}
}
