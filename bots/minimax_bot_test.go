package bots

import (
	"context"
	"math"
	"testing"

	"github.com/notnil/chess"
)

func searchConfig(depth int) BotConfig {
	cfg := DefaultBotConfig()
	cfg.SearchDepth = depth
	cfg.UseOpeningBook = false
	cfg.RandomizationEnabled = false
	cfg.EvaluationNoise = 0
	return cfg
}

func TestSearchFindsMateInOne(t *testing.T) {
	game := gameFromFEN(t, "r1bqkbnr/ppp2ppp/2np4/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 4")
	bot := NewMinimaxBot(searchConfig(3))

	result, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Move == nil {
		t.Fatalf("expected a move")
	}

	next := game.Clone()
	if err := next.Move(result.Move); err != nil {
		t.Fatalf("apply %s: %v", result.Move, err)
	}
	if next.Outcome() != chess.WhiteWon {
		t.Fatalf("expected mate in one, got %s after %s", next.Outcome(), result.Move)
	}
	if result.Score != CheckmateScore {
		t.Fatalf("expected the mate score, got %f", result.Score)
	}
}

func TestSearchTakesHangingQueen(t *testing.T) {
	game := gameFromFEN(t, "4k3/8/8/3q4/8/4N3/6P1/4K3 w - - 0 1")
	bot := NewMinimaxBot(searchConfig(2))

	result, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Move == nil || result.Move.S1() != chess.E3 || result.Move.S2() != chess.D5 {
		t.Fatalf("expected Nxd5, got %s", result.Move)
	}
}

func TestSearchDeterministicWithoutRandomization(t *testing.T) {
	first := NewMinimaxBot(searchConfig(2))
	second := NewMinimaxBot(searchConfig(2))

	a, err := first.Search(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	b, err := second.Search(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if a.Move.String() != b.Move.String() {
		t.Fatalf("expected identical moves, got %s and %s", a.Move, b.Move)
	}
	if a.Score != b.Score {
		t.Fatalf("expected identical scores, got %f and %f", a.Score, b.Score)
	}
}

func plainMinimax(t *testing.T, game *chess.Game, depth int, maximizing bool, perspective chess.Color) float64 {
	t.Helper()
	e := PhaseEvaluator{}
	if depth == 0 || game.Outcome() != chess.NoOutcome {
		return e.Evaluate(game, perspective)
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return e.Evaluate(game, perspective)
	}
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, move := range moves {
		next := game.Clone()
		if err := next.Move(move); err != nil {
			t.Fatalf("apply %s: %v", move, err)
		}
		score := plainMinimax(t, next, depth-1, !maximizing, perspective)
		if maximizing {
			best = math.Max(best, score)
		} else {
			best = math.Min(best, score)
		}
	}
	return best
}

func TestSearchMatchesPlainMinimax(t *testing.T) {
	const depth = 2
	game := gameFromFEN(t, "4k3/8/8/3q4/8/4N3/6P1/4K3 w - - 0 1")
	perspective := game.Position().Turn()

	want := math.Inf(-1)
	for _, move := range game.ValidMoves() {
		next := game.Clone()
		if err := next.Move(move); err != nil {
			t.Fatalf("apply %s: %v", move, err)
		}
		want = math.Max(want, plainMinimax(t, next, depth-1, false, perspective))
	}

	bot := NewMinimaxBot(searchConfig(depth))
	result, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Score != want {
		t.Fatalf("pruned search scored %f, plain minimax %f", result.Score, want)
	}
}

func TestSearchTerminalPosition(t *testing.T) {
	game := chess.NewGame()
	for _, san := range []string{"f3", "e5", "g4", "Qh4#"} {
		mustMove(t, game, san)
	}

	bot := NewMinimaxBot(searchConfig(3))
	result, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("expected no error on a finished game, got %v", err)
	}
	if result.Move != nil {
		t.Fatalf("expected no move on a finished game, got %s", result.Move)
	}
	if result.Score != -CheckmateScore {
		t.Fatalf("expected %f for the mated side, got %f", -CheckmateScore, result.Score)
	}
}

func TestSearchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bot := NewMinimaxBot(searchConfig(3))
	if _, err := bot.Search(ctx, chess.NewGame()); err == nil {
		t.Fatalf("expected an error when cancelled before the first move")
	}
}

func TestSearchUsesBook(t *testing.T) {
	bot := NewMinimaxBot(DefaultBotConfig())
	game := chess.NewGame()

	result, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !bot.LastStats().BookHit {
		t.Fatalf("expected a book hit on the starting position")
	}

	san := chess.AlgebraicNotation{}.Encode(game.Position(), result.Move)
	switch san {
	case "e4", "d4", "Nf3", "c4":
	default:
		t.Fatalf("book produced %q, not a known first move", san)
	}
}

func TestSearchDoesNotModifyGame(t *testing.T) {
	game := gameFromFEN(t, "4k3/8/8/3q4/8/4N3/6P1/4K3 w - - 0 1")
	before := game.FEN()

	bot := NewMinimaxBot(searchConfig(2))
	if _, err := bot.Search(context.Background(), game); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if after := game.FEN(); after != before {
		t.Fatalf("search modified the game: %s became %s", before, after)
	}
	if game.Outcome() != chess.NoOutcome {
		t.Fatalf("search finished the caller's game: %s", game.Outcome())
	}
}

func TestSearchRandomizationVariesMoves(t *testing.T) {
	cfg := searchConfig(1)
	cfg.RandomizationEnabled = true
	cfg.SimilarMoveThreshold = 1000
	bot := NewMinimaxBot(cfg)

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		result, err := bot.Search(context.Background(), chess.NewGame())
		if err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
		seen[result.Move.String()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied moves with a wide threshold, got %v", seen)
	}
}

func TestSearchStats(t *testing.T) {
	bot := NewMinimaxBot(searchConfig(2))
	if _, err := bot.Search(context.Background(), chess.NewGame()); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	stats := bot.LastStats()
	if stats.Nodes == 0 {
		t.Fatalf("expected visited nodes to be counted")
	}
	if stats.CacheStores == 0 {
		t.Fatalf("expected cache stores to be counted")
	}
	if stats.Elapsed <= 0 {
		t.Fatalf("expected a positive elapsed time, got %s", stats.Elapsed)
	}
}

func TestSearchReusesCacheAcrossCalls(t *testing.T) {
	bot := NewMinimaxBot(searchConfig(3))
	game := gameFromFEN(t, "4k3/8/8/3q4/8/4N3/6P1/4K3 w - - 0 1")

	first, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := bot.Search(context.Background(), game)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if bot.LastStats().CacheHits == 0 {
		t.Fatalf("expected cache hits on the second identical search")
	}
	if first.Move.String() != second.Move.String() {
		t.Fatalf("cache changed the chosen move: %s then %s", first.Move, second.Move)
	}
}
