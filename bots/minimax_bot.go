package bots

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/notnil/chess"
)

// SearchStats are counters from one completed Search call.
type SearchStats struct {
	Nodes       int
	CacheHits   int
	CacheStores int
	Cutoffs     int
	BookHit     bool
	Elapsed     time.Duration
}

// SearchResult is the outcome of one search. Move is nil without error when
// the position is already terminal. Score is from the mover's perspective.
type SearchResult struct {
	Move  *chess.Move
	Score float64
	Stats SearchStats
}

// MinimaxBot explores the move tree with minimax and alpha-beta pruning,
// consulting the opening book before searching. The transposition cache and
// configuration live for the bot's lifetime and are reused across requests;
// one search runs at a time.
type MinimaxBot struct {
	config    BotConfig
	evaluator PositionEvaluator
	cache     TranspositionCache
	book      *OpeningBook
	rng       *rand.Rand
	stats     SearchStats
}

func NewMinimaxBot(config BotConfig) *MinimaxBot {
	return &MinimaxBot{
		config:    config,
		evaluator: PhaseEvaluator{},
		cache:     NewTranspositionCache(DefaultCacheMaxEntries),
		book:      NewOpeningBook(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.config.SearchDepth)
}

func (b *MinimaxBot) Config() BotConfig {
	return b.config
}

// Configure merges a partial override into the bot's configuration.
func (b *MinimaxBot) Configure(patch BotConfigPatch) error {
	merged := b.config.Merge(patch)
	if err := merged.Validate(); err != nil {
		return err
	}
	b.config = merged
	return nil
}

// LastStats returns counters from the most recent Search call.
func (b *MinimaxBot) LastStats() SearchStats {
	return b.stats
}

func (b *MinimaxBot) BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error) {
	result, err := b.Search(ctx, game)
	if err != nil {
		return nil, err
	}
	return result.Move, nil
}

// Search picks a move for the side to move. The caller's game is never
// modified; all exploration happens on clones. When the context is
// cancelled mid-search the best move found so far is returned.
func (b *MinimaxBot) Search(ctx context.Context, game *chess.Game) (SearchResult, error) {
	if game == nil {
		return SearchResult{}, errors.New("nil game")
	}

	start := time.Now()
	b.stats = SearchStats{}
	perspective := game.Position().Turn()

	if game.Outcome() != chess.NoOutcome {
		b.stats.Elapsed = time.Since(start)
		return SearchResult{Score: b.evaluator.Evaluate(game, perspective), Stats: b.stats}, nil
	}

	if b.config.UseOpeningBook && b.book.ShouldUse(game, b.config.OpeningBookDepth) {
		if move, ok := b.bookMove(game); ok {
			b.stats.BookHit = true
			b.stats.Elapsed = time.Since(start)
			return SearchResult{Move: move, Stats: b.stats}, nil
		}
	}

	validMoves := game.ValidMoves()
	if len(validMoves) == 0 {
		b.stats.Elapsed = time.Since(start)
		return SearchResult{Score: b.evaluator.Evaluate(game, perspective), Stats: b.stats}, nil
	}
	orderMoves(game.Position(), validMoves)

	depth := b.config.SearchDepth
	best := scoredMove{score: -math.MaxFloat64}
	alpha, beta := -math.MaxFloat64, math.MaxFloat64
	var rootScores []scoredMove

	for _, move := range validMoves {
		if ctx.Err() != nil {
			break
		}
		newGame := game.Clone()
		if err := newGame.Move(move); err != nil {
			return SearchResult{}, fmt.Errorf("apply move %s: %w", move, err)
		}

		var current scoredMove
		var err error
		if b.config.RandomizationEnabled {
			// Full window per root move keeps every root score exact so
			// near-equal alternatives can be compared fairly.
			current, err = b.minimax(ctx, newGame, depth-1, -math.MaxFloat64, math.MaxFloat64, false, perspective)
		} else {
			current, err = b.minimax(ctx, newGame, depth-1, alpha, beta, false, perspective)
		}
		if err != nil {
			return SearchResult{}, err
		}

		if current.score > best.score {
			best = scoredMove{move, current.score}
		}
		if b.config.RandomizationEnabled {
			rootScores = append(rootScores, scoredMove{move, current.score})
		} else {
			alpha = math.Max(alpha, best.score)
		}
	}

	if best.move == nil {
		// Cancelled before any line completed.
		return SearchResult{}, ctx.Err()
	}

	chosen := best
	if b.config.RandomizationEnabled {
		chosen = b.pickSimilar(rootScores, best.score)
	}

	b.cache.Store(signature(game.Position()), depth, chosen.score, chosen.move)
	b.stats.CacheStores++
	b.stats.Elapsed = time.Since(start)
	return SearchResult{Move: chosen.move, Score: chosen.score, Stats: b.stats}, nil
}

// scoredMove pairs a move with the score its line produced.
type scoredMove struct {
	move  *chess.Move
	score float64
}

func (b *MinimaxBot) minimax(ctx context.Context, game *chess.Game, depth int, alpha, beta float64, maximizing bool, perspective chess.Color) (scoredMove, error) {
	b.stats.Nodes++

	sig := signature(game.Position())
	if entry, ok := b.cache.Probe(sig, depth); ok {
		b.stats.CacheHits++
		return scoredMove{entry.Move, entry.Score}, nil
	}

	if depth == 0 || game.Outcome() != chess.NoOutcome {
		return scoredMove{nil, b.leafScore(game, perspective)}, nil
	}

	validMoves := game.ValidMoves()
	if len(validMoves) == 0 {
		return scoredMove{nil, b.leafScore(game, perspective)}, nil
	}
	orderMoves(game.Position(), validMoves)

	var bestMove scoredMove
	if maximizing {
		bestMove.score = -math.MaxFloat64
		for _, move := range validMoves {
			if ctx.Err() != nil {
				break
			}
			newGame := game.Clone()
			if err := newGame.Move(move); err != nil {
				return scoredMove{}, fmt.Errorf("apply move %s: %w", move, err)
			}
			current, err := b.minimax(ctx, newGame, depth-1, alpha, beta, false, perspective)
			if err != nil {
				return scoredMove{}, err
			}
			if current.score > bestMove.score {
				bestMove = scoredMove{move, current.score}
			}
			alpha = math.Max(alpha, bestMove.score)
			if beta <= alpha {
				b.stats.Cutoffs++
				break
			}
		}
	} else {
		bestMove.score = math.MaxFloat64
		for _, move := range validMoves {
			if ctx.Err() != nil {
				break
			}
			newGame := game.Clone()
			if err := newGame.Move(move); err != nil {
				return scoredMove{}, fmt.Errorf("apply move %s: %w", move, err)
			}
			current, err := b.minimax(ctx, newGame, depth-1, alpha, beta, true, perspective)
			if err != nil {
				return scoredMove{}, err
			}
			if current.score < bestMove.score {
				bestMove = scoredMove{move, current.score}
			}
			beta = math.Min(beta, bestMove.score)
			if beta <= alpha {
				b.stats.Cutoffs++
				break
			}
		}
	}

	if bestMove.move == nil {
		// Cancelled before any line completed; fall back to a static score.
		return scoredMove{nil, b.leafScore(game, perspective)}, nil
	}

	b.cache.Store(sig, depth, bestMove.score, bestMove.move)
	b.stats.CacheStores++
	return bestMove, nil
}

// leafScore evaluates a leaf, adding uniform noise when randomization is on.
func (b *MinimaxBot) leafScore(game *chess.Game, perspective chess.Color) float64 {
	score := b.evaluator.Evaluate(game, perspective)
	if b.config.RandomizationEnabled && b.config.EvaluationNoise > 0 {
		score += (b.rng.Float64()*2 - 1) * b.config.EvaluationNoise
	}
	return score
}

// pickSimilar draws uniformly among root moves within the similar-move
// threshold of the best score.
func (b *MinimaxBot) pickSimilar(scores []scoredMove, best float64) scoredMove {
	var candidates []scoredMove
	for _, s := range scores {
		if best-s.score <= b.config.SimilarMoveThreshold {
			candidates = append(candidates, s)
		}
	}
	return candidates[b.rng.Intn(len(candidates))]
}

// bookMove resolves a book reply into a legal move by encoding every legal
// move and matching the notation. Failures fall through to search.
func (b *MinimaxBot) bookMove(game *chess.Game) (*chess.Move, bool) {
	san, ok := b.book.Reply(game, b.rng)
	if !ok {
		return nil, false
	}
	pos := game.Position()
	notation := chess.AlgebraicNotation{}
	for _, move := range game.ValidMoves() {
		if notation.Encode(pos, move) == san {
			return move, true
		}
	}
	return nil, false
}

// signature is the cache key: the position's canonical FEN serialization.
func signature(pos *chess.Position) string {
	return pos.String()
}
