package bots

import "fmt"

// Default search and book parameters. Depths count half-moves (ply),
// score-like values are in pawn units.
const (
	DefaultSearchDepth          = 3
	DefaultOpeningBookDepth     = 10
	DefaultEvaluationNoise      = 0.1
	DefaultSimilarMoveThreshold = 0.3
)

// BotConfig controls a single bot instance.
type BotConfig struct {
	SearchDepth          int     `json:"searchDepth"`
	UseOpeningBook       bool    `json:"useOpeningBook"`
	OpeningBookDepth     int     `json:"openingBookDepth"`
	RandomizationEnabled bool    `json:"randomizationEnabled"`
	EvaluationNoise      float64 `json:"evaluationNoise"`
	SimilarMoveThreshold float64 `json:"similarMoveThreshold"`
}

func DefaultBotConfig() BotConfig {
	return BotConfig{
		SearchDepth:          DefaultSearchDepth,
		UseOpeningBook:       true,
		OpeningBookDepth:     DefaultOpeningBookDepth,
		RandomizationEnabled: true,
		EvaluationNoise:      DefaultEvaluationNoise,
		SimilarMoveThreshold: DefaultSimilarMoveThreshold,
	}
}

// BotConfigPatch is a partial override of BotConfig. Nil fields keep the
// current value.
type BotConfigPatch struct {
	SearchDepth          *int     `json:"searchDepth,omitempty"`
	UseOpeningBook       *bool    `json:"useOpeningBook,omitempty"`
	OpeningBookDepth     *int     `json:"openingBookDepth,omitempty"`
	RandomizationEnabled *bool    `json:"randomizationEnabled,omitempty"`
	EvaluationNoise      *float64 `json:"evaluationNoise,omitempty"`
	SimilarMoveThreshold *float64 `json:"similarMoveThreshold,omitempty"`
}

// Merge applies every set field of the patch and returns the merged config.
func (c BotConfig) Merge(p BotConfigPatch) BotConfig {
	if p.SearchDepth != nil {
		c.SearchDepth = *p.SearchDepth
	}
	if p.UseOpeningBook != nil {
		c.UseOpeningBook = *p.UseOpeningBook
	}
	if p.OpeningBookDepth != nil {
		c.OpeningBookDepth = *p.OpeningBookDepth
	}
	if p.RandomizationEnabled != nil {
		c.RandomizationEnabled = *p.RandomizationEnabled
	}
	if p.EvaluationNoise != nil {
		c.EvaluationNoise = *p.EvaluationNoise
	}
	if p.SimilarMoveThreshold != nil {
		c.SimilarMoveThreshold = *p.SimilarMoveThreshold
	}
	return c
}

func (c BotConfig) Validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search depth must be at least 1, got %d", c.SearchDepth)
	}
	if c.OpeningBookDepth < 0 {
		return fmt.Errorf("opening book depth must not be negative, got %d", c.OpeningBookDepth)
	}
	if c.EvaluationNoise < 0 {
		return fmt.Errorf("evaluation noise must not be negative, got %g", c.EvaluationNoise)
	}
	if c.SimilarMoveThreshold < 0 {
		return fmt.Errorf("similar move threshold must not be negative, got %g", c.SimilarMoveThreshold)
	}
	return nil
}
