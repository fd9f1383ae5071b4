package bots

import (
	"github.com/notnil/chess"
)

// PositionEvaluator defines the interface for position evaluation.
type PositionEvaluator interface {
	Evaluate(game *chess.Game, perspective chess.Color) float64
}

// CheckmateScore is the absolute score of a decided game, in pawn units.
const CheckmateScore = 1000.0

const (
	doubledPawnPenalty      = 0.5
	connectedPawnBonus      = 0.1
	kingHomeRankBonus       = 0.5
	kingExposedPenalty      = 0.5
	undevelopedMinorPenalty = 0.3
	centerOccupancyBonus    = 0.2
)

var pieceValues = map[chess.PieceType]float64{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// GamePhase is derived from the non-king material left on the board.
type GamePhase int

const (
	PhaseOpening GamePhase = iota
	PhaseMiddlegame
	PhaseEndgame
)

func phaseOf(totalMaterial float64) GamePhase {
	switch {
	case totalMaterial > 30:
		return PhaseOpening
	case totalMaterial >= 15:
		return PhaseMiddlegame
	default:
		return PhaseEndgame
	}
}

// phaseWeights scale the five evaluation terms. Material stays at 1.0 in
// every phase; the opening pushes development, the endgame drops it and
// leans on structure and king safety instead.
type phaseWeights struct {
	material      float64
	positional    float64
	kingSafety    float64
	pawnStructure float64
	development   float64
}

var (
	openingWeights    = phaseWeights{1.0, 1.0, 0.5, 0.5, 1.5}
	middlegameWeights = phaseWeights{1.0, 1.0, 1.0, 1.0, 0.5}
	endgameWeights    = phaseWeights{1.0, 1.0, 1.2, 1.5, 0.0}
)

func (p GamePhase) weights() phaseWeights {
	switch p {
	case PhaseOpening:
		return openingWeights
	case PhaseEndgame:
		return endgameWeights
	}
	return middlegameWeights
}

// PhaseEvaluator scores positions with material, placement, king safety,
// pawn structure and development terms, weighted by game phase. It is a pure
// function of the position and perspective; noise belongs to the search.
type PhaseEvaluator struct{}

func (e PhaseEvaluator) Evaluate(game *chess.Game, perspective chess.Color) float64 {
	if outcome := game.Outcome(); outcome != chess.NoOutcome {
		if outcome == chess.Draw {
			return 0
		}
		if game.Method() == chess.Checkmate {
			// The side to move is the one mated.
			if game.Position().Turn() == perspective {
				return -CheckmateScore
			}
			return CheckmateScore
		}
		if (outcome == chess.WhiteWon) == (perspective == chess.White) {
			return CheckmateScore
		}
		return -CheckmateScore
	}

	// Games rebuilt from a FEN of a finished position carry no outcome, so
	// the board status has to be consulted directly.
	switch game.Position().Status() {
	case chess.Checkmate:
		if game.Position().Turn() == perspective {
			return -CheckmateScore
		}
		return CheckmateScore
	case chess.Stalemate:
		return 0
	}

	f := e.collect(game, perspective)
	w := phaseOf(f.totalMaterial).weights()

	return f.material*w.material +
		f.placement*w.positional +
		(f.ownKingSafety-f.oppKingSafety)*w.kingSafety +
		e.pawnStructure(f)*w.pawnStructure +
		f.development*w.development
}

// boardFeatures holds everything one pass over the squares produces. Signed
// values are positive toward the evaluated perspective.
type boardFeatures struct {
	material      float64
	placement     float64
	development   float64
	totalMaterial float64
	ownKingSafety float64
	oppKingSafety float64
	ownPawnFiles  [8]int
	oppPawnFiles  [8]int
}

func (e PhaseEvaluator) collect(game *chess.Game, perspective chess.Color) boardFeatures {
	var f boardFeatures
	board := game.Position().Board()

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}

		own := piece.Color() == perspective
		sign := 1.0
		if !own {
			sign = -1.0
		}

		value := pieceValues[piece.Type()]
		if piece.Type() != chess.King {
			f.totalMaterial += value
		}
		f.material += sign * value
		f.placement += sign * placementValue(piece.Type(), sq, piece.Color())

		switch piece.Type() {
		case chess.Pawn:
			if own {
				f.ownPawnFiles[int(sq.File())]++
			} else {
				f.oppPawnFiles[int(sq.File())]++
			}
		case chess.King:
			if own {
				f.ownKingSafety = rankSafety(sq, piece.Color())
			} else {
				f.oppKingSafety = rankSafety(sq, piece.Color())
			}
		case chess.Knight, chess.Bishop:
			if onBackRank(sq, piece.Color()) {
				f.development -= sign * undevelopedMinorPenalty
			}
		}

		if isCenterSquare(sq) {
			f.development += sign * centerOccupancyBonus
		}
	}

	return f
}

// pawnStructure penalizes doubled pawns and rewards pawns on adjacent files,
// own side minus opponent.
func (e PhaseEvaluator) pawnStructure(f boardFeatures) float64 {
	return pawnFileScore(f.ownPawnFiles) - pawnFileScore(f.oppPawnFiles)
}

func pawnFileScore(files [8]int) float64 {
	var score float64
	for file, count := range files {
		if count > 1 {
			score -= doubledPawnPenalty * float64(count-1)
		}
		if file < 7 && count > 0 && files[file+1] > 0 {
			score += connectedPawnBonus
		}
	}
	return score
}

// rankSafety is the coarse rank-only king heuristic: home ranks are safe,
// past the midline is exposed, in between is neutral.
func rankSafety(sq chess.Square, color chess.Color) float64 {
	rank := int(sq.Rank())
	if color == chess.Black {
		rank = 7 - rank
	}
	switch {
	case rank <= 1:
		return kingHomeRankBonus
	case rank >= 4:
		return -kingExposedPenalty
	}
	return 0
}

func onBackRank(sq chess.Square, color chess.Color) bool {
	if color == chess.White {
		return sq.Rank() == chess.Rank1
	}
	return sq.Rank() == chess.Rank8
}

func isCenterSquare(sq chess.Square) bool {
	switch sq {
	case chess.D4, chess.E4, chess.D5, chess.E5:
		return true
	}
	return false
}
