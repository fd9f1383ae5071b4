package bots

import (
	"sort"

	"github.com/notnil/chess"
)

// orderValues rank piece types for capture ordering.
var orderValues = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   20,
}

const (
	captureOrderBase = 100
	centerOrderBonus = 10
)

// moveOrderKey scores captures by victim value scaled above the attacker's
// and adds a bonus for moves into the four central squares.
func moveOrderKey(pos *chess.Position, move *chess.Move) int {
	key := 0
	if move.HasTag(chess.Capture) {
		victimValue := orderValues[pos.Board().Piece(move.S2()).Type()]
		if move.HasTag(chess.EnPassant) {
			victimValue = orderValues[chess.Pawn]
		}
		attackerValue := orderValues[pos.Board().Piece(move.S1()).Type()]
		key += victimValue*10 - attackerValue + captureOrderBase
	}
	if isCenterSquare(move.S2()) {
		key += centerOrderBonus
	}
	return key
}

// orderMoves sorts descending by order key so promising lines are searched
// first. Stable, so equal keys keep the generator's order and repeated runs
// stay reproducible.
func orderMoves(pos *chess.Position, moves []*chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveOrderKey(pos, moves[i]) > moveOrderKey(pos, moves[j])
	})
}
