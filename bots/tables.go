package bots

import "github.com/notnil/chess"

// Piece placement tables in pawn units, oriented from White's viewpoint with
// a1 at index 0. Black lookups mirror the rank so both colors share one table.

var pawnTable = [64]float64{
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	0.05, 0.10, 0.10, -0.20, -0.20, 0.10, 0.10, 0.05,
	0.05, -0.05, -0.10, 0.00, 0.00, -0.10, -0.05, 0.05,
	0.00, 0.00, 0.00, 0.20, 0.20, 0.00, 0.00, 0.00,
	0.05, 0.05, 0.10, 0.25, 0.25, 0.10, 0.05, 0.05,
	0.10, 0.10, 0.20, 0.30, 0.30, 0.20, 0.10, 0.10,
	0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
}

var knightTable = [64]float64{
	-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
	-0.40, -0.20, 0.00, 0.05, 0.05, 0.00, -0.20, -0.40,
	-0.30, 0.05, 0.10, 0.15, 0.15, 0.10, 0.05, -0.30,
	-0.30, 0.00, 0.15, 0.20, 0.20, 0.15, 0.00, -0.30,
	-0.30, 0.05, 0.15, 0.20, 0.20, 0.15, 0.05, -0.30,
	-0.30, 0.00, 0.10, 0.15, 0.15, 0.10, 0.00, -0.30,
	-0.40, -0.20, 0.00, 0.00, 0.00, 0.00, -0.20, -0.40,
	-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
}

var bishopTable = [64]float64{
	-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
	-0.10, 0.05, 0.00, 0.00, 0.00, 0.00, 0.05, -0.10,
	-0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, -0.10,
	-0.10, 0.00, 0.10, 0.10, 0.10, 0.10, 0.00, -0.10,
	-0.10, 0.05, 0.05, 0.10, 0.10, 0.05, 0.05, -0.10,
	-0.10, 0.00, 0.05, 0.10, 0.10, 0.05, 0.00, -0.10,
	-0.10, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
}

var rookTable = [64]float64{
	0.00, 0.00, 0.00, 0.05, 0.05, 0.00, 0.00, 0.00,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	0.05, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.05,
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
}

var queenTable = [64]float64{
	-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
	-0.10, 0.00, 0.05, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0.00, -0.10,
	0.00, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.05,
	-0.05, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.05,
	-0.10, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.10,
	-0.10, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
}

var kingTable = [64]float64{
	0.20, 0.30, 0.10, 0.00, 0.00, 0.10, 0.30, 0.20,
	0.20, 0.20, 0.00, 0.00, 0.00, 0.00, 0.20, 0.20,
	-0.10, -0.20, -0.20, -0.20, -0.20, -0.20, -0.20, -0.10,
	-0.20, -0.30, -0.30, -0.40, -0.40, -0.30, -0.30, -0.20,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
}

// placementValue returns the table value for a piece on sq. Black mirrors the
// rank so the shared tables read from its side of the board.
func placementValue(pt chess.PieceType, sq chess.Square, color chess.Color) float64 {
	idx := int(sq)
	if color == chess.Black {
		idx = (7-idx/8)*8 + idx%8
	}
	switch pt {
	case chess.Pawn:
		return pawnTable[idx]
	case chess.Knight:
		return knightTable[idx]
	case chess.Bishop:
		return bishopTable[idx]
	case chess.Rook:
		return rookTable[idx]
	case chess.Queen:
		return queenTable[idx]
	case chess.King:
		return kingTable[idx]
	}
	return 0
}
