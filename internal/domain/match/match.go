package match

import (
	"time"

	"github.com/lcasviana/chess/bots"
	"github.com/lcasviana/chess/worker"
)

const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// Match is a single human versus engine game. Moves holds the full
// history in algebraic notation and is the authoritative record; FEN
// and PGN are derived from it on every update.
type Match struct {
	ID          string               `json:"id" bson:"id"`
	PlayerColor string               `json:"player_color" bson:"player_color"`
	BotName     string               `json:"bot_name" bson:"bot_name"`
	FEN         string               `json:"fen" bson:"fen"`
	PGN         string               `json:"pgn" bson:"pgn"`
	Moves       []string             `json:"moves" bson:"moves"`
	Status      string               `json:"status" bson:"status"`
	Result      string               `json:"result,omitempty" bson:"result,omitempty"`
	Reason      string               `json:"reason,omitempty" bson:"reason,omitempty"`
	Config      *bots.BotConfigPatch `json:"config,omitempty" bson:"config,omitempty"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	FinishedAt  *time.Time           `json:"finished_at,omitempty" bson:"finished_at,omitempty"`
}

type CreateRequest struct {
	PlayerColor string               `json:"player_color"`
	Config      *bots.BotConfigPatch `json:"config,omitempty"`
}

type CreateResponse struct {
	Match   *Match              `json:"match"`
	BotMove *worker.MovePayload `json:"bot_move,omitempty"`
}

// MoveRequest carries one player move, in algebraic or coordinate
// notation.
type MoveRequest struct {
	Move string `json:"move"`
}

type MoveResponse struct {
	Match   *Match              `json:"match"`
	BotMove *worker.MovePayload `json:"bot_move,omitempty"`
	Score   float64             `json:"score"`
}
