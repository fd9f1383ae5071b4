package bots

// mainLines is the built-in opening table. Keys are comma-joined short
// algebraic move histories; weights lean toward the statistically common
// continuations. Lines stop where play is better left to the search.
var mainLines = map[string]BookEntry{
	"": {
		Name: "Starting Position",
		Moves: []WeightedMove{
			{"e4", 40}, {"d4", 35}, {"Nf3", 15}, {"c4", 10},
		},
	},

	// 1. e4
	"e4": {
		Name: "King's Pawn Opening",
		Moves: []WeightedMove{
			{"c5", 35}, {"e5", 30}, {"e6", 15}, {"c6", 10}, {"d6", 5}, {"g6", 5},
		},
	},
	"e4,e5": {
		Name: "Open Game",
		Moves: []WeightedMove{
			{"Nf3", 70}, {"Nc3", 10}, {"Bc4", 10}, {"f4", 10},
		},
	},
	"e4,e5,Nf3": {
		Name: "Open Game",
		Moves: []WeightedMove{
			{"Nc6", 70}, {"Nf6", 20}, {"d6", 10},
		},
	},
	"e4,e5,Nf3,Nc6": {
		Name: "Open Game",
		Moves: []WeightedMove{
			{"Bb5", 40}, {"Bc4", 35}, {"d4", 15}, {"Nc3", 10},
		},
	},
	"e4,e5,Nf3,Nc6,Bb5": {
		Name: "Ruy Lopez",
		Moves: []WeightedMove{
			{"a6", 60}, {"Nf6", 25}, {"d6", 15},
		},
	},
	"e4,e5,Nf3,Nc6,Bb5,a6": {
		Name:      "Ruy Lopez",
		Variation: "Morphy Defense",
		Moves: []WeightedMove{
			{"Ba4", 70}, {"Bxc6", 30},
		},
	},
	"e4,e5,Nf3,Nc6,Bb5,a6,Ba4": {
		Name:      "Ruy Lopez",
		Variation: "Morphy Defense",
		Moves: []WeightedMove{
			{"Nf6", 70}, {"d6", 20}, {"b5", 10},
		},
	},
	"e4,e5,Nf3,Nc6,Bb5,a6,Ba4,Nf6": {
		Name:      "Ruy Lopez",
		Variation: "Closed",
		Moves: []WeightedMove{
			{"O-O", 80}, {"d3", 20},
		},
	},
	"e4,e5,Nf3,Nc6,Bc4": {
		Name: "Italian Game",
		Moves: []WeightedMove{
			{"Bc5", 50}, {"Nf6", 40}, {"Be7", 10},
		},
	},
	"e4,e5,Nf3,Nc6,Bc4,Bc5": {
		Name:      "Italian Game",
		Variation: "Giuoco Piano",
		Moves: []WeightedMove{
			{"c3", 50}, {"d3", 30}, {"b4", 10}, {"O-O", 10},
		},
	},
	"e4,e5,Nf3,Nc6,Bc4,Nf6": {
		Name:      "Italian Game",
		Variation: "Two Knights Defense",
		Moves: []WeightedMove{
			{"Ng5", 40}, {"d3", 40}, {"d4", 10}, {"Nc3", 10},
		},
	},
	"e4,c5": {
		Name: "Sicilian Defense",
		Moves: []WeightedMove{
			{"Nf3", 70}, {"Nc3", 20}, {"c3", 10},
		},
	},
	"e4,c5,Nf3": {
		Name: "Sicilian Defense",
		Moves: []WeightedMove{
			{"d6", 40}, {"Nc6", 35}, {"e6", 25},
		},
	},
	"e4,c5,Nf3,d6": {
		Name: "Sicilian Defense",
		Moves: []WeightedMove{
			{"d4", 90}, {"Bc4", 10},
		},
	},
	"e4,c5,Nf3,d6,d4": {
		Name:      "Sicilian Defense",
		Variation: "Open",
		Moves: []WeightedMove{
			{"cxd4", 90}, {"Nf6", 10},
		},
	},
	"e4,c5,Nf3,d6,d4,cxd4": {
		Name:      "Sicilian Defense",
		Variation: "Open",
		Moves: []WeightedMove{
			{"Nxd4", 95}, {"Qxd4", 5},
		},
	},
	"e4,c5,Nf3,d6,d4,cxd4,Nxd4": {
		Name:      "Sicilian Defense",
		Variation: "Open",
		Moves: []WeightedMove{
			{"Nf6", 85}, {"a6", 10}, {"e5", 5},
		},
	},
	"e4,c5,Nf3,d6,d4,cxd4,Nxd4,Nf6": {
		Name:      "Sicilian Defense",
		Variation: "Open",
		Moves: []WeightedMove{
			{"Nc3", 95}, {"f3", 5},
		},
	},
	"e4,c5,Nf3,d6,d4,cxd4,Nxd4,Nf6,Nc3": {
		Name:      "Sicilian Defense",
		Variation: "Open",
		Moves: []WeightedMove{
			{"a6", 50}, {"g6", 25}, {"Nc6", 15}, {"e6", 10},
		},
	},
	"e4,c5,Nf3,Nc6": {
		Name:      "Sicilian Defense",
		Variation: "Old Sicilian",
		Moves: []WeightedMove{
			{"d4", 60}, {"Bb5", 30}, {"Nc3", 10},
		},
	},
	"e4,c5,Nf3,e6": {
		Name:      "Sicilian Defense",
		Variation: "French Variation",
		Moves: []WeightedMove{
			{"d4", 70}, {"Nc3", 15}, {"d3", 15},
		},
	},
	"e4,e6": {
		Name: "French Defense",
		Moves: []WeightedMove{
			{"d4", 80}, {"Nc3", 10}, {"Nf3", 10},
		},
	},
	"e4,e6,d4": {
		Name: "French Defense",
		Moves: []WeightedMove{
			{"d5", 95}, {"c5", 5},
		},
	},
	"e4,e6,d4,d5": {
		Name: "French Defense",
		Moves: []WeightedMove{
			{"Nc3", 40}, {"Nd2", 30}, {"e5", 20}, {"exd5", 10},
		},
	},
	"e4,e6,d4,d5,Nc3": {
		Name:      "French Defense",
		Variation: "Main Line",
		Moves: []WeightedMove{
			{"Nf6", 50}, {"Bb4", 40}, {"dxe4", 10},
		},
	},
	"e4,e6,d4,d5,e5": {
		Name:      "French Defense",
		Variation: "Advance",
		Moves: []WeightedMove{
			{"c5", 90}, {"b6", 10},
		},
	},
	"e4,c6": {
		Name: "Caro-Kann Defense",
		Moves: []WeightedMove{
			{"d4", 80}, {"Nc3", 10}, {"Nf3", 10},
		},
	},
	"e4,c6,d4": {
		Name: "Caro-Kann Defense",
		Moves: []WeightedMove{
			{"d5", 95}, {"g6", 5},
		},
	},
	"e4,c6,d4,d5": {
		Name: "Caro-Kann Defense",
		Moves: []WeightedMove{
			{"Nc3", 40}, {"e5", 30}, {"exd5", 30},
		},
	},
	"e4,c6,d4,d5,Nc3": {
		Name:      "Caro-Kann Defense",
		Variation: "Classical",
		Moves: []WeightedMove{
			{"dxe4", 90}, {"g6", 10},
		},
	},
	"e4,c6,d4,d5,Nc3,dxe4": {
		Name:      "Caro-Kann Defense",
		Variation: "Classical",
		Moves: []WeightedMove{
			{"Nxe4", 100},
		},
	},
	"e4,c6,d4,d5,Nc3,dxe4,Nxe4": {
		Name:      "Caro-Kann Defense",
		Variation: "Classical",
		Moves: []WeightedMove{
			{"Bf5", 60}, {"Nd7", 25}, {"Nf6", 15},
		},
	},
	"e4,d6": {
		Name: "Pirc Defense",
		Moves: []WeightedMove{
			{"d4", 70}, {"Nf3", 30},
		},
	},
	"e4,g6": {
		Name: "Modern Defense",
		Moves: []WeightedMove{
			{"d4", 70}, {"Nc3", 20}, {"Nf3", 10},
		},
	},

	// 1. d4
	"d4": {
		Name: "Queen's Pawn Opening",
		Moves: []WeightedMove{
			{"d5", 40}, {"Nf6", 40}, {"e6", 10}, {"d6", 5}, {"f5", 5},
		},
	},
	"d4,d5": {
		Name: "Queen's Pawn Game",
		Moves: []WeightedMove{
			{"c4", 60}, {"Nf3", 30}, {"Bf4", 10},
		},
	},
	"d4,d5,Nf3": {
		Name: "Queen's Pawn Game",
		Moves: []WeightedMove{
			{"Nf6", 80}, {"e6", 10}, {"c5", 10},
		},
	},
	"d4,d5,Nf3,Nf6": {
		Name: "Queen's Pawn Game",
		Moves: []WeightedMove{
			{"Bf4", 40}, {"c4", 30}, {"e3", 30},
		},
	},
	"d4,d5,c4": {
		Name: "Queen's Gambit",
		Moves: []WeightedMove{
			{"e6", 40}, {"c6", 30}, {"dxc4", 20}, {"Nc6", 10},
		},
	},
	"d4,d5,c4,e6": {
		Name: "Queen's Gambit Declined",
		Moves: []WeightedMove{
			{"Nc3", 60}, {"Nf3", 40},
		},
	},
	"d4,d5,c4,e6,Nc3": {
		Name: "Queen's Gambit Declined",
		Moves: []WeightedMove{
			{"Nf6", 90}, {"Be7", 10},
		},
	},
	"d4,d5,c4,e6,Nc3,Nf6": {
		Name: "Queen's Gambit Declined",
		Moves: []WeightedMove{
			{"Bg5", 50}, {"Nf3", 30}, {"cxd5", 20},
		},
	},
	"d4,d5,c4,c6": {
		Name: "Slav Defense",
		Moves: []WeightedMove{
			{"Nf3", 50}, {"Nc3", 40}, {"cxd5", 10},
		},
	},
	"d4,d5,c4,c6,Nf3": {
		Name: "Slav Defense",
		Moves: []WeightedMove{
			{"Nf6", 90}, {"e6", 10},
		},
	},
	"d4,d5,c4,c6,Nf3,Nf6": {
		Name: "Slav Defense",
		Moves: []WeightedMove{
			{"Nc3", 70}, {"e3", 30},
		},
	},
	"d4,d5,c4,dxc4": {
		Name: "Queen's Gambit Accepted",
		Moves: []WeightedMove{
			{"Nf3", 60}, {"e4", 20}, {"e3", 20},
		},
	},
	"d4,Nf6": {
		Name: "Indian Defense",
		Moves: []WeightedMove{
			{"c4", 60}, {"Nf3", 35}, {"Bg5", 5},
		},
	},
	"d4,Nf6,c4": {
		Name: "Indian Defense",
		Moves: []WeightedMove{
			{"e6", 40}, {"g6", 40}, {"c5", 10}, {"d6", 10},
		},
	},
	"d4,Nf6,c4,e6": {
		Name: "Indian Defense",
		Moves: []WeightedMove{
			{"Nc3", 50}, {"Nf3", 40}, {"g3", 10},
		},
	},
	"d4,Nf6,c4,e6,Nc3": {
		Name: "Nimzo-Indian Defense",
		Moves: []WeightedMove{
			{"Bb4", 70}, {"d5", 30},
		},
	},
	"d4,Nf6,c4,e6,Nc3,Bb4": {
		Name: "Nimzo-Indian Defense",
		Moves: []WeightedMove{
			{"e3", 40}, {"Qc2", 35}, {"Nf3", 25},
		},
	},
	"d4,Nf6,c4,e6,Nf3": {
		Name: "Indian Defense",
		Moves: []WeightedMove{
			{"b6", 50}, {"d5", 50},
		},
	},
	"d4,Nf6,c4,g6": {
		Name: "King's Indian Defense",
		Moves: []WeightedMove{
			{"Nc3", 70}, {"Nf3", 20}, {"g3", 10},
		},
	},
	"d4,Nf6,c4,g6,Nc3": {
		Name: "King's Indian Defense",
		Moves: []WeightedMove{
			{"Bg7", 80}, {"d5", 20},
		},
	},
	"d4,Nf6,c4,g6,Nc3,Bg7": {
		Name: "King's Indian Defense",
		Moves: []WeightedMove{
			{"e4", 70}, {"Nf3", 20}, {"g3", 10},
		},
	},
	"d4,Nf6,c4,g6,Nc3,Bg7,e4": {
		Name: "King's Indian Defense",
		Moves: []WeightedMove{
			{"d6", 95}, {"O-O", 5},
		},
	},
	"d4,Nf6,c4,g6,Nc3,d5": {
		Name: "Grünfeld Defense",
		Moves: []WeightedMove{
			{"cxd5", 60}, {"Nf3", 25}, {"e3", 15},
		},
	},

	// 1. Nf3
	"Nf3": {
		Name: "Réti Opening",
		Moves: []WeightedMove{
			{"d5", 40}, {"Nf6", 30}, {"c5", 20}, {"g6", 10},
		},
	},
	"Nf3,d5": {
		Name: "Réti Opening",
		Moves: []WeightedMove{
			{"d4", 40}, {"g3", 30}, {"c4", 30},
		},
	},
	"Nf3,d5,g3": {
		Name: "King's Indian Attack",
		Moves: []WeightedMove{
			{"Nf6", 60}, {"c6", 20}, {"Bg4", 20},
		},
	},
	"Nf3,d5,c4": {
		Name: "Réti Opening",
		Moves: []WeightedMove{
			{"e6", 30}, {"d4", 25}, {"c6", 25}, {"dxc4", 20},
		},
	},
	"Nf3,Nf6": {
		Name: "Réti Opening",
		Moves: []WeightedMove{
			{"c4", 40}, {"d4", 40}, {"g3", 20},
		},
	},
	"Nf3,c5": {
		Name: "Réti Opening",
		Moves: []WeightedMove{
			{"c4", 50}, {"e4", 30}, {"g3", 20},
		},
	},

	// 1. c4
	"c4": {
		Name: "English Opening",
		Moves: []WeightedMove{
			{"e5", 30}, {"Nf6", 30}, {"c5", 20}, {"e6", 10}, {"g6", 10},
		},
	},
	"c4,e5": {
		Name:      "English Opening",
		Variation: "Reversed Sicilian",
		Moves: []WeightedMove{
			{"Nc3", 60}, {"g3", 30}, {"e3", 10},
		},
	},
	"c4,e5,Nc3": {
		Name:      "English Opening",
		Variation: "Reversed Sicilian",
		Moves: []WeightedMove{
			{"Nf6", 60}, {"Nc6", 30}, {"Bb4", 10},
		},
	},
	"c4,Nf6": {
		Name: "English Opening",
		Moves: []WeightedMove{
			{"Nc3", 45}, {"Nf3", 35}, {"g3", 20},
		},
	},
	"c4,c5": {
		Name:      "English Opening",
		Variation: "Symmetrical",
		Moves: []WeightedMove{
			{"Nf3", 50}, {"Nc3", 30}, {"g3", 20},
		},
	},
	"c4,e6": {
		Name: "English Opening",
		Moves: []WeightedMove{
			{"Nc3", 40}, {"d4", 40}, {"Nf3", 20},
		},
	},
}
