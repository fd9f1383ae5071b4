package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/bots"
	"github.com/lcasviana/chess/worker"
)

// Terminal match against the engine. The board is drawn between moves
// and input is taken as coordinate or short algebraic notation.
func main() {
	reader := bufio.NewReader(os.Stdin)
	var playerColor chess.Color
	var searchDepth int

	for {
		fmt.Print("Choose your color (white or black): ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "white" {
			playerColor = chess.White
			break
		} else if input == "black" {
			playerColor = chess.Black
			break
		} else {
			fmt.Println("Invalid input. Please enter 'white' or 'black'.")
		}
	}

	for {
		fmt.Printf("Enter engine search depth (%d recommended): ", bots.DefaultSearchDepth)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		depth, err := strconv.Atoi(input)
		if err == nil && depth > 0 {
			searchDepth = depth
			break
		} else {
			fmt.Println("Invalid input. Please enter a positive integer for the depth.")
		}
	}

	cfg := bots.DefaultBotConfig()
	cfg.SearchDepth = searchDepth

	manager := worker.NewManager(cfg, zap.NewNop().Sugar())
	fmt.Printf("Starting game. You are %s. Opponent: %s\n", playerColor, manager.BotName())
	fmt.Println("Type 'resign' to give up.")

	game := chess.NewGame()
	notation := chess.AlgebraicNotation{}
	var history []string
	ctx := context.Background()

	for game.Outcome() == chess.NoOutcome {
		fmt.Println("\n--------------------")
		fmt.Println(game.Position().Board().Draw())
		fmt.Printf("Turn: %s\n", game.Position().Turn())

		if game.Position().Turn() == playerColor {
			fmt.Print("Enter your move (e.g., e2e4 or Nf3): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if strings.EqualFold(input, "resign") {
				game.Resign(playerColor)
				break
			}

			var playerMove *chess.Move
			for _, m := range game.ValidMoves() {
				if m.String() == input {
					playerMove = m
					break
				}
			}

			if playerMove == nil {
				decoded, err := notation.Decode(game.Position(), input)
				if err != nil {
					fmt.Println("Invalid move")
					continue
				}
				playerMove = decoded
			}

			isValid := false
			for _, validMove := range game.ValidMoves() {
				if playerMove.String() == validMove.String() {
					isValid = true
					break
				}
			}
			if !isValid {
				fmt.Println("Illegal move")
				continue
			}

			san := notation.Encode(game.Position(), playerMove)
			if err := game.Move(playerMove); err != nil {
				fmt.Printf("Error applying move %s: %v\n", playerMove, err)
				break
			}
			history = append(history, san)
			fmt.Printf("You moved: %s\n", san)

		} else {
			fmt.Println("Engine is thinking...")

			resp, err := manager.Submit(ctx, worker.Request{FEN: game.FEN(), History: history})
			if err != nil {
				fmt.Printf("Engine error: %v\n", err)
				break
			}
			if resp.Error != "" {
				fmt.Printf("Engine error: %s\n", resp.Error)
				break
			}
			if resp.Move == nil {
				fmt.Println("Engine has no moves available.")
				break
			}

			engineMove, err := notation.Decode(game.Position(), resp.Move.SAN)
			if err != nil {
				fmt.Printf("Engine produced an unusable move %s: %v\n", resp.Move.SAN, err)
				break
			}
			if err := game.Move(engineMove); err != nil {
				fmt.Printf("Error applying move %s: %v\n", resp.Move.SAN, err)
				break
			}
			history = append(history, resp.Move.SAN)
			fmt.Printf("Engine moved: %s (score %.2f)\n", resp.Move.SAN, resp.Score)
		}
	}

	fmt.Println("\n--------------------")
	fmt.Println("Game Over!")
	fmt.Println(game.Position().Board().Draw())
	fmt.Printf("Outcome: %s\n", game.Outcome())
	fmt.Printf("Method: %s\n", game.Method())
	fmt.Println(strings.TrimSpace(game.String()))
}
