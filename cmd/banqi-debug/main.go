package main

import (
	"flag"
	"fmt"
	"math/rand"

	"banqi/internal/banqi"
)

func main() {
	seed := flag.Int64("seed", 1, "deal seed")
	flag.Parse()

	g := banqi.NewGame(rand.New(rand.NewSource(*seed)))
	fmt.Println("Position:", banqi.EncodeGame(g))
	fmt.Println("Legal actions:", len(g.LegalActions()))

	res, err := g.Flip(banqi.Pos{Row: 1, Col: 3})
	if err != nil {
		fmt.Println("flip failed:", err)
		return
	}
	fmt.Printf("Flipped piece %d (side=%d type=%d), first=%v\n",
		res.Piece.ID, res.Piece.Side, res.Piece.Type, res.FirstFlip)
	fmt.Println("Position:", banqi.EncodeGame(g))
}
