package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"banqi/internal/banqi"
)

// 生成回归测试夹具：固定种子随机对局，逐步记录
// “局面编码 + 动作 + 结果局面”，写成 JSON。
// 改动引擎后重跑一遍，diff 不为空就说明规则语义变了。

type FixtureStep struct {
	Before   string    `json:"before"`
	Flip     bool      `json:"flip"`
	PieceID  int       `json:"piece_id,omitempty"`
	Target   banqi.Pos `json:"target"`
	Captured int       `json:"captured,omitempty"` // 被吃子编号+1，0 表示没吃
	After    string    `json:"after"`
}

type FixtureGame struct {
	Seed       int64         `json:"seed"`
	Steps      []FixtureStep `json:"steps"`
	WinnerSeat int           `json:"winner_seat"` // -1 表示没下完
}

func main() {
	games := flag.Int("games", 10, "number of games to record")
	seed := flag.Int64("seed", 20240815, "base rng seed")
	maxMoves := flag.Int("maxmoves", 400, "max actions per game")
	out := flag.String("out", "banqi_fixtures.json", "output file")
	flag.Parse()

	var fixtures []FixtureGame
	for g := 0; g < *games; g++ {
		gameSeed := *seed + int64(g)
		fixtures = append(fixtures, recordGame(gameSeed, *maxMoves))
	}

	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
	fmt.Printf("Recorded %d games to %s\n", len(fixtures), *out)
}

func recordGame(seed int64, maxMoves int) FixtureGame {
	rng := rand.New(rand.NewSource(seed))
	g := banqi.NewGame(rng)
	fx := FixtureGame{Seed: seed, WinnerSeat: -1}

	for step := 0; step < maxMoves && g.Phase != banqi.GameOver; step++ {
		acts := g.LegalActions()
		if len(acts) == 0 {
			break
		}
		act := acts[rng.Intn(len(acts))]

		fs := FixtureStep{Before: banqi.EncodeGame(g), Flip: act.Flip, Target: act.Pos}
		if act.Flip {
			if _, err := g.Flip(act.Pos); err != nil {
				panic(err)
			}
		} else {
			fs.PieceID = act.PieceID
			res, err := g.Move(act.PieceID, act.Pos)
			if err != nil {
				panic(err)
			}
			if res.Captured != nil {
				fs.Captured = res.Captured.ID + 1
				if err := g.FinalizeCapture(res.Captured.ID); err != nil {
					panic(err)
				}
			}
		}
		fs.After = banqi.EncodeGame(g)
		fx.Steps = append(fx.Steps, fs)
	}

	if seat, ok := g.Winner(); ok {
		fx.WinnerSeat = seat
	}
	return fx
}
