package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	sessions "banqi/internal/server/game"
)

// 随机自对弈：在全部可行动作里均匀抽一个执行，不做任何搜索。
// 用来压测引擎和对局管理层，顺便统计胜负分布。
func main() {
	games := flag.Int("games", 10, "number of games to play")
	seed := flag.Int64("seed", 0, "rng seed (0 = time-based)")
	maxMoves := flag.Int("maxmoves", 400, "max actions per game before giving up")
	verbose := flag.Bool("v", false, "log every action")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger.Info().Int64("seed", *seed).Int("games", *games).Msg("selfplay start")

	mgr := sessions.NewManager(logger)

	wins := [2]int{}
	unfinished := 0
	start := time.Now()
	for i := 0; i < *games; i++ {
		s := mgr.NewSession(rng)
		steps := playRandomGame(s, rng, *maxMoves)

		if seat, ok := s.Winner(); ok {
			wins[seat]++
			logger.Info().Int("game", i+1).Int("steps", steps).
				Int("winner_seat", seat).Msg("game finished")
		} else {
			unfinished++
			logger.Info().Int("game", i+1).Int("steps", steps).Msg("game hit move limit")
		}
		if err := mgr.Remove(s.ID); err != nil {
			logger.Error().Err(err).Str("session_id", s.ID).Msg("remove failed")
		}
	}

	fmt.Printf("games=%d seat0=%d seat1=%d unfinished=%d elapsed=%v\n",
		*games, wins[0], wins[1], unfinished, time.Since(start))
}

func playRandomGame(s *sessions.Session, rng *rand.Rand, maxMoves int) int {
	for step := 0; step < maxMoves; step++ {
		acts := s.LegalActions()
		if len(acts) == 0 {
			return step
		}
		act := acts[rng.Intn(len(acts))]
		if act.Flip {
			if _, err := s.Flip(act.Pos); err != nil {
				panic(fmt.Sprintf("legal flip rejected: %v", err))
			}
			continue
		}
		res, err := s.Move(act.PieceID, act.Pos)
		if err != nil {
			panic(fmt.Sprintf("legal move rejected: %v", err))
		}
		if res.Captured != nil {
			// 没有表现层，吃子立刻落定
			if err := s.FinalizeCapture(res.Captured.ID); err != nil {
				panic(fmt.Sprintf("finalize capture: %v", err))
			}
		}
	}
	return maxMoves
}
