package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"banqi/internal/banqi"
)

// Session 一盘对局：整盘一把锁，同一盘的 Flip/Move/Surrender 串行，
// 不同盘互不影响。引擎本身不加锁，串行化是这一层的职责。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *banqi.Game
	updatedAt time.Time
	log       zerolog.Logger
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) Flip(pos banqi.Pos) (*banqi.FlipResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.game.Flip(pos)
	if err != nil {
		return nil, err
	}
	s.touch()
	ev := s.log.Debug().Int("row", pos.Row).Int("col", pos.Col).Int("piece_id", res.Piece.ID)
	if res.FirstFlip {
		ev = ev.Bool("first_flip", true)
	}
	ev.Msg("piece flipped")
	s.logWinnerLocked()
	return res, nil
}

func (s *Session) Move(pieceID int, to banqi.Pos) (*banqi.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.game.Move(pieceID, to)
	if err != nil {
		return nil, err
	}
	s.touch()
	ev := s.log.Debug().Int("piece_id", pieceID).Int("row", to.Row).Int("col", to.Col)
	if res.Captured != nil {
		ev = ev.Int("captured_id", res.Captured.ID)
	}
	ev.Msg("piece moved")
	s.logWinnerLocked()
	return res, nil
}

func (s *Session) Surrender(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.Surrender(seat); err != nil {
		return err
	}
	s.touch()
	s.log.Info().Int("seat", seat).Msg("seat surrendered")
	s.logWinnerLocked()
	return nil
}

func (s *Session) FinalizeCapture(pieceID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FinalizeCapture(pieceID)
}

func (s *Session) LegalActions() []banqi.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalActions()
}

func (s *Session) Winner() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Winner()
}

// Snapshot 当前局面的编码串
func (s *Session) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return banqi.EncodeGame(s.game)
}

func (s *Session) Reset(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset(rng)
	s.touch()
	s.log.Info().Msg("session reset")
}

func (s *Session) logWinnerLocked() {
	if seat, ok := s.game.Winner(); ok {
		s.log.Info().Int("winner_seat", seat).Msg("game over")
	}
}
