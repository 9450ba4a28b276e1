package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"banqi/internal/banqi"
)

var ErrSessionNotFound = errors.New("game not found")

// Manager 内存里的对局注册表：uuid 做对局 ID，一盘一个 Session。
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		log:      logger.With().Str("component", "session-manager").Logger(),
	}
}

// NewSession 开一盘新对局。rng 可注入以便复现（传 nil 则用时间种子）。
func (m *Manager) NewSession(rng *rand.Rand) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		game:      banqi.NewGame(rng),
		updatedAt: now,
		log:       m.log.With().Str("session_id", id).Logger(),
	}
	m.sessions[id] = s
	m.log.Info().Str("session_id", id).Msg("session created")
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.log.Info().Str("session_id", id).Msg("session removed")
	return nil
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
