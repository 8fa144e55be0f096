package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/connectfour"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
	"github.com/rocketscienceinc/boardgame-backend/internal/tictactoe"
)

// SessionRepository keeps every game session of the process in memory.
// Returned sessions are snapshots; the only way to change a session is Update.
type SessionRepository interface {
	Create(gameType entity.GameType) (*entity.Session, error)
	GetByID(id string) (*entity.Session, error)
	ListJoinable(gameType entity.GameType) []*entity.Session
	Update(id string, fn func(session *entity.Session) error) (*entity.Session, error)
	Count() int
}

// sessionRecord serializes every mutation of one session.
type sessionRecord struct {
	mu      sync.Mutex
	session *entity.Session
}

func (that *sessionRecord) snapshot() *entity.Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.session.Clone()
}

type memorySession struct {
	mu      sync.RWMutex
	records map[string]*sessionRecord
	order   []string

	newID func() string
}

func NewSessionRepository() SessionRepository {
	return &memorySession{
		records: make(map[string]*sessionRecord),
		newID:   uuid.NewString,
	}
}

func (that *memorySession) Create(gameType entity.GameType) (*entity.Session, error) {
	state, err := initialState(gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.newID()
	for that.records[id] != nil {
		id = that.newID()
	}

	session := entity.NewSession(id, state)

	that.records[id] = &sessionRecord{session: session}
	that.order = append(that.order, id)

	return session.Clone(), nil
}

func (that *memorySession) GetByID(id string) (*entity.Session, error) {
	record, err := that.record(id)
	if err != nil {
		return nil, err
	}

	return record.snapshot(), nil
}

// ListJoinable returns the sessions of gameType with a free seat, oldest first.
func (that *memorySession) ListJoinable(gameType entity.GameType) []*entity.Session {
	that.mu.RLock()
	records := make([]*sessionRecord, 0, len(that.order))
	for _, id := range that.order {
		records = append(records, that.records[id])
	}
	that.mu.RUnlock()

	sessions := make([]*entity.Session, 0)
	for _, record := range records {
		session := record.snapshot()
		if session.GameType == gameType && session.IsJoinable() {
			sessions = append(sessions, session)
		}
	}

	return sessions
}

// Update runs fn on a copy of the session while holding the session lock and stores the
// copy only when fn succeeds. Updates of different sessions run in parallel.
func (that *memorySession) Update(id string, fn func(session *entity.Session) error) (*entity.Session, error) {
	record, err := that.record(id)
	if err != nil {
		return nil, err
	}

	record.mu.Lock()
	defer record.mu.Unlock()

	draft := record.session.Clone()
	if err = fn(draft); err != nil {
		return nil, err
	}

	record.session = draft

	return draft.Clone(), nil
}

func (that *memorySession) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.records)
}

func (that *memorySession) record(id string) (*sessionRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return record, nil
}

func initialState(gameType entity.GameType) (entity.GameState, error) {
	switch gameType {
	case entity.TicTacToe:
		return tictactoe.Initial(), nil
	case entity.ConnectFour:
		return connectfour.Initial(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, gameType)
	}
}
