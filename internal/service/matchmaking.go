package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

// maxJoinAttempts bounds JoinOrCreate when other players keep taking the last seat first.
const maxJoinAttempts = 8

type MatchmakingService interface {
	JoinOrCreate(gameType entity.GameType, playerID string) (*entity.Session, error)
	Join(sessionID, playerID string) (*entity.Session, error)
}

type sessionRepo interface {
	Create(gameType entity.GameType) (*entity.Session, error)
	ListJoinable(gameType entity.GameType) []*entity.Session
	Update(id string, fn func(session *entity.Session) error) (*entity.Session, error)
}

type matchmakingService struct {
	sessionRepo sessionRepo
}

func NewMatchmakingService(sessionRepo sessionRepo) MatchmakingService {
	return &matchmakingService{
		sessionRepo: sessionRepo,
	}
}

// JoinOrCreate seats the player in a joinable session of gameType. A session the player
// already sits in is preferred, then the oldest one. A new session is created only when
// nothing can be joined.
func (that *matchmakingService) JoinOrCreate(gameType entity.GameType, playerID string) (*entity.Session, error) {
	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	if _, _, err := entity.Symbols(gameType); err != nil {
		return nil, fmt.Errorf("failed to join or create session: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxJoinAttempts; attempt++ {
		for _, candidate := range orderCandidates(that.sessionRepo.ListJoinable(gameType), playerID) {
			session, err := that.Join(candidate.ID, playerID)
			if err == nil {
				return session, nil
			}

			if !errors.Is(err, apperror.ErrSessionFull) {
				return nil, err
			}
			lastErr = err
		}

		created, err := that.sessionRepo.Create(gameType)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}

		session, err := that.Join(created.ID, playerID)
		if err == nil {
			return session, nil
		}

		if !errors.Is(err, apperror.ErrSessionFull) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to join or create session: %w", lastErr)
}

// Join seats the player in the session. Re-joining a session the player already sits in
// returns it unchanged, even when it is full.
func (that *matchmakingService) Join(sessionID, playerID string) (*entity.Session, error) {
	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	session, err := that.sessionRepo.Update(sessionID, func(session *entity.Session) error {
		return seat(session, playerID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	return session, nil
}

func seat(session *entity.Session, playerID string) error {
	if _, ok := session.Player(playerID); ok {
		return nil
	}

	if session.IsFull() {
		return apperror.ErrSessionFull
	}

	first, second, err := entity.Symbols(session.GameType)
	if err != nil {
		return err
	}

	symbol := first
	if len(session.Players) == 1 {
		symbol = second
	}

	session.Players = append(session.Players, &entity.Player{ID: playerID, Symbol: symbol})

	return nil
}

func orderCandidates(sessions []*entity.Session, playerID string) []*entity.Session {
	for i, session := range sessions {
		if _, ok := session.Player(playerID); ok {
			ordered := make([]*entity.Session, 0, len(sessions))
			ordered = append(ordered, session)
			ordered = append(ordered, sessions[:i]...)
			return append(ordered, sessions[i+1:]...)
		}
	}

	return sessions
}
