package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/connectfour"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
	"github.com/rocketscienceinc/boardgame-backend/internal/tictactoe"
)

type sessionRepo interface {
	Create(gameType entity.GameType) (*entity.Session, error)
	GetByID(id string) (*entity.Session, error)
	ListJoinable(gameType entity.GameType) []*entity.Session
	Update(id string, fn func(session *entity.Session) error) (*entity.Session, error)
}

type matchmakingService interface {
	JoinOrCreate(gameType entity.GameType, playerID string) (*entity.Session, error)
	Join(sessionID, playerID string) (*entity.Session, error)
}

// GameManager is the only entry point the transports use to read and change sessions.
type GameManager struct {
	logger *slog.Logger

	sessionRepo        sessionRepo
	matchmakingService matchmakingService

	// lobbyMu keeps concurrent RequestAvailable calls from creating more than one session.
	lobbyMu sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, matchmakingService matchmakingService) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo:        sessionRepo,
		matchmakingService: matchmakingService,
	}
}

// RequestAvailable returns the joinable sessions of gameType. When there is none, exactly
// one session is created so a client never sees an empty lobby.
func (that *GameManager) RequestAvailable(gameType entity.GameType) ([]*entity.Session, error) {
	if sessions := that.sessionRepo.ListJoinable(gameType); len(sessions) > 0 {
		return sessions, nil
	}

	that.lobbyMu.Lock()
	defer that.lobbyMu.Unlock()

	if sessions := that.sessionRepo.ListJoinable(gameType); len(sessions) > 0 {
		return sessions, nil
	}

	session, err := that.sessionRepo.Create(gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Debug("session created for lobby", "method", "RequestAvailable", "session_id", session.ID, "game_type", gameType)

	return []*entity.Session{session}, nil
}

// AvailableSessions returns the joinable sessions of every game type without creating any.
func (that *GameManager) AvailableSessions() []*entity.Session {
	sessions := make([]*entity.Session, 0)
	for _, gameType := range entity.GameTypes {
		sessions = append(sessions, that.sessionRepo.ListJoinable(gameType)...)
	}

	return sessions
}

func (that *GameManager) JoinOrCreateSession(gameType entity.GameType, playerID string) (*entity.Session, error) {
	session, err := that.matchmakingService.JoinOrCreate(gameType, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to join or create session: %w", err)
	}

	return session, nil
}

func (that *GameManager) JoinSession(sessionID, playerID string) (*entity.Session, error) {
	session, err := that.matchmakingService.Join(sessionID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	return session, nil
}

func (that *GameManager) GetSession(sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ApplyMove plays move for playerID and returns the new state. The session is left
// untouched when the move is rejected.
func (that *GameManager) ApplyMove(sessionID, playerID string, move entity.Move) (entity.GameState, error) {
	log := that.logger.With("method", "ApplyMove", "session_id", sessionID, "player_id", playerID)

	session, err := that.sessionRepo.Update(sessionID, func(session *entity.Session) error {
		player, ok := session.Player(playerID)
		if !ok {
			return fmt.Errorf("%w: %s", apperror.ErrPlayerNotInSession, playerID)
		}

		if !session.IsFull() {
			return apperror.ErrGameIsNotStarted
		}

		state, err := applyMove(session.State, player.Symbol, move)
		if err != nil {
			return err
		}

		session.State = state

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	log.Debug("move applied", "position", move.Position, "terminal", session.State.IsTerminal())

	return session.State, nil
}

func applyMove(state entity.GameState, symbol entity.Symbol, move entity.Move) (entity.GameState, error) {
	switch state := state.(type) {
	case entity.TicTacToeState:
		return tictactoe.ApplyMove(state, symbol, move.Position)
	case entity.ConnectFourState:
		return connectfour.ApplyMove(state, symbol, move.Position)
	default:
		return nil, fmt.Errorf("%w: %T", apperror.ErrUnsupportedGameType, state)
	}
}
