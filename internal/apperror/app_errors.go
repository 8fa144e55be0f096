package apperror

import "errors"

var (
	ErrUnknownGameType     = errors.New("unknown game type")
	ErrUnsupportedGameType = errors.New("unsupported game type")

	ErrSessionNotFound    = errors.New("game session not found")
	ErrSessionFull        = errors.New("game session is already full")
	ErrPlayerNotInSession = errors.New("player is not in this game session")
	ErrPlayerIDRequired   = errors.New("player id is required")
	ErrGameIsNotStarted   = errors.New("game is not started")

	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidMove      = errors.New("invalid move")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRangeCell   = errors.New("cell index is out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column index is out of range")

	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)

// kinds lists every failure the engine can report, keyed by the name sent to clients.
// Order matters: the more specific error must come first.
var kinds = []struct {
	err  error
	name string
}{
	{ErrUnknownGameType, "UnknownGameType"},
	{ErrUnsupportedGameType, "UnsupportedGameType"},
	{ErrSessionNotFound, "SessionNotFound"},
	{ErrSessionFull, "SessionFull"},
	{ErrPlayerNotInSession, "PlayerNotInSession"},
	{ErrPlayerIDRequired, "PlayerIDRequired"},
	{ErrGameIsNotStarted, "GameNotStarted"},
	{ErrNotYourTurn, "WrongTurn"},
	{ErrCellOccupied, "CellOccupied"},
	{ErrOutOfRangeCell, "OutOfRangeCell"},
	{ErrColumnFull, "ColumnFull"},
	{ErrColumnOutOfRange, "ColumnOutOfRange"},
	{ErrInvalidMove, "InvalidMove"},
	{ErrUnknownAction, "UnknownAction"},
	{ErrInvalidPayload, "InvalidPayload"},
}

// Kind returns the stable name of the failure wrapped in err, or "Internal" when err
// does not wrap any known failure.
func Kind(err error) string {
	for _, kind := range kinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}

	return "Internal"
}
