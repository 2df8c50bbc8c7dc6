package apperror

import "errors"

var (
	ErrRoomExists       = errors.New("room already exists")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrGameNotStarted   = errors.New("game not started")
	ErrGameOver         = errors.New("game over")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidMove      = errors.New("invalid move")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNameTaken        = errors.New("name already taken")

	ErrInvalidSymbol      = errors.New("invalid symbol")
	ErrInvalidData        = errors.New("invalid data")
	ErrInvalidMessageType = errors.New("invalid message type")
)
