package protocol

// Inbound message types.
const (
	TypeCreateRoom = "CREATE_ROOM"
	TypeJoinRoom   = "JOIN_ROOM"
	TypeStartGame  = "START_GAME"
	TypeMakeMove   = "MAKE_MOVE"
	TypeLeaveRoom  = "LEAVE_ROOM"
	TypeResetGame  = "RESET_GAME"
)

// Outbound event names.
const (
	EventRoomCreated        = "ROOM_CREATED"
	EventRoomDeleted        = "ROOM_DELETED"
	EventJoinedRoom         = "JOINED_ROOM"
	EventPlayerJoined       = "PLAYER_JOINED"
	EventPlayerLeft         = "PLAYER_LEFT"
	EventPlayerDisconnected = "PLAYER_DISCONNECTED"
	EventGameStarted        = "GAME_STARTED"
	EventMoveMade           = "MOVE_MADE"
	EventGameOver           = "GAME_OVER"
	EventGameReset          = "GAME_RESET"
)

// Message is one inbound envelope. Type discriminates the intent; the other
// fields are required or ignored depending on it. Row and Col are pointers so
// a missing field can be told apart from a zero.
type Message struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId,omitempty"`
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
}

// PlayerInfo is the public part of a player carried by join/leave events.
type PlayerInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Response is one outbound envelope: either a named event with its payload
// fields, or a failure with an error string.
type Response struct {
	Success       bool        `json:"success"`
	Error         string      `json:"error,omitempty"`
	Message       string      `json:"message,omitempty"`
	Player        *PlayerInfo `json:"player,omitempty"`
	GameBoard     [][]string  `json:"gameBoard,omitempty"`
	CurrentPlayer string      `json:"currentPlayer,omitempty"`
	Winner        string      `json:"winner,omitempty"`
}

// NewEvent - builds a successful response carrying the given event name.
func NewEvent(name string) *Response {
	return &Response{
		Success: true,
		Message: name,
	}
}

// NewFailure - builds a failure response from an error.
func NewFailure(err error) *Response {
	return &Response{
		Success: false,
		Error:   err.Error(),
	}
}
