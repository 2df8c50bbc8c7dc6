package entity

import "time"

// GameResult is the record of one finished game, archived after GAME_OVER.
// Rooms themselves are memory-only; results are write-behind history.
type GameResult struct {
	RoomID     string    `json:"room_id"`
	Winner     string    `json:"winner"`
	Board      Board     `json:"board"`
	FinishedAt time.Time `json:"finished_at"`
}
