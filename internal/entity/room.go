package entity

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/protocol"
)

// Room owns one game's lifecycle: its board, its players (at most two), the
// current-turn symbol and the started/over flags. Every intent is applied
// under the room mutex, so at most one intent mutates a room at a time and
// broadcasts go out in the order intents were applied.
//
// Lifecycle: Lobby (fewer than two players, or not started) -> Active
// (started) -> Over (winner or draw recorded) -> Reset back to Lobby with the
// players retained. Reset clears the started flag, so every game needs an
// explicit start.
type Room struct {
	ID string

	mu      sync.Mutex
	board   Board
	players []*Player
	turn    string
	started bool
	over    bool
	winner  string
}

const maxPlayers = 2

// NewRoom - creates a room in the Lobby state with its creator as the only
// player. The creator's symbol choice is authoritative; a joiner always gets
// the complement. The turn is seeded but meaningless until Start.
func NewRoom(id, creatorName, creatorSymbol string, conn Sender) *Room {
	return &Room{
		ID:   id,
		turn: creatorSymbol,
		players: []*Player{
			{Name: creatorName, Symbol: creatorSymbol, Conn: conn},
		},
	}
}

// Join - adds a second player with the complement of the creator's symbol.
// The joiner is acknowledged with JOINED_ROOM, then every member (joiner
// included) receives a PLAYER_JOINED broadcast.
func (that *Room) Join(name string, conn Sender) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	// An emptied room is dead even if a stale pointer still resolves it;
	// joining one would resurrect a room the registry already destroyed.
	if len(that.players) == 0 {
		return apperror.ErrRoomNotFound
	}

	if len(that.players) >= maxPlayers {
		return apperror.ErrRoomFull
	}

	for _, player := range that.players {
		if player.Name == name {
			return apperror.ErrNameTaken
		}
	}

	joiner := &Player{
		Name:   name,
		Symbol: OppositeSymbol(that.players[0].Symbol),
		Conn:   conn,
	}
	that.players = append(that.players, joiner)

	if conn != nil {
		_ = conn.Send(mustMarshal(protocol.NewEvent(protocol.EventJoinedRoom)))
	}

	event := protocol.NewEvent(protocol.EventPlayerJoined)
	event.Player = &protocol.PlayerInfo{Name: joiner.Name, Symbol: joiner.Symbol}
	that.broadcast(event)

	return nil
}

// Start - moves the room into the Active state and broadcasts GAME_STARTED.
// X always moves first.
func (that *Room) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.started {
		return apperror.ErrAlreadyStarted
	}

	if len(that.players) < maxPlayers {
		return apperror.ErrNotEnoughPlayers
	}

	that.started = true
	that.over = false
	that.winner = ""
	that.turn = SymbolX

	event := protocol.NewEvent(protocol.EventGameStarted)
	event.GameBoard = that.board.Rows()
	event.CurrentPlayer = that.turn
	that.broadcast(event)

	return nil
}

// Move - applies one move for the named player. On success the cell is set,
// the turn flips, and MOVE_MADE is broadcast; if the move finishes the game a
// separate GAME_OVER broadcast follows and the finished result is returned
// for archiving. A rejected move leaves the room unchanged.
func (that *Room) Move(name string, row, col int) (*GameResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.started {
		return nil, apperror.ErrGameNotStarted
	}

	if that.over {
		return nil, apperror.ErrGameOver
	}

	symbol, err := that.resolveSymbol(name)
	if err != nil {
		return nil, err
	}

	if symbol != that.turn {
		return nil, apperror.ErrNotYourTurn
	}

	if !that.board.IsValidMove(row, col) {
		return nil, apperror.ErrInvalidMove
	}

	that.board.ApplyMove(row, col, that.turn)
	that.turn = OppositeSymbol(that.turn)

	event := protocol.NewEvent(protocol.EventMoveMade)
	event.GameBoard = that.board.Rows()
	event.CurrentPlayer = that.turn
	that.broadcast(event)

	winner := that.board.Evaluate()
	if winner == EmptyCell {
		return nil, nil
	}

	that.over = true
	that.winner = winner

	overEvent := protocol.NewEvent(protocol.EventGameOver)
	overEvent.Winner = winner
	that.broadcast(overEvent)

	return &GameResult{
		RoomID:     that.ID,
		Winner:     winner,
		Board:      that.board,
		FinishedAt: time.Now(),
	}, nil
}

// Leave - removes the named player. When members remain they receive a
// PLAYER_LEFT broadcast; when the room empties the caller must destroy it,
// there is no one left to notify.
func (that *Room) Leave(name string) (*protocol.PlayerInfo, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	index := -1
	for i, player := range that.players {
		if player.Name == name {
			index = i
			break
		}
	}

	if index == -1 {
		return nil, false, apperror.ErrPlayerNotFound
	}

	left := that.players[index]
	info := &protocol.PlayerInfo{Name: left.Name, Symbol: left.Symbol}
	that.players = append(that.players[:index], that.players[index+1:]...)

	if len(that.players) == 0 {
		return info, true, nil
	}

	event := protocol.NewEvent(protocol.EventPlayerLeft)
	event.Player = info
	that.broadcast(event)

	return info, false, nil
}

// Reset - returns the room to its pre-Start condition: empty board, no
// winner, turn reseeded to X, both players retained. The next game requires
// an explicit Start.
func (that *Room) Reset() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board = Board{}
	that.started = false
	that.over = false
	that.winner = ""
	that.turn = SymbolX

	event := protocol.NewEvent(protocol.EventGameReset)
	event.GameBoard = that.board.Rows()
	event.CurrentPlayer = that.turn
	that.broadcast(event)

	return nil
}

// DropConnection - removes every player bound to the given connection and
// notifies the remaining members. Reports whether any player was removed and
// whether the room is now empty.
func (that *Room) DropConnection(conn Sender) (bool, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var dropped []*Player
	remaining := that.players[:0]
	for _, player := range that.players {
		if player.Conn == conn {
			dropped = append(dropped, player)
			continue
		}
		remaining = append(remaining, player)
	}
	that.players = remaining

	if len(that.players) > 0 {
		for _, player := range dropped {
			event := protocol.NewEvent(protocol.EventPlayerDisconnected)
			event.Player = &protocol.PlayerInfo{Name: player.Name, Symbol: player.Symbol}
			that.broadcast(event)
		}
	}

	return len(dropped) > 0, len(that.players) == 0
}

// Players - returns a snapshot of the current members.
func (that *Room) Players() []protocol.PlayerInfo {
	that.mu.Lock()
	defer that.mu.Unlock()

	players := make([]protocol.PlayerInfo, 0, len(that.players))
	for _, player := range that.players {
		players = append(players, protocol.PlayerInfo{Name: player.Name, Symbol: player.Symbol})
	}

	return players
}

// CurrentTurn - returns the symbol that may move next.
func (that *Room) CurrentTurn() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn
}

// resolveSymbol - returns the symbol bound to a display name. Its one failure
// mode is ErrPlayerNotFound; the caller must hold the room mutex.
func (that *Room) resolveSymbol(name string) (string, error) {
	for _, player := range that.players {
		if player.Name == name {
			return player.Symbol, nil
		}
	}

	return "", apperror.ErrPlayerNotFound
}

// broadcast - fans one encoded event out to every member, caller holds the
// mutex. Send errors are left to the disconnect sweep.
func (that *Room) broadcast(event *protocol.Response) {
	data := mustMarshal(event)
	for _, player := range that.players {
		if player.Conn == nil {
			continue
		}
		_ = player.Conn.Send(data)
	}
}

func mustMarshal(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
