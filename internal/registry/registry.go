package registry

import (
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

// Registry is the single authoritative map from room id to live room.
// Existence equals liveness: an empty room is deleted, never retained, and no
// two live rooms share an id. Create checks and inserts under one lock, so
// two concurrent creates for the same id yield exactly one winner.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]*entity.Room),
	}
}

// Create - registers a new room with its creator as the only player.
func (that *Registry) Create(id, creatorName, creatorSymbol string, conn entity.Sender) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.rooms[id]; exists {
		return nil, apperror.ErrRoomExists
	}

	room := entity.NewRoom(id, creatorName, creatorSymbol, conn)
	that.rooms[id] = room

	return room, nil
}

// Get - resolves a live room by id.
func (that *Registry) Get(id string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, exists := that.rooms[id]
	if !exists {
		return nil, apperror.ErrRoomNotFound
	}

	return room, nil
}

// Leave - removes the named player from a room and, when that empties the
// room, destroys it. Both steps happen under the registry lock, so no other
// caller can observe an empty-but-registered room. Returns whether the room
// was destroyed.
func (that *Registry) Leave(id, name string) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, exists := that.rooms[id]
	if !exists {
		return false, apperror.ErrRoomNotFound
	}

	_, empty, err := room.Leave(name)
	if err != nil {
		return false, err
	}

	if empty {
		delete(that.rooms, id)
	}

	return empty, nil
}

// Delete - removes a room. Deleting an unknown id is a no-op.
func (that *Registry) Delete(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, id)
}

// Len - returns the number of live rooms.
func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}

// DropConnection - sweeps every room for players bound to the given
// connection and destroys rooms left empty. The sweep covers all rooms
// because the transport only reports that a connection closed, not which
// room it belonged to. Returns the ids of destroyed rooms.
func (that *Registry) DropConnection(conn entity.Sender) []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	var destroyed []string
	for id, room := range that.rooms {
		if _, empty := room.DropConnection(conn); empty {
			delete(that.rooms, id)
			destroyed = append(destroyed, id)
		}
	}

	return destroyed
}
