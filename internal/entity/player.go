package entity

// Sender delivers one encoded outbound message to a single connection.
// Implementations must not block: a slow client may receive its copy late,
// but it must never stall a room intent.
type Sender interface {
	Send(data []byte) error
}

// Player is a room member: a display name unique within its room, the symbol
// it plays, and the connection it is bound to. The connection reference is
// non-owning; the transport layer closes it.
type Player struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Conn   Sender `json:"-"`
}
