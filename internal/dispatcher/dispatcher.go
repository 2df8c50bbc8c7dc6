package dispatcher

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/protocol"
	"github.com/rocketscienceinc/gameroom-backend/internal/registry"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// Dispatcher is the front door for decoded messages: it routes an inbound
// envelope by its type discriminator to the right room intent and answers
// the sender. Broadcast-class events go out from the room itself; everything
// the dispatcher sends directly (creation acks, deletions, every failure) is
// sender-only, and the connection stays open after a failure.
type Dispatcher struct {
	logger   *slog.Logger
	registry *registry.Registry
	results  resultRepo

	handlers map[string]func(ctx context.Context, conn entity.Sender, msg *protocol.Message) error
}

func New(logger *slog.Logger, reg *registry.Registry, results resultRepo) *Dispatcher {
	dispatcher := &Dispatcher{
		logger:   logger.With("component", "dispatcher"),
		registry: reg,
		results:  results,

		handlers: make(map[string]func(context.Context, entity.Sender, *protocol.Message) error),
	}

	dispatcher.handlers[protocol.TypeCreateRoom] = dispatcher.handleCreateRoom
	dispatcher.handlers[protocol.TypeJoinRoom] = dispatcher.handleJoinRoom
	dispatcher.handlers[protocol.TypeStartGame] = dispatcher.handleStartGame
	dispatcher.handlers[protocol.TypeMakeMove] = dispatcher.handleMakeMove
	dispatcher.handlers[protocol.TypeLeaveRoom] = dispatcher.handleLeaveRoom
	dispatcher.handlers[protocol.TypeResetGame] = dispatcher.handleResetGame

	return dispatcher
}

// HandleMessage - decodes one inbound message and applies the intent it
// carries. A rejected intent never mutates room state and is reported back
// to the sender only.
func (that *Dispatcher) HandleMessage(ctx context.Context, conn entity.Sender, raw []byte) {
	log := that.logger.With("method", "HandleMessage")

	var msg protocol.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Debug("failed to unmarshal message", "error", err)
		that.reply(conn, protocol.NewFailure(apperror.ErrInvalidData))
		return
	}

	handler, ok := that.handlers[msg.Type]
	if !ok {
		log.Debug("unknown message type", "type", msg.Type)
		that.reply(conn, protocol.NewFailure(apperror.ErrInvalidMessageType))
		return
	}

	if err := handler(ctx, conn, &msg); err != nil {
		log.Debug("intent rejected", "type", msg.Type, "room", msg.RoomID, "error", err)
		that.reply(conn, protocol.NewFailure(err))
	}
}

// Disconnect - cleans up after a closed connection: every room is swept for
// players bound to it, and rooms left empty are destroyed.
func (that *Dispatcher) Disconnect(conn entity.Sender) {
	log := that.logger.With("method", "Disconnect")

	for _, id := range that.registry.DropConnection(conn) {
		log.Info("room destroyed, no players left", "room", id)
	}
}

func (that *Dispatcher) handleCreateRoom(_ context.Context, conn entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" || msg.Name == "" {
		return apperror.ErrInvalidData
	}

	if !entity.IsValidSymbol(msg.Symbol) {
		return apperror.ErrInvalidSymbol
	}

	if _, err := that.registry.Create(msg.RoomID, msg.Name, msg.Symbol, conn); err != nil {
		return err
	}

	that.logger.Info("room created", "room", msg.RoomID, "creator", msg.Name, "symbol", msg.Symbol)
	that.reply(conn, protocol.NewEvent(protocol.EventRoomCreated))

	return nil
}

func (that *Dispatcher) handleJoinRoom(_ context.Context, conn entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" || msg.Name == "" {
		return apperror.ErrInvalidData
	}

	room, err := that.registry.Get(msg.RoomID)
	if err != nil {
		return err
	}

	return room.Join(msg.Name, conn)
}

func (that *Dispatcher) handleStartGame(_ context.Context, _ entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" {
		return apperror.ErrInvalidData
	}

	room, err := that.registry.Get(msg.RoomID)
	if err != nil {
		return err
	}

	return room.Start()
}

func (that *Dispatcher) handleMakeMove(ctx context.Context, _ entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" || msg.Name == "" || msg.Row == nil || msg.Col == nil {
		return apperror.ErrInvalidData
	}

	room, err := that.registry.Get(msg.RoomID)
	if err != nil {
		return err
	}

	result, err := room.Move(msg.Name, *msg.Row, *msg.Col)
	if err != nil {
		return err
	}

	if result != nil {
		that.archiveResult(ctx, result)
	}

	return nil
}

func (that *Dispatcher) handleLeaveRoom(_ context.Context, conn entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" || msg.Name == "" {
		return apperror.ErrInvalidData
	}

	empty, err := that.registry.Leave(msg.RoomID, msg.Name)
	if err != nil {
		return err
	}

	if empty {
		that.logger.Info("room destroyed, last player left", "room", msg.RoomID)
		that.reply(conn, protocol.NewEvent(protocol.EventRoomDeleted))
		return nil
	}

	that.reply(conn, protocol.NewEvent(protocol.EventPlayerLeft))

	return nil
}

func (that *Dispatcher) handleResetGame(_ context.Context, _ entity.Sender, msg *protocol.Message) error {
	if msg.RoomID == "" {
		return apperror.ErrInvalidData
	}

	room, err := that.registry.Get(msg.RoomID)
	if err != nil {
		return err
	}

	return room.Reset()
}

// archiveResult - records a finished game, best effort. Players never see an
// archive failure.
func (that *Dispatcher) archiveResult(ctx context.Context, result *entity.GameResult) {
	log := that.logger.With("method", "archiveResult", "room", result.RoomID)

	if err := that.results.Save(ctx, result); err != nil {
		log.Error("failed to archive result", "error", err)
		return
	}

	log.Info("game finished", "winner", result.Winner)
}

func (that *Dispatcher) reply(conn entity.Sender, resp *protocol.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		that.logger.Error("failed to marshal response", "error", err)
		return
	}

	if err = conn.Send(data); err != nil {
		that.logger.Debug("failed to send response", "error", err)
	}
}
