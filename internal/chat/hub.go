package chat

import (
	"context"
	"time"

	"github.com/philippseith/signalr"
	"go.uber.org/zap"

	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/logger"
	"github.com/marcosboni7/backsleeping/internal/messaging"
	"github.com/marcosboni7/backsleeping/internal/store"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

// identityKey indexes the caller's identity in the per-connection item store
const identityKey = "identity"

// identity is the registered account behind a connection. Presentation fields
// are captured at registration so messages denormalize without extra reads.
type identity struct {
	ID        int64
	Username  string
	AuraColor string
	AvatarURL string
	Role      domain.Role
}

// ChatHub serves realtime rooms and direct messages. Rooms map to SignalR
// groups; every registered connection additionally sits in a personal group
// used for notification pushes.
//
// Client-callable methods: Register, JoinRoom, LeaveRoom, SendMessage,
// SendDirect. Server-sent targets: previous_messages, receive_message,
// room_users, new_message, notification.
type ChatHub struct {
	signalr.Hub

	store        store.Store
	publisher    messaging.Publisher
	presence     *PresenceRegistry
	historyLimit int
}

// NewChatHub creates the hub. It is registered as a singleton, so all state
// shared across connections lives in the concurrency-safe presence registry.
func NewChatHub(st store.Store, pub messaging.Publisher, historyLimit int) *ChatHub {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &ChatHub{
		store:        st,
		publisher:    pub,
		presence:     NewPresenceRegistry(),
		historyLimit: historyLimit,
	}
}

// OnConnected is called when a client connects
func (h *ChatHub) OnConnected(connectionID string) {
	logger.Debug("Chat client connected", zap.String("connectionID", connectionID))
}

// OnDisconnected removes the connection from every room it joined and
// refreshes the member lists it was part of
func (h *ChatHub) OnDisconnected(connectionID string) {
	rooms := h.presence.DropConnection(connectionID)
	for _, room := range rooms {
		h.Clients().Group(room).Send("room_users", h.presence.RoomUsers(room))
	}
	logger.Debug("Chat client disconnected",
		zap.String("connectionID", connectionID),
		zap.Int("rooms", len(rooms)),
	)
}

// Register binds the connection to an account and joins its personal group.
// Clients must call this once before any other method.
func (h *ChatHub) Register(userID int64) {
	account, err := h.store.GetAccountByID(context.Background(), userID)
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to load account for chat registration"))
		return
	}
	if account == nil {
		logger.Warn("Chat registration for unknown account", zap.Int64("userID", userID))
		return
	}

	h.Items().Store(identityKey, identity{
		ID:        account.ID,
		Username:  account.Username,
		AuraColor: account.AuraColor,
		AvatarURL: account.AvatarURL,
		Role:      account.Role,
	})

	h.Groups().AddToGroup(domain.PersonalRoom(account.ID), h.ConnectionID())
}

// JoinRoom adds the caller to a room, replays the recent history to it and
// refreshes the room's member list for everyone
func (h *ChatHub) JoinRoom(room string) {
	caller, ok := h.identity()
	if !ok {
		return
	}

	h.Groups().AddToGroup(room, h.ConnectionID())
	h.presence.Join(room, h.ConnectionID(), RoomUser{
		ID:        caller.ID,
		Username:  caller.Username,
		AuraColor: caller.AuraColor,
		AvatarURL: caller.AvatarURL,
	})

	tail, err := h.store.ListRoomTail(context.Background(), room, h.historyLimit)
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to load room history"), zap.String("room", room))
		tail = []schema.Message{}
	}

	h.Clients().Caller().Send("previous_messages", tail)
	h.Clients().Group(room).Send("room_users", h.presence.RoomUsers(room))
}

// LeaveRoom removes the caller from a room and refreshes its member list
func (h *ChatHub) LeaveRoom(room string) {
	h.Groups().RemoveFromGroup(room, h.ConnectionID())
	h.presence.Leave(room, h.ConnectionID())
	h.Clients().Group(room).Send("room_users", h.presence.RoomUsers(room))
}

// SendMessage persists a message and broadcasts it to the room
func (h *ChatHub) SendMessage(room string, text string) {
	caller, ok := h.identity()
	if !ok || text == "" {
		return
	}

	h.deliver(room, text, caller, nil)
}

// SendDirect persists a direct message to the pairwise DM room and pushes a
// notification to the receiver's personal group
func (h *ChatHub) SendDirect(receiverID int64, text string) {
	caller, ok := h.identity()
	if !ok || text == "" || receiverID == caller.ID {
		return
	}

	room := domain.DMRoomKey(caller.ID, receiverID)
	h.deliver(room, text, caller, &receiverID)
}

func (h *ChatHub) deliver(room, text string, caller identity, receiverID *int64) {
	ctx := context.Background()

	msg := &schema.Message{
		Room:      room,
		Username:  caller.Username,
		Text:      text,
		AuraColor: caller.AuraColor,
		AvatarURL: caller.AvatarURL,
		Role:      caller.Role,
		SenderID:  &caller.ID,
		CreatedAt: time.Now(),
	}
	if receiverID != nil {
		msg.ReceiverID = receiverID
	}

	if err := h.store.SaveMessage(ctx, msg); err != nil {
		logger.Error(err, zap.String("message", "Failed to persist chat message"), zap.String("room", room))
		return
	}

	h.Clients().Group(room).Send("receive_message", msg)

	if receiverID != nil {
		personal := domain.PersonalRoom(*receiverID)
		h.Clients().Group(personal).Send("new_message", msg)
		h.Clients().Group(personal).Send("notification", map[string]interface{}{
			"type": "dm",
			"from": caller.Username,
			"room": room,
		})
	}

	if err := h.publisher.PublishChatMessage(ctx, &domain.ChatEvent{
		Room:      room,
		Username:  caller.Username,
		Text:      text,
		SenderID:  &caller.ID,
		Timestamp: msg.CreatedAt,
	}); err != nil {
		// Broker mirroring is best effort; delivery already happened
		logger.Warn("Failed to mirror chat message", zap.String("room", room), zap.Error(err))
	}
}

// identity returns the account registered on the current connection
func (h *ChatHub) identity() (identity, bool) {
	value, ok := h.Items().Load(identityKey)
	if !ok {
		logger.Warn("Chat method called before registration", zap.String("connectionID", h.ConnectionID()))
		return identity{}, false
	}

	caller, ok := value.(identity)
	return caller, ok
}
