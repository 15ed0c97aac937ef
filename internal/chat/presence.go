package chat

import (
	"sort"
	"sync"
)

// RoomUser is a connected account as shown in a room's member list
type RoomUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AuraColor string `json:"aura_color"`
	AvatarURL string `json:"avatar_url"`
}

// PresenceRegistry tracks which connections are in which rooms. The hub
// serves many connections concurrently, so all access is mutex-guarded.
type PresenceRegistry struct {
	mu sync.RWMutex
	// rooms maps room -> connectionID -> user
	rooms map[string]map[string]RoomUser
	// connections maps connectionID -> set of joined rooms
	connections map[string]map[string]struct{}
}

// NewPresenceRegistry creates an empty registry
func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		rooms:       make(map[string]map[string]RoomUser),
		connections: make(map[string]map[string]struct{}),
	}
}

// Join records a connection entering a room
func (r *PresenceRegistry) Join(room, connectionID string, user RoomUser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[room] == nil {
		r.rooms[room] = make(map[string]RoomUser)
	}
	r.rooms[room][connectionID] = user

	if r.connections[connectionID] == nil {
		r.connections[connectionID] = make(map[string]struct{})
	}
	r.connections[connectionID][room] = struct{}{}
}

// Leave records a connection leaving a room
func (r *PresenceRegistry) Leave(room, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveLocked(room, connectionID)
}

func (r *PresenceRegistry) leaveLocked(room, connectionID string) {
	if members, ok := r.rooms[room]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
	if joined, ok := r.connections[connectionID]; ok {
		delete(joined, room)
		if len(joined) == 0 {
			delete(r.connections, connectionID)
		}
	}
}

// DropConnection removes a connection from every room it joined and returns
// the rooms it was in
func (r *PresenceRegistry) DropConnection(connectionID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	joined := r.connections[connectionID]
	rooms := make([]string, 0, len(joined))
	for room := range joined {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	for _, room := range rooms {
		r.leaveLocked(room, connectionID)
	}

	return rooms
}

// RoomUsers returns the distinct accounts present in a room. An account
// connected twice appears once.
func (r *PresenceRegistry) RoomUsers(room string) []RoomUser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]struct{})
	users := make([]RoomUser, 0, len(r.rooms[room]))
	for _, user := range r.rooms[room] {
		if _, ok := seen[user.ID]; ok {
			continue
		}
		seen[user.ID] = struct{}{}
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users
}
