package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceJoinLeave(t *testing.T) {
	reg := NewPresenceRegistry()

	alice := RoomUser{ID: 1, Username: "alice"}
	bob := RoomUser{ID: 2, Username: "bob"}

	reg.Join("global", "conn-a", alice)
	reg.Join("global", "conn-b", bob)

	users := reg.RoomUsers("global")
	assert.Equal(t, []RoomUser{alice, bob}, users)

	reg.Leave("global", "conn-a")
	assert.Equal(t, []RoomUser{bob}, reg.RoomUsers("global"))

	assert.Empty(t, reg.RoomUsers("empty"))
}

func TestPresenceDeduplicatesAccounts(t *testing.T) {
	reg := NewPresenceRegistry()

	alice := RoomUser{ID: 1, Username: "alice"}
	// Same account from two tabs
	reg.Join("global", "conn-a", alice)
	reg.Join("global", "conn-b", alice)

	assert.Len(t, reg.RoomUsers("global"), 1)

	// One tab closes, alice is still present
	reg.Leave("global", "conn-a")
	assert.Len(t, reg.RoomUsers("global"), 1)
}

func TestPresenceDropConnection(t *testing.T) {
	reg := NewPresenceRegistry()

	alice := RoomUser{ID: 1, Username: "alice"}
	reg.Join("global", "conn-a", alice)
	reg.Join("dm_1_2", "conn-a", alice)
	reg.Join("global", "conn-b", RoomUser{ID: 2, Username: "bob"})

	rooms := reg.DropConnection("conn-a")
	assert.Equal(t, []string{"dm_1_2", "global"}, rooms)

	assert.Len(t, reg.RoomUsers("global"), 1)
	assert.Empty(t, reg.RoomUsers("dm_1_2"))

	// Dropping an unknown connection is a no-op
	assert.Empty(t, reg.DropConnection("conn-x"))
}
