package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDMRoomKey(t *testing.T) {
	// Order of participants must not matter
	assert.Equal(t, "dm_3_17", DMRoomKey(17, 3))
	assert.Equal(t, "dm_3_17", DMRoomKey(3, 17))
	assert.Equal(t, "dm_5_5", DMRoomKey(5, 5))
}

func TestPersonalRoom(t *testing.T) {
	assert.Equal(t, "user_42", PersonalRoom(42))
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#ffffff", "#000000", "#AaBbCc", "#123abc"}
	for _, c := range valid {
		assert.True(t, IsValidHexColor(c), c)
	}

	invalid := []string{"", "ffffff", "#fff", "#gggggg", "#1234567", "red"}
	for _, c := range invalid {
		assert.False(t, IsValidHexColor(c), c)
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleUser))
	assert.True(t, IsValidRole(RoleStaff))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole(Role("owner")))
}
