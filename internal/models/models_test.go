package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayName(t *testing.T) {
	u := &User{Username: "t1", FullName: "Teacher One"}
	assert.Equal(t, "Teacher One", u.DisplayName())

	u.FullName = ""
	assert.Equal(t, "t1", u.DisplayName())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleTeacher}).IsAdmin())
}

func TestRoomPatchIsEmpty(t *testing.T) {
	assert.True(t, RoomPatch{}.IsEmpty())

	name := "Room A101"
	assert.False(t, RoomPatch{RoomName: &name}.IsEmpty())

	capacity := int64(40)
	assert.False(t, RoomPatch{Capacity: &capacity}.IsEmpty())
}
