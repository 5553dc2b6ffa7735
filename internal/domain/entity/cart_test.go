package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartOwner_Variants(t *testing.T) {
	userID := uuid.New()

	guest := GuestOwner("session-123")
	assert.True(t, guest.IsGuest())
	assert.Equal(t, uuid.Nil, guest.UserID())
	assert.Equal(t, "session-123", guest.SessionID())
	assert.Equal(t, "guest:session-123", guest.Key())

	user := AuthenticatedOwner(userID)
	assert.False(t, user.IsGuest())
	assert.Equal(t, userID, user.UserID())
	assert.Empty(t, user.SessionID())
	assert.Equal(t, "user:"+userID.String(), user.Key())
}

func TestCart_Totals(t *testing.T) {
	cart := &Cart{
		Lines: []*CartLine{
			{ProductID: 1, Size: "M", Quantity: 2, Product: ProductSnapshot{Price: 499}},
			{ProductID: 2, Size: "L", Quantity: 1, Product: ProductSnapshot{Price: 1299}},
		},
	}

	assert.False(t, cart.IsEmpty())
	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 2297, cart.TotalPrice(), 1e-9)

	empty := &Cart{}
	assert.True(t, empty.IsEmpty())
	assert.Zero(t, empty.TotalItems())
	assert.Zero(t, empty.TotalPrice())
}

func TestCart_FindLine(t *testing.T) {
	line := &CartLine{ID: "line-1", ProductID: 7, Size: "S", Quantity: 1}
	cart := &Cart{Lines: []*CartLine{line}}

	found := cart.FindLine(7, "S")
	require.NotNil(t, found)
	assert.Equal(t, "line-1", found.ID)

	assert.Nil(t, cart.FindLine(7, "M"))
	assert.Nil(t, cart.FindLine(8, "S"))
}

func TestNewGuestLineID(t *testing.T) {
	id := NewGuestLineID()
	assert.True(t, strings.HasPrefix(id, "guest-"))
	assert.NotEqual(t, id, NewGuestLineID())
}
