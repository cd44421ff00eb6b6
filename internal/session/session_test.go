package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return New("test-session", Data{}, true)
}

func TestSession_CartAdd_NewItem(t *testing.T) {
	s := newTestSession()

	s.CartAdd(12)

	assert.Equal(t, map[string]int{"12": 1}, s.CartItems())
	assert.True(t, s.Modified())
}

func TestSession_CartAdd_SameBookTwiceMerges(t *testing.T) {
	s := newTestSession()

	s.CartAdd(12)
	s.CartAdd(12)

	// One entry with quantity 2, never two entries
	assert.Equal(t, map[string]int{"12": 2}, s.CartItems())
}

func TestSession_CartIncreaseDecrease(t *testing.T) {
	s := newTestSession()

	s.CartAdd(7)
	s.CartIncrease(7)
	assert.Equal(t, 2, s.CartItems()["7"])

	s.CartDecrease(7)
	assert.Equal(t, 1, s.CartItems()["7"])
}

func TestSession_CartDecrease_AtOneRemovesEntry(t *testing.T) {
	s := newTestSession()

	s.CartAdd(7)
	s.CartDecrease(7)

	_, exists := s.CartItems()["7"]
	assert.False(t, exists)
}

func TestSession_CartDecrease_AbsentIsNoop(t *testing.T) {
	s := newTestSession()

	s.CartDecrease(99)

	assert.Empty(t, s.CartItems())
	assert.False(t, s.Modified())
}

func TestSession_CartIncrease_AbsentIsNoop(t *testing.T) {
	s := newTestSession()

	s.CartIncrease(99)

	assert.Empty(t, s.CartItems())
	assert.False(t, s.Modified())
}

func TestSession_CartRemove(t *testing.T) {
	s := newTestSession()

	s.CartAdd(5)
	s.CartAdd(5)
	s.CartRemove(5)

	assert.Empty(t, s.CartItems())
}

func TestSession_QuantitiesAlwaysPositive(t *testing.T) {
	s := newTestSession()

	// Arbitrary mutation sequence; no entry may ever hold qty <= 0
	s.CartAdd(1)
	s.CartAdd(2)
	s.CartDecrease(1)
	s.CartDecrease(1)
	s.CartDecrease(2)
	s.CartIncrease(2)
	s.CartAdd(3)
	s.CartRemove(3)
	s.CartDecrease(3)

	for id, qty := range s.CartItems() {
		assert.Greater(t, qty, 0, "book %s has non-positive quantity", id)
	}
}

func TestSession_CartCount(t *testing.T) {
	s := newTestSession()

	s.CartAdd(1)
	s.CartAdd(1)
	s.CartAdd(2)

	assert.Equal(t, 3, s.CartCount())
}

func TestSession_Flashes(t *testing.T) {
	s := newTestSession()

	s.AddFlash(FlashSuccess, "Added to cart!")
	s.AddFlash(FlashWarning, "Stock is low")

	flashes := s.ConsumeFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, FlashSuccess, flashes[0].Level)

	// Consumed flashes do not reappear
	assert.Nil(t, s.ConsumeFlashes())
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	s.SetUser(5, "Test User", "customer")
	s.CartAdd(1)

	s.Reset()

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.CartItems())
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	data := Data{UserID: 5, Cart: map[string]int{"12": 2, "7": 1}}
	require.NoError(t, store.Save(ctx, "sid-1", data, time.Minute))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "sid-1"))
	_, err = store.Get(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", Data{UserID: 1}, time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
