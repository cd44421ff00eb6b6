package service

import (
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	messages []string
}

func (b *recordingBroadcaster) Broadcast(message string) {
	b.messages = append(b.messages, message)
}

func TestNotificationService_Announce(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	broadcaster := &recordingBroadcaster{}
	svc := NewNotificationService(repository.NewNotificationRepository(testDB), broadcaster)

	notification, err := svc.Announce("Kargo kampanyasi basladi")
	require.NoError(t, err)
	assert.NotZero(t, notification.ID)
	assert.Equal(t, []string{"Kargo kampanyasi basladi"}, broadcaster.messages)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kargo kampanyasi basladi", list[0].Message)
	assert.False(t, list[0].IsRead)
}
