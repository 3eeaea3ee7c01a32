package service

import (
	"testing"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"
	"learning_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice", model.Student)
	bob := testutil.CreateUser(t, e.db, "bob", model.Student)

	notifier := NewNotifier(e.notifications, e.mailer)
	require.True(t, notifier.Notify(alice.ID, "first"))
	require.True(t, notifier.Notify(alice.ID, "second"))
	require.True(t, notifier.Notify(bob.ID, "bob's"))

	list, err := e.notification.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = e.notification.MarkRead(bob.ID, list[0].ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	read, err := e.notification.MarkRead(alice.ID, list[0].ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	count, err := e.notification.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := e.notification.MarkAllRead(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	count, err = e.notification.UnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotifier_EmailFailureReported(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice", model.Student)
	notifier := NewNotifier(e.notifications, e.mailer)

	assert.True(t, notifier.Email(t.Context(), alice, "subject", "body"))
	e.mailer.fail = true
	assert.False(t, notifier.Email(t.Context(), alice, "subject", "body"))
	assert.False(t, notifier.Email(t.Context(), nil, "subject", "body"))
}
