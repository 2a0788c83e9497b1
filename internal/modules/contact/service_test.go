package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeNotifier struct {
	calls []Message
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, m Message) error {
	f.calls = append(f.calls, m)
	return f.err
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE contact_messages (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT DEFAULT 'unread',
		responded_at DATETIME,
		created_at DATETIME
	)`).Error)
	return db
}

func sampleInput() SubmitInput {
	return SubmitInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Collaboration",
		Body:      "Hello!",
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(testDB(t), notifier)

	m, err := svc.Submit(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, StatusUnread, m.Status)
	assert.NotEmpty(t, m.ID)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, m.ID, notifier.calls[0].ID)

	items, err := svc.Inbox(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ada@example.com", items[0].Email)
}

func TestSubmitSucceedsWhenNotifierFails(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("mail relay down")}
	svc := NewService(testDB(t), notifier)

	m, err := svc.Submit(context.Background(), sampleInput())
	require.NoError(t, err)

	// The message made it into the inbox regardless.
	got, err := svc.View(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestSubmitFailsWhenPersistenceFails(t *testing.T) {
	db := testDB(t)
	notifier := &fakeNotifier{}
	svc := NewService(db, notifier)

	require.NoError(t, db.Exec(`DROP TABLE contact_messages`).Error)

	_, err := svc.Submit(context.Background(), sampleInput())
	require.Error(t, err)
	assert.Empty(t, notifier.calls, "no notification without a stored message")
}

func TestInboxNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()

	older, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)
	require.NoError(t, db.Model(&Message{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)

	items, err := svc.Inbox(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)
}

func TestViewMarksUnreadAsRead(t *testing.T) {
	svc := NewService(testDB(t), nil)
	ctx := context.Background()

	m, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)

	got, err := svc.View(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRead, got.Status)
	assert.Nil(t, got.RespondedAt, "viewing never marks a message responded")

	// A second view leaves the status alone.
	got, err = svc.View(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRead, got.Status)
}

func TestViewMissing(t *testing.T) {
	svc := NewService(testDB(t), nil)

	_, err := svc.View(context.Background(), "missing")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestMarkResponded(t *testing.T) {
	svc := NewService(testDB(t), nil)
	ctx := context.Background()

	m, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)

	got, err := svc.MarkResponded(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusResponded, got.Status)
	require.NotNil(t, got.RespondedAt)
	first := *got.RespondedAt

	// Marking again keeps the original timestamp.
	got, err = svc.MarkResponded(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RespondedAt)
	assert.WithinDuration(t, first, *got.RespondedAt, time.Second)
}

func TestUnreadCount(t *testing.T) {
	svc := NewService(testDB(t), nil)
	ctx := context.Background()

	m1, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, sampleInput())
	require.NoError(t, err)

	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.View(ctx, m1.ID)
	require.NoError(t, err)

	n, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDelete(t *testing.T) {
	svc := NewService(testDB(t), nil)
	ctx := context.Background()

	m, err := svc.Submit(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	err = svc.Delete(ctx, m.ID)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}
