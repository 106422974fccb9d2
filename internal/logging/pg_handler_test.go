package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLogDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func errorRecord(msg string) slog.Record {
	return slog.NewRecord(time.Now(), slog.LevelError, msg, 0)
}

func TestPGHandlerOnlyAcceptsErrors(t *testing.T) {
	db, _ := newLogDB(t)
	h := NewPGHandler(db)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPGHandlerMapsKnownAttrs(t *testing.T) {
	db, _ := newLogDB(t)
	h := NewPGHandler(db)

	r := errorRecord("session verification failed")
	r.AddAttrs(
		slog.String("action", "session_verify"),
		slog.String("error", "connection refused"),
		slog.String("request_ip", "10.0.0.1"),
	)
	require.NoError(t, h.Handle(context.Background(), r))

	h.mu.Lock()
	require.Len(t, h.buffer, 1)
	entry := h.buffer[0]
	h.mu.Unlock()

	assert.Equal(t, "session verification failed", entry.Message)
	assert.Equal(t, "session_verify", entry.Action)
	assert.Equal(t, "connection refused", entry.Error)
	assert.JSONEq(t, `{"request_ip":"10.0.0.1"}`, string(entry.Extra))
}

// Stop must not return before the buffered batch has been written; shutdown
// relies on that to not lose the last records.
func TestStopDrainsBufferBeforeReturning(t *testing.T) {
	db, mock := newLogDB(t)
	h := NewPGHandler(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "system_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	require.NoError(t, h.Handle(context.Background(), errorRecord("boom")))
	h.Stop()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopWithEmptyBuffer(t *testing.T) {
	db, mock := newLogDB(t)
	h := NewPGHandler(db)

	h.Stop()
	assert.NoError(t, mock.ExpectationsWereMet())
}
