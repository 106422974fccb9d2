package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/guestwall/guestwall-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func messageColumns() []string {
	return []string{
		"id", "name", "content", "is_approved", "status",
		"location_country", "location_city", "created_at", "updated_at",
		"attachment_count",
	}
}

func TestSetDecisionUpdatesBothColumnsAtomically(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)
	messageID := uuid.New()

	// A single UPDATE carries both stored forms of the state.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages" SET "is_approved"=\$1,"status"=\$2,"updated_at"=\$3 WHERE id = \$4`).
		WithArgs(true, "approved", sqlmock.AnyArg(), messageID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.SetDecision(messageID, models.StateApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDecisionReversal(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)
	messageID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages"`).
		WithArgs(true, "approved", sqlmock.AnyArg(), messageID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages"`).
		WithArgs(false, "rejected", sqlmock.AnyArg(), messageID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.SetDecision(messageID, models.StateApproved))
	require.NoError(t, svc.SetDecision(messageID, models.StateRejected))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDecisionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.SetDecision(uuid.New(), models.StateRejected)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestSetDecisionRejectsNonDecisionStates(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewModerationService(db)

	assert.ErrorIs(t, svc.SetDecision(uuid.New(), models.StatePending), ErrInvalidDecision)
	assert.ErrorIs(t, svc.SetDecision(uuid.New(), models.ModerationState("bogus")), ErrInvalidDecision)
}

func TestListMessagesJoinsAttachmentCounts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)
	now := time.Now()

	rows := sqlmock.NewRows(messageColumns()).
		AddRow(uuid.New().String(), "Ada", "hello", true, "approved", "UK", nil, now, now, int64(2)).
		AddRow(uuid.New().String(), "Grace", "hi there", nil, "pending", nil, nil, now, now, int64(0))
	mock.ExpectQuery(`SELECT messages\.\*, count\(media_files\.id\) AS attachment_count FROM "messages" LEFT JOIN media_files`).
		WillReturnRows(rows)

	messages, err := svc.ListMessages()
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "Ada", messages[0].Name)
	assert.Equal(t, models.StateApproved, messages[0].State())
	assert.True(t, messages[0].HasMedia())

	assert.Equal(t, models.StatePending, messages[1].State())
	assert.False(t, messages[1].HasMedia())
}

// Store state: 5 messages — 2 approved, 1 rejected, 2 pending; 3 with at
// least one attachment; 2 distinct countries.
func TestComputeStatsScenario(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)
	now := time.Now()

	rows := sqlmock.NewRows(messageColumns()).
		AddRow(uuid.New().String(), "a", "m1", true, "approved", "UK", nil, now, now, int64(1)).
		AddRow(uuid.New().String(), "b", "m2", true, "approved", "France", nil, now, now, int64(0)).
		AddRow(uuid.New().String(), "c", "m3", false, "rejected", "UK", nil, now, now, int64(3)).
		AddRow(uuid.New().String(), "d", "m4", nil, "pending", nil, nil, now, now, int64(1)).
		AddRow(uuid.New().String(), "e", "m5", nil, "pending", nil, nil, now, now, int64(0))
	mock.ExpectQuery(`SELECT messages\.\*, count\(media_files\.id\) AS attachment_count FROM "messages"`).
		WillReturnRows(rows)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 3, stats.WithMedia)
	assert.Equal(t, 2, stats.Countries)
	assert.Equal(t, stats.Total, stats.Approved+stats.Pending+stats.Rejected)
}

func TestComputeStatsEmptyStore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)

	mock.ExpectQuery(`SELECT messages\.\*`).WillReturnRows(sqlmock.NewRows(messageColumns()))

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}

func TestComputeStatsCountriesCaseSensitive(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)
	now := time.Now()

	rows := sqlmock.NewRows(messageColumns()).
		AddRow(uuid.New().String(), "a", "m1", nil, "pending", "uk", nil, now, now, int64(0)).
		AddRow(uuid.New().String(), "b", "m2", nil, "pending", "UK", nil, now, now, int64(0)).
		AddRow(uuid.New().String(), "c", "m3", nil, "pending", "", nil, now, now, int64(0))
	mock.ExpectQuery(`SELECT messages\.\*`).WillReturnRows(rows)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	// Exact match: "uk" and "UK" are distinct; empty is not a country.
	assert.Equal(t, 2, stats.Countries)
}

func TestComputeStatsPropagatesStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewModerationService(db)

	mock.ExpectQuery(`SELECT messages\.\*`).WillReturnError(assert.AnError)

	_, err := svc.ComputeStats()
	assert.Error(t, err)
}
