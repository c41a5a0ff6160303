package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

// Helper to set up a mock DB and collection
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresCollection[models.FeedingRecord]) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock, NewPostgresCollection[models.FeedingRecord](db, "feedings", zap.NewNop())
}

func feeding(id int64, deleted bool) models.FeedingRecord {
	state := models.Active
	if deleted {
		state = models.Deleted
	}
	return models.FeedingRecord{
		ID:        id,
		Timestamp: models.NewTimestamp(time.UnixMilli(id)),
		Type:      models.CatCan,
		State:     state,
	}
}

func TestLoad(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT body FROM cat_records WHERE resource = \$1 ORDER BY position;`).
		WithArgs("feedings").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"id":2,"timestamp":"2024-01-02T09:00:00.000Z","type":"Cat Food","deleted":false}`)).
			AddRow([]byte(`{"id":1,"timestamp":"2024-01-01T08:00:00.000Z","type":"Cat Can","deleted":true}`)))

	records := repo.Load(context.Background())

	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, models.CatFood, records[0].Type)
	assert.True(t, records[1].State.IsDeleted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_QueryErrorYieldsEmpty(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT body FROM cat_records`).
		WillReturnError(errors.New("connection refused"))

	records := repo.Load(context.Background())

	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	existing := feeding(1, false)
	created := feeding(2, false)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\);`).
		WithArgs("feedings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT body FROM cat_records`).
		WithArgs("feedings").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"id":1,"timestamp":"1970-01-01T00:00:00.001Z","type":"Cat Can","deleted":false}`)))
	mock.ExpectExec(`DELETE FROM cat_records WHERE resource = \$1;`).
		WithArgs("feedings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO cat_records`).
		WithArgs("feedings", int64(2), 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO cat_records`).
		WithArgs("feedings", int64(1), 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), func(rs []models.FeedingRecord) ([]models.FeedingRecord, error) {
		require.Equal(t, []models.FeedingRecord{existing}, rs)
		return append([]models.FeedingRecord{created}, rs...), nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_CallbackErrorRollsBack(t *testing.T) {
	_, mock, repo := setupMockDB(t)
	errNotFound := errors.New("not found")

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT body FROM cat_records`).WillReturnRows(sqlmock.NewRows([]string{"body"}))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), func(rs []models.FeedingRecord) ([]models.FeedingRecord, error) {
		return nil, errNotFound
	})

	assert.ErrorIs(t, err, errNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UniqueViolation(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT body FROM cat_records`).WillReturnRows(sqlmock.NewRows([]string{"body"}))
	mock.ExpectExec(`DELETE FROM cat_records`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO cat_records`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO cat_records`).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Update(context.Background(), func(rs []models.FeedingRecord) ([]models.FeedingRecord, error) {
		return []models.FeedingRecord{feeding(5, false), feeding(5, false)}, nil
	})

	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_WriteError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT body FROM cat_records`).WillReturnRows(sqlmock.NewRows([]string{"body"}))
	mock.ExpectExec(`DELETE FROM cat_records`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), func(rs []models.FeedingRecord) ([]models.FeedingRecord, error) {
		return []models.FeedingRecord{feeding(1, false)}, nil
	})

	assert.ErrorIs(t, err, storage.ErrWrite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresCollection[models.Message](db, "messages", zap.NewNop())
	mock.ExpectPing()

	assert.NoError(t, repo.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
