package sqlite

import (
	"time"

	"log/slog"

	"github.com/Dorian509/BackEnd/internal/db"
	"github.com/Dorian509/BackEnd/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.IntakeRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// millis converts an instant to the Unix-millisecond representation stored
// in timestamp columns.
func millis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
