package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dorian509/BackEnd/pkg/models"
)

func (r *SQLiteRepo) CreateIntake(ctx context.Context, e *models.IntakeEvent) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("intake event is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO intake_events (user_id, volume_ml, source, timestamp_utc) VALUES (?, ?, ?, ?)`,
		e.UserID, e.VolumeMl, string(e.Source), millis(e.TimestampUTC))
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// SumVolumeInRange totals volume_ml over the half-open window [start, end).
func (r *SQLiteRepo) SumVolumeInRange(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	row := r.conn.QueryRow(ctx, `SELECT COALESCE(SUM(volume_ml), 0) FROM intake_events WHERE user_id = ? AND timestamp_utc >= ? AND timestamp_utc < ?`,
		userID, millis(start), millis(end))
	var sum int
	if err := row.Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *SQLiteRepo) FindInRange(ctx context.Context, userID int64, start, end time.Time) ([]models.IntakeEvent, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, volume_ml, source, timestamp_utc FROM intake_events WHERE user_id = ? AND timestamp_utc >= ? AND timestamp_utc < ? ORDER BY timestamp_utc ASC`,
		userID, millis(start), millis(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIntakes(rows)
}

func (r *SQLiteRepo) FindRecent(ctx context.Context, userID int64, limit int) ([]models.IntakeEvent, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, volume_ml, source, timestamp_utc FROM intake_events WHERE user_id = ? ORDER BY timestamp_utc DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIntakes(rows)
}

func (r *SQLiteRepo) IntakeExists(ctx context.Context, id int64) (bool, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM intake_events WHERE id = ?`, id)
	var cnt int
	if err := row.Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *SQLiteRepo) DeleteIntake(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM intake_events WHERE id = ?`, id)
	return err
}

func scanIntakes(rows *sql.Rows) ([]models.IntakeEvent, error) {
	var out []models.IntakeEvent
	for rows.Next() {
		var e models.IntakeEvent
		var source string
		var ts int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.VolumeMl, &source, &ts); err != nil {
			return nil, err
		}

		e.Source = models.IntakeSource(source)
		e.TimestampUTC = time.UnixMilli(ts).UTC()
		out = append(out, e)
	}

	return out, rows.Err()
}
