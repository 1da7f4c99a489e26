package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dorian509/BackEnd/pkg/models"
)

func (r *SQLiteRepo) CreateProfile(ctx context.Context, p *models.Profile) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("profile is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO user_profiles (name, email, password_hash, weight_kg, activity_level, climate, timezone, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Email, p.PasswordHash, p.WeightKg, string(p.ActivityLevel), string(p.Climate), p.Timezone, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, weight_kg, activity_level, climate, timezone FROM user_profiles WHERE id = ?`, id)
	return scanProfile(row)
}

func (r *SQLiteRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, weight_kg, activity_level, climate, timezone FROM user_profiles WHERE email = ?`, email)
	return scanProfile(row)
}

func (r *SQLiteRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM user_profiles WHERE email = ?`, email)
	var cnt int
	if err := row.Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *SQLiteRepo) UpdateProfile(ctx context.Context, p *models.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE user_profiles SET name = ?, email = ?, password_hash = ?, weight_kg = ?, activity_level = ?, climate = ?, timezone = ?, updated = ? WHERE id = ?`,
		p.Name, p.Email, p.PasswordHash, p.WeightKg, string(p.ActivityLevel), string(p.Climate), p.Timezone, now(), p.ID)
	return err
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var p models.Profile
	var level, climate string
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.WeightKg, &level, &climate, &p.Timezone); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	p.ActivityLevel = models.ActivityLevel(level)
	p.Climate = models.Climate(climate)
	return &p, nil
}
