package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNoAuth is returned when no Strava account has been linked yet.
var ErrNoAuth = errors.New("no strava account linked")

// GetAuth returns the linked Strava account's OAuth tokens. The app is
// single-user, so the auth table holds at most one row.
func (db *DB) GetAuth() (*Auth, error) {
	var auth Auth
	var expiresUnix int64
	err := db.QueryRow(`
		SELECT athlete_id, access_token, refresh_token, expires_at
		FROM auth WHERE id = 1
	`).Scan(&auth.AthleteID, &auth.AccessToken, &auth.RefreshToken, &expiresUnix)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, err
	}
	auth.ExpiresAt = time.Unix(expiresUnix, 0)
	return &auth, nil
}

// SaveAuth links a Strava account, replacing any previously linked one.
func (db *DB) SaveAuth(auth *Auth) error {
	_, err := db.Exec(`
		INSERT INTO auth (id, athlete_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP
	`, auth.AthleteID, auth.AccessToken, auth.RefreshToken, auth.ExpiresAt.Unix())
	return err
}

// UpdateTokens persists rotated tokens after an OAuth refresh. Strava
// may issue a new refresh token alongside the access token, so both are
// replaced. Returns ErrNoAuth if no account was ever linked.
func (db *DB) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	result, err := db.Exec(`
		UPDATE auth
		SET access_token = ?, refresh_token = ?, expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, accessToken, refreshToken, expiresAt.Unix())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoAuth
	}
	return nil
}
