package store

const (
	saveLocalSession = `
INSERT INTO local_session (id, uid, email, display_name, photo_url, sealed_tokens, expires_at, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    uid           = excluded.uid,
    email         = excluded.email,
    display_name  = excluded.display_name,
    photo_url     = excluded.photo_url,
    sealed_tokens = excluded.sealed_tokens,
    expires_at    = excluded.expires_at,
    updated_at    = excluded.updated_at`

	loadLocalSession = `SELECT uid, email, display_name, photo_url, sealed_tokens, expires_at FROM local_session WHERE id = 1`

	clearLocalSession = `DELETE FROM local_session`

	getPreference = `SELECT value FROM preferences WHERE key = ?`

	setPreference = `
INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET
    value      = excluded.value,
    updated_at = excluded.updated_at`
)
