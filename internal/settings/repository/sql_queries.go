package repository

const (
	getSettingQuery = `SELECT key, value, updated_at FROM settings WHERE key = $1`

	upsertSettingQuery = `INSERT INTO settings (key, value, updated_at)
					VALUES ($1, $2, now())
					ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
					RETURNING *`
)
