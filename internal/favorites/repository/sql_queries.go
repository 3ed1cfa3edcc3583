package repository

const (
	addFavoriteQuery = `INSERT INTO favorites (user_id, source_file_id, file_name, mime_type)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (user_id, source_file_id) DO UPDATE SET file_name = EXCLUDED.file_name, mime_type = EXCLUDED.mime_type
					RETURNING *`

	getTotalFavoritesQuery = `SELECT COUNT(favorite_id) FROM favorites WHERE user_id = $1`

	listFavoritesQuery = `SELECT favorite_id, user_id, source_file_id, file_name, mime_type, created_at
					FROM favorites WHERE user_id = $1
					ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	deleteFavoriteQuery = `DELETE FROM favorites WHERE user_id = $1 AND source_file_id = $2`
)
