package repository

const (
	createJobQuery = `INSERT INTO jobs (user_id, source_file_id, title, description, tags, hashtags, thumbnail_key, first_comment, scheduled_time, status)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending') RETURNING *`

	getJobByIDQuery = `SELECT job_id, user_id, source_file_id, title, description, tags, hashtags, thumbnail_key, first_comment,
						scheduled_time, status, video_id, error_message, created_at, updated_at
					FROM jobs WHERE job_id = $1`

	getTotalJobsQuery = `SELECT COUNT(job_id) FROM jobs WHERE user_id = $1 AND ($2 = '' OR status = $2::job_status)`

	listJobsQuery = `SELECT job_id, user_id, source_file_id, title, description, tags, hashtags, thumbnail_key, first_comment,
						scheduled_time, status, video_id, error_message, created_at, updated_at
					FROM jobs WHERE user_id = $1 AND ($2 = '' OR status = $2::job_status)
					ORDER BY scheduled_time DESC OFFSET $3 LIMIT $4`

	updatePendingQuery = `UPDATE jobs
					SET title = COALESCE(NULLIF($1, ''), title),
					    description = COALESCE(NULLIF($2, ''), description),
					    updated_at = now()
					WHERE job_id = $3 AND status = 'pending'
					RETURNING *`

	setThumbnailKeyQuery = `UPDATE jobs SET thumbnail_key = $1, updated_at = now()
					WHERE job_id = $2 AND status = 'pending'`

	deletePendingQuery = `DELETE FROM jobs WHERE job_id = $1 AND user_id = $2 AND status = 'pending'`

	countByStatusQuery = `SELECT COUNT(job_id) FROM jobs WHERE status = $1`

	getNextDueQuery = `SELECT job_id, user_id, source_file_id, title, description, tags, hashtags, thumbnail_key, first_comment,
						scheduled_time, status, video_id, error_message, created_at, updated_at
					FROM jobs WHERE status = 'pending' AND scheduled_time <= $1
					ORDER BY scheduled_time ASC LIMIT 1`

	markUploadingQuery = `UPDATE jobs SET status = 'uploading', updated_at = now()
					WHERE job_id = $1 AND status = 'pending'`

	markDoneQuery = `UPDATE jobs SET status = 'done', video_id = $2, error_message = '', updated_at = now()
					WHERE job_id = $1`

	markFailedQuery = `UPDATE jobs SET status = 'failed', error_message = $2, updated_at = now()
					WHERE job_id = $1`

	resetInterruptedQuery = `UPDATE jobs SET status = 'pending', error_message = $1, updated_at = now()
					WHERE status = 'uploading'`
)
