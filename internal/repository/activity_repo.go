package repository

import (
	"context"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepositoryImpl 歌单操作记录仓储实现
type ActivityRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewActivityRepository 创建操作记录仓储
func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// ListByPlaylist 获取歌单的操作记录（按时间升序）
func (r *ActivityRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	query := `
		SELECT users.username, songs.title, playlist_song_activities.action, playlist_song_activities.time
		FROM playlist_song_activities
		LEFT JOIN users ON playlist_song_activities.user_id = users.id
		LEFT JOIN songs ON playlist_song_activities.song_id = songs.id
		WHERE playlist_song_activities.playlist_id = $1
		ORDER BY playlist_song_activities.time ASC
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.ActivityEntry{}
	for rows.Next() {
		var entry domain.ActivityEntry
		err := rows.Scan(&entry.Username, &entry.Title, &entry.Action, &entry.Time)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
