package repository

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistSongRepositoryImpl 歌单歌曲仓储实现
//
// 歌曲关联的写入与操作记录的追加在同一事务内完成，
// 避免出现有关联无记录的中间状态。
type PlaylistSongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistSongRepository 创建歌单歌曲仓储
func NewPlaylistSongRepository(db *pgxpool.Pool) PlaylistSongRepository {
	return &PlaylistSongRepositoryImpl{db: db}
}

// AddWithActivity 添加歌曲到歌单并追加操作记录
func (r *PlaylistSongRepositoryImpl) AddWithActivity(ctx context.Context, ps *domain.PlaylistSong, activity *domain.Activity) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO playlist_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var returned string
	err = tx.QueryRow(ctx, query, ps.ID, ps.PlaylistID, ps.SongID).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return domain.ErrPlaylistSongCreateFailed
		}
		return err
	}

	if err := insertActivity(ctx, tx, activity); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RemoveWithActivity 从歌单移除歌曲并追加操作记录
func (r *PlaylistSongRepositoryImpl) RemoveWithActivity(ctx context.Context, playlistID, songID string, activity *domain.Activity) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := tx.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotInPlaylist
	}

	if err := insertActivity(ctx, tx, activity); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListSongs 获取歌单的所有歌曲
func (r *PlaylistSongRepositoryImpl) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	query := `
		SELECT songs.id, songs.title, songs.performer
		FROM playlist_songs
		LEFT JOIN songs ON playlist_songs.song_id = songs.id
		WHERE playlist_songs.playlist_id = $1
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []domain.SongSummary{}
	for rows.Next() {
		var song domain.SongSummary
		err := rows.Scan(&song.ID, &song.Title, &song.Performer)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// insertActivity 在事务内追加一条操作记录
func insertActivity(ctx context.Context, tx pgx.Tx, activity *domain.Activity) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var returned string
	err := tx.QueryRow(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrActivityCreateFailed
		}
		return err
	}
	return nil
}
