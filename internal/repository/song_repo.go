package repository

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SongRepositoryImpl 歌曲仓储实现
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository 创建歌曲仓储
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create 创建歌曲
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, year, performer, genre, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var returned string
	err := r.db.QueryRow(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Performer,
		song.Genre,
		song.Duration,
		song.AlbumID,
	).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSongCreateFailed
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取歌曲
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, year, performer, genre, duration, album_id
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Year,
		&song.Performer,
		&song.Genre,
		&song.Duration,
		&song.AlbumID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}
	return &song, nil
}

// List 按标题与演唱者模糊筛选歌曲
func (r *SongRepositoryImpl) List(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	query := `
		SELECT id, title, performer
		FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
	`
	rows, err := r.db.Query(ctx, query, title, performer)
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

// Update 更新歌曲
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, performer = $4, genre = $5, duration = $6, album_id = $7
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Performer,
		song.Genre,
		song.Duration,
		song.AlbumID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Delete 删除歌曲
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM songs WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Exists 检查歌曲是否存在
func (r *SongRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM songs WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
