package repository

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AlbumRepositoryImpl 专辑仓储实现
type AlbumRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumRepository 创建专辑仓储
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

// Create 创建专辑
func (r *AlbumRepositoryImpl) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var returned string
	err := r.db.QueryRow(ctx, query, album.ID, album.Name, album.Year).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAlbumCreateFailed
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取专辑
func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `SELECT id, name, year FROM albums WHERE id = $1`
	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(&album.ID, &album.Name, &album.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

// ListSongs 获取专辑的歌曲列表
func (r *AlbumRepositoryImpl) ListSongs(ctx context.Context, albumID string) ([]domain.SongSummary, error) {
	query := `SELECT id, title, performer FROM songs WHERE album_id = $1`
	rows, err := r.db.Query(ctx, query, albumID)
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

// Update 更新专辑
func (r *AlbumRepositoryImpl) Update(ctx context.Context, album *domain.Album) error {
	query := `UPDATE albums SET name = $2, year = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// Delete 删除专辑
func (r *AlbumRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM albums WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}
