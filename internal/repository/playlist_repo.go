package repository

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistRepositoryImpl 歌单仓储实现
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository 创建歌单仓储
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create 创建歌单
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var returned string
	err := r.db.QueryRow(ctx, query, playlist.ID, playlist.Name, playlist.OwnerID).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPlaylistCreateFailed
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取歌单
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `SELECT id, name, owner FROM playlists WHERE id = $1`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// GetWithOwner 获取歌单及所有者用户名
func (r *PlaylistRepositoryImpl) GetWithOwner(ctx context.Context, id string) (*domain.PlaylistSummary, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		INNER JOIN users ON playlists.owner = users.id
		WHERE playlists.id = $1
	`
	var summary domain.PlaylistSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&summary.ID,
		&summary.Name,
		&summary.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// ListForUser 获取用户可见的歌单（本人拥有或被授权协作，单次外连接查询去重）
func (r *PlaylistRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	query := `
		SELECT DISTINCT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON playlists.owner = users.id
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []domain.PlaylistSummary{}
	for rows.Next() {
		var summary domain.PlaylistSummary
		err := rows.Scan(&summary.ID, &summary.Name, &summary.Username)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, summary)
	}
	return playlists, rows.Err()
}

// Delete 删除歌单（级联删除歌曲关联、协作授权与操作记录）
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM playlists WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
