package repository

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CollaborationRepositoryImpl 协作授权仓储实现
type CollaborationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository 创建协作授权仓储
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &CollaborationRepositoryImpl{db: db}
}

// Create 创建协作授权
func (r *CollaborationRepositoryImpl) Create(ctx context.Context, collaboration *domain.Collaboration) error {
	query := `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var returned string
	err := r.db.QueryRow(ctx, query,
		collaboration.ID,
		collaboration.PlaylistID,
		collaboration.UserID,
	).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCollaborationCreateFailed
		}
		return err
	}
	return nil
}

// Delete 删除协作授权
func (r *CollaborationRepositoryImpl) Delete(ctx context.Context, playlistID, userID string) error {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollaborationNotFound
	}
	return nil
}

// Exists 检查协作授权是否存在
func (r *CollaborationRepositoryImpl) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM collaborations
			WHERE playlist_id = $1 AND user_id = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&exists)
	return exists, err
}
