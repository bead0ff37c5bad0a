package repository

import (
	"context"
	"time"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthRepositoryImpl 刷新令牌仓储实现
type AuthRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAuthRepository 创建刷新令牌仓储
func NewAuthRepository(db *pgxpool.Pool) AuthRepository {
	return &AuthRepositoryImpl{db: db}
}

// Store 保存刷新令牌
func (r *AuthRepositoryImpl) Store(ctx context.Context, token *domain.RefreshToken) error {
	query := `
		INSERT INTO authentications (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, token.Token, token.UserID, token.CreatedAt)
	return err
}

// Exists 检查刷新令牌是否有效
func (r *AuthRepositoryImpl) Exists(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authentications WHERE token = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, token).Scan(&exists)
	return exists, err
}

// Delete 删除刷新令牌
func (r *AuthRepositoryImpl) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM authentications WHERE token = $1`
	tag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRefreshTokenInvalid
	}
	return nil
}

// DeleteCreatedBefore 删除早于给定时间创建的刷新令牌
func (r *AuthRepositoryImpl) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM authentications WHERE created_at < $1`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
