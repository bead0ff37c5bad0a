package repository

import (
	"context"
	"errors"
	"time"

	"github.com/openmusic/server/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation 判断是否为唯一约束冲突
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// AlbumRepository 专辑仓储接口
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	ListSongs(ctx context.Context, albumID string) ([]domain.SongSummary, error)
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, id string) error
}

// SongRepository 歌曲仓储接口
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context, title, performer string) ([]domain.SongSummary, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// AuthRepository 刷新令牌仓储接口
type AuthRepository interface {
	Store(ctx context.Context, token *domain.RefreshToken) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PlaylistRepository 歌单仓储接口
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	GetWithOwner(ctx context.Context, id string) (*domain.PlaylistSummary, error)
	ListForUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error)
	Delete(ctx context.Context, id string) error
}

// CollaborationRepository 协作授权仓储接口
type CollaborationRepository interface {
	Create(ctx context.Context, collaboration *domain.Collaboration) error
	Delete(ctx context.Context, playlistID, userID string) error
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}

// PlaylistSongRepository 歌单歌曲仓储接口（同时负责操作记录的追加）
type PlaylistSongRepository interface {
	AddWithActivity(ctx context.Context, ps *domain.PlaylistSong, activity *domain.Activity) error
	RemoveWithActivity(ctx context.Context, playlistID, songID string, activity *domain.Activity) error
	ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error)
}

// ActivityRepository 歌单操作记录查询接口
type ActivityRepository interface {
	ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error)
}
