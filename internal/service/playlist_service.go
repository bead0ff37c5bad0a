package service

import (
	"context"
	"errors"
	"time"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/id"
)

// CollaborationVerifier 协作授权校验接口
type CollaborationVerifier interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// PlaylistService 歌单服务
type PlaylistService struct {
	playlistRepo     repository.PlaylistRepository
	playlistSongRepo repository.PlaylistSongRepository
	activityRepo     repository.ActivityRepository
	collaborations   CollaborationVerifier
}

// NewPlaylistService 创建歌单服务
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	activityRepo repository.ActivityRepository,
	collaborations CollaborationVerifier,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo:     playlistRepo,
		playlistSongRepo: playlistSongRepo,
		activityRepo:     activityRepo,
		collaborations:   collaborations,
	}
}

// AddPlaylist 创建歌单
func (s *PlaylistService) AddPlaylist(ctx context.Context, name, ownerID string) (string, error) {
	playlist := &domain.Playlist{
		ID:      id.New("playlist"),
		Name:    name,
		OwnerID: ownerID,
	}
	if err := playlist.Validate(); err != nil {
		return "", err
	}

	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return "", err
	}
	return playlist.ID, nil
}

// GetPlaylists 获取用户可见的歌单列表（拥有或协作）
func (s *PlaylistService) GetPlaylists(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	return s.playlistRepo.ListForUser(ctx, userID)
}

// DeletePlaylist 删除歌单
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID string) error {
	return s.playlistRepo.Delete(ctx, playlistID)
}

// VerifyPlaylistID 校验歌单是否存在
func (s *PlaylistService) VerifyPlaylistID(ctx context.Context, playlistID string) error {
	_, err := s.playlistRepo.GetByID(ctx, playlistID)
	return err
}

// VerifyPlaylistOwner 校验用户是否为歌单所有者
func (s *PlaylistService) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != userID {
		return domain.ErrNotPlaylistOwner
	}
	return nil
}

// VerifyPlaylistAccess 校验用户对歌单的访问权限（所有者或协作者）。
//
// 判定顺序是固定约定：
//  1. 歌单不存在（或所有者检查出现意外错误）直接返回，协作检查不再进行；
//  2. 非所有者时回退到协作授权检查，通过则放行；
//  3. 协作检查无论因何失败，对外仍返回先前的所有者权限错误。
func (s *PlaylistService) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	ownerErr := s.VerifyPlaylistOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return nil
	}
	if !errors.Is(ownerErr, domain.ErrNotPlaylistOwner) {
		return ownerErr
	}
	if err := s.collaborations.VerifyCollaborator(ctx, playlistID, userID); err != nil {
		return ownerErr
	}
	return nil
}

// AddPlaylistSong 添加歌曲到歌单并记录操作
func (s *PlaylistService) AddPlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	ps := &domain.PlaylistSong{
		ID:         id.New("playlist-song"),
		PlaylistID: playlistID,
		SongID:     songID,
	}
	if err := ps.Validate(); err != nil {
		return err
	}

	activity := &domain.Activity{
		ID:         id.New("activity"),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     domain.ActivityActionAdd,
		Time:       time.Now(),
	}
	return s.playlistSongRepo.AddWithActivity(ctx, ps, activity)
}

// DeletePlaylistSong 从歌单移除歌曲并记录操作
func (s *PlaylistService) DeletePlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	activity := &domain.Activity{
		ID:         id.New("activity"),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     domain.ActivityActionDelete,
		Time:       time.Now(),
	}
	return s.playlistSongRepo.RemoveWithActivity(ctx, playlistID, songID, activity)
}

// GetPlaylistSongs 获取歌单详情及歌曲列表（无歌曲时返回空列表）
func (s *PlaylistService) GetPlaylistSongs(ctx context.Context, playlistID string) (*domain.PlaylistWithSongs, error) {
	summary, err := s.playlistRepo.GetWithOwner(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	songs, err := s.playlistSongRepo.ListSongs(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &domain.PlaylistWithSongs{
		ID:       summary.ID,
		Name:     summary.Name,
		Username: summary.Username,
		Songs:    songs,
	}, nil
}

// GetPlaylistActivities 获取歌单的操作记录（按时间升序）。
// 没有任何记录时视为错误返回。
func (s *PlaylistService) GetPlaylistActivities(ctx context.Context, playlistID string) (*domain.PlaylistActivities, error) {
	entries, err := s.activityRepo.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoActivities
	}

	return &domain.PlaylistActivities{
		PlaylistID: playlistID,
		Activities: entries,
	}, nil
}
