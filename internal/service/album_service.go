package service

import (
	"context"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/id"
)

// AlbumService 专辑服务
type AlbumService struct {
	albumRepo repository.AlbumRepository
}

// NewAlbumService 创建专辑服务
func NewAlbumService(albumRepo repository.AlbumRepository) *AlbumService {
	return &AlbumService{albumRepo: albumRepo}
}

// AddAlbum 创建专辑
func (s *AlbumService) AddAlbum(ctx context.Context, name string, year int) (string, error) {
	album := &domain.Album{
		ID:   id.New("album"),
		Name: name,
		Year: year,
	}
	if err := album.Validate(); err != nil {
		return "", err
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return "", err
	}
	return album.ID, nil
}

// GetAlbum 获取专辑详情及收录歌曲
func (s *AlbumService) GetAlbum(ctx context.Context, albumID string) (*domain.AlbumWithSongs, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}

	songs, err := s.albumRepo.ListSongs(ctx, albumID)
	if err != nil {
		return nil, err
	}

	return &domain.AlbumWithSongs{
		Album: *album,
		Songs: songs,
	}, nil
}

// UpdateAlbum 更新专辑信息
func (s *AlbumService) UpdateAlbum(ctx context.Context, albumID, name string, year int) error {
	album := &domain.Album{
		ID:   albumID,
		Name: name,
		Year: year,
	}
	if err := album.Validate(); err != nil {
		return err
	}
	return s.albumRepo.Update(ctx, album)
}

// DeleteAlbum 删除专辑
func (s *AlbumService) DeleteAlbum(ctx context.Context, albumID string) error {
	return s.albumRepo.Delete(ctx, albumID)
}
