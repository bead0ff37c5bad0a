package service

import (
	"context"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/id"
)

// SongInput 歌曲写入参数
type SongInput struct {
	Title     string
	Year      int
	Performer string
	Genre     string
	Duration  *int
	AlbumID   *string
}

// SongService 歌曲服务
type SongService struct {
	songRepo repository.SongRepository
}

// NewSongService 创建歌曲服务
func NewSongService(songRepo repository.SongRepository) *SongService {
	return &SongService{songRepo: songRepo}
}

// AddSong 创建歌曲
func (s *SongService) AddSong(ctx context.Context, input SongInput) (string, error) {
	song := &domain.Song{
		ID:        id.New("song"),
		Title:     input.Title,
		Year:      input.Year,
		Performer: input.Performer,
		Genre:     input.Genre,
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	}
	if err := song.Validate(); err != nil {
		return "", err
	}

	if err := s.songRepo.Create(ctx, song); err != nil {
		return "", err
	}
	return song.ID, nil
}

// GetSongs 按标题与演唱者模糊检索歌曲
func (s *SongService) GetSongs(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	return s.songRepo.List(ctx, title, performer)
}

// GetSong 获取歌曲详情
func (s *SongService) GetSong(ctx context.Context, songID string) (*domain.Song, error) {
	return s.songRepo.GetByID(ctx, songID)
}

// UpdateSong 更新歌曲信息
func (s *SongService) UpdateSong(ctx context.Context, songID string, input SongInput) error {
	song := &domain.Song{
		ID:        songID,
		Title:     input.Title,
		Year:      input.Year,
		Performer: input.Performer,
		Genre:     input.Genre,
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	}
	if err := song.Validate(); err != nil {
		return err
	}
	return s.songRepo.Update(ctx, song)
}

// DeleteSong 删除歌曲
func (s *SongService) DeleteSong(ctx context.Context, songID string) error {
	return s.songRepo.Delete(ctx, songID)
}

// VerifySongExists 校验歌曲是否存在
func (s *SongService) VerifySongExists(ctx context.Context, songID string) error {
	ok, err := s.songRepo.Exists(ctx, songID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSongNotFound
	}
	return nil
}
