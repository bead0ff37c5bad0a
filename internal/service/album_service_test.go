package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openmusic/server/internal/domain"
)

func TestAlbumService_AddAlbum(t *testing.T) {
	repo := new(MockAlbumRepository)
	svc := NewAlbumService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Album) bool {
		return strings.HasPrefix(a.ID, "album-") && a.Name == "Viva la Vida" && a.Year == 2008
	})).Return(nil)

	id, err := svc.AddAlbum(context.Background(), "Viva la Vida", 2008)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "album-"))
}

func TestAlbumService_AddAlbum_InvalidYear(t *testing.T) {
	svc := NewAlbumService(new(MockAlbumRepository))

	_, err := svc.AddAlbum(context.Background(), "Old", 1800)
	assert.ErrorIs(t, err, domain.ErrInvalidAlbumYear)

	_, err = svc.AddAlbum(context.Background(), "Future", time.Now().Year()+2)
	assert.ErrorIs(t, err, domain.ErrInvalidAlbumYear)
}

func TestAlbumService_GetAlbum_WithSongs(t *testing.T) {
	repo := new(MockAlbumRepository)
	svc := NewAlbumService(repo)

	album := &domain.Album{ID: "album-1", Name: "Viva la Vida", Year: 2008}
	songs := []domain.SongSummary{{ID: "song-1", Title: "Lost!", Performer: "Coldplay"}}
	repo.On("GetByID", mock.Anything, "album-1").Return(album, nil)
	repo.On("ListSongs", mock.Anything, "album-1").Return(songs, nil)

	got, err := svc.GetAlbum(context.Background(), "album-1")
	require.NoError(t, err)
	assert.Equal(t, "Viva la Vida", got.Name)
	assert.Len(t, got.Songs, 1)
}

func TestAlbumService_GetAlbum_NotFound(t *testing.T) {
	repo := new(MockAlbumRepository)
	svc := NewAlbumService(repo)

	repo.On("GetByID", mock.Anything, "album-gone").Return(nil, domain.ErrAlbumNotFound)

	_, err := svc.GetAlbum(context.Background(), "album-gone")
	assert.ErrorIs(t, err, domain.ErrAlbumNotFound)
}
