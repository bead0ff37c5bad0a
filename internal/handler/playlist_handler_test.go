package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/service"
)

// 仓储层mock，服务层走真实实现

type mockPlaylistRepo struct{ mock.Mock }

func (m *mockPlaylistRepo) Create(ctx context.Context, playlist *domain.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *mockPlaylistRepo) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetWithOwner(ctx context.Context, id string) (*domain.PlaylistSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistSummary), args.Error(1)
}

func (m *mockPlaylistRepo) ListForUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistSummary), args.Error(1)
}

func (m *mockPlaylistRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlaylistSongRepo struct{ mock.Mock }

func (m *mockPlaylistSongRepo) AddWithActivity(ctx context.Context, ps *domain.PlaylistSong, activity *domain.Activity) error {
	return m.Called(ctx, ps, activity).Error(0)
}

func (m *mockPlaylistSongRepo) RemoveWithActivity(ctx context.Context, playlistID, songID string, activity *domain.Activity) error {
	return m.Called(ctx, playlistID, songID, activity).Error(0)
}

func (m *mockPlaylistSongRepo) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

type mockActivityRepo struct{ mock.Mock }

func (m *mockActivityRepo) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

type mockCollaborationRepo struct{ mock.Mock }

func (m *mockCollaborationRepo) Create(ctx context.Context, collaboration *domain.Collaboration) error {
	return m.Called(ctx, collaboration).Error(0)
}

func (m *mockCollaborationRepo) Delete(ctx context.Context, playlistID, userID string) error {
	return m.Called(ctx, playlistID, userID).Error(0)
}

func (m *mockCollaborationRepo) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

type mockSongRepo struct{ mock.Mock }

func (m *mockSongRepo) Create(ctx context.Context, song *domain.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *mockSongRepo) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongRepo) List(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, title, performer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

func (m *mockSongRepo) Update(ctx context.Context, song *domain.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *mockSongRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSongRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type playlistTestEnv struct {
	router       *gin.Engine
	playlistRepo *mockPlaylistRepo
	songLinkRepo *mockPlaylistSongRepo
	activityRepo *mockActivityRepo
	collabRepo   *mockCollaborationRepo
	songRepo     *mockSongRepo
}

// newPlaylistTestEnv 以固定用户身份构建路由，绕过JWT中间件
func newPlaylistTestEnv(userID string) *playlistTestEnv {
	gin.SetMode(gin.TestMode)

	env := &playlistTestEnv{
		playlistRepo: new(mockPlaylistRepo),
		songLinkRepo: new(mockPlaylistSongRepo),
		activityRepo: new(mockActivityRepo),
		collabRepo:   new(mockCollaborationRepo),
		songRepo:     new(mockSongRepo),
	}

	collaborationService := service.NewCollaborationService(env.collabRepo)
	playlistService := service.NewPlaylistService(env.playlistRepo, env.songLinkRepo, env.activityRepo, collaborationService)
	songService := service.NewSongService(env.songRepo)
	h := NewPlaylistHandler(playlistService, songService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/playlists", h.CreatePlaylist)
	router.GET("/playlists", h.GetPlaylists)
	router.DELETE("/playlists/:id", h.DeletePlaylist)
	router.POST("/playlists/:id/songs", h.AddSongToPlaylist)
	router.GET("/playlists/:id/songs", h.GetPlaylistSongs)
	router.DELETE("/playlists/:id/songs", h.DeleteSongFromPlaylist)
	router.GET("/playlists/:id/activities", h.GetPlaylistActivities)

	env.router = router
	return env
}

func (env *playlistTestEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestPlaylistHandler_CreatePlaylist(t *testing.T) {
	env := newPlaylistTestEnv("user-1")

	env.playlistRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	w := env.do("POST", "/playlists", gin.H{"name": "Rock Classics"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "playlistId")
}

func TestPlaylistHandler_CreatePlaylist_MissingName(t *testing.T) {
	env := newPlaylistTestEnv("user-1")

	w := env.do("POST", "/playlists", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaylistHandler_DeletePlaylist_NotOwner(t *testing.T) {
	env := newPlaylistTestEnv("user-collab")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)

	// 协作者也无权删除歌单
	w := env.do("DELETE", "/playlists/playlist-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	env.playlistRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaylistHandler_AddSong_AsCollaborator(t *testing.T) {
	env := newPlaylistTestEnv("user-collab")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.collabRepo.On("Exists", mock.Anything, "playlist-1", "user-collab").Return(true, nil)
	env.songRepo.On("Exists", mock.Anything, "song-1").Return(true, nil)
	env.songLinkRepo.On("AddWithActivity", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := env.do("POST", "/playlists/playlist-1/songs", gin.H{"songId": "song-1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	env.songLinkRepo.AssertExpectations(t)
}

func TestPlaylistHandler_AddSong_Stranger(t *testing.T) {
	env := newPlaylistTestEnv("user-stranger")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.collabRepo.On("Exists", mock.Anything, "playlist-1", "user-stranger").Return(false, nil)

	w := env.do("POST", "/playlists/playlist-1/songs", gin.H{"songId": "song-1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	env.songLinkRepo.AssertNotCalled(t, "AddWithActivity", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistHandler_AddSong_UnknownSong(t *testing.T) {
	env := newPlaylistTestEnv("user-owner")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.songRepo.On("Exists", mock.Anything, "song-missing").Return(false, nil)

	// 歌曲校验在写入之前
	w := env.do("POST", "/playlists/playlist-1/songs", gin.H{"songId": "song-missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	env.songLinkRepo.AssertNotCalled(t, "AddWithActivity", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistHandler_AddSong_PlaylistMissing(t *testing.T) {
	env := newPlaylistTestEnv("user-1")

	env.playlistRepo.On("GetByID", mock.Anything, "playlist-missing").Return(nil, domain.ErrPlaylistNotFound)

	// 歌单不存在时返回404而不是403，即使没有任何授权
	w := env.do("POST", "/playlists/playlist-missing/songs", gin.H{"songId": "song-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaylistHandler_GetPlaylistSongs(t *testing.T) {
	env := newPlaylistTestEnv("user-owner")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	summary := &domain.PlaylistSummary{ID: "playlist-1", Name: "Rock", Username: "alice"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.playlistRepo.On("GetWithOwner", mock.Anything, "playlist-1").Return(summary, nil)
	env.songLinkRepo.On("ListSongs", mock.Anything, "playlist-1").Return([]domain.SongSummary{}, nil)

	w := env.do("GET", "/playlists/playlist-1/songs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Playlist domain.PlaylistWithSongs `json:"playlist"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "alice", resp.Data.Playlist.Username)
}

func TestPlaylistHandler_GetActivities_Empty(t *testing.T) {
	env := newPlaylistTestEnv("user-owner")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.activityRepo.On("ListByPlaylist", mock.Anything, "playlist-1").Return([]domain.ActivityEntry{}, nil)

	w := env.do("GET", "/playlists/playlist-1/activities", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaylistHandler_RemoveSong_NotInPlaylist(t *testing.T) {
	env := newPlaylistTestEnv("user-owner")

	playlist := &domain.Playlist{ID: "playlist-1", Name: "Rock", OwnerID: "user-owner"}
	env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(playlist, nil)
	env.songLinkRepo.On("RemoveWithActivity", mock.Anything, "playlist-1", "song-1", mock.Anything).
		Return(domain.ErrSongNotInPlaylist)

	// 重复删除同一首歌返回404
	w := env.do("DELETE", "/playlists/playlist-1/songs", gin.H{"songId": "song-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
