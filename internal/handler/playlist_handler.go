package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/internal/middleware"
	"github.com/openmusic/server/internal/service"
)

// PlaylistHandler 歌单处理器
type PlaylistHandler struct {
	playlists *service.PlaylistService
	songs     *service.SongService
}

// NewPlaylistHandler 创建歌单处理器
func NewPlaylistHandler(playlists *service.PlaylistService, songs *service.SongService) *PlaylistHandler {
	return &PlaylistHandler{
		playlists: playlists,
		songs:     songs,
	}
}

// CreatePlaylist 创建歌单
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	playlistID, err := h.playlists.AddPlaylist(c.Request.Context(), req.Name, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"playlistId": playlistID})
}

// GetPlaylists 获取当前用户可见的歌单列表
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	playlists, err := h.playlists.GetPlaylists(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"playlists": playlists})
}

// DeletePlaylist 删除歌单（仅所有者）
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	ctx := c.Request.Context()
	playlistID := c.Param("id")
	userID := middleware.GetUserID(c)

	if err := h.playlists.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		handleError(c, err)
		return
	}

	if err := h.playlists.DeletePlaylist(ctx, playlistID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "playlist deleted")
}

// AddSongToPlaylist 添加歌曲到歌单（所有者或协作者）
func (h *PlaylistHandler) AddSongToPlaylist(c *gin.Context) {
	ctx := c.Request.Context()
	playlistID := c.Param("id")
	userID := middleware.GetUserID(c)

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := h.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.songs.VerifySongExists(ctx, req.SongID); err != nil {
		handleError(c, err)
		return
	}

	if err := h.playlists.AddPlaylistSong(ctx, playlistID, req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "song added to playlist")
}

// GetPlaylistSongs 获取歌单详情及歌曲列表（所有者或协作者）
func (h *PlaylistHandler) GetPlaylistSongs(c *gin.Context) {
	ctx := c.Request.Context()
	playlistID := c.Param("id")

	if err := h.playlists.VerifyPlaylistAccess(ctx, playlistID, middleware.GetUserID(c)); err != nil {
		handleError(c, err)
		return
	}

	playlist, err := h.playlists.GetPlaylistSongs(ctx, playlistID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"playlist": playlist})
}

// DeleteSongFromPlaylist 从歌单移除歌曲（所有者或协作者）
func (h *PlaylistHandler) DeleteSongFromPlaylist(c *gin.Context) {
	ctx := c.Request.Context()
	playlistID := c.Param("id")
	userID := middleware.GetUserID(c)

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := h.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		handleError(c, err)
		return
	}

	if err := h.playlists.DeletePlaylistSong(ctx, playlistID, req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song removed from playlist")
}

// GetPlaylistActivities 获取歌单操作记录（所有者或协作者）
func (h *PlaylistHandler) GetPlaylistActivities(c *gin.Context) {
	ctx := c.Request.Context()
	playlistID := c.Param("id")

	if err := h.playlists.VerifyPlaylistAccess(ctx, playlistID, middleware.GetUserID(c)); err != nil {
		handleError(c, err)
		return
	}

	activities, err := h.playlists.GetPlaylistActivities(ctx, playlistID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, activities)
}
