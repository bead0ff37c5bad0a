package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/internal/service"
)

// SongHandler 歌曲处理器
type SongHandler struct {
	service *service.SongService
}

// NewSongHandler 创建歌曲处理器
func NewSongHandler(service *service.SongService) *SongHandler {
	return &SongHandler{service: service}
}

type songRequest struct {
	Title     string  `json:"title" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	Performer string  `json:"performer" binding:"required"`
	Genre     string  `json:"genre" binding:"required"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (r songRequest) toInput() service.SongInput {
	return service.SongInput{
		Title:     r.Title,
		Year:      r.Year,
		Performer: r.Performer,
		Genre:     r.Genre,
		Duration:  r.Duration,
		AlbumID:   r.AlbumID,
	}
}

// CreateSong 创建歌曲
func (h *SongHandler) CreateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	songID, err := h.service.AddSong(c.Request.Context(), req.toInput())
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"songId": songID})
}

// GetSongs 检索歌曲列表，支持 title 与 performer 模糊过滤
func (h *SongHandler) GetSongs(c *gin.Context) {
	songs, err := h.service.GetSongs(c.Request.Context(), c.Query("title"), c.Query("performer"))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"songs": songs})
}

// GetSong 获取歌曲详情
func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.service.GetSong(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"song": song})
}

// UpdateSong 更新歌曲
func (h *SongHandler) UpdateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := h.service.UpdateSong(c.Request.Context(), c.Param("id"), req.toInput()); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song updated")
}

// DeleteSong 删除歌曲
func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.service.DeleteSong(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song deleted")
}
