package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/internal/service"
)

// AlbumHandler 专辑处理器
type AlbumHandler struct {
	service *service.AlbumService
}

// NewAlbumHandler 创建专辑处理器
func NewAlbumHandler(service *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

type albumRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}

// CreateAlbum 创建专辑
func (h *AlbumHandler) CreateAlbum(c *gin.Context) {
	var req albumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	albumID, err := h.service.AddAlbum(c.Request.Context(), req.Name, req.Year)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"albumId": albumID})
}

// GetAlbum 获取专辑详情
func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	album, err := h.service.GetAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"album": album})
}

// UpdateAlbum 更新专辑
func (h *AlbumHandler) UpdateAlbum(c *gin.Context) {
	var req albumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := h.service.UpdateAlbum(c.Request.Context(), c.Param("id"), req.Name, req.Year); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "album updated")
}

// DeleteAlbum 删除专辑
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	if err := h.service.DeleteAlbum(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "album deleted")
}
