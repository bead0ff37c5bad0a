package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/internal/middleware"
	"github.com/openmusic/server/internal/service"
)

// CollaborationHandler 歌单协作处理器
type CollaborationHandler struct {
	collaborations *service.CollaborationService
	playlists      *service.PlaylistService
	users          *service.UserService
}

// NewCollaborationHandler 创建协作处理器
func NewCollaborationHandler(
	collaborations *service.CollaborationService,
	playlists *service.PlaylistService,
	users *service.UserService,
) *CollaborationHandler {
	return &CollaborationHandler{
		collaborations: collaborations,
		playlists:      playlists,
		users:          users,
	}
}

type collaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// AddCollaboration 为歌单添加协作者（仅所有者）
func (h *CollaborationHandler) AddCollaboration(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := middleware.GetUserID(c)

	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	// 被授权用户和歌单都必须存在，且操作者是歌单所有者
	if err := h.users.VerifyUserExists(ctx, req.UserID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.playlists.VerifyPlaylistID(ctx, req.PlaylistID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.playlists.VerifyPlaylistOwner(ctx, req.PlaylistID, ownerID); err != nil {
		handleError(c, err)
		return
	}

	collaborationID, err := h.collaborations.AddCollaboration(ctx, req.PlaylistID, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"collaborationId": collaborationID})
}

// DeleteCollaboration 移除歌单协作者（仅所有者）
func (h *CollaborationHandler) DeleteCollaboration(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := middleware.GetUserID(c)

	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := h.playlists.VerifyPlaylistOwner(ctx, req.PlaylistID, ownerID); err != nil {
		handleError(c, err)
		return
	}

	if err := h.collaborations.DeleteCollaboration(ctx, req.PlaylistID, req.UserID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "collaboration removed")
}
