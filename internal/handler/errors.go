package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/internal/domain"
)

// handleError 统一处理domain错误并返回适当的HTTP状态码
func handleError(c *gin.Context, err error) {
	switch {
	// 404 Not Found
	case errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrSongNotInPlaylist):
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})

	// 403 Forbidden
	case errors.Is(err, domain.ErrNotPlaylistOwner),
		errors.Is(err, domain.ErrPlaylistAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"status": "fail", "message": err.Error()})

	// 401 Unauthorized
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": err.Error()})

	// 400 Bad Request
	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidSongID),
		errors.Is(err, domain.ErrInvalidAlbumName),
		errors.Is(err, domain.ErrInvalidAlbumYear),
		errors.Is(err, domain.ErrInvalidSongTitle),
		errors.Is(err, domain.ErrInvalidSongYear),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrPlaylistNameTooLong),
		errors.Is(err, domain.ErrRefreshTokenInvalid),
		errors.Is(err, domain.ErrNoActivities),
		errors.Is(err, domain.ErrCollaborationNotFound),
		errors.Is(err, domain.ErrAlbumCreateFailed),
		errors.Is(err, domain.ErrSongCreateFailed),
		errors.Is(err, domain.ErrUserCreateFailed),
		errors.Is(err, domain.ErrRefreshTokenCreateFailed),
		errors.Is(err, domain.ErrPlaylistCreateFailed),
		errors.Is(err, domain.ErrPlaylistSongCreateFailed),
		errors.Is(err, domain.ErrActivityCreateFailed),
		errors.Is(err, domain.ErrCollaborationCreateFailed):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})

	// 500 Internal Server Error (默认，不向客户端泄露内部细节)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "an internal server error occurred",
		})
	}
}
