package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/openmusic/server/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"album not found", domain.ErrAlbumNotFound, http.StatusNotFound},
		{"song not found", domain.ErrSongNotFound, http.StatusNotFound},
		{"playlist not found", domain.ErrPlaylistNotFound, http.StatusNotFound},
		{"song not in playlist", domain.ErrSongNotInPlaylist, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"not playlist owner", domain.ErrNotPlaylistOwner, http.StatusForbidden},
		{"access denied", domain.ErrPlaylistAccessDenied, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest},
		{"invalid playlist name", domain.ErrInvalidPlaylistName, http.StatusBadRequest},
		{"playlist name too long", domain.ErrPlaylistNameTooLong, http.StatusBadRequest},
		{"refresh token invalid", domain.ErrRefreshTokenInvalid, http.StatusBadRequest},
		{"no activities", domain.ErrNoActivities, http.StatusBadRequest},
		{"collaboration not found", domain.ErrCollaborationNotFound, http.StatusBadRequest},
		{"playlist create failed", domain.ErrPlaylistCreateFailed, http.StatusBadRequest},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandleError_InternalDetailNotExposed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handleError(c, errors.New("pq: password authentication failed for user postgres"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "postgres")
	assert.Contains(t, w.Body.String(), "internal server error")
}
