package domain

import "errors"

var (
	// 通用错误
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidSongID = errors.New("invalid song id")

	// 专辑相关错误
	ErrAlbumNotFound     = errors.New("album not found")
	ErrAlbumCreateFailed = errors.New("failed to create album")
	ErrInvalidAlbumName  = errors.New("invalid album name")
	ErrInvalidAlbumYear  = errors.New("invalid album year")

	// 歌曲相关错误
	ErrSongNotFound     = errors.New("song not found")
	ErrSongCreateFailed = errors.New("failed to create song")
	ErrInvalidSongTitle = errors.New("invalid song title")
	ErrInvalidSongYear  = errors.New("invalid song year")

	// 用户相关错误
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserCreateFailed   = errors.New("failed to create user")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 认证相关错误
	ErrRefreshTokenInvalid      = errors.New("invalid refresh token")
	ErrRefreshTokenCreateFailed = errors.New("failed to store refresh token")

	// 歌单相关错误
	ErrPlaylistNotFound         = errors.New("playlist not found")
	ErrPlaylistCreateFailed     = errors.New("failed to create playlist")
	ErrInvalidPlaylistName      = errors.New("invalid playlist name")
	ErrPlaylistNameTooLong      = errors.New("playlist name too long")
	ErrSongNotInPlaylist        = errors.New("song not in playlist")
	ErrPlaylistSongCreateFailed = errors.New("failed to add song to playlist")
	ErrActivityCreateFailed     = errors.New("failed to record playlist activity")
	ErrNoActivities             = errors.New("no activities for playlist")

	// 协作相关错误
	ErrCollaborationNotFound     = errors.New("collaboration not found")
	ErrCollaborationCreateFailed = errors.New("failed to create collaboration")

	// 权限相关错误
	ErrNotPlaylistOwner     = errors.New("not the playlist owner")
	ErrPlaylistAccessDenied = errors.New("playlist access denied")
)
