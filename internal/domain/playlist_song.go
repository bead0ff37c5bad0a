package domain

// PlaylistSong 歌单-歌曲关联实体
type PlaylistSong struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	SongID     string `json:"song_id"`
}

// Validate 验证歌单歌曲关联数据
func (ps *PlaylistSong) Validate() error {
	if ps.PlaylistID == "" {
		return ErrPlaylistNotFound
	}
	if ps.SongID == "" {
		return ErrInvalidSongID
	}
	return nil
}
