package domain

// Collaboration 歌单协作授权实体：(playlist, user) 唯一对
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	UserID     string `json:"user_id"`
}

// Validate 验证协作数据
func (c *Collaboration) Validate() error {
	if c.PlaylistID == "" {
		return ErrPlaylistNotFound
	}
	if c.UserID == "" {
		return ErrInvalidUserID
	}
	return nil
}
