package domain

// Playlist 歌单实体
type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// Validate 验证歌单数据
func (p *Playlist) Validate() error {
	if p.OwnerID == "" {
		return ErrInvalidUserID
	}
	return ValidatePlaylistName(p.Name)
}

// ValidatePlaylistName 验证歌单名称
func ValidatePlaylistName(name string) error {
	if name == "" {
		return ErrInvalidPlaylistName
	}
	if len(name) > 100 {
		return ErrPlaylistNameTooLong
	}
	return nil
}

// PlaylistSummary 歌单列表项（含所有者用户名）
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// SongSummary 歌单中的歌曲摘要
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// PlaylistWithSongs 歌单详情（含歌曲列表）
type PlaylistWithSongs struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}
