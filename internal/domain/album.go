package domain

import "time"

// Album 专辑实体
type Album struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Validate 验证专辑数据
func (a *Album) Validate() error {
	if a.Name == "" {
		return ErrInvalidAlbumName
	}
	if a.Year < 1900 || a.Year > time.Now().Year()+1 {
		return ErrInvalidAlbumYear
	}
	return nil
}

// AlbumWithSongs 专辑详情（含歌曲列表）
type AlbumWithSongs struct {
	Album
	Songs []SongSummary `json:"songs"`
}
