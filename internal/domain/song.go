package domain

import "time"

// Song 歌曲实体
type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Performer string  `json:"performer"`
	Genre     string  `json:"genre"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// Validate 验证歌曲数据
func (s *Song) Validate() error {
	if s.Title == "" {
		return ErrInvalidSongTitle
	}
	if s.Year < 1900 || s.Year > time.Now().Year()+1 {
		return ErrInvalidSongYear
	}
	return nil
}

// Summary 返回歌曲摘要
func (s *Song) Summary() SongSummary {
	return SongSummary{
		ID:        s.ID,
		Title:     s.Title,
		Performer: s.Performer,
	}
}
