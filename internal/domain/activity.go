package domain

import "time"

// 歌单操作类型
const (
	ActivityActionAdd    = "add"
	ActivityActionDelete = "delete"
)

// Activity 歌单操作记录实体（只增不改）
type Activity struct {
	ID         string    `json:"id"`
	PlaylistID string    `json:"playlist_id"`
	SongID     string    `json:"song_id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	Time       time.Time `json:"time"`
}

// ActivityEntry 操作记录展示项（关联用户名与歌名）
type ActivityEntry struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

// PlaylistActivities 歌单的操作记录列表
type PlaylistActivities struct {
	PlaylistID string          `json:"playlistId"`
	Activities []ActivityEntry `json:"activities"`
}
