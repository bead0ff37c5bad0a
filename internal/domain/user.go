package domain

// User 用户实体（Password 存储 argon2id 哈希）
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}

// Validate 验证用户数据
func (u *User) Validate() error {
	if u.Username == "" || len(u.Username) > 50 {
		return ErrInvalidUsername
	}
	if u.Password == "" {
		return ErrInvalidPassword
	}
	return nil
}
