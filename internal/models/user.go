package models

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	PassHash string `json:"-"`
}
