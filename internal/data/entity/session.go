package entity

type Session struct {
	Base
	UserID int    `db:"user_id"`
	Token  string `db:"token"`
}
