package model

// User holds the local profile for a firebase identity. The identity provider
// owns authentication; this row only exists once the caller registers a
// username via PUT /users.
type User struct {
	Id       string `db:"firebase_id" json:"id"`
	Username string `db:"username" json:"username"`
	Avatar   string `db:"avatar" json:"avatar"`
}
