package model

// Follow is a directed "User follows Following" edge. The follower is always
// the caller that created the row; the pair is unique in the store.
type Follow struct {
	Id        int64 `json:"id"`
	User      *User `json:"user"`
	Following *User `json:"following"`
}
