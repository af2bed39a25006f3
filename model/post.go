package model

import (
	"time"
)

type Post struct {
	Id      int64     `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pubDate"`
	Author  *User     `json:"author"`
	Group   *Group    `json:"group,omitempty"`
	Image   string    `json:"image,omitempty"`
}

// OwnerId returns the author captured at creation. Mutation rights are decided
// on this value alone.
func (p *Post) OwnerId() string {
	return p.Author.Id
}

type Comment struct {
	Id      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  *User     `json:"author"`
	PostId  int64     `json:"post"`
	Created time.Time `json:"created"`
}

func (c *Comment) OwnerId() string {
	return c.Author.Id
}
