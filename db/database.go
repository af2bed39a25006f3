package db

import (
	"context"
	"database/sql"

	"github.com/blogline/blogline-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	PostDatabase
	CommentDatabase
	GroupDatabase
	FollowDatabase
	UserDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreatePost struct {
	AuthorId string
	Text     string
	GroupId  *int64
	Image    string
}

// UpdatePost carries only the mutable columns. Nil means "leave unchanged";
// author and pub_date are not representable here on purpose.
type UpdatePost struct {
	Text    *string
	GroupId *int64
	Image   *string
}

// PostsQuery is a limit/offset window over posts, optionally ordered by
// already-validated column names (ascending, in the given order).
type PostsQuery struct {
	OrderBy []string
	Limit   int
	Offset  int
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context) (int64, error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	DeletePost(ctx context.Context, id int64) error
}

type CreateComment struct {
	AuthorId string
	PostId   int64
	Text     string
}

type CommentsQuery struct {
	PostId int64
	Limit  int
	Offset int
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	GetCommentById(ctx context.Context, id int64) (*model.Comment, error)
	GetComments(ctx context.Context, query *CommentsQuery) ([]*model.Comment, error)
	CountComments(ctx context.Context, postId int64) (int64, error)
	UpdateCommentText(ctx context.Context, id int64, text string) error
	DeleteComment(ctx context.Context, id int64) error
}

type GroupDatabase interface {
	CreateGroup(ctx context.Context, group *model.Group) (groupId int64, err error)
	GetGroupById(ctx context.Context, id int64) (*model.Group, error)
	GetGroups(ctx context.Context) ([]*model.Group, error)
}

type FollowDatabase interface {
	CreateFollow(ctx context.Context, userId, followingId string) (followId int64, err error)
	HasFollow(ctx context.Context, userId, followingId string) (bool, error)
	// GetFollowsForUser returns only rows where the follower is userId. search,
	// when non-empty, narrows by case-insensitive substring of the followee's
	// username.
	GetFollowsForUser(ctx context.Context, userId string, search string) ([]*model.Follow, error)
}

type UserDatabase interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}
