// Package memdb is a map-backed db.Database used for local development and
// tests. It mimics the MySQL implementation's observable behavior, including
// surfacing duplicate rows as driver unique-key errors so the dup-key
// normalization path behaves the same against either store.
package memdb

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	db2 "github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/go-sql-driver/mysql"
)

const mysqlDupEntry = 1062

func dupKeyErr(key string) error {
	return &mysql.MySQLError{Number: mysqlDupEntry, Message: "Duplicate entry for key '" + key + "'"}
}

type followRow struct {
	id          int64
	userId      string
	followingId string
}

type MemDB struct {
	mu       sync.Mutex
	nextId   int64
	users    map[string]*model.User
	posts    map[int64]*model.Post
	comments map[int64]*model.Comment
	groups   map[int64]*model.Group
	follows  []followRow
}

func GetDatabase() *MemDB {
	return &MemDB{
		users:    map[string]*model.User{},
		posts:    map[int64]*model.Post{},
		comments: map[int64]*model.Comment{},
		groups:   map[int64]*model.Group{},
	}
}

func (mdb *MemDB) GetSQLDB() *sql.DB {
	return nil
}

func (mdb *MemDB) Close() error {
	return nil
}

func (mdb *MemDB) genId() int64 {
	mdb.nextId++
	return mdb.nextId
}

func copyUser(user *model.User) *model.User {
	copied := *user
	return &copied
}

func (mdb *MemDB) CreateUser(ctx context.Context, user *model.User) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, ok := mdb.users[user.Id]; ok {
		return dupKeyErr("person.PRIMARY")
	}
	for _, existing := range mdb.users {
		if existing.Username == user.Username {
			return dupKeyErr("person.username")
		}
	}
	mdb.users[user.Id] = copyUser(user)
	return nil
}

func (mdb *MemDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	user, ok := mdb.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (mdb *MemDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, user := range mdb.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	id := mdb.genId()
	var group *model.Group
	if req.GroupId != nil {
		group = mdb.groups[*req.GroupId]
	}
	mdb.posts[id] = &model.Post{
		Id:      id,
		Text:    req.Text,
		PubDate: time.Now(),
		Author:  copyUser(mdb.users[req.AuthorId]),
		Group:   group,
		Image:   req.Image,
	}
	return id, nil
}

func (mdb *MemDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	post, ok := mdb.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (mdb *MemDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	posts := make([]*model.Post, 0, len(mdb.posts))
	for _, post := range mdb.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	sortPosts(posts, query.OrderBy)
	return window(posts, query.Limit, query.Offset), nil
}

func sortPosts(posts []*model.Post, orderBy []string) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		for _, field := range orderBy {
			switch field {
			case "text":
				if a.Text != b.Text {
					return a.Text < b.Text
				}
			case "pub_date":
				if !a.PubDate.Equal(b.PubDate) {
					return a.PubDate.Before(b.PubDate)
				}
			case "author":
				if a.Author.Username != b.Author.Username {
					return a.Author.Username < b.Author.Username
				}
			case "group":
				ag, bg := int64(-1), int64(-1)
				if a.Group != nil {
					ag = a.Group.Id
				}
				if b.Group != nil {
					bg = b.Group.Id
				}
				if ag != bg {
					return ag < bg
				}
			case "id":
				if a.Id != b.Id {
					return a.Id < b.Id
				}
			}
		}
		return a.Id < b.Id
	})
}

func window(posts []*model.Post, limit, offset int) []*model.Post {
	if limit <= 0 {
		return posts
	}
	if offset >= len(posts) {
		return []*model.Post{}
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (mdb *MemDB) CountPosts(ctx context.Context) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	return int64(len(mdb.posts)), nil
}

func (mdb *MemDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	post, ok := mdb.posts[id]
	if !ok {
		return nil
	}
	if req.Text != nil {
		post.Text = *req.Text
	}
	if req.GroupId != nil {
		post.Group = mdb.groups[*req.GroupId]
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	return nil
}

func (mdb *MemDB) DeletePost(ctx context.Context, id int64) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	delete(mdb.posts, id)
	for commentId, comment := range mdb.comments {
		if comment.PostId == id {
			delete(mdb.comments, commentId)
		}
	}
	return nil
}

func (mdb *MemDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	id := mdb.genId()
	mdb.comments[id] = &model.Comment{
		Id:      id,
		Text:    req.Text,
		Author:  copyUser(mdb.users[req.AuthorId]),
		PostId:  req.PostId,
		Created: time.Now(),
	}
	return id, nil
}

func (mdb *MemDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	comment, ok := mdb.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (mdb *MemDB) GetComments(ctx context.Context, query *db2.CommentsQuery) ([]*model.Comment, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	comments := make([]*model.Comment, 0)
	for _, comment := range mdb.comments {
		if comment.PostId == query.PostId {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Id < comments[j].Id })
	if query.Limit > 0 {
		if query.Offset >= len(comments) {
			return []*model.Comment{}, nil
		}
		end := query.Offset + query.Limit
		if end > len(comments) {
			end = len(comments)
		}
		comments = comments[query.Offset:end]
	}
	return comments, nil
}

func (mdb *MemDB) CountComments(ctx context.Context, postId int64) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	var count int64
	for _, comment := range mdb.comments {
		if comment.PostId == postId {
			count++
		}
	}
	return count, nil
}

func (mdb *MemDB) UpdateCommentText(ctx context.Context, id int64, text string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if comment, ok := mdb.comments[id]; ok {
		comment.Text = text
	}
	return nil
}

func (mdb *MemDB) DeleteComment(ctx context.Context, id int64) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	delete(mdb.comments, id)
	return nil
}

func (mdb *MemDB) CreateGroup(ctx context.Context, group *model.Group) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	slug := group.Slug
	if slug == "" {
		slug = model.DefaultGroupSlug
	}
	for _, existing := range mdb.groups {
		if existing.Slug == slug {
			return 0, dupKeyErr("blog_group.slug")
		}
	}
	id := mdb.genId()
	mdb.groups[id] = &model.Group{
		Id:          id,
		Title:       group.Title,
		Slug:        slug,
		Description: group.Description,
	}
	return id, nil
}

func (mdb *MemDB) GetGroupById(ctx context.Context, id int64) (*model.Group, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	group, ok := mdb.groups[id]
	if !ok {
		return nil, nil
	}
	copied := *group
	return &copied, nil
}

func (mdb *MemDB) GetGroups(ctx context.Context) ([]*model.Group, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	groups := make([]*model.Group, 0, len(mdb.groups))
	for _, group := range mdb.groups {
		copied := *group
		groups = append(groups, &copied)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Id < groups[j].Id })
	return groups, nil
}

func (mdb *MemDB) CreateFollow(ctx context.Context, userId, followingId string) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, row := range mdb.follows {
		if row.userId == userId && row.followingId == followingId {
			return 0, dupKeyErr("follow.user_following")
		}
	}
	id := mdb.genId()
	mdb.follows = append(mdb.follows, followRow{id: id, userId: userId, followingId: followingId})
	return id, nil
}

func (mdb *MemDB) HasFollow(ctx context.Context, userId, followingId string) (bool, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, row := range mdb.follows {
		if row.userId == userId && row.followingId == followingId {
			return true, nil
		}
	}
	return false, nil
}

func (mdb *MemDB) GetFollowsForUser(ctx context.Context, userId string, search string) ([]*model.Follow, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	follows := make([]*model.Follow, 0)
	for _, row := range mdb.follows {
		if row.userId != userId {
			continue
		}
		following := mdb.users[row.followingId]
		if search != "" && !strings.Contains(strings.ToLower(following.Username), strings.ToLower(search)) {
			continue
		}
		follows = append(follows, &model.Follow{
			Id:        row.id,
			User:      copyUser(mdb.users[row.userId]),
			Following: copyUser(following),
		})
	}
	return follows, nil
}
