package mysql

import (
	"context"
	"database/sql"
	"time"

	db2 "github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/db/dao"
	"github.com/blogline/blogline-be/model"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

type flattenedAuthor struct {
	AuthorId       string `db:"author_id"`
	AuthorUsername string `db:"author_username"`
	AuthorAvatar   string `db:"author_avatar"`
}

type flattenedPost struct {
	flattenedAuthor  `db:",inline"`
	Id               int64          `db:"id"`
	Text             string         `db:"text"`
	PubDate          time.Time      `db:"pub_date"`
	GroupId          dao.NullInt64  `db:"group_id,omitempty"`
	GroupTitle       sql.NullString `db:"group_title"`
	GroupSlug        sql.NullString `db:"group_slug"`
	GroupDescription sql.NullString `db:"group_description"`
	Image            sql.NullString `db:"image"`
}

var authorColumns = []interface{}{
	"person.firebase_id AS author_id",
	"person.username AS author_username",
	"person.avatar AS author_avatar",
}

var postColumns = append([]interface{}{
	"p.id",
	"p.text",
	"p.pub_date",
	"p.group_id",
	"p.image",
	"g.title AS group_title",
	"g.slug AS group_slug",
	"g.description AS group_description",
}, authorColumns...)

// postOrderColumns maps the validated ordering field names accepted by the
// API to real columns.
var postOrderColumns = map[string]string{
	"id":       "p.id",
	"text":     "p.text",
	"pub_date": "p.pub_date",
	"author":   "person.username",
	"group":    "p.group_id",
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("text", "author_id", "group_id", "image").
		Values(req.Text, req.AuthorId, dao.NullInt64Of(req.GroupId), req.Image).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post flattenedPost
	if err := postSelect(pdb.sess).
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&post), nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	orderBy := make([]interface{}, 0, len(query.OrderBy)+1)
	for _, field := range query.OrderBy {
		orderBy = append(orderBy, postOrderColumns[field])
	}
	// stable window even when no ordering was requested
	orderBy = append(orderBy, "p.id")

	var flattenedPosts []flattenedPost
	selector := postSelect(pdb.sess).OrderBy(orderBy...)
	if query.Limit > 0 {
		selector = selector.Limit(query.Limit).Offset(query.Offset)
	}
	if err := selector.
		IteratorContext(ctx).
		All(&flattenedPosts); err != nil {
		return nil, err
	}

	posts := make([]*model.Post, len(flattenedPosts))
	for i, flattened := range flattenedPosts {
		posts[i] = buildPostFromFlattened(&flattened)
	}
	return posts, nil
}

func (pdb *PostDB) CountPosts(ctx context.Context) (int64, error) {
	count, err := pdb.sess.WithContext(ctx).
		Collection("post").
		Find().
		Count()
	return int64(count), err
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	updater := pdb.sess.SQL().
		Update("post")
	if req.Text != nil {
		updater = updater.Set("text", *req.Text)
	}
	if req.GroupId != nil {
		updater = updater.Set("group_id", *req.GroupId)
	}
	if req.Image != nil {
		updater = updater.Set("image", *req.Image)
	}
	_, err := updater.
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (pdb *PostDB) DeletePost(ctx context.Context, id int64) error {
	return pdb.sess.WithContext(ctx).
		Collection("post").
		Find("id = ?", id).
		Delete()
}

func postSelect(sess db.Session) db.Selector {
	return sess.SQL().
		Select(postColumns...).
		From("post AS p").
		Join("person").On("p.author_id = person.firebase_id").
		LeftJoin("blog_group AS g").On("p.group_id = g.id")
}

func buildPostFromFlattened(post *flattenedPost) *model.Post {
	var group *model.Group
	if post.GroupId.Valid {
		group = &model.Group{
			Id:          post.GroupId.AsInt(),
			Title:       post.GroupTitle.String,
			Slug:        post.GroupSlug.String,
			Description: post.GroupDescription.String,
		}
	}
	return &model.Post{
		Id:      post.Id,
		Text:    post.Text,
		PubDate: post.PubDate,
		Author:  buildAuthorFromFlattened(&post.flattenedAuthor),
		Group:   group,
		Image:   post.Image.String,
	}
}

func buildAuthorFromFlattened(author *flattenedAuthor) *model.User {
	return &model.User{
		Id:       author.AuthorId,
		Username: author.AuthorUsername,
		Avatar:   author.AuthorAvatar,
	}
}
