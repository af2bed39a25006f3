package mysql

import (
	"context"
	"time"

	db2 "github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

type flattenedComment struct {
	flattenedAuthor `db:",inline"`
	Id              int64     `db:"id"`
	Text            string    `db:"text"`
	PostId          int64     `db:"post_id"`
	Created         time.Time `db:"created"`
}

var commentColumns = append([]interface{}{
	"c.id",
	"c.text",
	"c.post_id",
	"c.created",
}, authorColumns...)

func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comment").
		Columns("text", "author_id", "post_id").
		Values(req.Text, req.AuthorId, req.PostId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	var comment flattenedComment
	if err := commentSelect(cdb.sess).
		Where("c.id = ?", id).
		IteratorContext(ctx).
		One(&comment); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildCommentFromFlattened(&comment), nil
}

func (cdb *CommentDB) GetComments(ctx context.Context, query *db2.CommentsQuery) ([]*model.Comment, error) {
	selector := commentSelect(cdb.sess).
		Where("c.post_id = ?", query.PostId).
		OrderBy("c.created", "c.id")
	if query.Limit > 0 {
		selector = selector.Limit(query.Limit).Offset(query.Offset)
	}

	var flattenedComments []flattenedComment
	if err := selector.
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, len(flattenedComments))
	for i, flattened := range flattenedComments {
		comments[i] = buildCommentFromFlattened(&flattened)
	}
	return comments, nil
}

func (cdb *CommentDB) CountComments(ctx context.Context, postId int64) (int64, error) {
	count, err := cdb.sess.WithContext(ctx).
		Collection("comment").
		Find("post_id = ?", postId).
		Count()
	return int64(count), err
}

func (cdb *CommentDB) UpdateCommentText(ctx context.Context, id int64, text string) error {
	_, err := cdb.sess.SQL().
		Update("comment").
		Set("text", text).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (cdb *CommentDB) DeleteComment(ctx context.Context, id int64) error {
	return cdb.sess.WithContext(ctx).
		Collection("comment").
		Find("id = ?", id).
		Delete()
}

func commentSelect(sess db.Session) db.Selector {
	return sess.SQL().
		Select(commentColumns...).
		From("comment AS c").
		Join("person").On("c.author_id = person.firebase_id")
}

func buildCommentFromFlattened(comment *flattenedComment) *model.Comment {
	return &model.Comment{
		Id:      comment.Id,
		Text:    comment.Text,
		Author:  buildAuthorFromFlattened(&comment.flattenedAuthor),
		PostId:  comment.PostId,
		Created: comment.Created,
	}
}
