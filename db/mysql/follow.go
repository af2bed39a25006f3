package mysql

import (
	"context"
	"strings"

	"github.com/blogline/blogline-be/model"
	"github.com/upper/db/v4"
)

type FollowDB struct {
	sess db.Session
}

func getFollowDB(sess db.Session) *FollowDB {
	return &FollowDB{sess}
}

type flattenedFollow struct {
	Id                int64  `db:"id"`
	UserId            string `db:"user_id"`
	UserUsername      string `db:"user_username"`
	UserAvatar        string `db:"user_avatar"`
	FollowingId       string `db:"following_id"`
	FollowingUsername string `db:"following_username"`
	FollowingAvatar   string `db:"following_avatar"`
}

// CreateFollow relies on the unique key over (user_id, following_id) to
// serialize concurrent duplicates; callers inspect the error with
// db.IsDupKeyErr.
func (fdb *FollowDB) CreateFollow(ctx context.Context, userId, followingId string) (int64, error) {
	res, err := fdb.sess.SQL().
		InsertInto("follow").
		Columns("user_id", "following_id").
		Values(userId, followingId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (fdb *FollowDB) HasFollow(ctx context.Context, userId, followingId string) (bool, error) {
	return fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("user_id = ? AND following_id = ?", userId, followingId).
		Exists()
}

func (fdb *FollowDB) GetFollowsForUser(ctx context.Context, userId string, search string) ([]*model.Follow, error) {
	selector := fdb.sess.SQL().
		Select(
			"f.id",
			"u.firebase_id AS user_id",
			"u.username AS user_username",
			"u.avatar AS user_avatar",
			"t.firebase_id AS following_id",
			"t.username AS following_username",
			"t.avatar AS following_avatar",
		).
		From("follow AS f").
		Join("person AS u").On("f.user_id = u.firebase_id").
		Join("person AS t").On("f.following_id = t.firebase_id").
		Where("f.user_id = ?", userId)
	if search != "" {
		selector = selector.And("LOWER(t.username) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var flattenedFollows []flattenedFollow
	if err := selector.
		OrderBy("f.id").
		IteratorContext(ctx).
		All(&flattenedFollows); err != nil {
		return nil, err
	}

	follows := make([]*model.Follow, len(flattenedFollows))
	for i, flattened := range flattenedFollows {
		follows[i] = &model.Follow{
			Id: flattened.Id,
			User: &model.User{
				Id:       flattened.UserId,
				Username: flattened.UserUsername,
				Avatar:   flattened.UserAvatar,
			},
			Following: &model.User{
				Id:       flattened.FollowingId,
				Username: flattened.FollowingUsername,
				Avatar:   flattened.FollowingAvatar,
			},
		}
	}
	return follows, nil
}
