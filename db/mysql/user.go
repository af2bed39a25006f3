package mysql

import (
	"context"

	"github.com/blogline/blogline-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, user *model.User) error {
	_, err := udb.sess.SQL().
		InsertInto("person").
		Columns("firebase_id", "username", "avatar").
		Values(user.Id, user.Username, user.Avatar).
		ExecContext(ctx)
	return err
}

func (udb *UserDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	return udb.getUserWhere(ctx, "firebase_id = ?", id)
}

func (udb *UserDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return udb.getUserWhere(ctx, "username = ?", username)
}

func (udb *UserDB) getUserWhere(ctx context.Context, cond string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("person").
		Where(cond, arg).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
