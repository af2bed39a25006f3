package mysql

import (
	"context"

	"github.com/blogline/blogline-be/model"
	"github.com/upper/db/v4"
)

type GroupDB struct {
	sess db.Session
}

func getGroupDB(sess db.Session) *GroupDB {
	return &GroupDB{sess}
}

func (gdb *GroupDB) CreateGroup(ctx context.Context, group *model.Group) (int64, error) {
	slug := group.Slug
	if slug == "" {
		slug = model.DefaultGroupSlug
	}
	res, err := gdb.sess.SQL().
		InsertInto("blog_group").
		Columns("title", "slug", "description").
		Values(group.Title, slug, group.Description).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (gdb *GroupDB) GetGroupById(ctx context.Context, id int64) (*model.Group, error) {
	var group model.Group
	if err := gdb.sess.SQL().
		Select("*").
		From("blog_group").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&group); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (gdb *GroupDB) GetGroups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	err := gdb.sess.SQL().
		Select("*").
		From("blog_group").
		OrderBy("id").
		IteratorContext(ctx).
		All(&groups)
	return groups, err
}
