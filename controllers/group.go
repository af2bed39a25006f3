package controllers

import (
	"context"

	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
)

// GroupController is read-only; groups are seeded through the repository
// layer, never over HTTP.
type GroupController struct {
	db db.GroupDatabase
}

func NewGroupController(database db.GroupDatabase) *GroupController {
	return &GroupController{db: database}
}

func (gc *GroupController) List(ctx context.Context) ([]*model.Group, *util.HTTPError) {
	groups, err := gc.db.GetGroups(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if groups == nil {
		groups = []*model.Group{}
	}
	return groups, nil
}

func (gc *GroupController) Get(ctx context.Context, id int64) (*model.Group, *util.HTTPError) {
	group, err := gc.db.GetGroupById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if group == nil {
		return nil, util.BuildNotFoundHTTPErr("group")
	}
	return group, nil
}
