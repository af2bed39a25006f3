package controllers

import (
	"context"

	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
)

type FollowController struct {
	db db.Database
}

func NewFollowController(database db.Database) *FollowController {
	return &FollowController{db: database}
}

// CreateFollowReq names the followee by username. There is deliberately no
// user field: the follower is always the caller.
type CreateFollowReq struct {
	Following string `json:"following"`
}

// Create runs the follow consistency checks in a fixed order so the first
// failing one determines the error: authentication, target resolution,
// self-follow, duplicate. The existence check is best-effort; a concurrent
// duplicate that slips past it is caught by the store's unique key and
// normalized to the same error.
func (fc *FollowController) Create(ctx context.Context, caller *model.User, req *CreateFollowReq) (*model.Follow, *util.HTTPError) {
	if caller == nil {
		return nil, util.UnauthorizedHTTPErr
	}
	if req.Following == "" {
		return nil, util.BuildValidationHTTPErr("following is required")
	}
	target, err := fc.db.GetUserByUsername(ctx, req.Following)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if target == nil {
		return nil, util.BuildValidationHTTPErr("unresolvable follow target")
	}
	if target.Id == caller.Id {
		return nil, util.SelfFollowHTTPErr
	}
	exists, err := fc.db.HasFollow(ctx, caller.Id, target.Id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if exists {
		return nil, util.DuplicateFollowHTTPErr
	}

	id, err := fc.db.CreateFollow(ctx, caller.Id, target.Id)
	if err != nil {
		if db.IsDupKeyErr(err) {
			return nil, util.DuplicateFollowHTTPErr
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return &model.Follow{Id: id, User: caller, Following: target}, nil
}

// List only ever returns the caller's own outgoing follows.
func (fc *FollowController) List(ctx context.Context, caller *model.User, search string) ([]*model.Follow, *util.HTTPError) {
	if caller == nil {
		return nil, util.UnauthorizedHTTPErr
	}
	follows, err := fc.db.GetFollowsForUser(ctx, caller.Id, search)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if follows == nil {
		follows = []*model.Follow{}
	}
	return follows, nil
}
