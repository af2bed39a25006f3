package controllers

import (
	"context"

	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
)

// CommentController always resolves the parent post first: every operation is
// scoped to one post's comments and a missing post is a 404 regardless of the
// comment id.
type CommentController struct {
	db db.Database
}

func NewCommentController(database db.Database) *CommentController {
	return &CommentController{db: database}
}

type CreateCommentReq struct {
	Text string `json:"text"`
}

type UpdateCommentReq struct {
	Text *string `json:"text"`
}

func (cc *CommentController) Create(ctx context.Context, caller *model.User, postId int64, req *CreateCommentReq) (*model.Comment, *util.HTTPError) {
	if httpErr := cc.resolvePost(ctx, postId); httpErr != nil {
		return nil, httpErr
	}
	if httpErr := requireMutate(caller, nil, ActionCreate); httpErr != nil {
		return nil, httpErr
	}
	text, httpErr := cleanText(req.Text)
	if httpErr != nil {
		return nil, httpErr
	}

	// post comes from the URL path and author from the session; a client
	// cannot supply either.
	id, err := cc.db.CreateComment(ctx, &db.CreateComment{
		AuthorId: caller.Id,
		PostId:   postId,
		Text:     text,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	comment, err := cc.db.GetCommentById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return comment, nil
}

func (cc *CommentController) List(ctx context.Context, postId int64, page *util.PageQuery) (*util.Page, *util.HTTPError) {
	if httpErr := cc.resolvePost(ctx, postId); httpErr != nil {
		return nil, httpErr
	}
	comments, err := cc.db.GetComments(ctx, &db.CommentsQuery{
		PostId: postId,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	count, err := cc.db.CountComments(ctx, postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return &util.Page{
		Count:   count,
		Limit:   page.Limit,
		Offset:  page.Offset,
		Results: comments,
	}, nil
}

func (cc *CommentController) Get(ctx context.Context, postId, commentId int64) (*model.Comment, *util.HTTPError) {
	if httpErr := cc.resolvePost(ctx, postId); httpErr != nil {
		return nil, httpErr
	}
	comment, err := cc.db.GetCommentById(ctx, commentId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil || comment.PostId != postId {
		return nil, util.BuildNotFoundHTTPErr("comment")
	}
	return comment, nil
}

func (cc *CommentController) Update(ctx context.Context, caller *model.User, postId, commentId int64, req *UpdateCommentReq) (*model.Comment, *util.HTTPError) {
	comment, httpErr := cc.Get(ctx, postId, commentId)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := requireMutate(caller, comment, ActionUpdate); httpErr != nil {
		return nil, httpErr
	}
	if req.Text != nil {
		text, httpErr := cleanText(*req.Text)
		if httpErr != nil {
			return nil, httpErr
		}
		if err := cc.db.UpdateCommentText(ctx, commentId, text); err != nil {
			return nil, util.BuildDbHTTPErr(err)
		}
	}
	return cc.Get(ctx, postId, commentId)
}

func (cc *CommentController) Delete(ctx context.Context, caller *model.User, postId, commentId int64) *util.HTTPError {
	comment, httpErr := cc.Get(ctx, postId, commentId)
	if httpErr != nil {
		return httpErr
	}
	if httpErr := requireMutate(caller, comment, ActionDelete); httpErr != nil {
		return httpErr
	}
	if err := cc.db.DeleteComment(ctx, commentId); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (cc *CommentController) resolvePost(ctx context.Context, postId int64) *util.HTTPError {
	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return util.BuildNotFoundHTTPErr("post")
	}
	return nil
}
