package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/services"
	"github.com/blogline/blogline-be/util"
)

// postOrderFields are the ordering names the list endpoint accepts. Unknown
// names are rejected rather than ignored so callers can't smuggle arbitrary
// expressions toward the store.
var postOrderFields = map[string]bool{
	"id":       true,
	"text":     true,
	"pub_date": true,
	"author":   true,
	"group":    true,
}

type PostController struct {
	db     db.Database
	images *services.StorageBucket // nil when no bucket is configured
}

func NewPostController(database db.Database, images *services.StorageBucket) *PostController {
	return &PostController{db: database, images: images}
}

type CreatePostReq struct {
	Text  string `json:"text"`
	Group *int64 `json:"group"`
	Image string `json:"image"`
}

type UpdatePostReq struct {
	Text  *string `json:"text"`
	Group *int64  `json:"group"`
	Image *string `json:"image"`
}

func (pc *PostController) Create(ctx context.Context, caller *model.User, req *CreatePostReq) (*model.Post, *util.HTTPError) {
	if httpErr := requireMutate(caller, nil, ActionCreate); httpErr != nil {
		return nil, httpErr
	}
	text, httpErr := cleanText(req.Text)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := pc.checkGroup(ctx, req.Group); httpErr != nil {
		return nil, httpErr
	}
	if httpErr := pc.checkImage(ctx, req.Image); httpErr != nil {
		return nil, httpErr
	}

	// author comes from the session, pub_date from the store. Neither is ever
	// read from the request.
	id, err := pc.db.CreatePost(ctx, &db.CreatePost{
		AuthorId: caller.Id,
		Text:     text,
		GroupId:  req.Group,
		Image:    req.Image,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return post, nil
}

func (pc *PostController) List(ctx context.Context, ordering string, page *util.PageQuery) (*util.Page, *util.HTTPError) {
	orderBy, httpErr := parseOrdering(ordering)
	if httpErr != nil {
		return nil, httpErr
	}
	posts, err := pc.db.GetPosts(ctx, &db.PostsQuery{
		OrderBy: orderBy,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	count, err := pc.db.CountPosts(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return &util.Page{
		Count:   count,
		Limit:   page.Limit,
		Offset:  page.Offset,
		Results: posts,
	}, nil
}

func (pc *PostController) Get(ctx context.Context, id int64) (*model.Post, *util.HTTPError) {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.BuildNotFoundHTTPErr("post")
	}
	return post, nil
}

func (pc *PostController) Update(ctx context.Context, caller *model.User, id int64, req *UpdatePostReq) (*model.Post, *util.HTTPError) {
	post, httpErr := pc.Get(ctx, id)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := requireMutate(caller, post, ActionUpdate); httpErr != nil {
		return nil, httpErr
	}
	if req.Text != nil {
		text, httpErr := cleanText(*req.Text)
		if httpErr != nil {
			return nil, httpErr
		}
		req.Text = &text
	}
	if httpErr := pc.checkGroup(ctx, req.Group); httpErr != nil {
		return nil, httpErr
	}
	if req.Image != nil {
		if httpErr := pc.checkImage(ctx, *req.Image); httpErr != nil {
			return nil, httpErr
		}
	}
	if req.Text == nil && req.Group == nil && req.Image == nil {
		return post, nil
	}

	if err := pc.db.UpdatePost(ctx, id, &db.UpdatePost{
		Text:    req.Text,
		GroupId: req.Group,
		Image:   req.Image,
	}); err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return pc.Get(ctx, id)
}

func (pc *PostController) Delete(ctx context.Context, caller *model.User, id int64) *util.HTTPError {
	post, httpErr := pc.Get(ctx, id)
	if httpErr != nil {
		return httpErr
	}
	if httpErr := requireMutate(caller, post, ActionDelete); httpErr != nil {
		return httpErr
	}
	if err := pc.db.DeletePost(ctx, id); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (pc *PostController) checkGroup(ctx context.Context, groupId *int64) *util.HTTPError {
	if groupId == nil {
		return nil
	}
	group, err := pc.db.GetGroupById(ctx, *groupId)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if group == nil {
		return util.BuildValidationHTTPErr("group does not exist")
	}
	return nil
}

func (pc *PostController) checkImage(ctx context.Context, blobName string) *util.HTTPError {
	if blobName == "" || pc.images == nil {
		return nil
	}
	exists, err := pc.images.Exists(ctx, blobName)
	if err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "image store error"}
	}
	if !exists {
		return util.BuildValidationHTTPErr("image blob does not exist")
	}
	return nil
}

func cleanText(text string) (string, *util.HTTPError) {
	cleaned := strings.TrimSpace(util.XSSSanitize(text))
	if cleaned == "" {
		return "", util.BuildValidationHTTPErr("text must not be empty")
	}
	return cleaned, nil
}

func parseOrdering(ordering string) ([]string, *util.HTTPError) {
	if ordering == "" {
		return nil, nil
	}
	fields := strings.Split(ordering, ",")
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if !postOrderFields[field] {
			return nil, util.BuildValidationHTTPErr("unknown ordering field: " + field)
		}
		fields[i] = field
	}
	return fields, nil
}
