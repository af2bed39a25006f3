package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
)

func newPostWithController(t *testing.T) (*CommentController, *model.Post, *model.User, *model.User) {
	t.Helper()
	database, alice, bob := newTestDB(t)
	post, httpErr := NewPostController(database, nil).Create(context.Background(), alice, &CreatePostReq{Text: "hi"})
	if httpErr != nil {
		t.Fatalf("seeding post: %v", httpErr)
	}
	return NewCommentController(database), post, alice, bob
}

func TestCommentMissingPostIsNotFound(t *testing.T) {
	cc, _, alice, _ := newPostWithController(t)

	if _, httpErr := cc.List(context.Background(), 999, &util.PageQuery{}); httpErr == nil || httpErr.Status != http.StatusNotFound {
		t.Errorf("listing under a missing post should 404, got %v", httpErr)
	}
	if _, httpErr := cc.Create(context.Background(), alice, 999, &CreateCommentReq{Text: "hey"}); httpErr == nil || httpErr.Status != http.StatusNotFound {
		t.Errorf("creating under a missing post should 404, got %v", httpErr)
	}
}

func TestCommentCreateForcesPostAndAuthor(t *testing.T) {
	cc, post, alice, _ := newPostWithController(t)

	comment, httpErr := cc.Create(context.Background(), alice, post.Id, &CreateCommentReq{Text: "first"})
	if httpErr != nil {
		t.Fatalf("create failed: %v", httpErr)
	}
	if comment.PostId != post.Id {
		t.Errorf("comment should be bound to the path post, got %d", comment.PostId)
	}
	if comment.Author.Id != alice.Id {
		t.Errorf("author should be the caller, got %v", comment.Author.Id)
	}
	if comment.Created.IsZero() {
		t.Error("created should be server-set")
	}

	if _, httpErr := cc.Create(context.Background(), nil, post.Id, &CreateCommentReq{Text: "anon"}); httpErr == nil || httpErr.Status != http.StatusUnauthorized {
		t.Errorf("anonymous create should 401, got %v", httpErr)
	}
}

func TestCommentListScopedToPost(t *testing.T) {
	database, alice, _ := newTestDB(t)
	pc := NewPostController(database, nil)
	cc := NewCommentController(database)

	first, _ := pc.Create(context.Background(), alice, &CreatePostReq{Text: "first post"})
	second, _ := pc.Create(context.Background(), alice, &CreatePostReq{Text: "second post"})
	if _, httpErr := cc.Create(context.Background(), alice, first.Id, &CreateCommentReq{Text: "on first"}); httpErr != nil {
		t.Fatalf("create failed: %v", httpErr)
	}
	if _, httpErr := cc.Create(context.Background(), alice, second.Id, &CreateCommentReq{Text: "on second"}); httpErr != nil {
		t.Fatalf("create failed: %v", httpErr)
	}

	page, httpErr := cc.List(context.Background(), first.Id, &util.PageQuery{})
	if httpErr != nil {
		t.Fatalf("list failed: %v", httpErr)
	}
	comments := page.Results.([]*model.Comment)
	if len(comments) != 1 || comments[0].PostId != first.Id {
		t.Fatalf("listing must only cover the parent post's comments, got %+v", comments)
	}

	// a comment id that exists under another post is still a 404 here
	otherComment, _ := cc.List(context.Background(), second.Id, &util.PageQuery{})
	otherId := otherComment.Results.([]*model.Comment)[0].Id
	if _, httpErr := cc.Get(context.Background(), first.Id, otherId); httpErr == nil || httpErr.Status != http.StatusNotFound {
		t.Errorf("cross-post comment lookup should 404, got %v", httpErr)
	}
}

func TestCommentMutationOwnership(t *testing.T) {
	cc, post, alice, bob := newPostWithController(t)

	comment, httpErr := cc.Create(context.Background(), alice, post.Id, &CreateCommentReq{Text: "mine"})
	if httpErr != nil {
		t.Fatalf("create failed: %v", httpErr)
	}

	text := "stolen"
	if _, httpErr := cc.Update(context.Background(), bob, post.Id, comment.Id, &UpdateCommentReq{Text: &text}); httpErr == nil || httpErr.Status != http.StatusForbidden {
		t.Errorf("non-owner update should 403, got %v", httpErr)
	}
	if httpErr := cc.Delete(context.Background(), bob, post.Id, comment.Id); httpErr == nil || httpErr.Status != http.StatusForbidden {
		t.Errorf("non-owner delete should 403, got %v", httpErr)
	}

	text = "edited"
	updated, httpErr := cc.Update(context.Background(), alice, post.Id, comment.Id, &UpdateCommentReq{Text: &text})
	if httpErr != nil {
		t.Fatalf("owner update failed: %v", httpErr)
	}
	if updated.Text != "edited" || updated.Author.Id != alice.Id {
		t.Errorf("unexpected comment after update: %+v", updated)
	}

	if httpErr := cc.Delete(context.Background(), alice, post.Id, comment.Id); httpErr != nil {
		t.Fatalf("owner delete failed: %v", httpErr)
	}
	if _, httpErr := cc.Get(context.Background(), post.Id, comment.Id); httpErr == nil || httpErr.Status != http.StatusNotFound {
		t.Errorf("deleted comment should 404, got %v", httpErr)
	}
}
