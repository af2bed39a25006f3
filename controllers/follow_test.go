package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/blogline/blogline-be/db/memdb"
	"github.com/blogline/blogline-be/util"
)

func TestFollowCreateRequiresAuth(t *testing.T) {
	database, _, _ := newTestDB(t)
	fc := NewFollowController(database)

	_, httpErr := fc.Create(context.Background(), nil, &CreateFollowReq{Following: "bob"})
	if httpErr == nil || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", httpErr)
	}
}

func TestFollowCreateUnresolvableTarget(t *testing.T) {
	database, alice, _ := newTestDB(t)
	fc := NewFollowController(database)

	_, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "nobody"})
	if httpErr == nil || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown username, got %v", httpErr)
	}
	if httpErr == util.SelfFollowHTTPErr || httpErr == util.DuplicateFollowHTTPErr {
		t.Fatalf("wrong error kind for unknown username: %v", httpErr)
	}
}

func TestFollowCreateRejectsSelfFollow(t *testing.T) {
	database, alice, _ := newTestDB(t)
	fc := NewFollowController(database)

	_, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "alice"})
	if httpErr != util.SelfFollowHTTPErr {
		t.Fatalf("expected self-follow rejection, got %v", httpErr)
	}
}

func TestFollowCreateRejectsDuplicate(t *testing.T) {
	database, alice, _ := newTestDB(t)
	fc := NewFollowController(database)

	follow, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "bob"})
	if httpErr != nil {
		t.Fatalf("first follow should succeed, got %v", httpErr)
	}
	if follow.User.Id != alice.Id || follow.Following.Username != "bob" {
		t.Fatalf("unexpected follow row: %+v", follow)
	}

	if _, httpErr = fc.Create(context.Background(), alice, &CreateFollowReq{Following: "bob"}); httpErr != util.DuplicateFollowHTTPErr {
		t.Fatalf("expected duplicate rejection, got %v", httpErr)
	}

	follows, httpErr := fc.List(context.Background(), alice, "")
	if httpErr != nil {
		t.Fatalf("list failed: %v", httpErr)
	}
	if len(follows) != 1 {
		t.Fatalf("store should hold exactly one row, got %d", len(follows))
	}
}

// racedFollowDB reports a pair as not yet followed even when the row exists,
// so the insert itself runs into the store's unique key.
type racedFollowDB struct {
	*memdb.MemDB
}

func (rdb *racedFollowDB) HasFollow(ctx context.Context, userId, followingId string) (bool, error) {
	return false, nil
}

// A duplicate that wins a race past the existence pre-check comes back from
// the store as a unique-key violation; callers must still see the same
// duplicate-follow error.
func TestFollowCreateNormalizesStoreDuplicate(t *testing.T) {
	database, alice, bob := newTestDB(t)
	fc := NewFollowController(&racedFollowDB{database})

	// the racing request writes the row before ours reaches the insert
	if _, err := database.CreateFollow(context.Background(), alice.Id, bob.Id); err != nil {
		t.Fatalf("direct insert failed: %v", err)
	}

	if _, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "bob"}); httpErr != util.DuplicateFollowHTTPErr {
		t.Fatalf("expected duplicate rejection, got %v", httpErr)
	}

	follows, err := database.GetFollowsForUser(context.Background(), alice.Id, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(follows) != 1 {
		t.Fatalf("store should hold exactly one row, got %d", len(follows))
	}
}

func TestFollowListScopedToCaller(t *testing.T) {
	database, alice, bob := newTestDB(t)
	fc := NewFollowController(database)

	if _, err := database.CreateFollow(context.Background(), bob.Id, alice.Id); err != nil {
		t.Fatalf("seeding bob's follow: %v", err)
	}
	if _, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "bob"}); httpErr != nil {
		t.Fatalf("alice's follow failed: %v", httpErr)
	}

	follows, httpErr := fc.List(context.Background(), alice, "")
	if httpErr != nil {
		t.Fatalf("list failed: %v", httpErr)
	}
	for _, follow := range follows {
		if follow.User.Id != alice.Id {
			t.Errorf("listing leaked a row owned by %v", follow.User.Id)
		}
	}
	if len(follows) != 1 {
		t.Fatalf("expected only alice's row, got %d", len(follows))
	}

	if _, httpErr := fc.List(context.Background(), nil, ""); httpErr == nil || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("anonymous list should 401, got %v", httpErr)
	}
}

func TestFollowListSearchFilter(t *testing.T) {
	database, alice, _ := newTestDB(t)
	fc := NewFollowController(database)

	if _, httpErr := fc.Create(context.Background(), alice, &CreateFollowReq{Following: "bob"}); httpErr != nil {
		t.Fatalf("follow failed: %v", httpErr)
	}

	follows, httpErr := fc.List(context.Background(), alice, "OB")
	if httpErr != nil {
		t.Fatalf("list failed: %v", httpErr)
	}
	if len(follows) != 1 {
		t.Fatalf("case-insensitive substring should match, got %d rows", len(follows))
	}

	follows, httpErr = fc.List(context.Background(), alice, "carol")
	if httpErr != nil {
		t.Fatalf("list failed: %v", httpErr)
	}
	if len(follows) != 0 {
		t.Fatalf("non-matching filter should return nothing, got %d rows", len(follows))
	}
}
