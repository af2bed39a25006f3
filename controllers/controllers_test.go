package controllers

import (
	"context"
	"testing"

	"github.com/blogline/blogline-be/db/memdb"
	"github.com/blogline/blogline-be/model"
)

// newTestDB seeds an in-memory store with the two users every scenario needs.
func newTestDB(t *testing.T) (*memdb.MemDB, *model.User, *model.User) {
	t.Helper()
	database := memdb.GetDatabase()
	alice := &model.User{Id: "alice-uid", Username: "alice"}
	bob := &model.User{Id: "bob-uid", Username: "bob"}
	for _, user := range []*model.User{alice, bob} {
		if err := database.CreateUser(context.Background(), user); err != nil {
			t.Fatalf("seeding user %v: %v", user.Username, err)
		}
	}
	return database, alice, bob
}
