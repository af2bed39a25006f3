package controllers

import (
	"net/http"
	"testing"

	"github.com/blogline/blogline-be/model"
)

type ownedBy string

func (o ownedBy) OwnerId() string { return string(o) }

func TestCanMutate(t *testing.T) {
	alice := &model.User{Id: "alice-uid", Username: "alice"}
	bob := &model.User{Id: "bob-uid", Username: "bob"}

	tests := []struct {
		name     string
		caller   *model.User
		resource Owned
		action   Action
		want     bool
	}{
		{"anonymous read", nil, ownedBy("alice-uid"), ActionRead, true},
		{"anonymous create", nil, nil, ActionCreate, false},
		{"authenticated create", alice, nil, ActionCreate, true},
		{"owner update", alice, ownedBy("alice-uid"), ActionUpdate, true},
		{"non-owner update", bob, ownedBy("alice-uid"), ActionUpdate, false},
		{"anonymous update", nil, ownedBy("alice-uid"), ActionUpdate, false},
		{"owner delete", alice, ownedBy("alice-uid"), ActionDelete, true},
		{"non-owner delete", bob, ownedBy("alice-uid"), ActionDelete, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMutate(tt.caller, tt.resource, tt.action)
			if got.Allowed != tt.want {
				t.Errorf("CanMutate() = %v, want allowed=%v (reason %q)", got.Allowed, tt.want, got.Reason)
			}
		})
	}
}

func TestRequireMutateStatusMapping(t *testing.T) {
	alice := &model.User{Id: "alice-uid"}

	if httpErr := requireMutate(nil, ownedBy("alice-uid"), ActionUpdate); httpErr == nil || httpErr.Status != http.StatusUnauthorized {
		t.Errorf("anonymous mutation should map to 401, got %v", httpErr)
	}
	if httpErr := requireMutate(&model.User{Id: "bob-uid"}, ownedBy("alice-uid"), ActionDelete); httpErr == nil || httpErr.Status != http.StatusForbidden {
		t.Errorf("non-owner mutation should map to 403, got %v", httpErr)
	}
	if httpErr := requireMutate(alice, ownedBy("alice-uid"), ActionUpdate); httpErr != nil {
		t.Errorf("owner mutation should pass, got %v", httpErr)
	}
}
