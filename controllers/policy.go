package controllers

import (
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
)

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Owned is a resource with an owner fixed at creation time.
type Owned interface {
	OwnerId() string
}

type Decision struct {
	Allowed bool
	Reason  string
}

var allowed = Decision{Allowed: true}

// CanMutate is the ownership policy for posts and comments. Reads are open to
// everyone, anonymous included; creates need a caller; updates and deletes
// compare the caller against the owner captured at creation and nothing else.
func CanMutate(caller *model.User, resource Owned, action Action) Decision {
	if action == ActionRead {
		return allowed
	}
	if caller == nil {
		return Decision{Reason: "authentication required"}
	}
	if action == ActionCreate {
		return allowed
	}
	if resource.OwnerId() != caller.Id {
		return Decision{Reason: "only the author can modify this"}
	}
	return allowed
}

// requireMutate translates a policy denial into the HTTP error surfaced by
// every resource service: 401 for the anonymous, 403 for non-owners.
func requireMutate(caller *model.User, resource Owned, action Action) *util.HTTPError {
	if decision := CanMutate(caller, resource, action); !decision.Allowed {
		if caller == nil {
			return util.UnauthorizedHTTPErr
		}
		return util.NotOwnerHTTPErr
	}
	return nil
}
