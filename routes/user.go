package routes

import (
	"net/http"
	"strings"

	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/middleware"
	"github.com/blogline/blogline-be/model"
	"github.com/blogline/blogline-be/util"
	"github.com/gin-gonic/gin"
)

type userRoutes struct {
	db db.UserDatabase
}

func AddUserRoutes(group *gin.RouterGroup, userDatabase db.UserDatabase, verifier middleware.TokenVerifier) {
	routes := userRoutes{db: userDatabase}
	users := group.Group("/users", middleware.Auth(userDatabase, verifier, &middleware.AuthConfig{
		ProfileNotRequired: true,
	}))
	users.PUT("", util.HandlerWrapper(routes.createUser, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
}

type createUserReq struct {
	Username string `json:"username"`
}

func (ur *userRoutes) createUser(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createUserReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, util.BuildValidationHTTPErr("username must not be empty")
	}
	user := &model.User{
		Id:       middleware.MustGetToken(c).UID,
		Username: username,
		Avatar:   util.Avatar(username),
	}
	if err := ur.db.CreateUser(c, user); err != nil {
		if db.IsDupKeyErr(err) {
			return nil, util.BuildValidationHTTPErr("username or profile already exists")
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return user, nil
}
