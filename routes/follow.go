package routes

import (
	"net/http"

	"github.com/blogline/blogline-be/controllers"
	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/middleware"
	"github.com/blogline/blogline-be/util"
	"github.com/gin-gonic/gin"
)

type followRoutes struct {
	controller *controllers.FollowController
}

func AddFollowRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.FollowController, verifier middleware.TokenVerifier) {
	routes := followRoutes{controller: controller}
	follow := group.Group("/follow", middleware.Auth(database, verifier, &middleware.AuthConfig{}))
	follow.GET("", util.HandlerWrapper(routes.listFollows, &util.HandlerOpts{}))
	follow.POST("", util.HandlerWrapper(routes.createFollow, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
}

func (fr *followRoutes) createFollow(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreateFollowReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return fr.controller.Create(c, middleware.MustGetUser(c), &req)
}

func (fr *followRoutes) listFollows(c *gin.Context) (interface{}, *util.HTTPError) {
	return fr.controller.List(c, middleware.MustGetUser(c), c.Query("search"))
}
