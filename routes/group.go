package routes

import (
	"github.com/blogline/blogline-be/controllers"
	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/middleware"
	"github.com/blogline/blogline-be/util"
	"github.com/gin-gonic/gin"
)

type groupRoutes struct {
	controller *controllers.GroupController
}

func AddGroupRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.GroupController, verifier middleware.TokenVerifier) {
	routes := groupRoutes{controller: controller}
	groups := group.Group("/groups", middleware.Auth(database, verifier, &middleware.AuthConfig{
		SessionNotRequired: true,
	}))
	groups.GET("", util.HandlerWrapper(routes.listGroups, &util.HandlerOpts{}))
	groups.GET("/:id", util.HandlerWrapper(routes.getGroupById, &util.HandlerOpts{}))
}

func (gr *groupRoutes) listGroups(c *gin.Context) (interface{}, *util.HTTPError) {
	return gr.controller.List(c)
}

func (gr *groupRoutes) getGroupById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return gr.controller.Get(c, id)
}
