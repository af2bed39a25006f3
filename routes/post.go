package routes

import (
	"net/http"

	"github.com/blogline/blogline-be/config"
	"github.com/blogline/blogline-be/controllers"
	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/middleware"
	"github.com/blogline/blogline-be/util"
	"github.com/gin-gonic/gin"
)

type postRoutes struct {
	controller *controllers.PostController
	cfg        *config.Config
}

func AddPostRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.PostController, verifier middleware.TokenVerifier, cfg *config.Config) {
	routes := postRoutes{controller: controller, cfg: cfg}
	posts := group.Group("/posts", middleware.Auth(database, verifier, &middleware.AuthConfig{
		SessionNotRequired: true,
	}))
	posts.GET("", util.HandlerWrapper(routes.listPosts, &util.HandlerOpts{}))
	posts.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	posts.GET("/:id", util.HandlerWrapper(routes.getPostById, &util.HandlerOpts{}))
	posts.PUT("/:id", util.HandlerWrapper(routes.updatePost, &util.HandlerOpts{}))
	posts.PATCH("/:id", util.HandlerWrapper(routes.updatePost, &util.HandlerOpts{}))
	posts.DELETE("/:id", util.HandlerWrapper(routes.deletePost, &util.HandlerOpts{SuccessStatus: http.StatusNoContent}))
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreatePostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.controller.Create(c, middleware.GetUserMaybe(c), &req)
}

func (pr *postRoutes) listPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	page, httpErr := util.ParsePageQuery(c, pr.cfg.PageLimit, pr.cfg.PageMaxLimit)
	if httpErr != nil {
		return nil, httpErr
	}
	return pr.controller.List(c, c.Query("ordering"), page)
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return pr.controller.Get(c, id)
}

func (pr *postRoutes) updatePost(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.UpdatePostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.controller.Update(c, middleware.GetUserMaybe(c), id, &req)
}

func (pr *postRoutes) deletePost(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, pr.controller.Delete(c, middleware.GetUserMaybe(c), id)
}
