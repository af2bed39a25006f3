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

type commentRoutes struct {
	controller *controllers.CommentController
	cfg        *config.Config
}

func AddCommentRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.CommentController, verifier middleware.TokenVerifier, cfg *config.Config) {
	routes := commentRoutes{controller: controller, cfg: cfg}
	// the parent post param must be named :id to share the /posts subtree
	comments := group.Group("/posts/:id/comments", middleware.Auth(database, verifier, &middleware.AuthConfig{
		SessionNotRequired: true,
	}))
	comments.GET("", util.HandlerWrapper(routes.listComments, &util.HandlerOpts{}))
	comments.POST("", util.HandlerWrapper(routes.createComment, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	comments.GET("/:comment_id", util.HandlerWrapper(routes.getCommentById, &util.HandlerOpts{}))
	comments.PUT("/:comment_id", util.HandlerWrapper(routes.updateComment, &util.HandlerOpts{}))
	comments.PATCH("/:comment_id", util.HandlerWrapper(routes.updateComment, &util.HandlerOpts{}))
	comments.DELETE("/:comment_id", util.HandlerWrapper(routes.deleteComment, &util.HandlerOpts{SuccessStatus: http.StatusNoContent}))
}

func commentIds(c *gin.Context) (postId, commentId int64, httpErr *util.HTTPError) {
	if postId, httpErr = util.ParseId(c.Param("id")); httpErr != nil {
		return
	}
	commentId, httpErr = util.ParseId(c.Param("comment_id"))
	return
}

func (cr *commentRoutes) createComment(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.CreateCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.Create(c, middleware.GetUserMaybe(c), postId, &req)
}

func (cr *commentRoutes) listComments(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	page, httpErr := util.ParsePageQuery(c, cr.cfg.PageLimit, cr.cfg.PageMaxLimit)
	if httpErr != nil {
		return nil, httpErr
	}
	return cr.controller.List(c, postId, page)
}

func (cr *commentRoutes) getCommentById(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, commentId, httpErr := commentIds(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return cr.controller.Get(c, postId, commentId)
}

func (cr *commentRoutes) updateComment(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, commentId, httpErr := commentIds(c)
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.UpdateCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.Update(c, middleware.GetUserMaybe(c), postId, commentId, &req)
}

func (cr *commentRoutes) deleteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, commentId, httpErr := commentIds(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, cr.controller.Delete(c, middleware.GetUserMaybe(c), postId, commentId)
}
