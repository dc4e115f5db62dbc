package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	"github.com/firaol-d/clubhub/internal/usecase"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

type Router struct {
	userHandler        *UserHandler
	membershipHandler  *MembershipHandler
	tagHandler         *TagHandler
	postHandler        *ContentHandler
	projectHandler     *ContentHandler
	postCommentHandler *CommentHandler
	projCommentHandler *CommentHandler
	userUseCase        usecasecontract.IUserUseCase
}

func NewRouter(
	userUseCase usecasecontract.IUserUseCase,
	membershipUseCase usecasecontract.IMembershipUseCase,
	tagUseCase usecasecontract.ITagUseCase,
	contentUseCase usecase.IContentUseCase,
	commentUseCase usecasecontract.ICommentUseCase,
	logger usecasecontract.IAppLogger,
) *Router {
	return &Router{
		userHandler:        NewUserHandler(userUseCase, logger),
		membershipHandler:  NewMembershipHandler(membershipUseCase, logger),
		tagHandler:         NewTagHandler(tagUseCase, logger),
		postHandler:        NewContentHandler(contentUseCase, logger, entity.ContentKindPost, "postID"),
		projectHandler:     NewContentHandler(contentUseCase, logger, entity.ContentKindProject, "projectID"),
		postCommentHandler: NewCommentHandler(commentUseCase, logger, usecase.ParentTokenPosts, "postID"),
		projCommentHandler: NewCommentHandler(commentUseCase, logger, usecase.ParentTokenProjects, "projectID"),
		userUseCase:        userUseCase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(r.userUseCase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.Me)
		protected.PATCH("/me", r.userHandler.UpdateProfile)
		protected.GET("/users/profile/:userID", r.userHandler.GetUser)

		// Tag routes
		protected.GET("/tags", r.tagHandler.List)

		// Post routes: reads for any authenticated identity, writes gated
		// inside the usecase by the per-kind policy.
		protected.GET("/posts", r.postHandler.List)
		protected.GET("/posts/:postID", r.postHandler.Get)
		protected.POST("/posts", r.postHandler.Create)
		protected.PATCH("/posts/:postID", r.postHandler.Update)
		protected.DELETE("/posts/:postID", r.postHandler.Delete)

		// Project routes
		protected.GET("/projects", r.projectHandler.List)
		protected.GET("/projects/:projectID", r.projectHandler.Get)
		protected.POST("/projects", r.projectHandler.Create)
		protected.PATCH("/projects/:projectID", r.projectHandler.Update)
		protected.DELETE("/projects/:projectID", r.projectHandler.Delete)

		// Comment routes, mounted once per parent kind so the parent type is
		// carried by the path.
		protected.POST("/posts/:postID/comments", r.postCommentHandler.Create)
		protected.GET("/posts/:postID/comments", r.postCommentHandler.List)
		protected.PATCH("/posts/:postID/comments/:commentID", r.postCommentHandler.Update)
		protected.DELETE("/posts/:postID/comments/:commentID", r.postCommentHandler.Delete)

		protected.POST("/projects/:projectID/comments", r.projCommentHandler.Create)
		protected.GET("/projects/:projectID/comments", r.projCommentHandler.List)
		protected.PATCH("/projects/:projectID/comments/:commentID", r.projCommentHandler.Update)
		protected.DELETE("/projects/:projectID/comments/:commentID", r.projCommentHandler.Delete)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(r.userUseCase), middleware.RequireRoles(entity.UserRoleAdmin))
	{
		admin.GET("/memberships", r.membershipHandler.List)
		admin.POST("/memberships/:userID/approve", r.membershipHandler.Approve)
		admin.POST("/memberships/:userID/reject", r.membershipHandler.Reject)
		admin.POST("/tags", r.tagHandler.CreateSystemTag)
	}
}
