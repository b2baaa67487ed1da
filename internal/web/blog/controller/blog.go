// Package controller exposes the blog service over HTTP.
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"

	"github.com/tradinghub/blog-api/internal/web/blog/dto"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
	"github.com/tradinghub/blog-api/internal/web/blog/service"
	"github.com/tradinghub/blog-api/library/jwt"
	"github.com/tradinghub/blog-api/library/throttle"
)

// tokenTTL actor tokens expire after this
const tokenTTL = 30 * 24 * time.Hour

// actorCtxKey gin context key holding the resolved actor
const actorCtxKey = "blog_actor"

// Blog blog controller
type Blog struct {
	logger        glog.Logger
	svc           *service.Blog
	loginThrottle *throttle.Throttle
}

// New new blog controller
func New(logger glog.Logger, svc *service.Blog) (*Blog, error) {
	loginThrottle, err := throttle.New(&throttle.Cfg{
		TotalNPerSec:   20,
		TotalBurst:     40,
		EachKeyNPerSec: 2,
		EachKeyBurst:   5,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create login throttle")
	}

	return &Blog{
		logger:        logger,
		svc:           svc,
		loginThrottle: loginThrottle,
	}, nil
}

// RegisterRoutes mount all blog routes on r
func (c *Blog) RegisterRoutes(r gin.IRouter) {
	r.Use(c.resolveActor)

	r.POST("/login", c.login)
	r.GET("/users", c.listUsers)

	r.POST("/posts", c.createPost)
	r.GET("/posts", c.listApprovedPosts)
	r.GET("/posts/mine", c.listMyPosts)
	r.GET("/posts/pending", c.listPendingPosts)
	r.GET("/posts/id/:id", c.getPostByID)
	r.GET("/posts/:slug", c.getPostBySlug)
	r.PUT("/posts/:id", c.updatePost)
	r.DELETE("/posts/:id", c.deletePost)
	r.POST("/posts/:id/approve", c.approvePost)
	r.POST("/posts/:id/reject", c.rejectPost)

	r.GET("/search", c.searchPosts)
	r.GET("/search/suggest", c.suggestPosts)

	r.POST("/bookmarks", c.addBookmark)
	r.GET("/bookmarks", c.listBookmarks)
	r.GET("/bookmarks/:postId", c.isBookmarked)
	r.DELETE("/bookmarks/:postId", c.removeBookmark)
}

// resolveActor load the current actor from the bearer token when one
// is present; anonymous requests proceed with no actor.
func (c *Blog) resolveActor(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.Next()
		return
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	claims, err := jwt.Instance.Verify(raw)
	if err != nil {
		c.logger.Debug("reject token", zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"error": "invalid token"})
		return
	}

	actor, err := c.svc.GetUserByID(ctx.Request.Context(), claims.Subject)
	if err != nil {
		c.abortErr(ctx, errors.Wrap(err, "load actor"))
		return
	}

	ctx.Set(actorCtxKey, actor)
	ctx.Next()
}

// currentActor the actor resolved by the middleware, nil when
// unauthenticated
func currentActor(ctx *gin.Context) *model.User {
	if v, ok := ctx.Get(actorCtxKey); ok {
		if actor, ok := v.(*model.User); ok {
			return actor
		}
	}

	return nil
}

// abortErr map service errors onto HTTP statuses
func (c *Blog) abortErr(ctx *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidTransition):
		status = http.StatusConflict
	default:
		c.logger.Error("handle request", zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError,
			gin.H{"error": "internal error"})
		return
	}

	ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
}

func (c *Blog) login(ctx *gin.Context) {
	req := &loginReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !c.loginThrottle.Allow(req.Username) {
		ctx.AbortWithStatusJSON(http.StatusTooManyRequests,
			gin.H{"error": "too many login attempts"})
		return
	}

	actor, err := c.svc.Login(ctx.Request.Context(), req.Username)
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	now := gutils.Clock.GetUTCNow()
	token, err := jwt.Instance.Sign(&jwt.ActorClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwtLib.NewNumericDate(now),
			ExpiresAt: jwtLib.NewNumericDate(now.Add(tokenTTL)),
		},
		Username: actor.Username,
		Role:     string(actor.Role),
	})
	if err != nil {
		c.abortErr(ctx, errors.Wrap(err, "sign token"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": actor})
}

func (c *Blog) listUsers(ctx *gin.Context) {
	users, err := c.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

func (c *Blog) createPost(ctx *gin.Context) {
	draft := &dto.PostDraft{}
	if err := ctx.ShouldBindJSON(draft); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := c.svc.CreatePost(ctx.Request.Context(), currentActor(ctx), draft)
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"post": p})
}

func (c *Blog) listApprovedPosts(ctx *gin.Context) {
	posts, err := c.svc.ListApprovedPosts(ctx.Request.Context())
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (c *Blog) listMyPosts(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "login required"})
		return
	}

	posts, err := c.svc.ListPostsByAuthor(ctx.Request.Context(), actor.ID)
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (c *Blog) listPendingPosts(ctx *gin.Context) {
	posts, err := c.svc.ListPendingPosts(ctx.Request.Context(), currentActor(ctx))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (c *Blog) getPostBySlug(ctx *gin.Context) {
	p, err := c.svc.GetPostBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"post":         p,
		"content_html": service.ParseMarkdown2HTML([]byte(p.Content)),
	})
}

func (c *Blog) getPostByID(ctx *gin.Context) {
	p, err := c.svc.GetPostByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": p})
}

func (c *Blog) updatePost(ctx *gin.Context) {
	patch := &dto.PostPatch{}
	if err := ctx.ShouldBindJSON(patch); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := c.svc.UpdatePost(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("id"), patch)
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": p})
}

func (c *Blog) deletePost(ctx *gin.Context) {
	removed, err := c.svc.DeletePost(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("id"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": removed})
}

func (c *Blog) approvePost(ctx *gin.Context) {
	p, err := c.svc.ApprovePost(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("id"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": p})
}

func (c *Blog) rejectPost(ctx *gin.Context) {
	p, err := c.svc.RejectPost(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("id"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": p})
}

func (c *Blog) searchPosts(ctx *gin.Context) {
	posts, err := c.svc.SearchPosts(ctx.Request.Context(), &dto.SearchCfg{
		Query:      ctx.Query("q"),
		AuthorName: ctx.Query("author"),
	})
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (c *Blog) suggestPosts(ctx *gin.Context) {
	posts, err := c.svc.SuggestPosts(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

type bookmarkReq struct {
	PostID string `json:"post_id" binding:"required"`
}

func (c *Blog) addBookmark(ctx *gin.Context) {
	req := &bookmarkReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := c.svc.AddBookmark(ctx.Request.Context(), currentActor(ctx), req.PostID)
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"bookmark": b})
}

func (c *Blog) removeBookmark(ctx *gin.Context) {
	if err := c.svc.RemoveBookmark(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("postId")); err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Blog) isBookmarked(ctx *gin.Context) {
	bookmarked, err := c.svc.IsBookmarked(ctx.Request.Context(),
		currentActor(ctx), ctx.Param("postId"))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (c *Blog) listBookmarks(ctx *gin.Context) {
	bookmarks, err := c.svc.ListBookmarks(ctx.Request.Context(), currentActor(ctx))
	if err != nil {
		c.abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
