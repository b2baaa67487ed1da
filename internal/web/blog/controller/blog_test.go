package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tradinghub/blog-api/internal/web/blog/dao"
	"github.com/tradinghub/blog-api/internal/web/blog/service"
	"github.com/tradinghub/blog-api/library/db/sqlite"
	"github.com/tradinghub/blog-api/library/jwt"
	"github.com/tradinghub/blog-api/library/log"
)

func newTestRouter(ctx context.Context, t *testing.T) *gin.Engine {
	t.Helper()

	require.NoError(t, jwt.Initialize([]byte("test-secret")))

	db, err := sqlite.Open(ctx, sqlite.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	d, err := dao.New(ctx, log.Logger, db)
	require.NoError(t, err)
	svc, err := service.New(ctx, log.Logger, d)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctl, err := New(log.Logger, svc)
	require.NoError(t, err)
	ctl.RegisterRoutes(router.Group("/api"))
	return router
}

func do(t *testing.T, router *gin.Engine,
	method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	resp := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// loginAs obtain a token for one of the seeded demo accounts
func loginAs(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := do(t, router, http.MethodPost, "/api/login", "",
		gin.H{"username": username})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token string
	require.NoError(t, json.Unmarshal(decode(t, w)["token"], &token))
	require.NotEmpty(t, token)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(context.Background(), t)

	w := do(t, router, http.MethodPost, "/api/login", "",
		gin.H{"username": "john_trader"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Contains(t, resp, "token")
	require.Contains(t, resp, "user")

	// unknown account
	w = do(t, router, http.MethodPost, "/api/login", "",
		gin.H{"username": "nobody"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// missing username field
	w = do(t, router, http.MethodPost, "/api/login", "", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveActor_InvalidToken(t *testing.T) {
	router := newTestRouter(context.Background(), t)

	w := do(t, router, http.MethodGet, "/api/posts", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(context.Background(), t)
	authorToken := loginAs(t, router, "john_trader")
	adminToken := loginAs(t, router, "admin")

	// anonymous create is forbidden
	draft := gin.H{
		"title":   "Scalping Basics",
		"excerpt": "Small moves, many trades.",
		"content": "Scalping targets tiny price moves.",
	}
	w := do(t, router, http.MethodPost, "/api/posts", "", draft)
	require.Equal(t, http.StatusForbidden, w.Code)

	// author creates, post lands pending
	w = do(t, router, http.MethodPost, "/api/posts", authorToken, draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     string `json:"id"`
		Slug   string `json:"slug"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w)["post"], &created))
	require.Equal(t, "scalping-basics", created.Slug)
	require.Equal(t, "pending", created.Status)

	// not public yet
	w = do(t, router, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []json.RawMessage
	require.NoError(t, json.Unmarshal(decode(t, w)["posts"], &posts))
	require.Empty(t, posts)

	// author cannot approve their own post
	w = do(t, router, http.MethodPost,
		"/api/posts/"+created.ID+"/approve", authorToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// admin approves
	w = do(t, router, http.MethodPost,
		"/api/posts/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// approving twice conflicts
	w = do(t, router, http.MethodPost,
		"/api/posts/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// now public, fetchable by slug with rendered markdown
	w = do(t, router, http.MethodGet, "/api/posts/scalping-basics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Contains(t, resp, "content_html")

	// edit sends it back to review
	w = do(t, router, http.MethodPut, "/api/posts/"+created.ID,
		authorToken, gin.H{"title": "Scalping, Revisited"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w)["post"], &updated))
	require.Equal(t, "pending", updated.Status)

	// admin sees it in the pending queue, the author does not
	w = do(t, router, http.MethodGet, "/api/posts/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, router, http.MethodGet, "/api/posts/pending", authorToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// owner deletes
	w = do(t, router, http.MethodDelete, "/api/posts/"+created.ID,
		authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/posts/id/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost_ValidationOverHTTP(t *testing.T) {
	router := newTestRouter(context.Background(), t)
	authorToken := loginAs(t, router, "john_trader")

	w := do(t, router, http.MethodPost, "/api/posts", authorToken, gin.H{
		"title":   "No Excerpt",
		"content": "body",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookmarksOverHTTP(t *testing.T) {
	router := newTestRouter(context.Background(), t)
	authorToken := loginAs(t, router, "john_trader")
	adminToken := loginAs(t, router, "admin")
	readerToken := loginAs(t, router, "reader")

	w := do(t, router, http.MethodPost, "/api/posts", authorToken, gin.H{
		"title":   "Position Sizing",
		"excerpt": "Size positions sanely.",
		"content": "Risk a fixed fraction per trade.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w)["post"], &created))
	w = do(t, router, http.MethodPost,
		"/api/posts/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// anonymous bookmarking is forbidden
	w = do(t, router, http.MethodPost, "/api/bookmarks", "",
		gin.H{"post_id": created.ID})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, router, http.MethodPost, "/api/bookmarks", readerToken,
		gin.H{"post_id": created.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/bookmarks/"+created.ID,
		readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bookmarked bool
	require.NoError(t, json.Unmarshal(decode(t, w)["bookmarked"], &bookmarked))
	require.True(t, bookmarked)

	w = do(t, router, http.MethodGet, "/api/bookmarks", readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bookmarks []json.RawMessage
	require.NoError(t, json.Unmarshal(decode(t, w)["bookmarks"], &bookmarks))
	require.Len(t, bookmarks, 1)

	w = do(t, router, http.MethodDelete, "/api/bookmarks/"+created.ID,
		readerToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, "/api/bookmarks", readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w)["bookmarks"], &bookmarks))
	require.Empty(t, bookmarks)
}

func TestSearchOverHTTP(t *testing.T) {
	router := newTestRouter(context.Background(), t)
	authorToken := loginAs(t, router, "john_trader")
	adminToken := loginAs(t, router, "admin")

	w := do(t, router, http.MethodPost, "/api/posts", authorToken, gin.H{
		"title":   "Momentum Indicators",
		"excerpt": "RSI and MACD in practice.",
		"content": "Use momentum oscillators with trend filters.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w)["post"], &created))
	w = do(t, router, http.MethodPost,
		"/api/posts/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/search?q=macd", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []json.RawMessage
	require.NoError(t, json.Unmarshal(decode(t, w)["posts"], &posts))
	require.Len(t, posts, 1)

	w = do(t, router, http.MethodGet,
		"/api/search?q=macd&author=nobody", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w)["posts"], &posts))
	require.Empty(t, posts)

	w = do(t, router, http.MethodGet, "/api/search/suggest?q=momentum", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w)["posts"], &posts))
	require.Len(t, posts, 1)
}
