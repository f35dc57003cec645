package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeActivityRepo struct {
	mu      sync.Mutex
	calls   []uint
	err     error
	written chan struct{}
}

func (f *fakeActivityRepo) UpdateLastSeen(userID uint) error {
	f.mu.Lock()
	f.calls = append(f.calls, userID)
	f.mu.Unlock()
	f.written <- struct{}{}
	return f.err
}

func activityRouter(repo *fakeActivityRepo, claims *util.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("user", claims)
		}
	}, ActivityMiddleware(repo))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func ping(router *gin.Engine) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
}

// 同一用户的连续请求在间隔窗口内只落一次库
func TestActivityMiddlewareDebounce(t *testing.T) {
	repo := &fakeActivityRepo{written: make(chan struct{}, 16)}
	router := activityRouter(repo, &util.Claims{UserID: 7})

	for i := 0; i < 5; i++ {
		ping(router)
	}

	select {
	case <-repo.written:
	case <-time.After(time.Second):
		t.Fatal("UpdateLastSeen was not invoked")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []uint{7}, repo.calls)
}

func TestActivityMiddlewareNoClaims(t *testing.T) {
	repo := &fakeActivityRepo{written: make(chan struct{}, 1)}
	router := activityRouter(repo, nil)

	ping(router)

	select {
	case <-repo.written:
		t.Fatal("UpdateLastSeen must not be invoked without claims")
	case <-time.After(50 * time.Millisecond):
	}
}

// 写库失败不影响请求处理
func TestActivityMiddlewareWriteFailure(t *testing.T) {
	repo := &fakeActivityRepo{written: make(chan struct{}, 1), err: errors.New("db down")}
	router := activityRouter(repo, &util.Claims{UserID: 3})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-repo.written:
	case <-time.After(time.Second):
		t.Fatal("UpdateLastSeen was not invoked")
	}
}
