package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter_ShardCount(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"zero falls back to default", 0, defaultNumShards},
		{"negative falls back to default", -1, defaultNumShards},
		{"custom shard count", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Equal(t, tt.wantShards, rl.numShards)
			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestShardedRateLimiter_QuotaExhaustion(t *testing.T) {
	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()

	for want := 2; want >= 0; want-- {
		allowed, remaining := rl.checkRateLimit("cashier-1")
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining := rl.checkRateLimit("cashier-1")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
}

func TestShardedRateLimiter_IdentifiersAreIndependent(t *testing.T) {
	rl := NewShardedRateLimiter(1, time.Minute, 4)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("terminal-1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("terminal-1")
	assert.False(t, allowed)

	// A different terminal still has its own quota.
	allowed, _ = rl.checkRateLimit("terminal-2")
	assert.True(t, allowed)
}

func TestShardedRateLimiter_WindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(1, 30*time.Millisecond, 4)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("terminal-1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("terminal-1")
	assert.False(t, allowed)

	time.Sleep(40 * time.Millisecond)

	allowed, _ = rl.checkRateLimit("terminal-1")
	assert.True(t, allowed)
}

func TestShardedRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewShardedRateLimiter(2, time.Minute, 4)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.POST("/api/transfer/preview", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil)
		req.RemoteAddr = "10.0.0.7:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		} else {
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestShardedRateLimiter_UserRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewShardedRateLimiter(2, time.Minute, 4)
	defer rl.Stop()

	userID := primitive.NewObjectID()
	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}, rl.UserRateLimit())
	router.POST("/api/transfer/execute", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/transfer/execute", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestShardedRateLimiter_GetUserIdentifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewShardedRateLimiter(10, time.Minute, 4)
	defer rl.Stop()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.7:40000"

	assert.Contains(t, rl.getUserIdentifier(c), "ip:")

	c.Set("user_id", primitive.NewObjectID())
	assert.Contains(t, rl.getUserIdentifier(c), "user:")
}

func TestShardedRateLimiter_Stats(t *testing.T) {
	rl := NewShardedRateLimiter(10, time.Minute, 4)
	defer rl.Stop()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		rl.checkRateLimit(id)
	}

	total, perShard := rl.Stats()
	assert.Equal(t, 5, total)
	assert.Len(t, perShard, 4)

	sum := 0
	for _, n := range perShard {
		sum += n
	}
	assert.Equal(t, total, sum)
}
