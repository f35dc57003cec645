package middleware

import (
	"strings"
	"sync"
	"time"

	"finlit_backend/internal/config"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

// activityWriteInterval 同一用户两次 last_seen 落库之间的最小间隔
const activityWriteInterval = time.Minute

// ActivityMiddleware 记录学员最近活跃时间。写库是尽力而为：
// 每个用户一个间隔内最多落一次，失败只记日志不影响请求
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	var lastWrite sync.Map // userID → time.Time

	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			now := time.Now()
			prev, seen := lastWrite.Load(claims.UserID)
			if !seen || now.Sub(prev.(time.Time)) >= activityWriteInterval {
				lastWrite.Store(claims.UserID, now)
				go func(userID uint) {
					if err := repo.UpdateLastSeen(userID); err != nil {
						logger.Log.Warn("failed to update last seen",
							zap.Uint("userID", userID), zap.Error(err))
					}
				}(claims.UserID)
			}
		}
		c.Next()
	}
}
