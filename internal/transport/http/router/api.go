package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"voucher-management/internal/core/server"
	"voucher-management/internal/repo"
	"voucher-management/internal/transport/http/handler"
	mdw "voucher-management/internal/transport/http/middleware"
	resp "voucher-management/internal/transport/http/response"
)

func NewAPIEngine(l *zap.Logger, repos *repo.Repositories) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) {
		if err := repos.Ping(c.Request.Context()); err != nil {
			l.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnavailable, "store unavailable"))
			return
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"ok": 1}))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	MountAll(api,
		handler.NewCustomerHandler(repos.Customers),
		handler.NewVoucherHandler(repos.Vouchers),
	)
	return r
}
