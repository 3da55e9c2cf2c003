package handler

import (
	"credit-card-service/internal/adapter/http/middleware"
	"credit-card-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc        ports.CreditCardService
	RateLimitStore middleware.RateLimitCounter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	cards := NewCreditCardHandler(deps.CardSvc)
	g := r.Group("/credit-cards")
	{
		g.POST("", rl(middleware.GroupCards), cards.Create)
		g.GET("", rl(middleware.GroupCards), cards.List)
		g.GET("/:number", rl(middleware.GroupCards), cards.Get)
		g.PUT("/:number", rl(middleware.GroupCards), cards.UpdateLimit)
		g.DELETE("/:number", rl(middleware.GroupCards), cards.Delete)
		g.POST("/:number/charge", rl(middleware.GroupCardTransactions), cards.Charge)
		g.POST("/:number/credit", rl(middleware.GroupCardTransactions), cards.Credit)
	}

	return r
}
