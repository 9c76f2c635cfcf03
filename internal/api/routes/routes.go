package routes

import (
	"time"

	"dashboard-service/internal/api/handlers"
	"dashboard-service/internal/api/middleware"
	"dashboard-service/internal/config"
	"dashboard-service/internal/repositories/postgres"
	"dashboard-service/internal/services"
	"dashboard-service/internal/websocket"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Router struct {
	engine *gin.Engine

	wsHandler           *handlers.WSHandler
	authHandler         *handlers.AuthHandler
	preferencesHandler  *handlers.PreferencesHandler
	weatherHandler      *handlers.WeatherHandler
	newsHandler         *handlers.NewsHandler
	financeHandler      *handlers.FinanceHandler
	notificationHandler *handlers.NotificationHandler

	rateLimitMW *middleware.RateLimitMiddleware
	authMW      *middleware.AuthMiddleware
}

func NewRouter(
	cfg *config.Config,
	registry *websocket.Registry,
	broadcaster *websocket.Broadcaster,
	redisService *services.RedisService,
	db *gorm.DB,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.LogAPI())

	userRepo := postgres.NewUserRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)

	userService := services.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	prefService := services.NewPreferenceService(prefRepo, redisService)
	weatherService := services.NewWeatherService(cfg.Upstream.OpenWeatherKey)
	newsService := services.NewNewsService(cfg.Upstream.NewsAPIKey)
	financeService := services.NewFinanceService(cfg.Upstream.AlphaVantageKey)

	return &Router{
		engine:              engine,
		wsHandler:           handlers.NewWSHandler(registry, redisService),
		authHandler:         handlers.NewAuthHandler(userService),
		preferencesHandler:  handlers.NewPreferencesHandler(prefService),
		weatherHandler:      handlers.NewWeatherHandler(weatherService),
		newsHandler:         handlers.NewNewsHandler(newsService),
		financeHandler:      handlers.NewFinanceHandler(financeService),
		notificationHandler: handlers.NewNotificationHandler(broadcaster, redisService),
		rateLimitMW:         middleware.NewRateLimitMiddleware(redisService),
		authMW:              middleware.NewAuthMiddleware(cfg.JWT.Secret),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	// Realtime endpoint authenticates via query token since browsers cannot
	// set headers on the WebSocket handshake.
	api.GET("/ws",
		r.authMW.WSAuth(),
		r.wsHandler.HandleWebSocket,
	)

	// Public routes
	auth := api.Group("/auth")
	auth.Use(r.rateLimitMW.RateLimitIP(20, time.Minute))
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("/")
	authed.Use(r.authMW.RequireAuth())
	{
		user := authed.Group("/user")
		user.Use(r.rateLimitMW.RateLimit(100, time.Minute))
		{
			user.GET("/profile", r.authHandler.GetProfile)
			user.GET("/preferences", r.preferencesHandler.GetPreferences)
			user.PUT("/preferences", r.preferencesHandler.UpdatePreferences)
		}

		weather := authed.Group("/weather")
		weather.Use(r.rateLimitMW.RateLimit(60, time.Minute))
		{
			weather.GET("/current", r.weatherHandler.GetCurrentWeather)
			weather.GET("/forecast", r.weatherHandler.GetForecast)
		}

		news := authed.Group("/news")
		news.Use(r.rateLimitMW.RateLimit(60, time.Minute))
		{
			news.GET("/headlines", r.newsHandler.GetHeadlines)
			news.GET("/search", r.newsHandler.SearchNews)
		}

		finance := authed.Group("/finance")
		finance.Use(r.rateLimitMW.RateLimit(60, time.Minute))
		{
			finance.GET("/quote/:symbol", r.financeHandler.GetQuote)
			finance.GET("/history/:symbol", r.financeHandler.GetHistory)
			finance.GET("/search", r.financeHandler.SearchSymbols)
		}

		authed.POST("/notifications", r.rateLimitMW.RateLimit(30, time.Minute), r.notificationHandler.Notify)
		authed.POST("/events", r.rateLimitMW.RateLimit(30, time.Minute), r.notificationHandler.Broadcast)
		authed.GET("/realtime/stats", r.notificationHandler.Stats)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
