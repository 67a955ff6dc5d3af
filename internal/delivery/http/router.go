package http

import (
	"log/slog"

	"github.com/gdugdh24/topfive-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/topfive-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	matchHandler   *handler.MatchHandler
	promptHandler  *handler.PromptHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc
	metrics        *middleware.Metrics
	logger         *slog.Logger
	trustedProxies []string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	promptHandler *handler.PromptHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit gin.HandlerFunc,
	metrics *middleware.Metrics,
	logger *slog.Logger,
	trustedProxies []string,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if rateLimit == nil {
		rateLimit = func(c *gin.Context) { c.Next() }
	}
	return &Router{
		authHandler:    authHandler,
		accountHandler: accountHandler,
		profileHandler: profileHandler,
		matchHandler:   matchHandler,
		promptHandler:  promptHandler,
		authMiddleware: authMiddleware,
		rateLimit:      rateLimit,
		metrics:        metrics,
		logger:         logger,
		trustedProxies: trustedProxies,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	// ClientIP feeds the rate limiter key, so forwarded headers count only from known proxies.
	if err := router.SetTrustedProxies(r.trustedProxies); err != nil {
		r.logger.Error("invalid trusted proxies, trusting none", "err", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		middleware.RequestID(),
		middleware.Logging(r.logger),
		middleware.Recover(),
		r.metrics.Middleware(),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	// Public routes
	router.POST("/signup/", r.rateLimit, r.authHandler.Signup)
	router.POST("/login/", r.rateLimit, r.authHandler.Login)
	router.POST("/token/refresh/", r.authHandler.RefreshToken)
	router.GET("/profile_choices/", r.profileHandler.ProfileChoices)

	// Protected routes
	protected := router.Group("")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		protected.POST("/logout/", r.authHandler.Logout)
		protected.POST("/change_password/", r.authHandler.ChangePassword)
		protected.POST("/reset_password/:id/", r.authHandler.ResetPassword)

		protected.GET("/user_by_id/:id/", r.accountHandler.GetUser)
		protected.DELETE("/delete_user/:id/", r.accountHandler.DeleteUser)

		protected.GET("/get_profile/:id/", r.profileHandler.GetProfile)
		protected.PATCH("/update_profile/:id/", r.profileHandler.UpdateProfile)
		protected.PUT("/get_presigned_urls/:id/", r.profileHandler.GetPresignedURLs)

		protected.GET("/potential_matches/", r.matchHandler.PotentialMatches)
		protected.GET("/matches/", r.matchHandler.Matches)
		protected.POST("/like/:id/", r.matchHandler.Like)

		protected.GET("/prompts/", r.promptHandler.ListPrompts)
		protected.POST("/prompt_responses/", r.promptHandler.AnswerPrompt)
		protected.PATCH("/prompt_responses/:id/", r.promptHandler.UpdateResponse)
		protected.DELETE("/prompt_responses/:id/", r.promptHandler.DeleteResponse)

		// Staff routes
		staff := protected.Group("")
		staff.Use(r.authMiddleware.RequireStaff())
		{
			staff.GET("/all/", r.accountHandler.ListUsers)
			staff.PATCH("/update_user/:id/", r.accountHandler.UpdateUser)
			staff.POST("/prompts/", r.promptHandler.CreatePrompt)
			staff.PATCH("/prompts/:id/", r.promptHandler.SetPromptActive)
		}
	}

	return router
}
