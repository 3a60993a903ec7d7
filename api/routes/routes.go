package routes

import (
	"time"

	"foundercompass/api/handler"
	"foundercompass/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Sessions       *handler.SessionHandler
	Reports        *handler.ReportHandler
	Events         *handler.EventHandler
	AuthMiddleware middleware.AuthMiddleware
	SignupRate     *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	sessionHandler *handler.SessionHandler,
	reportHandler *handler.ReportHandler,
	eventHandler *handler.EventHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Sessions:       sessionHandler,
		Reports:        reportHandler,
		Events:         eventHandler,
		AuthMiddleware: authMiddleware,
		SignupRate:     middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/signup", r.Auth.Signup, r.SignupRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout)
	e.GET("/auth/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)

	e.POST("/session/start", r.Sessions.Start)
	e.POST("/session/:sessionId/complete", r.Sessions.Complete)

	e.GET("/reports/user/:userId", r.Reports.ListByUser)

	e.POST("/events", r.Events.Track)
}
