// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wlsd/internal/delivery/http/middleware"
	"wlsd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HomeHandler       *handler.HomeHandler
	AuthHandler       *handler.AuthHandler
	EventHandler      *handler.EventHandler
	PostHandler       *handler.PostHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	homeHandler       *handler.HomeHandler
	authHandler       *handler.AuthHandler
	eventHandler      *handler.EventHandler
	postHandler       *handler.PostHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		homeHandler:       params.HomeHandler,
		authHandler:       params.AuthHandler,
		eventHandler:      params.EventHandler,
		postHandler:       params.PostHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.homeHandler.Home)
	e.GET("/events", r.eventHandler.ListPage)
	e.GET("/p/:slug", r.postHandler.ViewPage)

	// Passwordless login flow. GET /login and GET /register are the targets
	// of the mailed links; the POSTs take the forms.
	e.POST("/login", r.authHandler.LoginForm)
	e.GET("/login", r.authHandler.Login)
	e.GET("/register", r.authHandler.RegisterPage)
	e.POST("/register", r.authHandler.RegisterForm)

	// Event management requires a session
	eventGroup := e.Group("/e")
	eventGroup.Use(r.sessionMiddleware.RequireSession)
	{
		eventGroup.GET("/new", r.eventHandler.CreatePage)
		eventGroup.POST("/new", r.eventHandler.CreateForm)
		eventGroup.GET("/:event_id", r.eventHandler.UpdatePage)
		eventGroup.POST("/:event_id", r.eventHandler.UpdateForm)
		eventGroup.DELETE("/:event_id", r.eventHandler.Delete)
	}

	// Post authoring requires a session; reading does not
	postGroup := e.Group("/p")
	{
		postGroup.GET("/new", r.postHandler.CreatePage, r.sessionMiddleware.RequireSession)
		postGroup.POST("/new", r.postHandler.CreateForm, r.sessionMiddleware.RequireSession)
	}
}
