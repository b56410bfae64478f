package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/micropost/micropost-server/internal/api/http/handler"
	"github.com/micropost/micropost-server/internal/api/http/middleware"
	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
	"github.com/micropost/micropost-server/internal/service"
)

// Router assembles the HTTP surface: handlers, auth guard and the shared
// middleware stack.
type Router struct {
	authService  *service.Auth
	postService  *service.Post
	tokenService *service.TokenService
	userStore    model.UserStore
	bodyLimit    string
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	postService *service.Post,
	tokenService *service.TokenService,
	userStore model.UserStore,
	bodyLimit string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		postService:  postService,
		tokenService: tokenService,
		userStore:    userStore,
		bodyLimit:    bodyLimit,
		logger:       logger,
	}
}

// Register configures the echo instance with middleware and routes.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			if v.Error == nil {
				r.logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				r.logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(r.bodyLimit))

	authHandler := handler.NewAuth(r.authService, r.logger)
	postHandler := handler.NewPost(r.postService, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.userStore, r.logger)

	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	authed := e.Group("", authenticate.Handle)
	authed.POST("/addpost", postHandler.Create)
	authed.GET("/getposts", postHandler.List)
	authed.DELETE("/deletepost", postHandler.Delete)

	return e
}
