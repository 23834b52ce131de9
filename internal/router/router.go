package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"halladmin/internal/auth"
	"halladmin/internal/config"
	"halladmin/internal/handler"
	"halladmin/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	hallHandler *handler.HallHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"user_id":     claims.UserID,
			"username":    claims.Username,
			"role":        claims.Role,
			"hall_number": claims.HallNumber,
		})
	})

	// Hall data routes (scope enforced in the service layer)
	secured.GET("/halls/:id/records", hallHandler.ListRecords)
	secured.POST("/halls/:id/records", hallHandler.CreateRecord)
	secured.GET("/halls/:id/stats", hallHandler.Stats)

	// Admin-only routes
	admin := secured.Group("", RequireRoles(model.RoleAdmin))
	admin.POST("/users", userHandler.CreateUser)
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.PATCH("/users/:id/active", userHandler.SetActive)
	admin.GET("/stats", dashboardHandler.Stats)
	admin.GET("/activity", dashboardHandler.Activity)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
