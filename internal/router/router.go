package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"globetrotter/internal/config"
	"globetrotter/internal/handler"
)

// accessTokenHeader is the header the web client presents its session token in.
const accessTokenHeader = "x-access-token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + accessTokenHeader,
	}))

	secured.POST("/auth/signout", authHandler.Signout)

	// Favorite routes
	secured.GET("/favorites", favoriteHandler.ListFavorites)
	secured.PUT("/favorites/toggle", favoriteHandler.ToggleFavorite)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
