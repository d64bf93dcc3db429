package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
)

type Config struct {
	Port          uint   `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// CORSConfig allows exactly one browser origin, with any method and with
// credentials. Headers are listed because a credentialed preflight treats
// "*" as a literal header name.
func CORSConfig(allowedOrigin string) cors.Config {
	return cors.Config{
		AllowOrigins: []string{allowedOrigin},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Accept",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
