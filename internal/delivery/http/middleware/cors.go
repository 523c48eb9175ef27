package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const defaultCORSOrigins = "https://app.mediplus.fr,http://localhost:5173"

// CORS - middleware для фронтенда записи на прием.
// API публичное и только на чтение: без cookies, методы GET и POST (расчёт расстояния).
func CORS(allowedOrigins string) fiber.Handler {
	if allowedOrigins == "" {
		allowedOrigins = defaultCORSOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language",
		AllowCredentials: false,
		MaxAge:           3600,
	})
}
