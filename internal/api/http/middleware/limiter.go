package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis is the API-wide sliding-window limiter. State lives
// in redis so the limit holds across replicas.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		Max:               20,
		Expiration:        30 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

// NewOTPLimiter is a much tighter window for the endpoints that trigger
// an SMS send. Every request here costs money and spams the phone owner,
// so the budget is per-IP and small.
func NewOTPLimiter(rdb *redis.Client) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		Max:               5,
		Expiration:        5 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
