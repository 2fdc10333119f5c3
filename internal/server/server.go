package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/katedeng/photo-share-app/internal/auth"
	"github.com/katedeng/photo-share-app/internal/config"
	"github.com/katedeng/photo-share-app/internal/favorite"
	"github.com/katedeng/photo-share-app/internal/health"
	"github.com/katedeng/photo-share-app/internal/photo"
	"github.com/katedeng/photo-share-app/internal/session"
	"github.com/katedeng/photo-share-app/internal/storage"
	"github.com/katedeng/photo-share-app/internal/user"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	DB       *mongo.Database
	Redis    *redis.Client
	Sessions session.Store
}

func NewServer(cfg config.Config, database *mongo.Database, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{
		App:      app,
		Cfg:      cfg,
		DB:       database,
		Redis:    redisClient,
		Sessions: newSessionStore(cfg, redisClient),
	}

	registerRoutes(s)
	return s
}

// Sessions live in redis when it is configured, so they survive restarts
// and are shared across instances. Without redis they are process-local.
func newSessionStore(cfg config.Config, redisClient *redis.Client) session.Store {
	if redisClient != nil {
		return session.NewRedisStore(redisClient, time.Duration(cfg.SessionTTL)*time.Minute)
	}
	return session.NewMemoryStore()
}

func registerRoutes(s *Server) {
	s.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Simple web server is ready ")
	})

	sessionMiddleware := session.Middleware(s.Sessions)
	blobs := storage.NewDiskStore(s.Cfg.ImagesDir)

	api := s.App.Group("/api/users")
	auth.RegisterRoutes(api, auth.NewService(auth.NewStore(s.DB), s.Sessions), sessionMiddleware)
	user.RegisterRoutes(api, user.NewService(user.NewStore(s.DB)), sessionMiddleware)
	photo.RegisterRoutes(api, photo.NewService(photo.NewStore(s.DB), blobs), sessionMiddleware)
	favorite.RegisterRoutes(api, favorite.NewService(favorite.NewStore(s.DB)), sessionMiddleware)
	health.RegisterRoutes(api, health.NewService(health.NewStore(s.DB)))
}
