package server

import (
	"sort"

	"github.com/rokufv/itadaki/internal/config"
	"github.com/rokufv/itadaki/internal/fuji"
	"github.com/rokufv/itadaki/internal/gear"
	"github.com/rokufv/itadaki/internal/health"
	"github.com/rokufv/itadaki/internal/hiking"
	"github.com/rokufv/itadaki/internal/member"
	"github.com/rokufv/itadaki/internal/plan"
	"github.com/rokufv/itadaki/internal/readiness"
	"github.com/rokufv/itadaki/internal/state"
	"github.com/rokufv/itadaki/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerCatalogRoutes(s.App.Group("/catalog"))

	memberSvc := member.NewService(s.DB)
	healthSvc := health.NewService(s.DB)
	gearSvc := gear.NewService(s.DB)
	hikingSvc := hiking.NewService(s.DB)
	readinessSvc := readiness.NewService(memberSvc, healthSvc, gearSvc, hikingSvc)
	planSvc := plan.NewService(s.DB, s.Stream)

	members := s.App.Group("/members")
	member.RegisterRoutes(members, memberSvc)
	health.RegisterRoutes(members, healthSvc)
	gear.RegisterRoutes(members, gearSvc)
	hiking.RegisterMemberRoutes(members, hikingSvc)
	readiness.RegisterMemberRoutes(members, readinessSvc)

	hiking.RegisterRoutes(s.App.Group("/hiking"), s.App.Group("/mountains"), hikingSvc)
	readiness.RegisterRoutes(s.App.Group("/readiness"), readinessSvc)
	plan.RegisterRoutes(s.App.Group("/plans"), planSvc)
	state.RegisterRoutes(s.App.Group("/state"), state.NewService(s.Redis, s.Cfg.WriteToken))
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

type routeInfo struct {
	Name            string     `json:"name"`
	StartElevationM int        `json:"start_elevation_m"`
	Huts            []fuji.Hut `json:"huts"`
}

// registerCatalogRoutes serves the static reference data the clients use
// to fill route, hut and gear selectors.
func registerCatalogRoutes(r fiber.Router) {
	names := make([]string, 0, len(fuji.MountainHuts))
	for name := range fuji.MountainHuts {
		names = append(names, name)
	}
	sort.Strings(names)

	routes := make([]routeInfo, 0, len(names))
	for _, name := range names {
		routes = append(routes, routeInfo{
			Name:            name,
			StartElevationM: fuji.StartElevation(name),
			Huts:            fuji.MountainHuts[name],
		})
	}

	r.Get("/routes", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"routes": routes})
	})
	r.Get("/gear", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": fuji.GearCategories})
	})
}
