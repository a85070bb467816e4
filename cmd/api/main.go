package main

import (
	"context"
	"log"

	"github.com/seeforge-labs/seeforge-gateway/config"
	"github.com/seeforge-labs/seeforge-gateway/internal/bootstrap"
	cronjob "github.com/seeforge-labs/seeforge-gateway/internal/catalog/cron"
	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	navigationservice "github.com/seeforge-labs/seeforge-gateway/internal/navigation/service"
	pricingservice "github.com/seeforge-labs/seeforge-gateway/internal/pricing/service"
	projectsservice "github.com/seeforge-labs/seeforge-gateway/internal/projects/service"
	sessionrepository "github.com/seeforge-labs/seeforge-gateway/internal/session/repository"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/upstream"
	wizardrepository "github.com/seeforge-labs/seeforge-gateway/internal/wizard/repository"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	redisClient, err := bootstrap.OpenRedis(context.Background(), cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	catalog := catalogservice.New()

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.FallbackToken, upstream.Options{
		Timeout:       cfg.Upstream.Timeout,
		RatePerSecond: cfg.Upstream.RatePerSecond,
	})

	engine := pricingservice.NewEngine(
		pricingservice.NewRemoteStrategy(client),
		pricingservice.NewLocalStrategy(catalog),
	)

	sessions := sessionservice.NewService(sessionrepository.NewSessionRepository(redisClient, cfg.Session.TTL))
	steps := wizardrepository.NewStepRepository(redisClient, cfg.Session.TTL)
	wizard := wizardservice.NewService(sessions, steps, catalog, engine)
	navigation := navigationservice.NewPolicy(sessions, wizard)
	projects := projectsservice.NewService(sessions, wizard, engine, client)

	scheduler := cronjob.NewScheduler(catalog, client, cfg.Catalog.RefreshSpec)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "seeforge-gateway",
		Version:     cfg.App.Version,
		Redis:       redisClient,
		Catalog:     catalog,
		Sessions:    sessions,
		Wizard:      wizard,
		Navigation:  navigation,
		Projects:    projects,
	})

	log.Printf("seeforge-gateway listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
