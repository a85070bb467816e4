package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/seeforge-labs/seeforge-gateway/internal/api/http"
	"github.com/seeforge-labs/seeforge-gateway/internal/api/http/middleware"
	cataloghttp "github.com/seeforge-labs/seeforge-gateway/internal/catalog/http"
	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	navigationhttp "github.com/seeforge-labs/seeforge-gateway/internal/navigation/http"
	navigationservice "github.com/seeforge-labs/seeforge-gateway/internal/navigation/service"
	projectshttp "github.com/seeforge-labs/seeforge-gateway/internal/projects/http"
	projectsservice "github.com/seeforge-labs/seeforge-gateway/internal/projects/service"
	sessionhttp "github.com/seeforge-labs/seeforge-gateway/internal/session/http"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	wizardhttp "github.com/seeforge-labs/seeforge-gateway/internal/wizard/http"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Redis       *redis.Client
	Catalog     *catalogservice.Service
	Sessions    *sessionservice.Service
	Wizard      *wizardservice.Service
	Navigation  *navigationservice.Policy
	Projects    *projectsservice.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	cataloghttp.NewHandler(dep.Catalog).Register(api)
	projectsHandler := projectshttp.NewHandler(dep.Projects)
	projectsHandler.Register(api)

	sessions := api.Group("/sessions")
	sessionhttp.NewHandler(dep.Sessions).Register(sessions)
	wizardhttp.NewHandler(dep.Wizard).RegisterSessionSubroutes(sessions)
	navigationhttp.NewHandler(dep.Navigation, dep.Catalog).RegisterSessionSubroutes(sessions)
	projectsHandler.RegisterSessionSubroutes(sessions)

	return r
}
