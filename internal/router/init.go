package router

import (
	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/internal/container"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	esinfra "github.com/oksasatya/skatetube/internal/infrastructure/elasticsearch"
	handlers "github.com/oksasatya/skatetube/internal/interface/http"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
	"github.com/oksasatya/skatetube/internal/router/modules"
)

type Services struct {
	Auth   *application.AuthService
	Search *application.SearchService
	Feed   *application.FeedService
	Videos *application.VideoService
}

func buildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	source := container.GetYouTube()

	var index repo.VideoIndex
	if es := container.GetES(); es != nil {
		index = esinfra.NewVideoIndex(es, cfg.ESVideosIndex)
	}

	feed := application.NewFeedService(source, container.GetFeedCache(), cfg.FeedCacheTTL, logger)
	return Services{
		Auth:   application.NewAuthService(container.GetUsers(), container.GetSessions(), logger, cfg.SessionTTL),
		Search: application.NewSearchService(source, logger),
		Feed:   feed,
		Videos: application.NewVideoService(source, feed, index, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	svc := buildServices()

	r.Use(middleware.Session(svc.Auth))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, logger, cfg.CookieDomain, cfg.CookieSecure)))
	r.Add(modules.NewVideoModule(handlers.NewVideoHandler(svc.Videos, logger)))
	r.Add(modules.NewSearchModule(handlers.NewSearchHandler(svc.Search, logger)))
	r.Add(modules.NewFeedModule(handlers.NewFeedHandler(svc.Feed, logger)))
	r.Add(modules.NewPlaceholderModule(handlers.NewPlaceholderHandler(logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
