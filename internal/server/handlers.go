package server

import (
	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/analytics"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/attractions"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/carousel"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/checklist"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/gallery"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/guide"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/media"
	"github.com/Marat1506/hadj-admin/internal/server/handlers/news"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIPrefix is the root of every resource route.
const APIPrefix = "/api"

// Handlers builds the resource handlers of the REST API.
func Handlers(repos *storage.Repositories, validate *validator.Validate, logger *zap.Logger) []handler.Handler {
	return []handler.Handler{
		attractions.NewHandler(repos, validate, logger.Named("attractions")),
		carousel.NewHandler(repos, validate, logger.Named("carousel")),
		checklist.NewHandler(repos, validate, logger.Named("checklist")),
		gallery.NewHandler(repos, validate, logger.Named("gallery")),
		guide.NewCategoriesHandler(repos, validate, logger.Named("guide")),
		guide.NewSubcategoriesHandler(repos, validate, logger.Named("guide")),
		guide.NewContentHandler(repos, validate, logger.Named("guide")),
		news.NewHandler(repos, validate, logger.Named("news")),
		analytics.NewHandler(repos, logger.Named("analytics")),
	}
}

// Mount registers media and the resource handlers under APIPrefix. Media
// routes are public, resource routes go through the auth middleware.
func Mount(app fiber.Router, repos *storage.Repositories, authSvc *auth.Service, logger *zap.Logger, handlers ...handler.Handler) {
	api := app.Group(APIPrefix)

	media.NewHandler(repos, logger.Named("media")).Register(api)

	api.Use(validation.Middleware)
	api.Use(NewAuthMiddleware(authSvc, logger))

	for _, h := range handlers {
		h.Register(api)
	}
}
