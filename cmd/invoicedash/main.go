package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/cmd/config"
	"github.com/sol1corejz/invoicedash/internal/cache"
	"github.com/sol1corejz/invoicedash/internal/handlers"
	"github.com/sol1corejz/invoicedash/internal/logger"
	"github.com/sol1corejz/invoicedash/internal/middleware"
	"github.com/sol1corejz/invoicedash/internal/storage"
)

func main() {
	config.ParseFlags()

	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Log.Fatal("Failed to initialize logger", zap.Error(err))
	}

	store, err := storage.Open()
	if err != nil {
		logger.Log.Error("Failed to init storage", zap.Error(err))
		return
	}
	defer store.Close()

	listCache, err := cache.New(context.Background())
	if err != nil {
		logger.Log.Error("Failed to init cache", zap.Error(err))
		return
	}
	defer listCache.Close()

	if err := run(handlers.New(store, listCache)); err != nil {
		logger.Log.Fatal("Failed to run server", zap.Error(err))
	}
}

func run(h *handlers.Handler) error {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Use(middleware.AuthMiddleware)

	app.Post("/login", h.LoginHandler)
	app.Get("/logout", h.LogoutHandler)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/", h.DashboardHandler)
	dashboard.Get("/invoices", h.ListInvoicesHandler)
	dashboard.Post("/invoices", h.CreateInvoiceHandler)
	dashboard.Get("/invoices/:id", h.GetInvoiceHandler)
	dashboard.Post("/invoices/:id", h.UpdateInvoiceHandler)
	dashboard.Post("/invoices/:id/delete", h.DeleteInvoiceHandler)
	dashboard.Get("/customers", h.GetCustomersHandler)

	logger.Log.Info("Running server", zap.String("address", config.RunAddress))
	return app.Listen(config.RunAddress)
}
