package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/config"
	"go-stockroom/internal/handler"
	"go-stockroom/internal/middleware"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/storage"
	"go-stockroom/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Storage
	store := storage.New(cfg.DataDir)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	// The catalog loads once and lives for the process; ledger and users
	// re-read storage on every operation.
	catalogRepo, err := repository.NewCatalogRepo(store)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			log.Printf("Warning: starting with empty catalog: %v", err)
		} else {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}
	ledgerRepo := repository.NewLedgerRepo(store)
	userRepo := repository.NewUserRepo(store)

	invService := service.NewInventoryService(catalogRepo, ledgerRepo, wsHub)
	reportService := service.NewReportService(ledgerRepo)
	authService := service.NewAuthService(userRepo)

	invHandler := handler.NewInventoryHandler(invService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:code", invHandler.UpdateProduct)
	protected.Delete("/products/:code", invHandler.DeleteProduct)

	// Sale + Ledger Routes
	protected.Post("/sales", invHandler.RecordSale)
	protected.Get("/transactions", invHandler.GetTransactions)

	// Reporting Routes
	protected.Get("/reports/best-sellers", reportHandler.GetBestSellers)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
