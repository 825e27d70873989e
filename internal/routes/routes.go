// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and registers all
// HTTP routes.
package routes

import (
	"bankinc/internal/handlers"
	"bankinc/internal/repositories"
	"bankinc/internal/services/card"
	"bankinc/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	cardRepo := repositories.NewCardRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	cache := repositories.NewRedisCacheRepository(repositories.RedisClient)

	// Services
	cardService := card.NewService(cardRepo, cache, card.NewRandomSource(), &card.NoopMetricsCollector{})
	transactionService := transaction.NewService(transactionRepo, cardService, cache)

	// Handlers
	cardHandler := handlers.NewCardHandler(cardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	app.Get("/health", handlers.HealthCheck)

	cards := app.Group("/card")
	cards.Get("/:productId/number", cardHandler.IssueCard)
	cards.Post("/enroll", cardHandler.ActivateCard)
	cards.Post("/balance", cardHandler.RechargeBalance)
	cards.Get("/balance/:cardId", cardHandler.GetBalance)
	cards.Delete("/:cardId", cardHandler.BlockCard)

	transactions := app.Group("/transaction")
	transactions.Post("/purchase", transactionHandler.Purchase)
	transactions.Post("/anulation", transactionHandler.AnulateTransaction)
	transactions.Get("/:transactionId", transactionHandler.GetTransaction)
}
