// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     API for managing food-ordering shopping carts, menu browsing and checkout.
//
//	Cart lines are keyed by offering and customization, so equivalent additions
//	merge into a single line while distinct customizations stay separate.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/forkful/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Cart
// @tag.description Shopping cart operations
//
// @tag.name        Menu
// @tag.description Menu catalog
//
// @tag.name        Checkout
// @tag.description Order placement
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/forkful/cart-service/docs" // swagger docs

	"github.com/forkful/cart-service/config"
	"github.com/forkful/cart-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)
	server.OnShutdown(cleanup)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
