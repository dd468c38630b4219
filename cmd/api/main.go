// Package main Game Catalog API
//
// Game Catalog is a browsing and review service for a library of games. It
// serves alphabetically sorted, anchor-paginated windows of the catalog with
// genre filtering and free-text search, and lets registered users review
// games and keep a wishlist. The same API is served whether the catalog is
// held in memory or in Postgres.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/gamecatalog/docs"
	"github.com/saradorri/gamecatalog/internal/app"
)

// @title Game Catalog API Service
// @version 1.0
// @description Game Catalog is a browsing and review service for a library of games.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
