package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

var version = "dev"

// @title           Game Catalog API
// @version         1.0
// @description     Accounts, the sports and casino game catalog, and per-user favorites.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}
