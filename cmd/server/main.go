package main

import (
	"context"
	"log"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/buildinfo"
	"github.com/gsbevilaqua83/private-rest-api/internal/server"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
