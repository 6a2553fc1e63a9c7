package main

import (
	"context"
	"log"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/buildinfo"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/cli"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
