package main

import (
	"context"
	"log"

	"github.com/nightowlapp/nightowl/internal/cli"
	"github.com/nightowlapp/nightowl/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
