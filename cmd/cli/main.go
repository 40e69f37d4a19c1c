package main

import (
	"context"
	"log"

	"github.com/omccomas/terminal/internal/client/config"
	"github.com/omccomas/terminal/internal/client/terminal"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := terminal.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
