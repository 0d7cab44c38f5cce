package main

import (
	"context"
	"log"

	"github.com/dalemusser/govcodex/internal/app/bootstrap"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := bootstrap.Run(context.Background(), logger); err != nil {
		logger.Fatal("govcodex exited", zap.Error(err))
	}
}
