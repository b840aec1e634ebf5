package main

import (
	"context"
	"os"

	"go.llib.dev/containers/internal/vectorcli"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	logger := &logging.Logger{Out: os.Stderr, Level: logging.LevelWarn}
	if os.Getenv("VECTORKIT_DEBUG") != "" {
		logger.Level = logging.LevelDebug
	}
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "vectorkit"))
	cli.Main(ctx, vectorcli.Mux(logger))
}
