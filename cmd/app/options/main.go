package main

import (
  "context"
  "os"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/app/options"
  "github.com/ushakovn/chimera/internal/cli"
  "github.com/ushakovn/chimera/internal/config"
  "github.com/ushakovn/chimera/internal/deps/chimera"
  "github.com/ushakovn/chimera/pkg/logger"
)

func main() {
  logger.InitWithFields(map[string]any{"app": "options"})

  cmd, code := cli.NewCommand("options", "List product option groups and export them to product_options.json", run)

  os.Exit(cli.Execute(cmd, code))
}

func run(ctx context.Context, cfg config.Config) int {
  chimeraClient, err := chimera.NewClient(cfg.Chimera(), chimera.Dependencies{})
  if err != nil {
    log.Fatalf("chimera.NewClient: %v", err)
  }

  lister, err := options.NewLister(
    options.Config{
      Credentials: cfg.Credentials(),
      OutputDir:   cfg.OutputDir,
    },
    options.Dependencies{
      Chimera: chimeraClient,
      Output:  os.Stdout,
    })
  if err != nil {
    log.Fatalf("options.NewLister: %v", err)
  }

  if err = lister.Start(ctx); err != nil {
    log.Fatalf("lister.Start: %v", err)
  }
  return 0
}
