package main

import (
  "context"
  "os"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/app/products"
  "github.com/ushakovn/chimera/internal/cli"
  "github.com/ushakovn/chimera/internal/config"
  "github.com/ushakovn/chimera/internal/deps/chimera"
  "github.com/ushakovn/chimera/pkg/logger"
  "github.com/ushakovn/chimera/pkg/prompt"
)

func main() {
  logger.InitWithFields(map[string]any{"app": "products"})

  cmd, code := cli.NewCommand("products", "List all shop products and export them to products_list.json", run)

  os.Exit(cli.Execute(cmd, code))
}

func run(ctx context.Context, cfg config.Config) int {
  chimeraClient, err := chimera.NewClient(cfg.Chimera(), chimera.Dependencies{})
  if err != nil {
    log.Errorf("chimera.NewClient: %v", err)
    return products.ExitFailure
  }

  lister, err := products.NewLister(
    products.Config{
      Credentials:    cfg.Credentials(),
      OutputDir:      cfg.OutputDir,
      StripMarkup:    cfg.StripMarkup,
      NarrowUsername: cfg.NarrowUsername,
    },
    products.Dependencies{
      Chimera: chimeraClient,
      Prompt:  prompt.New(os.Stdin, os.Stdout),
      Output:  os.Stdout,
    })
  if err != nil {
    log.Errorf("products.NewLister: %v", err)
    return products.ExitFailure
  }

  return lister.Run(ctx)
}
