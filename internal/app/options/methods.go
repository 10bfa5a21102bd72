package options

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/exporter"
  "github.com/ushakovn/chimera/internal/presenter"
)

func (c *Lister) Start(ctx context.Context) error {
  token, err := c.deps.Chimera.Login(ctx, c.config.Credentials)
  if err != nil {
    return fmt.Errorf("c.deps.Chimera.Login: %w", err)
  }

  options, err := c.deps.Chimera.FetchProductOptions(ctx, token)
  if err != nil {
    return fmt.Errorf("c.deps.Chimera.FetchProductOptions: %w", err)
  }

  c.printf("找到 %d 个选项组:\n\n", len(options))
  c.printf("%s\n", separator)

  if err = presenter.ProductOptions(c.deps.Output, options); err != nil {
    return fmt.Errorf("presenter.ProductOptions: %w", err)
  }

  c.printf("\n%s\n", separator)

  path, err := exporter.Export(c.config.OutputDir, exporter.ProductOptionsFile, options)
  if err != nil {
    return fmt.Errorf("exporter.Export: %w", err)
  }

  c.printf("\n✓ 完整数据已导出到: %s\n", path)

  log.
    WithFields(log.Fields{
      "option_groups": len(options),
      "path":          path,
    }).
    Info("product options listed")

  return nil
}
