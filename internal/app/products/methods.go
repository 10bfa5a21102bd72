package products

import (
  "context"
  "fmt"

  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/exporter"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/internal/presenter"
  "github.com/ushakovn/chimera/pkg/money"
  "github.com/ushakovn/chimera/pkg/stringer"
)

func (c *Lister) Start(ctx context.Context) error {
  c.println(separator)
  c.println(title)
  c.println(separator)

  credentials, err := c.askCredentials(ctx)
  if err != nil {
    return fmt.Errorf("c.askCredentials: %w", err)
  }

  token, err := c.deps.Chimera.Login(ctx, credentials)
  if err != nil {
    return fmt.Errorf("c.deps.Chimera.Login: %w", err)
  }
  c.println("✓ 登录成功")

  c.println("\n正在获取商品列表...")

  products, err := c.deps.Chimera.FetchProducts(ctx, token)
  if err != nil {
    return fmt.Errorf("c.deps.Chimera.FetchProducts: %w", err)
  }

  c.printf("\n找到 %d 个商品:\n\n", len(products))
  c.println(separator)

  sorted := models.SortProductsByName(products)

  if err = presenter.Products(c.deps.Output, sorted, presenter.Options{
    StripMarkup: c.config.StripMarkup,
  }); err != nil {
    return fmt.Errorf("presenter.Products: %w", err)
  }

  path, err := exporter.Export(c.config.OutputDir, exporter.ProductsFile, sorted)
  if err != nil {
    return fmt.Errorf("exporter.Export: %w", err)
  }

  c.println(separator)
  c.printf("✓ 完整数据已导出到: %s\n", path)

  log.
    WithFields(log.Fields{
      "products":    len(sorted),
      "listed":      lo.CountBy(sorted, func(p models.Product) bool { return p.IsActive() }),
      "price_total": money.String(lo.SumBy(sorted, func(p models.Product) int64 { return p.Price })),
      "path":        path,
    }).
    Info("products listed")

  return nil
}

func (c *Lister) askCredentials(ctx context.Context) (models.Credentials, error) {
  credentials := c.config.Credentials

  if credentials.Username == "" {
    username, err := c.deps.Prompt.Line(ctx, "请输入用户名: ")
    if err != nil {
      return models.Credentials{}, fmt.Errorf("c.deps.Prompt.Line: %w", err)
    }
    if c.config.NarrowUsername {
      username = stringer.Narrow(username)
    }
    credentials.Username = username
  }

  if credentials.Password == "" {
    password, err := c.deps.Prompt.Secret(ctx, "请输入密码: ")
    if err != nil {
      return models.Credentials{}, fmt.Errorf("c.deps.Prompt.Secret: %w", err)
    }
    credentials.Password = password
  }

  return credentials, nil
}
