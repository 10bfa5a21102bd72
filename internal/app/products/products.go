package products

import (
  "context"
  "fmt"
  "io"

  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/prompt"
  "github.com/ushakovn/chimera/pkg/validator"
)

const (
  ExitSuccess = 0
  ExitFailure = 1
)

type Chimera interface {
  Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
  FetchProducts(ctx context.Context, token models.Token) ([]models.Product, error)
}

type Lister struct {
  config Config
  deps   Dependencies
}

type Config struct {
  // Credentials left empty are asked for on the prompt.
  Credentials models.Credentials
  OutputDir   string
  StripMarkup bool
  // Fullwidth forms of a typed username are folded only when set.
  NarrowUsername bool
}

type Dependencies struct {
  Chimera Chimera        `validate:"required"`
  Prompt  *prompt.Prompt `validate:"required"`
  Output  io.Writer      `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.Struct(d)
}

func NewLister(config Config, deps Dependencies) (*Lister, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  return &Lister{
    config: config,
    deps:   deps,
  }, nil
}

// Run reports any failure on the output and maps it to a process exit code.
func (c *Lister) Run(ctx context.Context) int {
  if err := c.Start(ctx); err != nil {
    c.printf("\n✗ 错误: %v\n", err)
    return ExitFailure
  }
  return ExitSuccess
}
