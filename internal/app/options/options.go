package options

import (
  "context"
  "errors"
  "fmt"
  "io"

  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/validator"
)

var ErrNoCredentials = errors.New("credentials are not configured")

type Chimera interface {
  Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
  FetchProductOptions(ctx context.Context, token models.Token) ([]models.ProductOption, error)
}

type Lister struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Credentials models.Credentials
  OutputDir   string
}

type Dependencies struct {
  Chimera Chimera   `validate:"required"`
  Output  io.Writer `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.Struct(d)
}

func NewLister(config Config, deps Dependencies) (*Lister, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if !config.Credentials.IsComplete() {
    return nil, fmt.Errorf("%w: username and password required", ErrNoCredentials)
  }
  return &Lister{
    config: config,
    deps:   deps,
  }, nil
}
