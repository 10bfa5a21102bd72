package models

import "github.com/ushakovn/chimera/pkg/validator"

type Credentials struct {
  Username string `json:"username" validate:"required"`
  Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
  return validator.Struct(c)
}

func (c *Credentials) IsComplete() bool {
  return c.Username != "" && c.Password != ""
}

// Token is the bearer credential returned by login. Opaque to the client.
type Token string
