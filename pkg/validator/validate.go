package validator

import (
  "fmt"
  "net/url"

  "github.com/go-playground/validator/v10"
)

var validate = validator.New()

func URL(value string) error {
  parsed, err := url.ParseRequestURI(value)
  if err != nil {
    return err
  }
  if parsed.Scheme != "http" && parsed.Scheme != "https" {
    return fmt.Errorf("unsupported scheme: %q", parsed.Scheme)
  }
  if parsed.Host == "" {
    return fmt.Errorf("host is empty")
  }
  return nil
}

func Struct(value any) error {
  return validate.Struct(value)
}
