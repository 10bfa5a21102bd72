package env

import (
  "os"
  "strings"
)

type Env = string

const (
  DEV  Env = "DEV"
  PROD Env = "PROD"
)

func IsProduction() bool {
  return os.Getenv("ENV") == PROD
}

// Lookup treats blank values as unset.
func Lookup(key string) (string, bool) {
  value, ok := os.LookupEnv(key)
  if !ok || strings.TrimSpace(value) == "" {
    return "", false
  }
  return value, true
}
