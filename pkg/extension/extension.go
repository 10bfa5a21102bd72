package extension

import (
  "path/filepath"
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extJSON = set.NewSet("json")

func IsJSON(filename string) bool {
  ext := strings.TrimPrefix(filepath.Ext(filename), ".")

  if ext == "" {
    return false
  }
  return extJSON.ContainsOne(strings.ToLower(ext))
}
