package exporter

import (
  "fmt"
  "path/filepath"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/hasher"
  "github.com/ushakovn/chimera/pkg/jsonfile"
)

const (
  ProductsFile       = "products_list.json"
  ProductOptionsFile = "product_options.json"
)

// Export overwrites dir/name with the indented collection and returns the written path.
func Export[T any](dir, name string, collection []T) (string, error) {
  if dir == "" {
    dir = "."
  }
  path := filepath.Join(dir, name)

  if collection == nil {
    collection = []T{}
  }

  content, err := jsonfile.Write(path, collection)
  if err != nil {
    return "", fmt.Errorf("%w: %s: %w", models.ErrExport, path, err)
  }

  log.
    WithFields(log.Fields{
      "path":   path,
      "items":  len(collection),
      "bytes":  len(content),
      "sha256": hasher.SHA256(content),
    }).
    Debug("exporter: collection written")

  return path, nil
}
