package exporter

import (
  "encoding/json"
  "errors"
  "os"
  "path/filepath"
  "reflect"
  "testing"

  "github.com/ushakovn/chimera/internal/models"
)

func TestExportRoundTrip(t *testing.T) {
  raw := `[{"name":"拿铁","price":3200,"productOptions":{"b":[{"value":"冰","priceAdjustment":200}],"a":[]}},{"name":"Mocha","extra":null}]`

  var products []models.Product
  if err := json.Unmarshal([]byte(raw), &products); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  dir := t.TempDir()

  path, err := Export(dir, ProductsFile, products)
  if err != nil {
    t.Fatalf("Export: %v", err)
  }
  if path != filepath.Join(dir, ProductsFile) {
    t.Fatalf("unexpected path: %s", path)
  }

  content, err := os.ReadFile(path)
  if err != nil {
    t.Fatalf("os.ReadFile: %v", err)
  }

  var got, want any
  if err = json.Unmarshal(content, &got); err != nil {
    t.Fatalf("json.Unmarshal export: %v", err)
  }
  if err = json.Unmarshal([]byte(raw), &want); err != nil {
    t.Fatalf("json.Unmarshal raw: %v", err)
  }
  if !reflect.DeepEqual(got, want) {
    t.Fatalf("export differs:\n got: %v\nwant: %v", got, want)
  }
}

func TestExportEmptyCollection(t *testing.T) {
  path, err := Export[models.ProductOption](t.TempDir(), ProductOptionsFile, nil)
  if err != nil {
    t.Fatalf("Export: %v", err)
  }

  content, _ := os.ReadFile(path)
  if string(content) != "[]\n" {
    t.Fatalf("unexpected content: %q", content)
  }
}

func TestExportFailure(t *testing.T) {
  dir := filepath.Join(t.TempDir(), "missing")

  _, err := Export(dir, ProductsFile, []models.Product{})
  if !errors.Is(err, models.ErrExport) {
    t.Fatalf("expected ErrExport, got %v", err)
  }
}

func TestExportWritesEscapedTextLiterally(t *testing.T) {
  raw := `[{"name":"\u62ff\u94c1","note":"\u003cb\u003e","price":3200}]`

  var products []models.Product
  if err := json.Unmarshal([]byte(raw), &products); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  path, err := Export(t.TempDir(), ProductsFile, products)
  if err != nil {
    t.Fatalf("Export: %v", err)
  }

  content, err := os.ReadFile(path)
  if err != nil {
    t.Fatalf("os.ReadFile: %v", err)
  }

  want := "[\n  {\n    \"name\": \"拿铁\",\n    \"note\": \"<b>\",\n    \"price\": 3200\n  }\n]\n"
  if string(content) != want {
    t.Fatalf("unexpected content:\n got: %q\nwant: %q", content, want)
  }
}
