package chimera

import (
  "errors"
  "testing"

  "github.com/ushakovn/chimera/internal/models"
)

func TestDecodeCollectionBareKeepsOrder(t *testing.T) {
  collection, err := DecodeCollection([]byte(` [3, {"a":1}, "x"] `))
  if err != nil {
    t.Fatalf("DecodeCollection: %v", err)
  }
  if collection.IsEnveloped() {
    t.Fatal("expected bare collection")
  }

  items := collection.Items()
  want := []string{`3`, `{"a":1}`, `"x"`}

  if len(items) != len(want) {
    t.Fatalf("expected %d items, got %d", len(want), len(items))
  }
  for i := range want {
    if string(items[i]) != want[i] {
      t.Fatalf("item %d: expected %s, got %s", i, want[i], items[i])
    }
  }
}

func TestDecodeCollectionEnvelope(t *testing.T) {
  collection, err := DecodeCollection([]byte(`{"data":[{"id":1},{"id":2}]}`))
  if err != nil {
    t.Fatalf("DecodeCollection: %v", err)
  }
  if !collection.IsEnveloped() {
    t.Fatal("expected enveloped collection")
  }
  if got := len(collection.Items()); got != 2 {
    t.Fatalf("expected 2 items, got %d", got)
  }
}

func TestDecodeCollectionEmptyFallbacks(t *testing.T) {
  for _, body := range []string{`{}`, `{"data":null}`, `[]`} {
    collection, err := DecodeCollection([]byte(body))
    if err != nil {
      t.Fatalf("%s: DecodeCollection: %v", body, err)
    }
    items := collection.Items()

    if items == nil || len(items) != 0 {
      t.Fatalf("%s: expected empty non-nil items, got %v", body, items)
    }
  }
}

func TestDecodeCollectionMalformed(t *testing.T) {
  for _, body := range []string{``, `42`, `"text"`, `{"data":{"a":1}}`, `[1,`} {
    _, err := DecodeCollection([]byte(body))
    if !errors.Is(err, models.ErrMalformedResponse) {
      t.Fatalf("%q: expected ErrMalformedResponse, got %v", body, err)
    }
  }
}
