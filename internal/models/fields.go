package models

import (
  "bytes"
  "encoding/json"
  "fmt"

  "github.com/spf13/cast"
  "github.com/ushakovn/chimera/pkg/reflection"
)

// fields gives tolerant access to a JSON object. Missing keys and nulls read as absent.
type fields map[string]json.RawMessage

func decodeFields(data []byte) (fields, error) {
  var f fields

  if err := json.Unmarshal(data, &f); err != nil {
    return nil, fmt.Errorf("json.Unmarshal: %w", err)
  }
  return f, nil
}

func (f fields) value(key string) (any, bool) {
  raw, ok := f[key]
  if !ok {
    return nil, false
  }

  dec := json.NewDecoder(bytes.NewReader(raw))
  dec.UseNumber()

  var value any
  if err := dec.Decode(&value); err != nil || value == nil {
    return nil, false
  }
  return value, true
}

func (f fields) String(key, fallback string) string {
  value, ok := f.value(key)
  if !ok {
    return fallback
  }
  if number, ok := value.(json.Number); ok {
    return number.String()
  }
  return cast.ToString(value)
}

func (f fields) Int64(key string) int64 {
  value, ok := f.value(key)
  if !ok {
    return 0
  }
  return toInt64(value)
}

func (f fields) Bool(key string) bool {
  value, _ := f.value(key)
  return reflection.IsTruthy(value)
}

func (f fields) Objects(key string) []fields {
  raw, ok := f[key]
  if !ok {
    return nil
  }
  return decodeObjects(raw)
}

// decodeObjects skips elements that are not objects.
func decodeObjects(raw json.RawMessage) []fields {
  var items []json.RawMessage

  if err := json.Unmarshal(raw, &items); err != nil {
    return nil
  }
  objects := make([]fields, 0, len(items))

  for _, item := range items {
    object, err := decodeFields(item)
    if err != nil || object == nil {
      continue
    }
    objects = append(objects, object)
  }
  return objects
}

func toInt64(value any) int64 {
  number, ok := value.(json.Number)
  if !ok {
    return cast.ToInt64(value)
  }
  if i, err := number.Int64(); err == nil {
    return i
  }
  f, _ := number.Float64()

  return int64(f)
}
