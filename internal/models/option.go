package models

import (
  "bytes"
  "encoding/json"
  "fmt"
)

// ProductOption is an option group definition from /productOption.
type ProductOption struct {
  ID     string
  Name   string
  Values []ProductOptionValue

  raw json.RawMessage
}

type ProductOptionValue struct {
  Value           string
  UUID            string
  PriceAdjustment int64
}

func (o *ProductOption) UnmarshalJSON(data []byte) error {
  raw := bytes.TrimSpace(data)

  if !json.Valid(raw) {
    return fmt.Errorf("%w: product option is not valid json", ErrMalformedResponse)
  }
  *o = ProductOption{
    ID:   "N/A",
    Name: "未知",
    raw:  append(json.RawMessage(nil), raw...),
  }

  f, err := decodeFields(raw)
  if err != nil {
    return nil
  }

  o.ID = f.String("id", "N/A")
  o.Name = f.String("name", "未知")

  for _, object := range f.Objects("values") {
    o.Values = append(o.Values, ProductOptionValue{
      Value:           object.String("value", "?"),
      UUID:            object.String("uuid", "?"),
      PriceAdjustment: object.Int64("priceAdjustment"),
    })
  }

  return nil
}

func (o ProductOption) MarshalJSON() ([]byte, error) {
  if len(o.raw) == 0 {
    return []byte("null"), nil
  }
  return o.raw, nil
}
