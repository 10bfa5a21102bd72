package models

import (
  "bytes"
  "encoding/json"
  "fmt"
  "slices"
  "strings"
)

type ProductStatus = int64

const ProductStatusActive ProductStatus = 1

// Product is a read view over a product record from /product/shop.
// The record itself is kept verbatim and is what gets marshalled back.
type Product struct {
  Name         string
  HasName      bool
  Price        int64
  Stock        int64
  Status       ProductStatus
  OnlyDelivery bool
  Options      []ProductOptionGroup

  raw json.RawMessage
}

// ProductOptionGroup is one entry of the productOptions mapping, keyed by option group id.
type ProductOptionGroup struct {
  GroupID string
  Values  []ProductOptionChoice
}

type ProductOptionChoice struct {
  Value           string
  PriceAdjustment int64
}

func (p *Product) UnmarshalJSON(data []byte) error {
  raw := bytes.TrimSpace(data)

  if !json.Valid(raw) {
    return fmt.Errorf("%w: product is not valid json", ErrMalformedResponse)
  }
  *p = Product{raw: append(json.RawMessage(nil), raw...)}

  f, err := decodeFields(raw)
  if err != nil {
    // not an object: nothing to read, record is still exported as is
    return nil
  }

  _, p.HasName = f.value("name")
  p.Name = f.String("name", "")
  p.Price = f.Int64("price")
  p.Stock = f.Int64("stock")
  p.Status = f.Int64("status")
  p.OnlyDelivery = f.Bool("onlyDelivery")
  p.Options = decodeOptionGroups(f["productOptions"])

  return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
  if len(p.raw) == 0 {
    return []byte("null"), nil
  }
  return p.raw, nil
}

func (p *Product) IsActive() bool {
  return p.Status == ProductStatusActive
}

func (p *Product) HasOptions() bool {
  return len(p.Options) > 0
}

// decodeOptionGroups walks the productOptions object token by token so groups keep the API order.
func decodeOptionGroups(raw json.RawMessage) []ProductOptionGroup {
  if len(raw) == 0 {
    return nil
  }
  dec := json.NewDecoder(bytes.NewReader(raw))

  token, err := dec.Token()
  if err != nil || token != json.Delim('{') {
    return nil
  }
  var groups []ProductOptionGroup

  for dec.More() {
    token, err = dec.Token()
    if err != nil {
      return groups
    }
    groupID, _ := token.(string)

    var values json.RawMessage
    if err = dec.Decode(&values); err != nil {
      return groups
    }

    choices := make([]ProductOptionChoice, 0)

    for _, object := range decodeObjects(values) {
      choices = append(choices, ProductOptionChoice{
        Value:           object.String("value", "?"),
        PriceAdjustment: object.Int64("priceAdjustment"),
      })
    }

    groups = append(groups, ProductOptionGroup{
      GroupID: groupID,
      Values:  choices,
    })
  }

  return groups
}

// SortProductsByName orders by name, code point ascending, keeping the API order for equal names.
func SortProductsByName(products []Product) []Product {
  sorted := slices.Clone(products)

  slices.SortStableFunc(sorted, func(a, b Product) int {
    return strings.Compare(a.Name, b.Name)
  })

  return sorted
}
