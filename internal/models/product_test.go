package models

import (
  "encoding/json"
  "reflect"
  "testing"
)

func TestProductDecode(t *testing.T) {
  raw := `{"name":"Latte","price":3200,"stock":5,"status":1,"onlyDelivery":true,
    "productOptions":{"temp":[{"value":"热","priceAdjustment":0},{"value":"冰","priceAdjustment":200}],"size":[],"milk":[{"value":"燕麦奶","priceAdjustment":-150}]}}`

  var product Product
  if err := json.Unmarshal([]byte(raw), &product); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  if product.Name != "Latte" || !product.HasName {
    t.Fatalf("unexpected name: %q", product.Name)
  }
  if product.Price != 3200 || product.Stock != 5 {
    t.Fatalf("unexpected price/stock: %d/%d", product.Price, product.Stock)
  }
  if !product.IsActive() || !product.OnlyDelivery {
    t.Fatalf("unexpected status/delivery: %d/%v", product.Status, product.OnlyDelivery)
  }

  want := []ProductOptionGroup{
    {GroupID: "temp", Values: []ProductOptionChoice{{Value: "热"}, {Value: "冰", PriceAdjustment: 200}}},
    {GroupID: "size", Values: []ProductOptionChoice{}},
    {GroupID: "milk", Values: []ProductOptionChoice{{Value: "燕麦奶", PriceAdjustment: -150}}},
  }
  if !reflect.DeepEqual(product.Options, want) {
    t.Fatalf("unexpected option groups:\n got: %+v\nwant: %+v", product.Options, want)
  }
}

func TestProductDecodeDefaults(t *testing.T) {
  var product Product
  if err := json.Unmarshal([]byte(`{"status":0,"onlyDelivery":null,"productOptions":{}}`), &product); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  if product.HasName || product.Name != "" {
    t.Fatalf("expected absent name, got %q", product.Name)
  }
  if product.Price != 0 || product.Stock != 0 || product.IsActive() || product.OnlyDelivery {
    t.Fatalf("unexpected defaults: %+v", product)
  }
  if product.HasOptions() {
    t.Fatal("empty productOptions must not count as options")
  }
}

func TestProductDecodeTolerantValues(t *testing.T) {
  var product Product
  raw := `{"name":"Mocha","price":"3500","stock":2.0,"status":"2","productOptions":{"x":[{"priceAdjustment":100},"junk"]}}`

  if err := json.Unmarshal([]byte(raw), &product); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }
  if product.Price != 3500 || product.Stock != 2 {
    t.Fatalf("unexpected price/stock: %d/%d", product.Price, product.Stock)
  }
  if product.IsActive() {
    t.Fatal("status 2 must be inactive")
  }

  want := []ProductOptionGroup{{GroupID: "x", Values: []ProductOptionChoice{{Value: "?", PriceAdjustment: 100}}}}
  if !reflect.DeepEqual(product.Options, want) {
    t.Fatalf("unexpected option groups: %+v", product.Options)
  }
}

func TestProductMarshalIsVerbatim(t *testing.T) {
  raw := `{"zeta":1,"name":"拿铁","price":3200,"extra":{"nested":[1,2]}}`

  var product Product
  if err := json.Unmarshal([]byte(raw), &product); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  out, err := json.Marshal(product)
  if err != nil {
    t.Fatalf("json.Marshal: %v", err)
  }
  if string(out) != raw {
    t.Fatalf("expected %s, got %s", raw, out)
  }
}

func TestSortProductsByName(t *testing.T) {
  var products []Product

  raw := `[{"name":"Mocha","price":1},{"name":"Americano"},{"price":2},{"name":"Mocha","price":2},{"name":"拿铁"}]`
  if err := json.Unmarshal([]byte(raw), &products); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  sorted := SortProductsByName(products)

  var names []string
  for _, product := range sorted {
    names = append(names, product.Name)
  }
  want := []string{"", "Americano", "Mocha", "Mocha", "拿铁"}

  if !reflect.DeepEqual(names, want) {
    t.Fatalf("expected %v, got %v", want, names)
  }
  if sorted[2].Price != 1 || sorted[3].Price != 2 {
    t.Fatal("equal names must keep api order")
  }
  if products[0].Name != "Mocha" {
    t.Fatal("input slice must not be reordered")
  }
}

func TestProductOptionDecode(t *testing.T) {
  var option ProductOption

  raw := `{"id":7,"name":"Size","values":[{"value":"L","uuid":"u1","priceAdjustment":150},{"value":"S"}]}`
  if err := json.Unmarshal([]byte(raw), &option); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }

  want := ProductOption{
    ID:   "7",
    Name: "Size",
    Values: []ProductOptionValue{
      {Value: "L", UUID: "u1", PriceAdjustment: 150},
      {Value: "S", UUID: "?"},
    },
    raw: json.RawMessage(raw),
  }
  if !reflect.DeepEqual(option, want) {
    t.Fatalf("unexpected option:\n got: %+v\nwant: %+v", option, want)
  }
}

func TestProductOptionDefaults(t *testing.T) {
  var option ProductOption

  if err := json.Unmarshal([]byte(`{}`), &option); err != nil {
    t.Fatalf("json.Unmarshal: %v", err)
  }
  if option.ID != "N/A" || option.Name != "未知" || len(option.Values) != 0 {
    t.Fatalf("unexpected defaults: %+v", option)
  }
}

func TestCredentialsValidate(t *testing.T) {
  valid := Credentials{Username: "yunying", Password: "secret"}
  if err := valid.Validate(); err != nil {
    t.Fatalf("Validate: %v", err)
  }

  for _, invalid := range []Credentials{{}, {Username: "yunying"}, {Password: "secret"}} {
    if err := invalid.Validate(); err == nil {
      t.Fatalf("expected error for %+v", invalid)
    }
    if invalid.IsComplete() {
      t.Fatalf("%+v must not be complete", invalid)
    }
  }
}
