package reflection

import (
  "encoding/json"
  "reflect"
)

func IsZeroType(value reflect.Value) bool {
  zero := reflect.Zero(value.Type()).Interface()

  switch value.Kind() {
  case reflect.Slice, reflect.Array, reflect.Chan, reflect.Map, reflect.String:
    return value.Len() == 0
  default:
    return reflect.DeepEqual(zero, value.Interface())
  }
}

// IsTruthy follows loose JSON truthiness: null, false, 0, "", [] and {} are falsy.
func IsTruthy(value any) bool {
  switch v := value.(type) {
  case nil:
    return false
  case json.Number:
    f, err := v.Float64()
    return err != nil || f != 0
  }
  return !IsZeroType(reflect.ValueOf(value))
}
