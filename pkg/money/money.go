package money

import (
  "fmt"
  "strconv"
  "strings"

  "github.com/leekchan/accounting"
)

const minorPerMajor = 100

var acc = accounting.Accounting{
  Symbol:    "¥",
  Precision: 2,
  Thousand:  ",",
  Decimal:   ".",
}

// String renders minor units as a major-unit amount with symbol, e.g. 320000 -> ¥3,200.00.
func String(minor int64) string {
  return acc.FormatMoney(Major(minor))
}

func Major(minor int64) float64 {
  return float64(minor) / minorPerMajor
}

// Plain is the shortest decimal form of the major-unit amount, always with a fractional part: 3200 -> 32.0.
func Plain(minor int64) string {
  s := strconv.FormatFloat(Major(minor), 'f', -1, 64)

  if !strings.Contains(s, ".") {
    s += ".0"
  }
  return s
}

// Signed renders the major-unit amount with an explicit sign and fixed precision: 150, 1 -> +1.5.
func Signed(minor int64, precision int) string {
  return fmt.Sprintf("%+.*f", precision, Major(minor))
}
