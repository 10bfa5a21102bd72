package options

import (
  "fmt"
  "strings"
)

const separatorSize = 80

var separator = strings.Repeat("=", separatorSize)

func (c *Lister) printf(format string, args ...any) {
  fmt.Fprintf(c.deps.Output, format, args...)
}
