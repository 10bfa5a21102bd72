package products

import (
  "fmt"
  "strings"
)

const (
  title         = "Chimera 商品列表查询工具"
  separatorSize = 60
)

var separator = strings.Repeat("=", separatorSize)

func (c *Lister) printf(format string, args ...any) {
  fmt.Fprintf(c.deps.Output, format, args...)
}

func (c *Lister) println(line string) {
  fmt.Fprintln(c.deps.Output, line)
}
