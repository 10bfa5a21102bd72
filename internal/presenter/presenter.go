package presenter

import (
  "fmt"
  "io"
  "strings"

  "github.com/samber/lo"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/money"
  "github.com/ushakovn/chimera/pkg/stringer"
)

const (
  unknownProductName = "未知商品"
  currency           = "元"

  // deltas in the product listing are whole yuan, in the option listing one decimal
  productDeltaPrecision = 0
  optionDeltaPrecision  = 1
)

type Options struct {
  StripMarkup bool
}

// Products prints products in the given order, numbered from 1.
func Products(w io.Writer, products []models.Product, opts Options) error {
  sb := strings.Builder{}

  for index, product := range products {
    writeProduct(&sb, index+1, product, opts)
  }

  if _, err := io.WriteString(w, sb.String()); err != nil {
    return fmt.Errorf("io.WriteString: %w", err)
  }
  return nil
}

func writeProduct(sb *strings.Builder, index int, product models.Product, opts Options) {
  fmt.Fprintf(sb, "%d. %s\n", index, productName(product, opts))

  line := fmt.Sprintf("   价格: %s%s | 库存: %d | 状态: %s",
    money.Plain(product.Price), currency,
    product.Stock,
    productStatus(product),
  )
  if product.OnlyDelivery {
    line += " 仅定时达"
  }
  sb.WriteString(line + "\n")

  if product.HasOptions() {
    sb.WriteString("   可选选项:\n")

    for _, group := range product.Options {
      if len(group.Values) == 0 {
        continue
      }
      values := lo.Map(group.Values, func(choice models.ProductOptionChoice, _ int) string {
        return fmt.Sprintf("%s(%s%s)", choice.Value, money.Signed(choice.PriceAdjustment, productDeltaPrecision), currency)
      })
      fmt.Fprintf(sb, "      - %s\n", strings.Join(values, ", "))
    }
  }

  sb.WriteString("\n")
}

func productName(product models.Product, opts Options) string {
  if !product.HasName {
    return unknownProductName
  }
  if opts.StripMarkup {
    return stringer.StripTags(product.Name)
  }
  return product.Name
}

func productStatus(product models.Product) string {
  return lo.Ternary(product.IsActive(), "上架", "下架")
}

// ProductOptions prints option groups in API order.
func ProductOptions(w io.Writer, options []models.ProductOption) error {
  sb := strings.Builder{}

  for _, option := range options {
    fmt.Fprintf(&sb, "\n选项名称: %s\n", option.Name)
    fmt.Fprintf(&sb, "选项ID: %s\n", option.ID)
    sb.WriteString("可选值:\n")

    for _, value := range option.Values {
      fmt.Fprintf(&sb, "  - %s (UUID: %s, 价格调整: %s%s)\n",
        value.Value,
        value.UUID,
        money.Signed(value.PriceAdjustment, optionDeltaPrecision),
        currency,
      )
    }
  }

  if _, err := io.WriteString(w, sb.String()); err != nil {
    return fmt.Errorf("io.WriteString: %w", err)
  }
  return nil
}
