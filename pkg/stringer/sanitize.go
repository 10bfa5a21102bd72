package stringer

import (
  "html"
  "regexp"
  "strings"

  "github.com/microcosm-cc/bluemonday"
  "golang.org/x/text/width"
)

var (
  policy         = bluemonday.StrictPolicy()
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

// StripTags drops markup and keeps the text, entities decoded.
func StripTags(s string) string {
  return SanitizeString(policy.Sanitize(s))
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func SanitizeString(s string) string {
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  s = html.UnescapeString(s)
  s = strings.TrimSpace(s)
  return s
}

// Narrow folds fullwidth forms typed through a CJK input method: ｙｕｎ -> yun.
func Narrow(s string) string {
  return width.Narrow.String(s)
}
