package jsonfile

import (
  "bytes"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "os"

  "github.com/ushakovn/chimera/pkg/extension"
)

const indent = "  "

// Marshal keeps non-ASCII and HTML characters literal, also when the source carried them as \u escapes.
func Marshal(value any) ([]byte, error) {
  compact, err := encode(value)
  if err != nil {
    return nil, fmt.Errorf("jsonfile.encode: %w", err)
  }

  literal, err := unescape(compact)
  if err != nil {
    return nil, fmt.Errorf("jsonfile.unescape: %w", err)
  }

  buf := &bytes.Buffer{}

  if err = json.Indent(buf, literal, "", indent); err != nil {
    return nil, fmt.Errorf("json.Indent: %w", err)
  }
  buf.WriteByte('\n')

  return buf.Bytes(), nil
}

// Write replaces the file at path unconditionally.
func Write(path string, value any) ([]byte, error) {
  if !extension.IsJSON(path) {
    return nil, fmt.Errorf("file %s has no .json extension", path)
  }

  content, err := Marshal(value)
  if err != nil {
    return nil, fmt.Errorf("jsonfile.Marshal: %w", err)
  }

  if err = os.WriteFile(path, content, 0o644); err != nil {
    return nil, fmt.Errorf("os.WriteFile: %w", err)
  }
  return content, nil
}

func encode(value any) ([]byte, error) {
  buf := &bytes.Buffer{}

  enc := json.NewEncoder(buf)
  enc.SetEscapeHTML(false)

  if err := enc.Encode(value); err != nil {
    return nil, fmt.Errorf("enc.Encode: %w", err)
  }
  return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type frame struct {
  object bool
  count  int
}

// unescape re-emits a compact document token by token. Key order and numbers are kept as is.
func unescape(data []byte) ([]byte, error) {
  dec := json.NewDecoder(bytes.NewReader(data))
  dec.UseNumber()

  var (
    buf   = &bytes.Buffer{}
    stack []*frame
  )

  for {
    token, err := dec.Token()
    if errors.Is(err, io.EOF) {
      break
    }
    if err != nil {
      return nil, fmt.Errorf("dec.Token: %w", err)
    }

    if delim, ok := token.(json.Delim); ok && (delim == '}' || delim == ']') {
      stack = stack[:len(stack)-1]
      buf.WriteRune(rune(delim))
      continue
    }

    if len(stack) > 0 {
      top := stack[len(stack)-1]

      switch {
      case top.object && top.count%2 == 1:
        buf.WriteByte(':')
      case top.count > 0:
        buf.WriteByte(',')
      }
      top.count++
    }

    if err = writeToken(buf, token); err != nil {
      return nil, err
    }

    if delim, ok := token.(json.Delim); ok {
      stack = append(stack, &frame{object: delim == '{'})
    }
  }

  return buf.Bytes(), nil
}

func writeToken(buf *bytes.Buffer, token json.Token) error {
  switch value := token.(type) {
  case json.Delim:
    buf.WriteRune(rune(value))
  case nil:
    buf.WriteString("null")
  case json.Number:
    buf.WriteString(value.String())
  default:
    encoded, err := encode(value)
    if err != nil {
      return fmt.Errorf("jsonfile.encode: %w", err)
    }
    buf.Write(encoded)
  }
  return nil
}
