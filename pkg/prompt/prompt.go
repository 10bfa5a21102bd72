package prompt

import (
  "bufio"
  "context"
  "errors"
  "fmt"
  "io"
  "os"

  "github.com/ushakovn/chimera/pkg/stringer"
  "golang.org/x/term"
)

var ErrNoInput = errors.New("no input")

type Prompt struct {
  input  io.Reader
  output io.Writer
  reader *bufio.Reader
}

func New(input io.Reader, output io.Writer) *Prompt {
  return &Prompt{
    input:  input,
    output: output,
    reader: bufio.NewReader(input),
  }
}

type answer struct {
  text string
  err  error
}

// Line returns as soon as ctx is done, the pending read is abandoned.
func (p *Prompt) Line(ctx context.Context, label string) (string, error) {
  if err := ctx.Err(); err != nil {
    return "", err
  }
  if _, err := fmt.Fprint(p.output, label); err != nil {
    return "", fmt.Errorf("fmt.Fprint: %w", err)
  }
  return await(ctx, p.readLine, func() {})
}

// Secret does not echo when input is a terminal.
func (p *Prompt) Secret(ctx context.Context, label string) (string, error) {
  fd, ok := p.terminalFd()
  if !ok {
    return p.Line(ctx, label)
  }
  if err := ctx.Err(); err != nil {
    return "", err
  }

  state, err := term.GetState(fd)
  if err != nil {
    return "", fmt.Errorf("term.GetState: %w", err)
  }
  if _, err = fmt.Fprint(p.output, label); err != nil {
    return "", fmt.Errorf("fmt.Fprint: %w", err)
  }

  read := func() (string, error) {
    secret, err := term.ReadPassword(fd)
    if err != nil {
      return "", fmt.Errorf("term.ReadPassword: %w", err)
    }
    return stringer.Strip(string(secret)), nil
  }

  restore := func() {
    _ = term.Restore(fd, state)
  }

  secret, err := await(ctx, read, restore)
  fmt.Fprintln(p.output)

  return secret, err
}

func await(ctx context.Context, read func() (string, error), cancel func()) (string, error) {
  done := make(chan answer, 1)

  go func() {
    text, err := read()
    done <- answer{text: text, err: err}
  }()

  select {
  case <-ctx.Done():
    cancel()
    return "", ctx.Err()
  case a := <-done:
    return a.text, a.err
  }
}

func (p *Prompt) readLine() (string, error) {
  line, err := p.reader.ReadString('\n')

  if err != nil {
    if !errors.Is(err, io.EOF) {
      return "", fmt.Errorf("reader.ReadString: %w", err)
    }
    if line == "" {
      return "", ErrNoInput
    }
  }
  return stringer.Strip(line), nil
}

func (p *Prompt) terminalFd() (int, bool) {
  file, ok := p.input.(*os.File)
  if !ok {
    return 0, false
  }
  fd := int(file.Fd())

  return fd, term.IsTerminal(fd)
}
