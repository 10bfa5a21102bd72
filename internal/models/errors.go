package models

import "errors"

var (
  ErrTransport         = errors.New("transport error")
  ErrAuthentication    = errors.New("authentication error")
  ErrMalformedResponse = errors.New("malformed response")
  ErrExport            = errors.New("export error")
)
