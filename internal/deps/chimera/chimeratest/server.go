// Package chimeratest runs an in-process stand-in for the Chimera API.
package chimeratest

import (
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "sync"
  "testing"

  "github.com/go-chi/chi/v5"
  "github.com/ushakovn/chimera/internal/models"
)

const (
  pathLogin          = "/auth/login"
  pathProducts       = "/product/shop"
  pathProductOptions = "/productOption"
)

// Options are canned responses. Zero statuses mean 200.
type Options struct {
  LoginStatus int
  LoginBody   string

  FetchStatus  int
  ProductsBody string
  OptionsBody  string

  // Token, when set, is required as the bearer credential on fetch endpoints.
  Token string
  TLS   bool
}

type Server struct {
  *httptest.Server

  opts Options

  mu             sync.Mutex
  logins         []models.Credentials
  authorizations []string
}

func NewServer(t testing.TB, opts Options) *Server {
  t.Helper()

  s := &Server{opts: opts}

  router := chi.NewRouter()
  router.Post(pathLogin, s.handleLogin)
  router.Get(pathProducts, s.handleFetch(func() string { return s.opts.ProductsBody }))
  router.Get(pathProductOptions, s.handleFetch(func() string { return s.opts.OptionsBody }))

  if opts.TLS {
    s.Server = httptest.NewTLSServer(router)
  } else {
    s.Server = httptest.NewServer(router)
  }
  t.Cleanup(s.Close)

  return s
}

func (s *Server) Logins() []models.Credentials {
  s.mu.Lock()
  defer s.mu.Unlock()

  return append([]models.Credentials(nil), s.logins...)
}

func (s *Server) Authorizations() []string {
  s.mu.Lock()
  defer s.mu.Unlock()

  return append([]string(nil), s.authorizations...)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
  var credentials models.Credentials

  if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
    http.Error(w, err.Error(), http.StatusBadRequest)
    return
  }

  s.mu.Lock()
  s.logins = append(s.logins, credentials)
  s.mu.Unlock()

  write(w, s.opts.LoginStatus, s.opts.LoginBody)
}

func (s *Server) handleFetch(body func() string) http.HandlerFunc {
  return func(w http.ResponseWriter, r *http.Request) {
    authorization := r.Header.Get("Authorization")

    s.mu.Lock()
    s.authorizations = append(s.authorizations, authorization)
    s.mu.Unlock()

    if s.opts.Token != "" && authorization != "Bearer "+s.opts.Token {
      write(w, http.StatusUnauthorized, `{"message":"unauthorized"}`)
      return
    }
    write(w, s.opts.FetchStatus, body())
  }
}

func write(w http.ResponseWriter, status int, body string) {
  if status == 0 {
    status = http.StatusOK
  }
  w.Header().Set("Content-Type", "application/json")
  w.WriteHeader(status)

  _, _ = w.Write([]byte(body))
}
