package chimera

import (
  "context"
  "crypto/tls"
  "encoding/json"
  "fmt"
  "net/http"
  "strings"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/validator"
  "golang.org/x/oauth2"
)

const (
  DefaultBaseURL = "https://www.chimeracoffee.top:8448"
  DefaultTimeout = 30 * time.Second

  PathLogin          = "/auth/login"
  PathProducts       = "/product/shop"
  PathProductOptions = "/productOption"
)

type Config struct {
  BaseURL            string        `validate:"required"`
  Timeout            time.Duration `validate:"gt=0"`
  InsecureSkipVerify bool
}

func (c *Config) Validate() error {
  if err := validator.Struct(c); err != nil {
    return err
  }
  if err := validator.URL(c.BaseURL); err != nil {
    return fmt.Errorf("base url %s invalid: %w", c.BaseURL, err)
  }
  return nil
}

// Dependencies are optional. Without HTTPClient one is built from Config.
type Dependencies struct {
  HTTPClient *http.Client
}

type Client struct {
  config Config
  http   *http.Client
  client *resty.Client
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }
  config.BaseURL = strings.TrimRight(config.BaseURL, "/")

  httpClient := deps.HTTPClient
  if httpClient == nil {
    httpClient = newHTTPClient(config)
  }

  if config.InsecureSkipVerify {
    log.
      WithField("base_url", config.BaseURL).
      Warn("chimera: tls certificate verification disabled")
  }

  return &Client{
    config: config,
    http:   httpClient,
    client: newRestyClient(httpClient, config),
  }, nil
}

func newHTTPClient(config Config) *http.Client {
  transport := http.DefaultTransport.(*http.Transport).Clone()

  transport.TLSClientConfig = &tls.Config{
    MinVersion:         tls.VersionTLS12,
    InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec
  }

  return &http.Client{
    Transport: transport,
    Timeout:   config.Timeout,
  }
}

func newRestyClient(httpClient *http.Client, config Config) *resty.Client {
  return resty.NewWithClient(httpClient).
    SetBaseURL(config.BaseURL).
    SetTimeout(config.Timeout).
    SetHeader("Accept", "application/json")
}

// authorized wraps the base transport so every request carries the bearer token.
func (c *Client) authorized(ctx context.Context, token models.Token) *resty.Client {
  ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

  source := oauth2.StaticTokenSource(&oauth2.Token{
    AccessToken: string(token),
    TokenType:   "Bearer",
  })

  return newRestyClient(oauth2.NewClient(ctx, source), c.config)
}

type loginRequest struct {
  Username string `json:"username"`
  Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
  if err := credentials.Validate(); err != nil {
    return "", fmt.Errorf("invalid credentials: %w", err)
  }

  log.
    WithFields(log.Fields{
      "base_url": c.config.BaseURL,
      "username": credentials.Username,
    }).
    Debug("chimera: login started")

  resp, err := c.client.R().
    SetContext(ctx).
    SetHeader("Content-Type", "application/json").
    SetBody(loginRequest{
      Username: credentials.Username,
      Password: credentials.Password,
    }).
    Post(PathLogin)

  if err != nil {
    return "", fmt.Errorf("%w: resty.Client.Post %s: %w", models.ErrTransport, PathLogin, err)
  }
  if !resp.IsSuccess() {
    return "", statusError(resp)
  }

  body := resp.Body()

  var parsed map[string]any

  if err = json.Unmarshal(body, &parsed); err != nil || parsed == nil {
    return "", fmt.Errorf("%w: login response is not an object: %s", models.ErrMalformedResponse, body)
  }

  token, ok := findToken(parsed)
  if !ok {
    return "", fmt.Errorf("%w: 登录失败: %s", models.ErrAuthentication, body)
  }
  describeToken(token, time.Now())

  log.
    WithField("username", credentials.Username).
    Debug("chimera: login succeeded")

  return token, nil
}

// Fetch GETs a collection endpoint with the bearer token and resolves its shape.
func (c *Client) Fetch(ctx context.Context, token models.Token, path string) (*Collection, error) {
  log.
    WithField("path", path).
    Debug("chimera: fetch started")

  resp, err := c.authorized(ctx, token).R().
    SetContext(ctx).
    Get(path)

  if err != nil {
    return nil, fmt.Errorf("%w: resty.Client.Get %s: %w", models.ErrTransport, path, err)
  }
  if !resp.IsSuccess() {
    return nil, statusError(resp)
  }

  collection, err := DecodeCollection(resp.Body())
  if err != nil {
    return nil, fmt.Errorf("DecodeCollection %s: %w", path, err)
  }

  log.
    WithFields(log.Fields{
      "path":      path,
      "items":     len(collection.Items()),
      "enveloped": collection.IsEnveloped(),
    }).
    Debug("chimera: fetch finished")

  return collection, nil
}

func (c *Client) FetchProducts(ctx context.Context, token models.Token) ([]models.Product, error) {
  collection, err := c.Fetch(ctx, token, PathProducts)
  if err != nil {
    return nil, err
  }

  products, err := DecodeItems[models.Product](collection)
  if err != nil {
    return nil, fmt.Errorf("DecodeItems: %w", err)
  }
  return products, nil
}

func (c *Client) FetchProductOptions(ctx context.Context, token models.Token) ([]models.ProductOption, error) {
  collection, err := c.Fetch(ctx, token, PathProductOptions)
  if err != nil {
    return nil, err
  }

  options, err := DecodeItems[models.ProductOption](collection)
  if err != nil {
    return nil, fmt.Errorf("DecodeItems: %w", err)
  }
  return options, nil
}

func statusError(resp *resty.Response) error {
  return fmt.Errorf("%w: %s %s: %s",
    models.ErrTransport,
    resp.Request.Method,
    resp.Request.URL,
    resp.Status(),
  )
}
