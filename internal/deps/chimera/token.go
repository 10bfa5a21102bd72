package chimera

import (
  "time"

  "github.com/golang-jwt/jwt/v5"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/reflection"
)

const tokenField = "data"

// findToken reads a truthy data field. Non-string tokens are stringified.
func findToken(body map[string]any) (models.Token, bool) {
  value, ok := body[tokenField]

  if !ok || !reflection.IsTruthy(value) {
    return "", false
  }
  if s, ok := value.(string); ok {
    return models.Token(s), true
  }

  s, err := cast.ToStringE(value)
  if err != nil || s == "" {
    return "", false
  }
  return models.Token(s), true
}

// describeToken logs claims when the token happens to be a JWT and warns when it is already expired.
// Signature is not checked.
func describeToken(token models.Token, now time.Time) {
  claims := jwt.RegisteredClaims{}

  if _, _, err := jwt.NewParser().ParseUnverified(string(token), &claims); err != nil {
    log.Debug("chimera: session token is opaque")
    return
  }

  fields := log.Fields{
    "subject": claims.Subject,
    "issuer":  claims.Issuer,
  }
  if claims.ExpiresAt == nil {
    log.
      WithFields(fields).
      Debug("chimera: session token claims")
    return
  }
  fields["expires_at"] = claims.ExpiresAt.Time

  if !claims.ExpiresAt.After(now) {
    log.
      WithFields(fields).
      Warn("chimera: session token already expired, fetch will likely be rejected")
    return
  }

  log.
    WithFields(fields).
    Debug("chimera: session token claims")
}
