package hasher

import (
  "crypto/sha256"
  "fmt"
)

func SHA256(value []byte) string {
  hash := sha256.New()
  hash.Write(value)

  return fmt.Sprintf("%x", hash.Sum(nil))
}
