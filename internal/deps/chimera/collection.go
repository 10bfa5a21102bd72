package chimera

import (
  "bytes"
  "encoding/json"
  "fmt"

  "github.com/ushakovn/chimera/internal/models"
)

// Collection is the list payload of a GET endpoint. The API answers either with a bare array
// or with an envelope object; exactly one of Bare and Enveloped is set after decoding.
type Collection struct {
  Bare      []json.RawMessage
  Enveloped *Envelope
}

type Envelope struct {
  Data []json.RawMessage
}

func (c *Collection) UnmarshalJSON(data []byte) error {
  data = bytes.TrimSpace(data)

  if len(data) == 0 {
    return fmt.Errorf("%w: empty body", models.ErrMalformedResponse)
  }
  *c = Collection{}

  switch data[0] {

  case '[':
    var bare []json.RawMessage

    if err := json.Unmarshal(data, &bare); err != nil {
      return fmt.Errorf("%w: bare array: %v", models.ErrMalformedResponse, err)
    }
    if bare == nil {
      bare = []json.RawMessage{}
    }
    c.Bare = bare

  case '{':
    var object map[string]json.RawMessage

    if err := json.Unmarshal(data, &object); err != nil {
      return fmt.Errorf("%w: envelope: %v", models.ErrMalformedResponse, err)
    }
    envelope := &Envelope{Data: []json.RawMessage{}}

    if raw, ok := object["data"]; ok && !isNull(raw) {
      if err := json.Unmarshal(raw, &envelope.Data); err != nil {
        return fmt.Errorf("%w: envelope data is not an array: %v", models.ErrMalformedResponse, err)
      }
    }
    c.Enveloped = envelope

  default:
    return fmt.Errorf("%w: expected array or object, got %.32q", models.ErrMalformedResponse, data)
  }

  return nil
}

// Items resolves the union. An envelope without data yields an empty sequence.
func (c *Collection) Items() []json.RawMessage {
  if c.Enveloped != nil {
    if c.Enveloped.Data == nil {
      return []json.RawMessage{}
    }
    return c.Enveloped.Data
  }
  if c.Bare == nil {
    return []json.RawMessage{}
  }
  return c.Bare
}

func (c *Collection) IsEnveloped() bool {
  return c.Enveloped != nil
}

func DecodeCollection(body []byte) (*Collection, error) {
  collection := new(Collection)

  if err := collection.UnmarshalJSON(body); err != nil {
    return nil, err
  }
  return collection, nil
}

// DecodeItems decodes every element of the collection into T, keeping order.
func DecodeItems[T any](collection *Collection) ([]T, error) {
  items := collection.Items()
  decoded := make([]T, len(items))

  for index, item := range items {
    if err := json.Unmarshal(item, &decoded[index]); err != nil {
      return nil, fmt.Errorf("item %d: %w", index, err)
    }
  }

  return decoded, nil
}

func isNull(raw json.RawMessage) bool {
  return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
