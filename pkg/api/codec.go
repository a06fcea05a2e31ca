// Package api defines the messages of the drinko.v1 Connect services.
//
// Messages are plain Go structs carried as JSON; Codec replaces Connect's
// protobuf JSON codec so no generated protobuf types are needed.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name; it maps to application/json.
const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return b, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
