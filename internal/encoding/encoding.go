// Package encoding writes facade results as JSON or MessagePack.
package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is an output encoding.
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgPack = "application/msgpack"
)

// ParseFormat accepts "json" and "msgpack", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, MsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// Negotiate picks the format for an Accept header. Anything that does not
// ask for MessagePack gets JSON.
func Negotiate(accept string) Format {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if strings.EqualFold(mediaType, ContentTypeMsgPack) || strings.EqualFold(mediaType, "application/x-msgpack") {
			return MsgPack
		}
	}
	return JSON
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	if f == MsgPack {
		return ContentTypeMsgPack
	}
	return ContentTypeJSON
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(v)
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
