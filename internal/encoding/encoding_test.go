package encoding

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mauv0809/ligadb/internal/soap"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat(" msgpack ")
	require.NoError(t, err)
	assert.Equal(t, MsgPack, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		accept string
		want   Format
	}{
		{"", JSON},
		{"*/*", JSON},
		{"application/json", JSON},
		{"application/msgpack", MsgPack},
		{"text/html, application/msgpack;q=0.9", MsgPack},
		{"application/x-msgpack", MsgPack},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Negotiate(tt.accept), "Accept: %q", tt.accept)
	}
	assert.Equal(t, "application/msgpack", MsgPack.ContentType())
	assert.Equal(t, "application/json", JSON.ContentType())
}

func TestEncode(t *testing.T) {
	team := &soap.Element{Name: "Team", Children: []*soap.Element{
		{Name: "teamID", Text: "40"},
		{Name: "teamName", Text: "Bayern München"},
	}}
	want := map[string]any{"teamID": "40", "teamName": "Bayern München"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, JSON, []*soap.Element{team}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []map[string]any{want}, got)
	})

	t.Run("msgpack", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, MsgPack, []*soap.Element{team}))

		var got []map[string]any
		require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []map[string]any{want}, got)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Encode(&bytes.Buffer{}, Format("yaml"), team))
	})
}
