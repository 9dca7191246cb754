package jsonio

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestStreamPrettyGolden(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(letters["alpha.json"]), &v))

	buf := &bytes.Buffer{}
	sink := NewStreamOutput(buf, true)
	require.NoError(t, sink.Append(v))

	g := goldie.New(t)
	g.Assert(t, "stream_pretty", buf.Bytes())
}
