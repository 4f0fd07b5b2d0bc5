package upstream

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayObject(t *testing.T) {
	value, err := Relay([]byte(`{"targetId":1,"name":"Test Target"}`))
	require.NoError(t, err)

	obj, ok := value.(map[string]any)
	require.True(t, ok, "object bodies stay objects")
	assert.Equal(t, float64(1), obj["targetId"])
	assert.Equal(t, "Test Target", obj["name"])
}

func TestRelayEmptyListIsSuccess(t *testing.T) {
	value, err := Relay([]byte(`[]`))
	require.NoError(t, err)

	list, ok := value.([]any)
	require.True(t, ok, "list bodies stay lists")
	assert.Empty(t, list)
}

func TestRelayPreservesNestedShapes(t *testing.T) {
	body := []byte(`[{"name":"5-HT<sub>1A</sub> receptor","familyIds":[1],"subunitIds":[],"meta":{"unicode":"µ"}}]`)
	value, err := Relay(body)
	require.NoError(t, err)

	list := value.([]any)
	require.Len(t, list, 1)
	entry := list[0].(map[string]any)
	assert.Equal(t, "5-HT<sub>1A</sub> receptor", entry["name"], "HTML-entity text passes through untouched")
	assert.Equal(t, []any{float64(1)}, entry["familyIds"])
	assert.Equal(t, []any{}, entry["subunitIds"])
	assert.Equal(t, "µ", entry["meta"].(map[string]any)["unicode"])
}

func TestRelayInvalidJSON(t *testing.T) {
	_, err := Relay([]byte("<html>maintenance page</html>"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestSinkRoundTrip(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "deeply", "nested", "dirs", "targets.json")

	written, err := Sink([]byte(`{"targetId":1,"name":"Test Target"}`), dest)
	require.NoError(t, err)
	assert.Equal(t, dest, written)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err, "missing parent directories are created")

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]any{"targetId": float64(1), "name": "Test Target"}, got)
}

func TestSinkOverwritesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(dest, []byte(`{"stale":true}`), 0o644))

	_, err := Sink([]byte(`[]`), dest)
	require.NoError(t, err)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSinkUnwritablePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply when running as root")
	}
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.Mkdir(blocked, 0o500))

	_, err := Sink([]byte(`[]`), filepath.Join(blocked, "sub", "out.json"))

	var sinkErr *SinkError
	require.True(t, errors.As(err, &sinkErr), "local write failures must be SinkError, got %v", err)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestSinkRefusesUndecodableBody(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.json")

	_, err := Sink([]byte("not json"), dest)
	assert.ErrorIs(t, err, ErrDecode)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "nothing may be written when the decode fails")
}
