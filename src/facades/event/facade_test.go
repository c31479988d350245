package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPollClear(t *testing.T) {
	f := New()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := f.post(ctx, map[string]interface{}{"name": name})
		require.NoError(t, err)
	}

	out, err := f.poll(ctx, map[string]interface{}{"number_of_events": 2})
	require.NoError(t, err)
	events := out.([]map[string]interface{})
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0]["name"])
	assert.Equal(t, "b", events[1]["name"])

	// Default poll size is one event.
	out, err = f.poll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, out.([]map[string]interface{}), 1)

	_, err = f.post(ctx, map[string]interface{}{"name": "d"})
	require.NoError(t, err)
	_, err = f.clearBuffer(ctx, nil)
	require.NoError(t, err)

	out, err = f.poll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPost_BadArgs(t *testing.T) {
	f := New()
	if _, err := f.post(context.Background(), map[string]interface{}{"name": []int{1}}); err == nil {
		t.Fatal("expected error for non-string event name")
	}
}
