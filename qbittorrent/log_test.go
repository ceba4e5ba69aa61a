package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	var form map[string][]string
	client, _ := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/log/main", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`[
			{"id": 41, "message": "qBittorrent v4.6.2 started", "timestamp": 1700000000, "type": 1},
			{"id": 42, "message": "UPnP: port mapping successful", "timestamp": 1700000060, "type": 1}
		]`))
	})

	entries, err := client.Log(context.Background(), LogOptions{
		Warning:     true,
		LastKnownID: 40,
	})
	require.NoError(t, err)

	// False selectors stay with the server defaults and are not sent.
	assert.Equal(t, []string{"true"}, form["warning"])
	assert.Equal(t, []string{"40"}, form["last_known_id"])
	assert.NotContains(t, form, "normal")
	assert.NotContains(t, form, "info")
	assert.NotContains(t, form, "critical")

	require.Len(t, entries, 2)
	assert.Equal(t, int64(41), entries[0].ID)
	assert.Equal(t, "qBittorrent v4.6.2 started", entries[0].Message)
}

func TestPeerLog(t *testing.T) {
	var form string
	client, _ := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/log/peers", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Encode()
		w.Write([]byte(`[{"id": 7, "ip": "10.0.0.2", "timestamp": 1700000000, "blocked": true, "reason": "banned"}]`))
	})

	entries, err := client.PeerLog(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "last_known_id=6", form)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Blocked)
	assert.Equal(t, "banned", entries[0].Reason)
}
