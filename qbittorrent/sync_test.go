package qbittorrent

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMainData(t *testing.T) {
	var form string
	client, _ := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/sync/maindata", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Encode()
		w.Write([]byte(`{
			"rid": 17,
			"full_update": true,
			"server_state": {"connection_status": "connected", "dht_nodes": 300},
			"torrents": {"deadbeef": {"name": "ubuntu.iso"}},
			"categories": {"linux": {"name": "linux", "savePath": "/dl/linux"}},
			"tags": ["iso"]
		}`))
	})

	data, err := client.SyncMainData(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "rid=5", form)

	assert.Equal(t, int64(17), data.Rid)
	assert.True(t, data.FullUpdate)
	assert.Equal(t, []string{"iso"}, data.Tags)
	assert.Equal(t, "/dl/linux", data.Categories["linux"].SavePath)

	var state struct {
		ConnectionStatus ConnectionStatus `json:"connection_status"`
	}
	require.NoError(t, json.Unmarshal(data.ServerState, &state))
	assert.Equal(t, ConnectionConnected, state.ConnectionStatus)

	// Delta torrent entries are partial objects, so they stay raw.
	var partial struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data.Torrents["deadbeef"], &partial))
	assert.Equal(t, "ubuntu.iso", partial.Name)
}

func TestSyncMainDataFullUpdateOmitsRID(t *testing.T) {
	var form string
	client, _ := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Encode()
		w.Write([]byte(`{"rid": 1}`))
	})

	_, err := client.SyncMainData(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, form)
}

func TestSyncTorrentPeers(t *testing.T) {
	var form map[string][]string
	client, _ := newTestClient(t, "abc123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/sync/torrentPeers", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{
			"rid": 3,
			"peers": {"10.0.0.2:6881": {"ip": "10.0.0.2", "port": 6881, "client": "qBittorrent/4.6.2"}}
		}`))
	})

	peers, err := client.SyncTorrentPeers(context.Background(), "deadbeef", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"deadbeef"}, form["hash"])
	assert.Equal(t, []string{"2"}, form["rid"])

	assert.Equal(t, int64(3), peers.Rid)
	require.Contains(t, peers.Peers, "10.0.0.2:6881")
	assert.Equal(t, "qBittorrent/4.6.2", peers.Peers["10.0.0.2:6881"].Client)
}
