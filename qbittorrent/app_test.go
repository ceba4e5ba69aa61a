package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionEndpoints(t *testing.T) {
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/app/version":
			w.Write([]byte("v4.6.2"))
		case "/api/v2/app/webapiVersion":
			w.Write([]byte("2.9.3"))
		case "/api/v2/app/defaultSavePath":
			w.Write([]byte("/downloads"))
		}
	})
	ctx := context.Background()

	version, err := client.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v4.6.2", version)

	apiVersion, err := client.WebAPIVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.9.3", apiVersion)

	savePath, err := client.DefaultSavePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/downloads", savePath)
}

func TestBuildInfo(t *testing.T) {
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"qt":"5.15.2","libtorrent":"1.2.19.0","boost":"1.76.0","openssl":"1.1.1t","zlib":"1.2.11","bitness":64}`))
	})

	info, err := client.BuildInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.19.0", info.Libtorrent)
	assert.Equal(t, 64, info.Bitness)
}

func TestSetPreferencesEncodesJSON(t *testing.T) {
	var raw string
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		raw = r.PostForm.Get("json")
		w.Write([]byte("Ok."))
	})

	// The JSON document contains every delimiter the old
	// substitution-based encoder corrupted.
	err := client.SetPreferences(context.Background(), Preferences{
		"save_path":    "/downloads/new stuff",
		"max_ratio":    1.5,
		"add_trackers": "http://a/announce,http://b/announce",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"save_path":"/downloads/new stuff","max_ratio":1.5,"add_trackers":"http://a/announce,http://b/announce"}`, raw)
}

func TestPreferencesPassthrough(t *testing.T) {
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dht":true,"listen_port":6881,"save_path":"/downloads"}`))
	})

	prefs, err := client.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, prefs["dht"])
	assert.Equal(t, "/downloads", prefs["save_path"])
}
