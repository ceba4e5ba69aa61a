package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferInfo(t *testing.T) {
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"connection_status":"connected","dht_nodes":384,"dl_info_speed":1048576,"up_info_speed":262144,"use_alt_speed_limits":false}`))
	})

	info, err := client.TransferInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ConnectionConnected, info.ConnectionStatus)
	assert.Equal(t, int64(384), info.DHTNodes)
	assert.Equal(t, int64(1048576), info.DlInfoSpeed)
}

func TestSpeedLimitsMode(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"1", true},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			active, err := client.SpeedLimitsMode(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, active)
		})
	}
}

// A global limit of 0 means "unlimited" and must be transmitted
// literally, never dropped by optional-parameter omission.
func TestSetGlobalLimitsTransmitZero(t *testing.T) {
	forms := map[string]map[string][]string{}
	client, _ := newTestClient(t, "sid", recordForm(t, forms))
	ctx := context.Background()

	require.NoError(t, client.SetGlobalDownloadLimit(ctx, 0))
	assert.Equal(t, []string{"0"}, forms["/api/v2/transfer/setDownloadLimit"]["limit"])

	require.NoError(t, client.SetGlobalUploadLimit(ctx, 1048576))
	assert.Equal(t, []string{"1048576"}, forms["/api/v2/transfer/setUploadLimit"]["limit"])
}

func TestGlobalDownloadLimit(t *testing.T) {
	client, _ := newTestClient(t, "sid", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("2097152"))
	})

	limit, err := client.GlobalDownloadLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2097152), limit)
}

func TestBanPeers(t *testing.T) {
	forms := map[string]map[string][]string{}
	client, _ := newTestClient(t, "sid", recordForm(t, forms))

	require.NoError(t, client.BanPeers(context.Background(), []string{"10.0.0.1:6881", "10.0.0.2:6881"}))
	assert.Equal(t, []string{"10.0.0.1:6881|10.0.0.2:6881"}, forms["/api/v2/transfer/banPeers"]["peers"])
}
