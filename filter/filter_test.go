package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

func testTorrent() qbittorrent.Torrent {
	return qbittorrent.Torrent{
		Hash:     "deadbeef",
		Name:     "Ubuntu 24.04 LTS",
		Category: "linux",
		Tags:     "iso, public",
		State:    qbittorrent.StateUploading,
		Size:     4 << 30,
		Ratio:    2.5,
		AddedOn:  time.Now().AddDate(0, 0, -45).Unix(),
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `Torrent.Ratio > 1.0`},
		{name: "helper call", expression: `hasTag("public")`},
		{name: "combined", expression: `isSeeding() && daysSince(added()) > 30`},
		{name: "empty", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Torrent.Ratio >`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	torrent := testTorrent()

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "ratio above", expression: `Torrent.Ratio > 1.0`, want: true},
		{name: "ratio below", expression: `Torrent.Ratio > 5.0`, want: false},
		{name: "category match", expression: `Torrent.Category == "linux"`, want: true},
		{name: "has tag", expression: `hasTag("public")`, want: true},
		{name: "has tag case-insensitive", expression: `hasTag("PUBLIC")`, want: true},
		{name: "missing tag", expression: `hasTag("private")`, want: false},
		{name: "seeding state", expression: `isSeeding()`, want: true},
		{name: "not downloading", expression: `isDownloading()`, want: false},
		{name: "age helper", expression: `daysSince(added()) > 30`, want: true},
		{name: "size helper", expression: `sizeGB() > 2`, want: true},
		{name: "name contains", expression: `contains(Torrent.Name, "ubuntu")`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(torrent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	seeding := testTorrent()
	paused := testTorrent()
	paused.Hash = "cafebabe"
	paused.Name = "Debian 12"
	paused.State = qbittorrent.StatePausedDL

	f, err := Compile(`isSeeding()`)
	require.NoError(t, err)

	matches, err := f.Apply([]qbittorrent.Torrent{seeding, paused})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "deadbeef", matches[0].Hash)
}
