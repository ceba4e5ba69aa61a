package qbittorrent

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncode(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "empty",
			params: Params{},
			want:   "",
		},
		{
			name:   "single string",
			params: Params{}.Set("category", "movies"),
			want:   "category=movies",
		},
		{
			name:   "sorted keys",
			params: Params{}.Set("username", "admin").Set("password", "secret"),
			want:   "password=secret&username=admin",
		},
		{
			name:   "bool and int",
			params: Params{}.Set("reverse", true).Set("limit", 25),
			want:   "limit=25&reverse=true",
		},
		{
			name:   "int64 and float",
			params: Params{}.Set("limit", int64(1048576)).Set("ratioLimit", 1.5),
			want:   "limit=1048576&ratioLimit=1.5",
		},
		{
			name:   "hash list joined with pipe",
			params: Params{}.Set("hashes", []string{"a1b2", "c3d4"}),
			want:   "hashes=a1b2%7Cc3d4",
		},
		{
			name:   "percent encoding of reserved characters",
			params: Params{}.Set("name", "a&b=c%d"),
			want:   "name=a%26b%3Dc%25d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsEncodeUnsupportedValue(t *testing.T) {
	_, err := Params{}.Set("nested", map[string]string{"a": "b"}).Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "nested")
}

// Encoding then form-decoding must reproduce the original mapping for
// scalar values.
func TestParamsEncodeRoundTrip(t *testing.T) {
	params := Params{}.
		Set("username", "admin").
		Set("password", "secret").
		Set("limit", 50).
		Set("reverse", true).
		Set("ratio", 2.5)

	body, err := params.Encode()
	require.NoError(t, err)

	decoded, err := url.ParseQuery(body)
	require.NoError(t, err)

	assert.Equal(t, "admin", decoded.Get("username"))
	assert.Equal(t, "secret", decoded.Get("password"))
	assert.Equal(t, "50", decoded.Get("limit"))
	assert.Equal(t, "true", decoded.Get("reverse"))
	assert.Equal(t, "2.5", decoded.Get("ratio"))
}

// Values containing form-reserved characters must survive a
// decode unchanged. A category name with a comma used to produce a
// corrupted body under the old substitution-based encoder.
func TestParamsEncodeReservedCharacters(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"comma in category", "movies, 4k"},
		{"braces and quotes", `{"name": "x"}`},
		{"ampersand and equals", "a&b=c"},
		{"percent sign", "100%"},
		{"whitespace", "two words"},
		{"non-ascii", "日本語タイトル"},
		{"path", "/downloads/new stuff/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Params{}.Set("category", tt.value).Encode()
			require.NoError(t, err)

			decoded, err := url.ParseQuery(body)
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded.Get("category"))
		})
	}
}

// SetOptional drops zero values entirely. This pins the current
// contract: an optional parameter cannot carry an explicit false or 0.
func TestSetOptionalOmitsZeroValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"empty string", ""},
		{"false", false},
		{"int zero", 0},
		{"int64 zero", int64(0)},
		{"float zero", 0.0},
		{"nil", nil},
		{"empty slice", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Params{}.SetOptional("field", tt.value)
			body, err := params.Encode()
			require.NoError(t, err)
			assert.Empty(t, body)
		})
	}
}

func TestSetOptionalKeepsNonZeroValues(t *testing.T) {
	params := Params{}.
		SetOptional("filter", "paused").
		SetOptional("reverse", true).
		SetOptional("limit", 10)

	body, err := params.Encode()
	require.NoError(t, err)
	assert.Equal(t, "filter=paused&limit=10&reverse=true", body)
}

func TestSetTransmitsZeroValues(t *testing.T) {
	body, err := Params{}.Set("limit", int64(0)).Set("deleteFiles", false).Encode()
	require.NoError(t, err)
	assert.Equal(t, "deleteFiles=false&limit=0", body)
}
