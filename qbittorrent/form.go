package qbittorrent

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params holds the named parameters of a single Web API call.
//
// Values may be strings, booleans, integers, floats or string slices.
// String slices are joined with "|" before encoding, matching the
// separator qBittorrent uses for multi-hash parameters.
type Params map[string]any

// Set stores a parameter that is always transmitted, even when its
// value is the type's zero value.
func (p Params) Set(name string, value any) Params {
	p[name] = value
	return p
}

// SetOptional stores a parameter only when its value is non-zero.
// Empty strings, false booleans, numeric zero and empty slices are
// dropped from the encoded body entirely, so there is no way to send
// an explicit zero through an optional parameter. Callers that need
// to transmit a literal zero must use Set.
func (p Params) SetOptional(name string, value any) Params {
	if isZeroValue(value) {
		return p
	}
	p[name] = value
	return p
}

// Encode serializes the parameters to application/x-www-form-urlencoded
// form. Each entry is emitted as name=value with both sides
// percent-encoded, entries joined with "&" in sorted key order.
// A value of an unsupported type returns ErrUnsupportedValue.
func (p Params) Encode() (string, error) {
	if len(p) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		v, err := formatValue(p[k])
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", k, err)
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}

	return b.String(), nil
}

// formatValue renders a scalar parameter in its canonical textual form:
// strings unchanged, booleans as true/false, integers and floats in
// decimal, string slices joined with "|".
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case []string:
		return strings.Join(v, "|"), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// isZeroValue reports whether a parameter value counts as absent for
// the optional-parameter omission rule.
func isZeroValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case int32:
		return v == 0
	case uint:
		return v == 0
	case uint64:
		return v == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}
