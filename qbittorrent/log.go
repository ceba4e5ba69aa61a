package qbittorrent

import "context"

// LogOptions selects which log entries Log returns. Zero-valued fields
// are omitted from the request, leaving the server defaults in effect.
type LogOptions struct {
	Normal      bool
	Info        bool
	Warning     bool
	Critical    bool
	LastKnownID int64
}

// Log returns main log entries newer than LastKnownID.
func (c *Client) Log(ctx context.Context, opts LogOptions) ([]LogEntry, error) {
	params := Params{}.
		SetOptional("normal", opts.Normal).
		SetOptional("info", opts.Info).
		SetOptional("warning", opts.Warning).
		SetOptional("critical", opts.Critical).
		SetOptional("last_known_id", opts.LastKnownID)

	var entries []LogEntry
	if err := c.postJSON(ctx, "/log/main", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PeerLog returns peer log entries newer than lastKnownID.
func (c *Client) PeerLog(ctx context.Context, lastKnownID int64) ([]PeerLogEntry, error) {
	params := Params{}.SetOptional("last_known_id", lastKnownID)

	var entries []PeerLogEntry
	if err := c.postJSON(ctx, "/log/peers", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
