package qbittorrent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// TransferInfo returns the global transfer statistics shown in the
// WebUI status bar.
func (c *Client) TransferInfo(ctx context.Context) (*TransferInfo, error) {
	info := new(TransferInfo)
	if err := c.postJSON(ctx, "/transfer/info", Params{}, info); err != nil {
		return nil, err
	}
	return info, nil
}

// SpeedLimitsMode reports whether the alternative speed limits are
// currently active.
func (c *Client) SpeedLimitsMode(ctx context.Context) (bool, error) {
	body, err := c.postText(ctx, "/transfer/speedLimitsMode", Params{})
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(body) == "1", nil
}

// ToggleSpeedLimitsMode switches between normal and alternative speed
// limits.
func (c *Client) ToggleSpeedLimitsMode(ctx context.Context) error {
	return c.postNoContent(ctx, "/transfer/toggleSpeedLimitsMode", Params{})
}

// GlobalDownloadLimit returns the global download limit in bytes/s,
// 0 meaning unlimited.
func (c *Client) GlobalDownloadLimit(ctx context.Context) (int64, error) {
	return c.postLimit(ctx, "/transfer/downloadLimit")
}

// SetGlobalDownloadLimit sets the global download limit in bytes/s.
// A limit of 0 removes the limit; it is transmitted literally, not
// subject to optional-parameter omission.
func (c *Client) SetGlobalDownloadLimit(ctx context.Context, limit int64) error {
	return c.postNoContent(ctx, "/transfer/setDownloadLimit", Params{}.Set("limit", limit))
}

// GlobalUploadLimit returns the global upload limit in bytes/s,
// 0 meaning unlimited.
func (c *Client) GlobalUploadLimit(ctx context.Context) (int64, error) {
	return c.postLimit(ctx, "/transfer/uploadLimit")
}

// SetGlobalUploadLimit sets the global upload limit in bytes/s.
func (c *Client) SetGlobalUploadLimit(ctx context.Context, limit int64) error {
	return c.postNoContent(ctx, "/transfer/setUploadLimit", Params{}.Set("limit", limit))
}

// BanPeers bans the given peers, each formatted as host:port.
func (c *Client) BanPeers(ctx context.Context, peers []string) error {
	return c.postNoContent(ctx, "/transfer/banPeers", Params{}.Set("peers", peers))
}

// postLimit performs a call whose response is a bare decimal byte rate.
func (c *Client) postLimit(ctx context.Context, endpoint string) (int64, error) {
	body, err := c.postText(ctx, endpoint, Params{})
	if err != nil {
		return 0, err
	}
	limit, err := strconv.ParseInt(strings.TrimSpace(body), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to decode response: %w", endpoint, err)
	}
	return limit, nil
}
