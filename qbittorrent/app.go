package qbittorrent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Version returns the application version, e.g. "v4.6.2".
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.postText(ctx, "/app/version", Params{})
}

// WebAPIVersion returns the WebUI API version, e.g. "2.9.3".
func (c *Client) WebAPIVersion(ctx context.Context) (string, error) {
	return c.postText(ctx, "/app/webapiVersion", Params{})
}

// BuildInfo returns the libraries qBittorrent was built against.
func (c *Client) BuildInfo(ctx context.Context) (*BuildInfo, error) {
	info := new(BuildInfo)
	if err := c.postJSON(ctx, "/app/buildInfo", Params{}, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Shutdown stops the qBittorrent application.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.postNoContent(ctx, "/app/shutdown", Params{})
}

// Preferences returns the application preferences.
func (c *Client) Preferences(ctx context.Context) (Preferences, error) {
	prefs := Preferences{}
	if err := c.postJSON(ctx, "/app/preferences", Params{}, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SetPreferences applies the given preference values. Only the keys
// present in prefs are changed.
func (c *Client) SetPreferences(ctx context.Context, prefs Preferences) error {
	doc, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("/app/setPreferences: failed to encode preferences: %w", err)
	}
	return c.postNoContent(ctx, "/app/setPreferences", Params{}.Set("json", string(doc)))
}

// DefaultSavePath returns the default directory torrents are saved to.
func (c *Client) DefaultSavePath(ctx context.Context) (string, error) {
	return c.postText(ctx, "/app/defaultSavePath", Params{})
}
