package qbittorrent

import (
	"context"
	"strings"
)

// SearchStart starts a search job on the given plugins ("all" or
// "enabled" are accepted) within the given category.
func (c *Client) SearchStart(ctx context.Context, pattern string, plugins, category []string) (*SearchJob, error) {
	params := Params{}.
		Set("pattern", pattern).
		Set("plugins", plugins).
		Set("category", strings.Join(category, "|"))

	job := new(SearchJob)
	if err := c.postJSON(ctx, "/search/start", params, job); err != nil {
		return nil, err
	}
	return job, nil
}

// SearchStop stops a running search job.
func (c *Client) SearchStop(ctx context.Context, id int64) error {
	return c.postNoContent(ctx, "/search/stop", Params{}.Set("id", id))
}

// SearchStatus returns the status of one search job, or of all jobs
// when id is 0.
func (c *Client) SearchStatus(ctx context.Context, id int64) ([]SearchStatus, error) {
	params := Params{}.SetOptional("id", id)

	var statuses []SearchStatus
	if err := c.postJSON(ctx, "/search/status", params, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// SearchResults returns the results of a search job. limit and offset
// of 0 leave the server defaults in effect.
func (c *Client) SearchResults(ctx context.Context, id int64, limit, offset int) (*SearchResults, error) {
	params := Params{}.
		Set("id", id).
		SetOptional("limit", limit).
		SetOptional("offset", offset)

	results := new(SearchResults)
	if err := c.postJSON(ctx, "/search/results", params, results); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchDelete deletes a finished search job.
func (c *Client) SearchDelete(ctx context.Context, id int64) error {
	return c.postNoContent(ctx, "/search/delete", Params{}.Set("id", id))
}

// SearchPlugins returns the installed search plugins.
func (c *Client) SearchPlugins(ctx context.Context) ([]SearchPlugin, error) {
	var plugins []SearchPlugin
	if err := c.postJSON(ctx, "/search/plugins", Params{}, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

// SearchInstallPlugin installs search plugins from the given URLs.
func (c *Client) SearchInstallPlugin(ctx context.Context, sources []string) error {
	return c.postNoContent(ctx, "/search/installPlugin", Params{}.Set("sources", sources))
}

// SearchUninstallPlugin uninstalls the named search plugins.
func (c *Client) SearchUninstallPlugin(ctx context.Context, names []string) error {
	return c.postNoContent(ctx, "/search/uninstallPlugin", Params{}.Set("names", names))
}

// SearchEnablePlugin enables or disables the named search plugins.
// enable is always transmitted.
func (c *Client) SearchEnablePlugin(ctx context.Context, names []string, enable bool) error {
	params := Params{}.Set("names", names).Set("enable", enable)
	return c.postNoContent(ctx, "/search/enablePlugin", params)
}

// SearchUpdatePlugins updates all installed search plugins.
func (c *Client) SearchUpdatePlugins(ctx context.Context) error {
	return c.postNoContent(ctx, "/search/updatePlugins", Params{})
}
