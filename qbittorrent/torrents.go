package qbittorrent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// allHashes is the wildcard the WebUI accepts in place of a hash list.
const allHashes = "all"

// ListOptions narrows the torrents returned by List. Zero-valued
// fields are omitted from the request per the optional-parameter
// contract, so a Reverse of false or an Offset of 0 is simply not
// transmitted.
type ListOptions struct {
	Filter   Filter
	Category string
	Tag      string
	Sort     string
	Reverse  bool
	Limit    int
	Offset   int
	Hashes   []string
}

// List returns the torrents matching opts, all torrents when opts is
// the zero value.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Torrent, error) {
	params := Params{}.
		SetOptional("filter", string(opts.Filter)).
		SetOptional("category", opts.Category).
		SetOptional("tag", opts.Tag).
		SetOptional("sort", opts.Sort).
		SetOptional("reverse", opts.Reverse).
		SetOptional("limit", opts.Limit).
		SetOptional("offset", opts.Offset).
		SetOptional("hashes", opts.Hashes)

	var torrents []Torrent
	if err := c.postJSON(ctx, "/torrents/info", params, &torrents); err != nil {
		return nil, err
	}
	return torrents, nil
}

// Properties returns the generic properties of one torrent.
func (c *Client) Properties(ctx context.Context, hash string) (*TorrentProperties, error) {
	props := new(TorrentProperties)
	if err := c.postJSON(ctx, "/torrents/properties", Params{}.Set("hash", hash), props); err != nil {
		return nil, err
	}
	return props, nil
}

// Trackers returns the trackers of one torrent.
func (c *Client) Trackers(ctx context.Context, hash string) ([]Tracker, error) {
	var trackers []Tracker
	if err := c.postJSON(ctx, "/torrents/trackers", Params{}.Set("hash", hash), &trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

// WebSeeds returns the web seeds of one torrent.
func (c *Client) WebSeeds(ctx context.Context, hash string) ([]WebSeed, error) {
	var seeds []WebSeed
	if err := c.postJSON(ctx, "/torrents/webseeds", Params{}.Set("hash", hash), &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// Files returns the file list of one torrent.
func (c *Client) Files(ctx context.Context, hash string) ([]TorrentFile, error) {
	var files []TorrentFile
	if err := c.postJSON(ctx, "/torrents/files", Params{}.Set("hash", hash), &files); err != nil {
		return nil, err
	}
	return files, nil
}

// PieceStates returns the download state of every piece of one torrent.
func (c *Client) PieceStates(ctx context.Context, hash string) ([]PieceState, error) {
	var states []PieceState
	if err := c.postJSON(ctx, "/torrents/pieceStates", Params{}.Set("hash", hash), &states); err != nil {
		return nil, err
	}
	return states, nil
}

// PieceHashes returns the SHA-1 hash of every piece of one torrent.
func (c *Client) PieceHashes(ctx context.Context, hash string) ([]string, error) {
	var hashes []string
	if err := c.postJSON(ctx, "/torrents/pieceHashes", Params{}.Set("hash", hash), &hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

// Pause pauses the given torrents.
func (c *Client) Pause(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/pause", Params{}.Set("hashes", hashes))
}

// PauseAll pauses every torrent.
func (c *Client) PauseAll(ctx context.Context) error {
	return c.postNoContent(ctx, "/torrents/pause", Params{}.Set("hashes", allHashes))
}

// Resume resumes the given torrents.
func (c *Client) Resume(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/resume", Params{}.Set("hashes", hashes))
}

// ResumeAll resumes every torrent.
func (c *Client) ResumeAll(ctx context.Context) error {
	return c.postNoContent(ctx, "/torrents/resume", Params{}.Set("hashes", allHashes))
}

// Delete removes the given torrents, deleting the downloaded data as
// well when deleteFiles is true. deleteFiles is always transmitted.
func (c *Client) Delete(ctx context.Context, hashes []string, deleteFiles bool) error {
	params := Params{}.Set("hashes", hashes).Set("deleteFiles", deleteFiles)
	return c.postNoContent(ctx, "/torrents/delete", params)
}

// DeleteAll removes every torrent.
func (c *Client) DeleteAll(ctx context.Context, deleteFiles bool) error {
	params := Params{}.Set("hashes", allHashes).Set("deleteFiles", deleteFiles)
	return c.postNoContent(ctx, "/torrents/delete", params)
}

// Recheck rechecks the given torrents.
func (c *Client) Recheck(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/recheck", Params{}.Set("hashes", hashes))
}

// Reannounce reannounces the given torrents to their trackers.
func (c *Client) Reannounce(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/reannounce", Params{}.Set("hashes", hashes))
}

// AddOptions carries the optional settings of an Add call. Zero-valued
// fields are omitted from the request.
type AddOptions struct {
	SavePath           string
	Cookie             string
	Category           string
	Tags               []string
	SkipChecking       bool
	Paused             bool
	RootFolder         bool
	Rename             string
	UpLimit            int64
	DlLimit            int64
	AutoTMM            bool
	SequentialDownload bool
	FirstLastPiecePrio bool
}

func (o AddOptions) params() Params {
	return Params{}.
		SetOptional("savepath", o.SavePath).
		SetOptional("cookie", o.Cookie).
		SetOptional("category", o.Category).
		SetOptional("tags", strings.Join(o.Tags, ",")).
		SetOptional("skip_checking", o.SkipChecking).
		SetOptional("paused", o.Paused).
		SetOptional("root_folder", o.RootFolder).
		SetOptional("rename", o.Rename).
		SetOptional("upLimit", o.UpLimit).
		SetOptional("dlLimit", o.DlLimit).
		SetOptional("autoTMM", o.AutoTMM).
		SetOptional("sequentialDownload", o.SequentialDownload).
		SetOptional("firstLastPiecePrio", o.FirstLastPiecePrio)
}

// Add adds torrents from the given URLs (HTTP links, magnet links or
// bare info-hashes).
func (c *Client) Add(ctx context.Context, urls []string, opts AddOptions) error {
	params := opts.params().Set("urls", strings.Join(urls, "\n"))
	return c.postNoContent(ctx, "/torrents/add", params)
}

// AddFiles adds torrents from raw .torrent documents, keyed by file
// name. The upload is multipart/form-data rather than form-urlencoded.
func (c *Client) AddFiles(ctx context.Context, files map[string][]byte, opts AddOptions) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := opts.params()
	for name := range fields {
		value, err := formatValue(fields[name])
		if err != nil {
			return fmt.Errorf("/torrents/add: parameter %q: %w", name, err)
		}
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("/torrents/add: failed to build request: %w", err)
		}
	}
	for name, data := range files {
		part, err := w.CreateFormFile("torrents", name)
		if err != nil {
			return fmt.Errorf("/torrents/add: failed to build request: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return fmt.Errorf("/torrents/add: failed to build request: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("/torrents/add: failed to build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+apiPrefix+"/torrents/add", &buf)
	if err != nil {
		return fmt.Errorf("/torrents/add: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Referer", c.origin)
	req.Header.Set("Origin", c.origin)
	if c.sid != "" {
		req.Header.Set("Cookie", c.sid)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: "/torrents/add", StatusCode: resp.StatusCode}
	}
	return nil
}

// AddTrackers adds trackers to one torrent.
func (c *Client) AddTrackers(ctx context.Context, hash string, urls []string) error {
	params := Params{}.Set("hash", hash).Set("urls", strings.Join(urls, "\n"))
	return c.postNoContent(ctx, "/torrents/addTrackers", params)
}

// EditTracker replaces one tracker URL of one torrent.
func (c *Client) EditTracker(ctx context.Context, hash, origURL, newURL string) error {
	params := Params{}.Set("hash", hash).Set("origUrl", origURL).Set("newUrl", newURL)
	return c.postNoContent(ctx, "/torrents/editTracker", params)
}

// RemoveTrackers removes trackers from one torrent.
func (c *Client) RemoveTrackers(ctx context.Context, hash string, urls []string) error {
	params := Params{}.Set("hash", hash).Set("urls", urls)
	return c.postNoContent(ctx, "/torrents/removeTrackers", params)
}

// AddPeers adds peers, each formatted as host:port, to the given
// torrents.
func (c *Client) AddPeers(ctx context.Context, hashes, peers []string) error {
	params := Params{}.Set("hashes", hashes).Set("peers", peers)
	return c.postNoContent(ctx, "/torrents/addPeers", params)
}

// IncreasePriority moves the given torrents up in the download queue.
func (c *Client) IncreasePriority(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/increasePrio", Params{}.Set("hashes", hashes))
}

// DecreasePriority moves the given torrents down in the download queue.
func (c *Client) DecreasePriority(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/decreasePrio", Params{}.Set("hashes", hashes))
}

// TopPriority moves the given torrents to the top of the download
// queue.
func (c *Client) TopPriority(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/topPrio", Params{}.Set("hashes", hashes))
}

// BottomPriority moves the given torrents to the bottom of the
// download queue.
func (c *Client) BottomPriority(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/bottomPrio", Params{}.Set("hashes", hashes))
}

// SetFilePriority sets the priority of files within one torrent,
// identified by their index in the Files response.
func (c *Client) SetFilePriority(ctx context.Context, hash string, fileIDs []int, priority FilePriority) error {
	ids := make([]string, len(fileIDs))
	for i, id := range fileIDs {
		ids[i] = strconv.Itoa(id)
	}
	params := Params{}.Set("hash", hash).Set("id", ids).Set("priority", int(priority))
	return c.postNoContent(ctx, "/torrents/filePrio", params)
}

// DownloadLimit returns the download limit of each given torrent in
// bytes/s, 0 meaning unlimited.
func (c *Client) DownloadLimit(ctx context.Context, hashes []string) (map[string]int64, error) {
	limits := map[string]int64{}
	if err := c.postJSON(ctx, "/torrents/downloadLimit", Params{}.Set("hashes", hashes), &limits); err != nil {
		return nil, err
	}
	return limits, nil
}

// SetDownloadLimit sets the download limit of the given torrents in
// bytes/s. A limit of 0 removes the limit and is transmitted literally.
func (c *Client) SetDownloadLimit(ctx context.Context, hashes []string, limit int64) error {
	params := Params{}.Set("hashes", hashes).Set("limit", limit)
	return c.postNoContent(ctx, "/torrents/setDownloadLimit", params)
}

// UploadLimit returns the upload limit of each given torrent in
// bytes/s, 0 meaning unlimited.
func (c *Client) UploadLimit(ctx context.Context, hashes []string) (map[string]int64, error) {
	limits := map[string]int64{}
	if err := c.postJSON(ctx, "/torrents/uploadLimit", Params{}.Set("hashes", hashes), &limits); err != nil {
		return nil, err
	}
	return limits, nil
}

// SetUploadLimit sets the upload limit of the given torrents in
// bytes/s.
func (c *Client) SetUploadLimit(ctx context.Context, hashes []string, limit int64) error {
	params := Params{}.Set("hashes", hashes).Set("limit", limit)
	return c.postNoContent(ctx, "/torrents/setUploadLimit", params)
}

// SetShareLimits sets the seeding limits of the given torrents.
// ratioLimit and seedingTimeLimit accept -2 for the global limit and
// -1 for no limit; both are always transmitted.
func (c *Client) SetShareLimits(ctx context.Context, hashes []string, ratioLimit float64, seedingTimeLimit int64) error {
	params := Params{}.
		Set("hashes", hashes).
		Set("ratioLimit", ratioLimit).
		Set("seedingTimeLimit", seedingTimeLimit)
	return c.postNoContent(ctx, "/torrents/setShareLimits", params)
}

// SetLocation moves the given torrents' data to a new directory.
func (c *Client) SetLocation(ctx context.Context, hashes []string, location string) error {
	params := Params{}.Set("hashes", hashes).Set("location", location)
	return c.postNoContent(ctx, "/torrents/setLocation", params)
}

// Rename changes the display name of one torrent.
func (c *Client) Rename(ctx context.Context, hash, name string) error {
	params := Params{}.Set("hash", hash).Set("name", name)
	return c.postNoContent(ctx, "/torrents/rename", params)
}

// SetCategory assigns the given torrents to a category. An empty
// category removes the assignment and is transmitted literally.
func (c *Client) SetCategory(ctx context.Context, hashes []string, category string) error {
	params := Params{}.Set("hashes", hashes).Set("category", category)
	return c.postNoContent(ctx, "/torrents/setCategory", params)
}

// Categories returns all categories, keyed by name.
func (c *Client) Categories(ctx context.Context) (map[string]Category, error) {
	categories := map[string]Category{}
	if err := c.postJSON(ctx, "/torrents/categories", Params{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, name, savePath string) error {
	params := Params{}.Set("category", name).Set("savePath", savePath)
	return c.postNoContent(ctx, "/torrents/createCategory", params)
}

// EditCategory changes the save path of a category.
func (c *Client) EditCategory(ctx context.Context, name, savePath string) error {
	params := Params{}.Set("category", name).Set("savePath", savePath)
	return c.postNoContent(ctx, "/torrents/editCategory", params)
}

// RemoveCategories deletes the given categories.
func (c *Client) RemoveCategories(ctx context.Context, names []string) error {
	params := Params{}.Set("categories", strings.Join(names, "\n"))
	return c.postNoContent(ctx, "/torrents/removeCategories", params)
}

// AddTags adds tags to the given torrents.
func (c *Client) AddTags(ctx context.Context, hashes, tags []string) error {
	params := Params{}.Set("hashes", hashes).Set("tags", strings.Join(tags, ","))
	return c.postNoContent(ctx, "/torrents/addTags", params)
}

// RemoveTags removes tags from the given torrents.
func (c *Client) RemoveTags(ctx context.Context, hashes, tags []string) error {
	params := Params{}.Set("hashes", hashes).Set("tags", strings.Join(tags, ","))
	return c.postNoContent(ctx, "/torrents/removeTags", params)
}

// Tags returns all tags known to the client.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := c.postJSON(ctx, "/torrents/tags", Params{}, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTags creates the given tags.
func (c *Client) CreateTags(ctx context.Context, tags []string) error {
	return c.postNoContent(ctx, "/torrents/createTags", Params{}.Set("tags", strings.Join(tags, ",")))
}

// DeleteTags deletes the given tags.
func (c *Client) DeleteTags(ctx context.Context, tags []string) error {
	return c.postNoContent(ctx, "/torrents/deleteTags", Params{}.Set("tags", strings.Join(tags, ",")))
}

// SetAutoManagement toggles Automatic Torrent Management for the given
// torrents. enable is always transmitted.
func (c *Client) SetAutoManagement(ctx context.Context, hashes []string, enable bool) error {
	params := Params{}.Set("hashes", hashes).Set("enable", enable)
	return c.postNoContent(ctx, "/torrents/setAutoManagement", params)
}

// ToggleSequentialDownload toggles sequential download for the given
// torrents.
func (c *Client) ToggleSequentialDownload(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/toggleSequentialDownload", Params{}.Set("hashes", hashes))
}

// ToggleFirstLastPiecePrio toggles first/last piece priority for the
// given torrents.
func (c *Client) ToggleFirstLastPiecePrio(ctx context.Context, hashes []string) error {
	return c.postNoContent(ctx, "/torrents/toggleFirstLastPiecePrio", Params{}.Set("hashes", hashes))
}

// SetForceStart toggles force start for the given torrents. value is
// always transmitted.
func (c *Client) SetForceStart(ctx context.Context, hashes []string, value bool) error {
	params := Params{}.Set("hashes", hashes).Set("value", value)
	return c.postNoContent(ctx, "/torrents/setForceStart", params)
}

// SetSuperSeeding toggles super seeding for the given torrents.
func (c *Client) SetSuperSeeding(ctx context.Context, hashes []string, value bool) error {
	params := Params{}.Set("hashes", hashes).Set("value", value)
	return c.postNoContent(ctx, "/torrents/setSuperSeeding", params)
}

// RenameFile renames a file within one torrent.
func (c *Client) RenameFile(ctx context.Context, hash, oldPath, newPath string) error {
	params := Params{}.Set("hash", hash).Set("oldPath", oldPath).Set("newPath", newPath)
	return c.postNoContent(ctx, "/torrents/renameFile", params)
}

// RenameFolder renames a folder within one torrent.
func (c *Client) RenameFolder(ctx context.Context, hash, oldPath, newPath string) error {
	params := Params{}.Set("hash", hash).Set("oldPath", oldPath).Set("newPath", newPath)
	return c.postNoContent(ctx, "/torrents/renameFolder", params)
}
