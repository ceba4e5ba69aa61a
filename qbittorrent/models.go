package qbittorrent

import (
	"encoding/json"
	"time"
)

// TorrentState is the state reported for a torrent by the WebUI.
type TorrentState string

// Torrent state values.
const (
	StateError              TorrentState = "error"
	StateMissingFiles       TorrentState = "missingFiles"
	StateUploading          TorrentState = "uploading"
	StatePausedUP           TorrentState = "pausedUP"
	StateQueuedUP           TorrentState = "queuedUP"
	StateStalledUP          TorrentState = "stalledUP"
	StateCheckingUP         TorrentState = "checkingUP"
	StateForcedUP           TorrentState = "forcedUP"
	StateAllocating         TorrentState = "allocating"
	StateDownloading        TorrentState = "downloading"
	StateMetaDL             TorrentState = "metaDL"
	StatePausedDL           TorrentState = "pausedDL"
	StateQueuedDL           TorrentState = "queuedDL"
	StateStalledDL          TorrentState = "stalledDL"
	StateCheckingDL         TorrentState = "checkingDL"
	StateForcedDL           TorrentState = "forcedDL"
	StateCheckingResumeData TorrentState = "checkingResumeData"
	StateMoving             TorrentState = "moving"
	StateUnknown            TorrentState = "unknown"
)

// String returns the raw state value.
func (s TorrentState) String() string {
	return string(s)
}

// IsSeeding reports whether the torrent is in any seeding state.
func (s TorrentState) IsSeeding() bool {
	switch s {
	case StateUploading, StateStalledUP, StateQueuedUP, StateForcedUP, StateCheckingUP:
		return true
	}
	return false
}

// IsDownloading reports whether the torrent is in any downloading state.
func (s TorrentState) IsDownloading() bool {
	switch s {
	case StateDownloading, StateMetaDL, StateStalledDL, StateQueuedDL, StateForcedDL, StateCheckingDL, StateAllocating:
		return true
	}
	return false
}

// IsPaused reports whether the torrent is paused.
func (s TorrentState) IsPaused() bool {
	return s == StatePausedUP || s == StatePausedDL
}

// Filter selects a torrent subset in List calls.
type Filter string

// Filter values.
const (
	FilterAll         Filter = "all"
	FilterDownloading Filter = "downloading"
	FilterSeeding     Filter = "seeding"
	FilterCompleted   Filter = "completed"
	FilterPaused      Filter = "paused"
	FilterActive      Filter = "active"
	FilterInactive    Filter = "inactive"
	FilterResumed     Filter = "resumed"
	FilterStalled     Filter = "stalled"
	FilterErrored     Filter = "errored"
)

// Torrent is one entry of the torrents/info response.
type Torrent struct {
	AddedOn           int64        `json:"added_on"`
	AmountLeft        int64        `json:"amount_left"`
	AutoTMM           bool         `json:"auto_tmm"`
	Availability      float64      `json:"availability"`
	Category          string       `json:"category"`
	Completed         int64        `json:"completed"`
	CompletionOn      int64        `json:"completion_on"`
	ContentPath       string       `json:"content_path"`
	DlLimit           int64        `json:"dl_limit"`
	DlSpeed           int64        `json:"dlspeed"`
	Downloaded        int64        `json:"downloaded"`
	DownloadedSession int64        `json:"downloaded_session"`
	ETA               int64        `json:"eta"`
	FirstLastPiecePrio bool        `json:"f_l_piece_prio"`
	ForceStart        bool         `json:"force_start"`
	Hash              string       `json:"hash"`
	LastActivity      int64        `json:"last_activity"`
	MagnetURI         string       `json:"magnet_uri"`
	MaxRatio          float64      `json:"max_ratio"`
	MaxSeedingTime    int64        `json:"max_seeding_time"`
	Name              string       `json:"name"`
	NumComplete       int64        `json:"num_complete"`
	NumIncomplete     int64        `json:"num_incomplete"`
	NumLeechs         int64        `json:"num_leechs"`
	NumSeeds          int64        `json:"num_seeds"`
	Priority          int64        `json:"priority"`
	Progress          float64      `json:"progress"`
	Ratio             float64      `json:"ratio"`
	RatioLimit        float64      `json:"ratio_limit"`
	SavePath          string       `json:"save_path"`
	SeedingTimeLimit  int64        `json:"seeding_time_limit"`
	SeenComplete      int64        `json:"seen_complete"`
	SeqDl             bool         `json:"seq_dl"`
	Size              int64        `json:"size"`
	State             TorrentState `json:"state"`
	SuperSeeding      bool         `json:"super_seeding"`
	Tags              string       `json:"tags"`
	TimeActive        int64        `json:"time_active"`
	TotalSize         int64        `json:"total_size"`
	Tracker           string       `json:"tracker"`
	UpLimit           int64        `json:"up_limit"`
	Uploaded          int64        `json:"uploaded"`
	UploadedSession   int64        `json:"uploaded_session"`
	UpSpeed           int64        `json:"upspeed"`
}

// Added returns the time the torrent was added to the client.
func (t *Torrent) Added() time.Time {
	return time.Unix(t.AddedOn, 0)
}

// TorrentProperties is the torrents/properties response.
type TorrentProperties struct {
	AdditionDate           int64   `json:"addition_date"`
	Comment                string  `json:"comment"`
	CompletionDate         int64   `json:"completion_date"`
	CreatedBy              string  `json:"created_by"`
	CreationDate           int64   `json:"creation_date"`
	DlLimit                int64   `json:"dl_limit"`
	DlSpeed                int64   `json:"dl_speed"`
	DlSpeedAvg             int64   `json:"dl_speed_avg"`
	ETA                    int64   `json:"eta"`
	LastSeen               int64   `json:"last_seen"`
	NbConnections          int64   `json:"nb_connections"`
	NbConnectionsLimit     int64   `json:"nb_connections_limit"`
	Peers                  int64   `json:"peers"`
	PeersTotal             int64   `json:"peers_total"`
	PieceSize              int64   `json:"piece_size"`
	PiecesHave             int64   `json:"pieces_have"`
	PiecesNum              int64   `json:"pieces_num"`
	Reannounce             int64   `json:"reannounce"`
	SavePath               string  `json:"save_path"`
	SeedingTime            int64   `json:"seeding_time"`
	Seeds                  int64   `json:"seeds"`
	SeedsTotal             int64   `json:"seeds_total"`
	ShareRatio             float64 `json:"share_ratio"`
	TimeElapsed            int64   `json:"time_elapsed"`
	TotalDownloaded        int64   `json:"total_downloaded"`
	TotalDownloadedSession int64   `json:"total_downloaded_session"`
	TotalSize              int64   `json:"total_size"`
	TotalUploaded          int64   `json:"total_uploaded"`
	TotalUploadedSession   int64   `json:"total_uploaded_session"`
	TotalWasted            int64   `json:"total_wasted"`
	UpLimit                int64   `json:"up_limit"`
	UpSpeed                int64   `json:"up_speed"`
	UpSpeedAvg             int64   `json:"up_speed_avg"`
}

// TrackerStatus is the working state of one tracker.
type TrackerStatus int

// Tracker status values.
const (
	TrackerDisabled TrackerStatus = iota
	TrackerNotContacted
	TrackerWorking
	TrackerUpdating
	TrackerNotWorking
)

// Tracker is one entry of the torrents/trackers response.
type Tracker struct {
	URL           string        `json:"url"`
	Status        TrackerStatus `json:"status"`
	Tier          int           `json:"tier"`
	NumPeers      int64         `json:"num_peers"`
	NumSeeds      int64         `json:"num_seeds"`
	NumLeeches    int64         `json:"num_leeches"`
	NumDownloaded int64         `json:"num_downloaded"`
	Msg           string        `json:"msg"`
}

// WebSeed is one entry of the torrents/webseeds response.
type WebSeed struct {
	URL string `json:"url"`
}

// FilePriority is the download priority of a file within a torrent.
type FilePriority int

// File priority values.
const (
	PriorityDoNotDownload FilePriority = 0
	PriorityNormal        FilePriority = 1
	PriorityHigh          FilePriority = 6
	PriorityMaximal       FilePriority = 7
)

// TorrentFile is one entry of the torrents/files response.
type TorrentFile struct {
	Index        int          `json:"index"`
	Name         string       `json:"name"`
	Size         int64        `json:"size"`
	Progress     float64      `json:"progress"`
	Priority     FilePriority `json:"priority"`
	IsSeed       bool         `json:"is_seed"`
	PieceRange   []int64      `json:"piece_range"`
	Availability float64      `json:"availability"`
}

// PieceState is the download state of one torrent piece.
type PieceState int

// Piece state values.
const (
	PieceNotDownloaded PieceState = iota
	PieceDownloading
	PieceDownloaded
)

// Category is one entry of the torrents/categories response.
type Category struct {
	Name     string `json:"name"`
	SavePath string `json:"savePath"`
}

// Preferences holds application preferences as returned by
// app/preferences. The WebUI's preference set varies between versions,
// so it is passed through as a generic document rather than a fixed
// struct.
type Preferences map[string]any

// BuildInfo is the app/buildInfo response.
type BuildInfo struct {
	Qt         string `json:"qt"`
	Libtorrent string `json:"libtorrent"`
	Boost      string `json:"boost"`
	OpenSSL    string `json:"openssl"`
	Zlib       string `json:"zlib"`
	Bitness    int    `json:"bitness"`
}

// LogEntry is one entry of the log/main response.
type LogEntry struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Type      int    `json:"type"`
}

// PeerLogEntry is one entry of the log/peers response.
type PeerLogEntry struct {
	ID        int64  `json:"id"`
	IP        string `json:"ip"`
	Timestamp int64  `json:"timestamp"`
	Blocked   bool   `json:"blocked"`
	Reason    string `json:"reason"`
}

// ConnectionStatus is the global connection status.
type ConnectionStatus string

// Connection status values.
const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionFirewalled   ConnectionStatus = "firewalled"
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

// TransferInfo is the transfer/info response.
type TransferInfo struct {
	ConnectionStatus  ConnectionStatus `json:"connection_status"`
	DHTNodes          int64            `json:"dht_nodes"`
	DlInfoData        int64            `json:"dl_info_data"`
	DlInfoSpeed       int64            `json:"dl_info_speed"`
	DlRateLimit       int64            `json:"dl_rate_limit"`
	UpInfoData        int64            `json:"up_info_data"`
	UpInfoSpeed       int64            `json:"up_info_speed"`
	UpRateLimit       int64            `json:"up_rate_limit"`
	Queueing          bool             `json:"queueing"`
	UseAltSpeedLimits bool             `json:"use_alt_speed_limits"`
	RefreshInterval   int64            `json:"refresh_interval"`
}

// MainData is the sync/maindata response. Torrent entries are partial
// documents when the response is incremental, so they are left as raw
// JSON for the caller to merge.
type MainData struct {
	Rid               int64                      `json:"rid"`
	FullUpdate        bool                       `json:"full_update"`
	Torrents          map[string]json.RawMessage `json:"torrents"`
	TorrentsRemoved   []string                   `json:"torrents_removed"`
	Categories        map[string]Category        `json:"categories"`
	CategoriesRemoved []string                   `json:"categories_removed"`
	Tags              []string                   `json:"tags"`
	TagsRemoved       []string                   `json:"tags_removed"`
	ServerState       json.RawMessage            `json:"server_state"`
}

// TorrentPeer is one peer of the sync/torrentPeers response.
type TorrentPeer struct {
	Client       string  `json:"client"`
	Connection   string  `json:"connection"`
	Country      string  `json:"country"`
	CountryCode  string  `json:"country_code"`
	DlSpeed      int64   `json:"dl_speed"`
	Downloaded   int64   `json:"downloaded"`
	Files        string  `json:"files"`
	Flags        string  `json:"flags"`
	FlagsDesc    string  `json:"flags_desc"`
	IP           string  `json:"ip"`
	Port         int     `json:"port"`
	Progress     float64 `json:"progress"`
	Relevance    float64 `json:"relevance"`
	UpSpeed      int64   `json:"up_speed"`
	Uploaded     int64   `json:"uploaded"`
}

// TorrentPeers is the sync/torrentPeers response.
type TorrentPeers struct {
	Rid        int64                  `json:"rid"`
	FullUpdate bool                   `json:"full_update"`
	ShowFlags  bool                   `json:"show_flags"`
	Peers      map[string]TorrentPeer `json:"peers"`
}

// SearchJob identifies a running search started by SearchStart.
type SearchJob struct {
	ID int64 `json:"id"`
}

// SearchStatus is one entry of the search/status response.
type SearchStatus struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// SearchResult is one hit of the search/results response.
type SearchResult struct {
	DescrLink  string `json:"descrLink"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileURL    string `json:"fileUrl"`
	NbLeechers int64  `json:"nbLeechers"`
	NbSeeders  int64  `json:"nbSeeders"`
	SiteURL    string `json:"siteUrl"`
}

// SearchResults is the search/results response.
type SearchResults struct {
	Results []SearchResult `json:"results"`
	Status  string         `json:"status"`
	Total   int64          `json:"total"`
}

// SearchPlugin is one entry of the search/plugins response.
type SearchPlugin struct {
	Enabled             bool     `json:"enabled"`
	FullName            string   `json:"fullName"`
	Name                string   `json:"name"`
	SupportedCategories []string `json:"supportedCategories"`
	URL                 string   `json:"url"`
	Version             string   `json:"version"`
}
