package qbittorrent

import "context"

// SyncMainData returns the changes to the main view since the given
// response ID. A rid of 0 requests a full update.
func (c *Client) SyncMainData(ctx context.Context, rid int64) (*MainData, error) {
	data := new(MainData)
	if err := c.postJSON(ctx, "/sync/maindata", Params{}.SetOptional("rid", rid), data); err != nil {
		return nil, err
	}
	return data, nil
}

// SyncTorrentPeers returns the changes to a torrent's peer list since
// the given response ID.
func (c *Client) SyncTorrentPeers(ctx context.Context, hash string, rid int64) (*TorrentPeers, error) {
	params := Params{}.Set("hash", hash).SetOptional("rid", rid)

	peers := new(TorrentPeers)
	if err := c.postJSON(ctx, "/sync/torrentPeers", params, peers); err != nil {
		return nil, err
	}
	return peers, nil
}
