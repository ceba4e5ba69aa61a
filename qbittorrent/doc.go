// Package qbittorrent is a client for the qBittorrent WebUI API v2.
//
// Connect performs the cookie-based login handshake and returns a
// Client whose methods map one-to-one onto the WebUI endpoints:
// one method, one POST, no retries and no orchestration.
//
// # Usage
//
//	ctx := context.Background()
//	client, err := qbittorrent.Connect(ctx, "http://localhost:8080", "admin", "adminadmin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	torrents, err := client.List(ctx, qbittorrent.ListOptions{
//	    Filter:   qbittorrent.FilterDownloading,
//	    Category: "movies",
//	})
//
// # Optional parameters
//
// Options structs follow the WebUI's own convention: a zero-valued
// field is omitted from the request body entirely, leaving the server
// default in effect. This means an optional boolean false or numeric 0
// cannot be sent explicitly; operations where a literal zero is
// meaningful (rate limits, deleteFiles) take it as a required argument
// instead.
//
// # Errors
//
// Login failures return *AuthError naming the username and wrapping
// the cause. Non-200 responses return *StatusError carrying the
// endpoint and status code. Transport errors are returned as the
// http.Client produced them. Malformed JSON on a 200 response is a
// decode error. Nothing is retried at any layer.
package qbittorrent
