// Package immich is a minimal client for the Immich server API, covering
// the album and asset operations the migration needs.
package immich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/imroc/req/v3"
)

const (
	requestTimeout = 30 * time.Second

	// deviceID identifies this tool in uploaded asset metadata.
	deviceID = "immichtree"

	// Placeholder identifiers returned in dry-run mode.
	DryRunAlbumID = "dry-run-album-id"
	DryRunAssetID = "dry-run-asset-id"
)

// ErrNoAssetIDs is returned when AddAssetsToAlbum is called with an empty id
// list. The call is rejected before any network I/O.
var ErrNoAssetIDs = errors.New("immich: no asset ids to add to album")

// Album is an Immich album.
type Album struct {
	ID        string `json:"id"`
	AlbumName string `json:"albumName"`
}

type assetResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// DeviceAssetKey is the local identity key for a file, derived from its path
// and last-modified time. It doubles as the deviceAssetId sent to Immich.
// Note the known limitation: a file renamed or moved between runs gets a new
// key and will be re-uploaded, and content changes that preserve path and
// mtime are not detected.
func DeviceAssetKey(path string, modTime time.Time) string {
	return fmt.Sprintf("%s-%d", path, modTime.Unix())
}

// Client talks to one Immich server. In dry-run mode every operation
// performs no network I/O and returns deterministic placeholder results.
type Client struct {
	http   *req.Client
	dryRun bool
}

// NewClient creates a client for the given Immich API base URL. The API key
// is sent as the x-api-key header on every request.
func NewClient(serverURL, apiKey string, dryRun bool) *Client {
	c := req.C().
		SetBaseURL(strings.TrimRight(serverURL, "/")).
		SetCommonHeader("x-api-key", apiKey).
		SetCommonHeader("Accept", "application/json").
		SetTimeout(requestTimeout)
	return &Client{http: c, dryRun: dryRun}
}

// Ping verifies connectivity to the Immich server.
func (c *Client) Ping(ctx context.Context) error {
	if c.dryRun {
		return nil
	}
	res, err := c.http.R().SetContext(ctx).Get("/server/about")
	if err != nil {
		return fmt.Errorf("failed to reach Immich server: %w", err)
	}
	if res.IsErrorState() {
		return fmt.Errorf("Immich server returned %s", res.Status)
	}
	return nil
}

// GetAlbums returns all albums on the server.
func (c *Client) GetAlbums(ctx context.Context) ([]Album, error) {
	if c.dryRun {
		return nil, nil
	}
	var albums []Album
	res, err := c.http.R().
		SetContext(ctx).
		SetSuccessResult(&albums).
		Get("/albums")
	if err := apiError(res, err, "list albums"); err != nil {
		return nil, err
	}
	return albums, nil
}

// FindAlbumByName returns the album with the exact given name, or nil if no
// such album exists. The match is case-sensitive.
func (c *Client) FindAlbumByName(ctx context.Context, name string) (*Album, error) {
	albums, err := c.GetAlbums(ctx)
	if err != nil {
		return nil, err
	}
	for i := range albums {
		if albums[i].AlbumName == name {
			return &albums[i], nil
		}
	}
	return nil, nil
}

// CreateAlbum creates a new album with the given name.
func (c *Client) CreateAlbum(ctx context.Context, name string) (*Album, error) {
	if c.dryRun {
		logger.Info("Would create album", slog.String("album", name))
		return &Album{ID: DryRunAlbumID, AlbumName: name}, nil
	}
	var album Album
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"albumName": name}).
		SetSuccessResult(&album).
		Post("/albums")
	if err := apiError(res, err, "create album"); err != nil {
		return nil, err
	}
	return &album, nil
}

// UploadAsset uploads one file and returns the remote asset id. If the
// server reports the asset as a duplicate (HTTP 409), the existing asset id
// from the response is returned instead.
func (c *Client) UploadAsset(ctx context.Context, path string) (string, error) {
	if c.dryRun {
		logger.Info("Would upload asset", slog.String("file", path))
		return DryRunAssetID, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	modTime := info.ModTime().Format(time.RFC3339)

	var created assetResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetFile("assetData", path).
		SetFormData(map[string]string{
			"deviceAssetId":  DeviceAssetKey(path, info.ModTime()),
			"deviceId":       deviceID,
			"fileCreatedAt":  modTime,
			"fileModifiedAt": modTime,
			"isFavorite":     "false",
		}).
		SetSuccessResult(&created).
		Post("/assets")
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filepath.Base(path), err)
	}
	if res.StatusCode == http.StatusConflict {
		// The server already has this asset; reuse its id when reported.
		var dup assetResponse
		if err := res.UnmarshalJson(&dup); err == nil && dup.ID != "" {
			return dup.ID, nil
		}
		return "", fmt.Errorf("asset %s already exists on server", filepath.Base(path))
	}
	if res.IsErrorState() {
		return "", fmt.Errorf("failed to upload %s: server returned %s", filepath.Base(path), res.Status)
	}
	if created.ID == "" {
		return "", fmt.Errorf("upload of %s returned no asset id", filepath.Base(path))
	}
	return created.ID, nil
}

// AddAssetsToAlbum associates the given assets with an album in one batched
// call. Calling it with an empty id list is a contract violation and is
// rejected before any network I/O.
func (c *Client) AddAssetsToAlbum(ctx context.Context, albumID string, assetIDs []string) error {
	if len(assetIDs) == 0 {
		return ErrNoAssetIDs
	}
	if c.dryRun {
		logger.Info("Would add assets to album",
			slog.String("album_id", albumID),
			slog.Int("count", len(assetIDs)))
		return nil
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"ids": assetIDs}).
		Put(fmt.Sprintf("/albums/%s/assets", albumID))
	return apiError(res, err, "add assets to album")
}

// apiError folds transport errors and HTTP error statuses into one error.
func apiError(res *req.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if res.IsErrorState() {
		return fmt.Errorf("failed to %s: server returned %s", op, res.Status)
	}
	return nil
}
