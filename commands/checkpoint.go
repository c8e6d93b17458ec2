package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// checkpointFileName is the fixed name of the checkpoint file inside the
// migration root.
const checkpointFileName = ".checkpoint.json"

// checkpoint records which local files have already been uploaded to one
// Immich server, so repeated runs skip them. Assets maps a file's device
// asset key to the remote asset id.
type checkpoint struct {
	ServerURL string            `json:"server_url"`
	Assets    map[string]string `json:"assets"`

	path string
}

func newCheckpoint(path, serverURL string) *checkpoint {
	return &checkpoint{
		ServerURL: serverURL,
		Assets:    make(map[string]string),
		path:      path,
	}
}

// loadCheckpoint reads the checkpoint file from the migration root. A
// missing or unreadable file, or one recorded against a different server
// URL, yields a fresh empty checkpoint for the current server. That is a
// cold start, not an error.
func loadCheckpoint(rootDir, serverURL string) *checkpoint {
	path := filepath.Join(rootDir, checkpointFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read checkpoint file, starting fresh",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return newCheckpoint(path, serverURL)
	}

	var cp checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		logger.Warn("Failed to decode checkpoint file, starting fresh",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return newCheckpoint(path, serverURL)
	}
	if cp.ServerURL != serverURL || cp.Assets == nil {
		logger.Warn("Checkpoint server URL mismatch or corrupted, starting fresh",
			slog.String("path", path))
		return newCheckpoint(path, serverURL)
	}
	cp.path = path
	return &cp
}

// save writes the checkpoint to a temporary file in the same directory and
// atomically renames it over the target, so a crash mid-write never
// corrupts a previously persisted checkpoint.
func (cp *checkpoint) save() error {
	tmpPath := cp.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary checkpoint file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cp); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync checkpoint file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close checkpoint file: %w", err)
	}

	if err := os.Rename(tmpPath, cp.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace checkpoint file: %w", err)
	}
	return nil
}
