package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"immichtree/commands/immich"
	"immichtree/internal/config"
)

// albumNameSeparator joins directory path segments into an album name.
const albumNameSeparator = " - "

// uploadJob is one pending file upload within an album batch.
type uploadJob struct {
	path string
	key  string // device asset key
}

type migrator struct {
	cfg      config.Config
	client   ImmichClient
	reporter ProgressReporter
	limiter  *rate.Limiter
	albums   *albumResolver
	cp       *checkpoint

	// mu guards the checkpoint asset map and the per-batch id list, which
	// are written from concurrent upload completions.
	mu sync.Mutex
}

// Migrate walks rootDir and uploads its media files to Immich, one album
// per directory that contains media. Files already recorded in the
// checkpoint are skipped. The checkpoint is persisted once, when the run
// completes or fails, unless the run is a dry run.
func Migrate(ctx context.Context, cfg config.Config, rootDir string, client ImmichClient, reporter ProgressReporter) error {
	if reporter == nil {
		reporter = NewNopReporter()
	}

	logger.Info("Starting migration",
		slog.String("root", rootDir),
		slog.Bool("dry_run", cfg.DryRun))

	// Limit to 5 operations per second, allowing bursts of up to 10, so a
	// large tree does not hammer the server.
	limiter := rate.NewLimiter(rate.Every(time.Second/5), 10)

	m := &migrator{
		cfg:      cfg,
		client:   client,
		reporter: reporter,
		limiter:  limiter,
		albums:   newAlbumResolver(client, limiter),
		cp:       loadCheckpoint(rootDir, cfg.ServerURL),
	}

	defer func() {
		if cfg.DryRun {
			return
		}
		// Losing the checkpoint write only costs dedup on the next run,
		// so it never fails the run itself.
		if saveErr := m.cp.save(); saveErr != nil {
			logger.Error("Failed to save checkpoint",
				slog.String("error", saveErr.Error()))
		}
	}()

	return m.processDirectory(ctx, rootDir, nil)
}

// processDirectory handles one directory and recurses into its
// subdirectories. segments holds the directory names from (but excluding)
// the migration root down to dir; they form the album name. Symlinked
// directories are not followed, so link cycles cannot loop the traversal;
// symlinks to regular files upload like the files they point to.
func (m *migrator) processDirectory(ctx context.Context, dir string, segments []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var mediaFiles []string
	var subdirs []string
	for _, entry := range entries {
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entry.Name())
		case isMediaFile(entry.Name()) && isUploadableFile(dir, entry):
			mediaFiles = append(mediaFiles, filepath.Join(dir, entry.Name()))
		}
	}

	if len(mediaFiles) > 0 {
		albumName := strings.Join(segments, albumNameSeparator)
		if len(segments) == 0 {
			// Media directly at the root falls back to the root
			// directory's own name.
			albumName = filepath.Base(dir)
		}
		if err := m.uploadBatch(ctx, albumName, mediaFiles); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		next := append(append([]string(nil), segments...), name)
		if err := m.processDirectory(ctx, filepath.Join(dir, name), next); err != nil {
			return err
		}
	}
	return nil
}

// isUploadableFile reports whether the entry is a regular file or a symlink
// resolving to one. Broken symlinks and symlinks to directories are not
// uploadable; symlinked directories are handled by the traversal, not here.
func isUploadableFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// uploadBatch uploads one directory's media files into one album. The
// association call is issued only after every dispatched upload has
// completed, and only when there is at least one asset to associate.
func (m *migrator) uploadBatch(ctx context.Context, albumName string, files []string) error {
	albumID, err := m.albums.resolve(ctx, albumName)
	if err != nil {
		return err
	}

	skippedIDs, pending := m.partition(files)
	logger.Info("Album batch",
		slog.String("album", albumName),
		slog.Int("files", len(files)),
		slog.Int("skipped", len(skippedIDs)),
		slog.Int("pending", len(pending)))

	m.reporter.StartAlbum(albumName, len(pending))
	newIDs := m.uploadPending(ctx, pending)
	m.reporter.FinishAlbum()

	allIDs := append(skippedIDs, newIDs...)
	if len(allIDs) == 0 {
		return nil
	}
	if m.cfg.DryRun {
		logger.Info("Would add assets to album",
			slog.String("album", albumName),
			slog.Int("count", len(allIDs)))
		return nil
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error before album association for %q: %w", albumName, err)
	}
	if err := m.client.AddAssetsToAlbum(ctx, albumID, allIDs); err != nil {
		// The assets are uploaded and checkpointed; only the album
		// association is missing. Degraded, not fatal.
		logger.Error("Failed to add assets to album",
			slog.String("album", albumName),
			slog.Int("count", len(allIDs)),
			slog.String("error", err.Error()))
	}
	return nil
}

// partition splits files into already-uploaded remote ids (per the
// checkpoint) and jobs still to upload. No network calls are made here.
func (m *migrator) partition(files []string) (skippedIDs []string, pending []uploadJob) {
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			logger.Error("Failed to stat file, skipping",
				slog.String("file", path),
				slog.String("error", err.Error()))
			continue
		}
		key := immich.DeviceAssetKey(path, info.ModTime())
		if id, ok := m.cp.Assets[key]; ok {
			skippedIDs = append(skippedIDs, id)
		} else {
			pending = append(pending, uploadJob{path: path, key: key})
		}
	}
	return skippedIDs, pending
}

// uploadPending dispatches the pending uploads to a bounded worker pool and
// returns the remote ids of the uploads that succeeded. Failed uploads are
// logged and left out of the checkpoint so the next run retries them.
func (m *migrator) uploadPending(ctx context.Context, pending []uploadJob) []string {
	if len(pending) == 0 {
		return nil
	}

	workers := m.cfg.ParallelUploads
	if workers > len(pending) {
		workers = len(pending)
	}

	var newIDs []string
	jobs := make(chan uploadJob)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				m.uploadOne(ctx, job, &newIDs)
			}
		}()
	}

	// Stop submitting new work once the context is cancelled; in-flight
	// uploads still drain below.
submit:
	for _, job := range pending {
		select {
		case jobs <- job:
		case <-ctx.Done():
			break submit
		}
	}
	close(jobs)
	wg.Wait()

	return newIDs
}

// uploadOne uploads a single file and, on success, records the remote id in
// the checkpoint under the file's device asset key.
func (m *migrator) uploadOne(ctx context.Context, job uploadJob, newIDs *[]string) {
	if err := m.limiter.Wait(ctx); err != nil {
		logger.Error("Rate limiter error before upload",
			slog.String("file", job.path),
			slog.String("error", err.Error()))
		m.reporter.FileDone(job.path, err)
		return
	}

	id, err := m.client.UploadAsset(ctx, job.path)
	if err != nil {
		logger.Error("Error uploading file",
			slog.String("file", job.path),
			slog.String("error", err.Error()))
		m.reporter.FileDone(job.path, err)
		return
	}

	m.mu.Lock()
	m.cp.Assets[job.key] = id
	*newIDs = append(*newIDs, id)
	m.mu.Unlock()

	logger.Debug("Uploaded file",
		slog.String("file", job.path),
		slog.String("asset_id", id))
	m.reporter.FileDone(job.path, nil)
}
