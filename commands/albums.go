package commands

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"immichtree/commands/immich"
)

// albumResolver maps album names to remote album ids, memoizing results so
// each distinct name costs at most one find-or-create round trip per run.
// It is only called from the single-threaded directory traversal, so the
// cache needs no locking.
type albumResolver struct {
	client  ImmichClient
	limiter *rate.Limiter
	cache   map[string]string // album name -> album id
}

func newAlbumResolver(client ImmichClient, limiter *rate.Limiter) *albumResolver {
	return &albumResolver{
		client:  client,
		limiter: limiter,
		cache:   make(map[string]string),
	}
}

// resolve returns the remote id for the named album, finding an existing
// album with that exact name or creating a new one. If creation yields no
// album (dry-run against a simulated remote), a placeholder id is returned
// rather than failing the run.
func (r *albumResolver) resolve(ctx context.Context, name string) (string, error) {
	if id, ok := r.cache[name]; ok {
		return id, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before resolving album %q: %w", name, err)
	}
	album, err := r.client.FindAlbumByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to look up album %q: %w", name, err)
	}
	if album != nil {
		logger.Info("Using existing album", slog.String("album", name))
		r.cache[name] = album.ID
		return album.ID, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before creating album %q: %w", name, err)
	}
	album, err = r.client.CreateAlbum(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to create album %q: %w", name, err)
	}
	if album != nil && album.ID != "" {
		logger.Debug("Created album",
			slog.String("album", name),
			slog.String("album_id", album.ID))
		r.cache[name] = album.ID
		return album.ID, nil
	}

	// No id came back; keep the run going with a placeholder.
	r.cache[name] = immich.DryRunAlbumID
	return immich.DryRunAlbumID, nil
}
