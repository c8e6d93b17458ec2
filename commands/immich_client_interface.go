//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_immich_mocks_test.go -package=commands ImmichClient

package commands

import (
	"context"

	"immichtree/commands/immich"
)

// ImmichClient defines the remote service operations the migration engine
// needs. *immich.Client implements it; tests use generated mocks.
type ImmichClient interface {
	Ping(ctx context.Context) error
	FindAlbumByName(ctx context.Context, name string) (*immich.Album, error)
	CreateAlbum(ctx context.Context, name string) (*immich.Album, error)
	UploadAsset(ctx context.Context, path string) (string, error)
	AddAssetsToAlbum(ctx context.Context, albumID string, assetIDs []string) error
}
