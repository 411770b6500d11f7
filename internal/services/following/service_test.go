package following

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StGrozdanov/finance-web/internal/catalog"
	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := common.NewLogger("error")
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = t.TempDir()

	mgr, err := storage.NewManager(logger, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })

	return NewService(mgr, catalog.Default(), logger)
}

func TestFollowUnfollow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	following, err := svc.IsFollowing(ctx, "btc")
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, svc.Follow(ctx, "btc"))
	following, err = svc.IsFollowing(ctx, "btc")
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Follow(ctx, "btc"), "re-follow is a no-op")

	require.NoError(t, svc.Unfollow(ctx, "btc"))
	following, err = svc.IsFollowing(ctx, "btc")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollow_UnknownAssetRejected(t *testing.T) {
	svc := newTestService(t)
	err := svc.Follow(context.Background(), "not-an-asset")
	assert.Error(t, err)
}

func TestListFollowed_JoinsCatalog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, "btc"))
	require.NoError(t, svc.Follow(ctx, "aapl"))

	assets, err := svc.ListFollowed(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "BTC", assets[0].Symbol)
	assert.Equal(t, "AAPL", assets[1].Symbol)
	assert.NotZero(t, assets[0].Price, "catalog data joined in")
}

func TestListFollowed_Empty(t *testing.T) {
	svc := newTestService(t)
	assets, err := svc.ListFollowed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)
}
