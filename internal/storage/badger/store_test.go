package badger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/models"
)

// --- Test helpers ---

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(testLogger(), filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testLogger() *common.Logger {
	return common.NewLogger("error")
}

// --- Store tests ---

func TestStore_OpenClose(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(testLogger(), filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if store.DB() == nil {
		t.Fatal("expected non-nil DB")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestStore_CloseNilDB(t *testing.T) {
	store := &Store{}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil DB should not error: %v", err)
	}
}

// --- Portfolio Storage tests ---

func TestPortfolioStorage_CRUD(t *testing.T) {
	store := newTestStore(t)
	ps := NewPortfolioStorage(store, testLogger())
	ctx := context.Background()

	// Get non-existent
	if _, err := ps.GetPortfolio(ctx, "missing"); err == nil {
		t.Fatal("expected error for non-existent portfolio")
	}

	// Save without ID is rejected
	if err := ps.SavePortfolio(ctx, &models.Portfolio{Name: "No ID"}); err == nil {
		t.Fatal("expected error saving portfolio without ID")
	}

	// Save
	p := &models.Portfolio{
		ID:   "main",
		Name: "My Portfolio",
		Transactions: []models.Transaction{
			{ID: "tx-1", AssetID: "btc", Type: models.TxBuy, Amount: 0.5, Price: 60000, Date: time.Now()},
		},
	}
	if err := ps.SavePortfolio(ctx, p); err != nil {
		t.Fatalf("SavePortfolio failed: %v", err)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected CreatedAt and UpdatedAt to be set")
	}

	// Get
	got, err := ps.GetPortfolio(ctx, "main")
	if err != nil {
		t.Fatalf("GetPortfolio failed: %v", err)
	}
	if got.Name != "My Portfolio" {
		t.Errorf("unexpected portfolio name: %s", got.Name)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].AssetID != "btc" {
		t.Errorf("transactions not round-tripped: %+v", got.Transactions)
	}

	// Update preserves CreatedAt
	createdAt := p.CreatedAt
	p.Name = "Renamed"
	if err := ps.SavePortfolio(ctx, p); err != nil {
		t.Fatalf("SavePortfolio (update) failed: %v", err)
	}
	got, _ = ps.GetPortfolio(ctx, "main")
	if got.Name != "Renamed" {
		t.Errorf("expected updated name, got %s", got.Name)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Error("expected CreatedAt to be preserved on update")
	}

	// Delete
	if err := ps.DeletePortfolio(ctx, "main"); err != nil {
		t.Fatalf("DeletePortfolio failed: %v", err)
	}
	if _, err := ps.GetPortfolio(ctx, "main"); err == nil {
		t.Fatal("expected error after delete")
	}

	// Delete non-existent (should not error)
	if err := ps.DeletePortfolio(ctx, "nonexistent"); err != nil {
		t.Fatalf("DeletePortfolio non-existent should not error: %v", err)
	}
}

func TestPortfolioStorage_ListOrderedByCreation(t *testing.T) {
	store := newTestStore(t)
	ps := NewPortfolioStorage(store, testLogger())
	ctx := context.Background()

	now := time.Now()
	older := &models.Portfolio{ID: "demo", Name: "Demo", IsDemo: true}
	older.CreatedAt = now.Add(-time.Hour)
	if err := ps.SavePortfolio(ctx, older); err != nil {
		t.Fatalf("SavePortfolio failed: %v", err)
	}
	newer := &models.Portfolio{ID: "mine", Name: "Mine"}
	newer.CreatedAt = now
	if err := ps.SavePortfolio(ctx, newer); err != nil {
		t.Fatalf("SavePortfolio failed: %v", err)
	}

	list, err := ps.ListPortfolios(ctx)
	if err != nil {
		t.Fatalf("ListPortfolios failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 portfolios, got %d", len(list))
	}
	if list[0].ID != "demo" || list[1].ID != "mine" {
		t.Errorf("expected oldest first, got [%s, %s]", list[0].ID, list[1].ID)
	}
}

// --- Following Storage tests ---

func TestFollowingStorage_CRUD(t *testing.T) {
	store := newTestStore(t)
	fs := NewFollowingStorage(store, testLogger())
	ctx := context.Background()

	// Not following initially
	following, err := fs.IsFollowing(ctx, "btc")
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if following {
		t.Error("expected not following initially")
	}

	// Follow
	if err := fs.Follow(ctx, "btc"); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	following, _ = fs.IsFollowing(ctx, "btc")
	if !following {
		t.Error("expected following after Follow")
	}

	// Follow again is idempotent
	if err := fs.Follow(ctx, "btc"); err != nil {
		t.Fatalf("repeat Follow should not error: %v", err)
	}

	// List
	fs.Follow(ctx, "eth")
	records, err := fs.ListFollowed(ctx)
	if err != nil {
		t.Fatalf("ListFollowed failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 followed assets, got %d", len(records))
	}

	// Unfollow
	if err := fs.Unfollow(ctx, "btc"); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}
	following, _ = fs.IsFollowing(ctx, "btc")
	if following {
		t.Error("expected not following after Unfollow")
	}

	// Unfollow non-existent (should not error)
	if err := fs.Unfollow(ctx, "nonexistent"); err != nil {
		t.Fatalf("Unfollow non-existent should not error: %v", err)
	}
}

func TestFollowingStorage_ListOrderedByFollowTime(t *testing.T) {
	store := newTestStore(t)
	fs := NewFollowingStorage(store, testLogger())
	ctx := context.Background()

	// Follow in a known order; timestamps come from Follow itself.
	for _, id := range []string{"aapl", "btc", "gold"} {
		if err := fs.Follow(ctx, id); err != nil {
			t.Fatalf("Follow(%s) failed: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	records, err := fs.ListFollowed(ctx)
	if err != nil {
		t.Fatalf("ListFollowed failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []string{"aapl", "btc", "gold"}
	for i, id := range want {
		if records[i].AssetID != id {
			t.Errorf("records[%d].AssetID = %s, want %s", i, records[i].AssetID, id)
		}
	}
}
