package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spacetraders/internal/infrastructure/sqlite"
	"github.com/zjrosen/spacetraders/internal/ledger"
)

// NewTestLedger returns a migrated in-memory ledger closed at test cleanup.
func NewTestLedger(t *testing.T) ledger.Repository {
	t.Helper()
	db, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db.LedgerRepository()
}
