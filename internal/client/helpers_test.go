package client_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spacetraders/internal/client"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/testutil"
)

const testToken = "test-token"

// newClient returns a client talking to api with no token and no cache.
func newClient(t *testing.T, api *testutil.FakeAPI, opts ...client.Option) *client.Client {
	t.Helper()
	opts = append([]client.Option{
		client.WithBaseURL(api.URL()),
		client.WithHTTPClient(api.Client()),
	}, opts...)
	c, err := client.New(opts...)
	require.NoError(t, err)
	return c
}

// newLoadedClient returns a client restored from a save file holding cache.
func newLoadedClient(t *testing.T, api *testutil.FakeAPI, cache *session.Cache, opts ...client.Option) *client.Client {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spacetraders.save")
	require.NoError(t, session.NewSaveFile(path).Store(testToken, cache))

	c := newClient(t, api, opts...)
	require.NoError(t, c.LoadSaved(path))
	return c
}

func snapshot(t *testing.T, cache session.View) string {
	t.Helper()
	data, err := json.Marshal(cache)
	require.NoError(t, err)
	return string(data)
}

// mockLedger is a testify mock of ledger.Repository.
type mockLedger struct {
	mock.Mock
}

var _ ledger.Repository = (*mockLedger)(nil)

func (m *mockLedger) Record(ctx context.Context, entry *ledger.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLedger) FindByID(ctx context.Context, id string) (*ledger.Entry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*ledger.Entry)
	return entry, args.Error(1)
}

func (m *mockLedger) List(ctx context.Context, agent string, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	args := m.Called(ctx, agent, filter)
	entries, _ := args.Get(0).([]*ledger.Entry)
	return entries, args.Error(1)
}

func (m *mockLedger) Net(ctx context.Context, agent string) (int64, error) {
	args := m.Called(ctx, agent)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLedger) Close() error {
	return m.Called().Error(0)
}

// mustPage encodes a paginated envelope.
func mustPage[T any](t *testing.T, data []T, total, limit, page int64) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"data": data,
		"meta": map[string]int64{"total": total, "limit": limit, "page": page},
	})
	require.NoError(t, err)
	return string(body)
}
