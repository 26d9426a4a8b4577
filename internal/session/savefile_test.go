package session_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/testutil"
	"github.com/zjrosen/spacetraders/internal/value"
)

func TestNewSaveFile_DefaultPath(t *testing.T) {
	require.Equal(t, session.DefaultSavePath, session.NewSaveFile("").Path)
	require.Equal(t, "x.save", session.NewSaveFile("x.save").Path)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacetraders.save")
	cache := testutil.NewBuilder(t).WithStandardSession().Build()

	f := session.NewSaveFile(path)
	require.NoError(t, f.Store("tok-123", cache))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "tok-123", lines[0])

	token, loaded, err := f.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.True(t, cache.Equal(loaded))
}

func TestSaveFile_StoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f := session.NewSaveFile(filepath.Join(dir, "nested", "game.save"))
	require.NoError(t, f.Store("tok", testutil.NewBuilder(t).Build()))
	require.NoError(t, f.Store("tok2", testutil.NewBuilder(t).Build()), "overwrite succeeds")

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "game.save", entries[0].Name())
}

func TestSaveFile_StorePreconditions(t *testing.T) {
	f := session.NewSaveFile(filepath.Join(t.TempDir(), "s.save"))

	require.ErrorIs(t, f.Store("", testutil.NewBuilder(t).Build()), session.ErrTokenNotSet)
	require.ErrorIs(t, f.Store("tok", nil), session.ErrCacheEmpty)

	err := f.Store("tok\nextra", testutil.NewBuilder(t).Build())
	var saveErr *session.SaveFileError
	require.ErrorAs(t, err, &saveErr)
	require.Equal(t, session.SaveIO, saveErr.Kind)

	_, statErr := os.Stat(f.Path)
	require.True(t, os.IsNotExist(statErr), "failed stores write nothing")
}

func TestSaveFile_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		kind    session.SaveKind
	}{
		{name: "missing", content: nil, kind: session.SaveMissing},
		{name: "empty", content: ptr(""), kind: session.SaveTruncated},
		{name: "one line", content: ptr("token-only"), kind: session.SaveTruncated},
		{name: "empty token", content: ptr("\n{}\n"), kind: session.SaveTruncated},
		{name: "empty second line", content: ptr("tok\n\n"), kind: session.SaveTruncated},
		{name: "bad json", content: ptr("tok\n{not json\n"), kind: session.SaveCorrupt},
		{name: "invalid cache", content: ptr(`tok` + "\n" + `{"agent":{"symbol":""}}` + "\n"), kind: session.SaveCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s.save")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0600))
			}

			token, cache, err := session.NewSaveFile(path).Load()
			require.Empty(t, token)
			require.Nil(t, cache)

			var saveErr *session.SaveFileError
			require.ErrorAs(t, err, &saveErr)
			require.Equal(t, tt.kind, saveErr.Kind)
			require.Equal(t, path, saveErr.Path)
			require.Contains(t, err.Error(), tt.kind.String())
		})
	}
}

func TestSaveFile_LoadRejectsMissingRequiredField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.save")
	f := session.NewSaveFile(path)
	require.NoError(t, f.Store("tok", testutil.NewBuilder(t).WithStandardSession().Build()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), `"status":"DOCKED",`, "", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0600))

	token, cache, err := f.Load()
	require.Empty(t, token)
	require.Nil(t, cache)
	var saveErr *session.SaveFileError
	require.ErrorAs(t, err, &saveErr)
	require.Equal(t, session.SaveCorrupt, saveErr.Kind)
	require.ErrorIs(t, err, value.ErrMissingField)
}

func TestSaveFile_LoadDirectoryIsIOError(t *testing.T) {
	_, _, err := session.NewSaveFile(t.TempDir()).Load()
	var saveErr *session.SaveFileError
	require.ErrorAs(t, err, &saveErr)
	require.Equal(t, session.SaveIO, saveErr.Kind)
}

func TestSaveFile_LoadToleratesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.save")
	f := session.NewSaveFile(path)
	cache := testutil.NewBuilder(t).WithStandardSession().Build()
	require.NoError(t, f.Store("tok", cache))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.ReplaceAll(string(data), "\n", "\r\n")), 0600))

	token, loaded, err := f.Load()
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.True(t, cache.Equal(loaded))
}

func TestProperty_SaveFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	statuses := []domain.ShipNavStatus{domain.NavStatusDocked, domain.NavStatusInOrbit, domain.NavStatusInTransit}

	rapid.Check(t, func(rt *rapid.T) {
		token := rapid.StringMatching(`[A-Za-z0-9._-]{1,64}`).Draw(rt, "token")
		credits := rapid.Int64Range(0, 1<<40).Draw(rt, "credits")

		var contracts []domain.Contract
		for i := range rapid.IntRange(0, 4).Draw(rt, "contracts") {
			var opts []testutil.ContractOption
			if rapid.Bool().Draw(rt, "accepted") {
				opts = append(opts, testutil.Accepted())
			}
			opts = append(opts, testutil.Payment(
				rapid.Int64Range(0, 100000).Draw(rt, "onAccepted"),
				rapid.Int64Range(0, 100000).Draw(rt, "onFulfilled")))
			contracts = append(contracts, testutil.NewContract(fmt.Sprintf("contract-%d", i), opts...))
		}

		var ships []domain.Ship
		for i := range rapid.IntRange(0, 4).Draw(rt, "ships") {
			var items []domain.CargoItem
			for j := range rapid.IntRange(0, 3).Draw(rt, "items") {
				items = append(items, testutil.NewCargoItem(fmt.Sprintf("GOOD_%d", j), rapid.Int64Range(1, 50).Draw(rt, "units")))
			}
			ships = append(ships, testutil.NewShip(fmt.Sprintf("TESTER-%d", i+1),
				testutil.Status(rapid.SampledFrom(statuses).Draw(rt, "status")),
				testutil.Cargo(200, items...)))
		}

		cache, err := session.New(testutil.NewAgent("TESTER", testutil.AgentCredits(credits)), testutil.NewFaction(), contracts, ships)
		require.NoError(rt, err)

		f := session.NewSaveFile(filepath.Join(dir, "prop.save"))
		require.NoError(rt, f.Store(token, cache))

		gotToken, loaded, err := f.Load()
		require.NoError(rt, err)
		require.Equal(rt, token, gotToken)
		require.True(rt, cache.Equal(loaded))
	})
}

func ptr(s string) *string { return &s }
