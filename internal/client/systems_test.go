package client_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/client"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/testutil"
)

const waypointPath = "/systems/X1-ZA40/waypoints/X1-ZA40-15970B"

func TestViewWaypoint_Decodes(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake)
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.HandleData(http.MethodGet, waypointPath, http.StatusOK,
		testutil.NewWaypoint("X1-ZA40-15970B", domain.WaypointTraitMarketplace))

	wp, err := c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
	require.NoError(t, err)
	require.Equal(t, "X1-ZA40", wp.SystemSymbol.String())
	require.True(t, wp.HasTrait(domain.WaypointTraitMarketplace))
}

func TestViewWaypoint_MemoizedWithLookupCache(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake, client.WithLookupCache(time.Minute))
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.HandleData(http.MethodGet, waypointPath, http.StatusOK, testutil.NewWaypoint("X1-ZA40-15970B"))

	for range 3 {
		_, err := c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
		require.NoError(t, err)
	}
	require.Equal(t, 1, fake.CallCount(http.MethodGet, waypointPath))
}

func TestViewWaypoint_NotMemoizedByDefault(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake)
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.HandleData(http.MethodGet, waypointPath, http.StatusOK, testutil.NewWaypoint("X1-ZA40-15970B"))

	for range 2 {
		_, err := c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
		require.NoError(t, err)
	}
	require.Equal(t, 2, fake.CallCount(http.MethodGet, waypointPath))
}

func TestViewWaypoint_ErrorsAreNotMemoized(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake, client.WithLookupCache(time.Minute))
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.HandleError(http.MethodGet, waypointPath, http.StatusNotFound, 404, "Waypoint not found")

	_, err := c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
	require.True(t, api.IsCode(err, 404))

	fake.HandleData(http.MethodGet, waypointPath, http.StatusOK, testutil.NewWaypoint("X1-ZA40-15970B"))
	_, err = c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
	require.NoError(t, err)
	require.Equal(t, 2, fake.CallCount(http.MethodGet, waypointPath))
}

func TestViewWaypoint_DoesNotTouchSessionCache(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build(), client.WithLookupCache(time.Minute))
	before := snapshot(t, c.Cache())
	fake.HandleData(http.MethodGet, waypointPath, http.StatusOK, testutil.NewWaypoint("X1-ZA40-15970B"))

	_, err := c.ViewWaypoint(context.Background(), "X1-ZA40", "X1-ZA40-15970B")
	require.NoError(t, err)
	require.Equal(t, before, snapshot(t, c.Cache()))
}

func TestViewShipyard(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake)
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.HandleData(http.MethodGet, "/systems/X1-ZA40/waypoints/X1-ZA40-68707C/shipyard", http.StatusOK,
		testutil.NewShipyard("X1-ZA40-68707C", domain.ShipProbe, domain.ShipMiningDrone))

	yard, err := c.ViewShipyard(context.Background(), "X1-ZA40", "X1-ZA40-68707C")
	require.NoError(t, err)
	require.True(t, yard.Sells(domain.ShipMiningDrone))
	require.False(t, yard.Sells(domain.ShipExplorer))
}

func TestFindShipyards_FiltersByTrait(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build())
	fake.Handle(http.MethodGet, "/systems/X1-ZA40/waypoints", http.StatusOK, mustPage(t, []domain.Waypoint{
		testutil.NewWaypoint("X1-ZA40-15970B", domain.WaypointTraitMarketplace),
		testutil.NewWaypoint("X1-ZA40-68707C", domain.WaypointTraitShipyard, domain.WaypointTraitMarketplace),
	}, 2, 20, 1))

	system, err := c.StartingSystem()
	require.NoError(t, err)
	page, err := c.FindShipyards(context.Background(), system.String(), api.PageRequest{})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	require.Equal(t, "X1-ZA40-68707C", page.Data[0].Symbol.String())
	require.False(t, page.Meta.HasNext())

	query, err := url.ParseQuery(fake.LastCall().Query)
	require.NoError(t, err)
	require.Equal(t, "20", query.Get("limit"))
	require.Equal(t, "1", query.Get("page"))
	require.Equal(t, "SHIPYARD", query.Get("traits"))
}

func TestFindShipyards_MemoizedPerPage(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newClient(t, fake, client.WithLookupCache(time.Minute))
	require.NoError(t, c.InitializeWithToken(testToken))
	fake.Handle(http.MethodGet, "/systems/X1-ZA40/waypoints", http.StatusOK,
		mustPage(t, []domain.Waypoint{testutil.NewWaypoint("X1-ZA40-68707C", domain.WaypointTraitShipyard)}, 25, 20, 1))

	second, err := api.NewPageRequest(2, 20)
	require.NoError(t, err)
	for _, req := range []api.PageRequest{api.FirstPage(), api.FirstPage(), second} {
		_, err := c.FindShipyards(context.Background(), "X1-ZA40", req)
		require.NoError(t, err)
	}
	require.Equal(t, 2, fake.CallCount(http.MethodGet, "/systems/X1-ZA40/waypoints"))
}
