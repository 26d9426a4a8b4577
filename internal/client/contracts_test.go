package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/client"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/testutil"
)

const acceptPath = "/my/contracts/" + testutil.StandardContract + "/accept"

func acceptBody() map[string]any {
	return map[string]any{
		"agent":    testutil.NewAgent(testutil.StandardAgent, testutil.AgentCredits(testutil.StandardCredits+testutil.StandardOnAccepted)),
		"contract": testutil.NewContract(testutil.StandardContract, testutil.Accepted(), testutil.Payment(testutil.StandardOnAccepted, 24416)),
	}
}

func TestAcceptContract_IsIdempotent(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	repo := testutil.NewTestLedger(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build(), client.WithLedger(repo))
	fake.HandleData(http.MethodPost, acceptPath, http.StatusOK, acceptBody())

	first, err := c.AcceptContract(context.Background(), testutil.StandardContract)
	require.NoError(t, err)
	require.True(t, first.Accepted)

	second, err := c.AcceptContract(context.Background(), testutil.StandardContract)
	require.NoError(t, err)
	require.True(t, second.Accepted)

	require.Equal(t, 1, fake.CallCount(http.MethodPost, acceptPath), "second accept must not reach the server")
	require.Equal(t, int64(testutil.StandardCredits+testutil.StandardOnAccepted), c.Cache().Agent().Credits)

	entries, err := repo.List(context.Background(), testutil.StandardAgent, ledger.ListFilter{Kind: ledger.KindContractAccepted})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(testutil.StandardOnAccepted), entries[0].Delta())
	require.Equal(t, testutil.StandardContract, entries[0].Reference())
}

func TestAcceptContract_UnknownIDLeavesCacheUnchanged(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build())
	before := snapshot(t, c.Cache())

	_, err := c.AcceptContract(context.Background(), "no-such-contract")
	require.ErrorIs(t, err, session.ErrNotFound)
	var notFound *session.ContractNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no-such-contract", notFound.ID)

	require.Empty(t, fake.Calls())
	require.Equal(t, before, snapshot(t, c.Cache()))
}

func TestAcceptContract_APIErrorLeavesCacheUnchanged(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build())
	before := snapshot(t, c.Cache())
	fake.HandleError(http.MethodPost, acceptPath, http.StatusBadRequest, 4500, "Contract deadline has passed")

	_, err := c.AcceptContract(context.Background(), testutil.StandardContract)
	require.True(t, api.IsCode(err, 4500))
	require.Equal(t, before, snapshot(t, c.Cache()))
}

func TestAcceptContract_LedgerFailureKeepsCredit(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	repo := &mockLedger{}
	repo.On("Record", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(errors.New("disk full"))
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build(), client.WithLedger(repo))
	fake.HandleData(http.MethodPost, acceptPath, http.StatusOK, acceptBody())

	_, err := c.AcceptContract(context.Background(), testutil.StandardContract)
	require.NoError(t, err)
	require.Equal(t, int64(testutil.StandardCredits+testutil.StandardOnAccepted), c.Cache().Agent().Credits)
	repo.AssertNumberOfCalls(t, "Record", 1)
}

func TestAcceptContract_PublishesChange(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	broker := pubsub.NewBroker[client.CacheChange]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build(), client.WithEvents(broker))
	listener := pubsub.NewContinuousListener(ctx, broker)
	fake.HandleData(http.MethodPost, acceptPath, http.StatusOK, acceptBody())

	_, err := c.AcceptContract(ctx, testutil.StandardContract)
	require.NoError(t, err)

	events := listener.Drain()
	require.Len(t, events, 1)
	require.Equal(t, pubsub.UpdatedEvent, events[0].Type)
	require.Equal(t, client.ChangeContractAccepted, events[0].Payload.Kind)
	require.Equal(t, testutil.StandardContract, events[0].Payload.Contract)
	require.Equal(t, int64(testutil.StandardCredits+testutil.StandardOnAccepted), events[0].Payload.Credits)
}

func TestListContracts_OnePage(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build())
	before := snapshot(t, c.Cache())
	fake.Handle(http.MethodGet, "/my/contracts", http.StatusOK, mustPage(t,
		[]domain.Contract{testutil.NewContract("c-a"), testutil.NewContract("c-b")}, 3, 2, 1))

	req, err := api.NewPageRequest(1, 2)
	require.NoError(t, err)
	page, err := c.ListContracts(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, page.Data, 2)
	require.Equal(t, "limit=2&page=1", fake.LastCall().Query)
	next, ok := page.Meta.NextPage()
	require.True(t, ok)
	require.Equal(t, int64(2), next.Page.Int64())
	require.Equal(t, before, snapshot(t, c.Cache()), "listing is read-only")
}

func TestListContracts_SingleShapeIsFatal(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	c := newLoadedClient(t, fake, testutil.NewBuilder(t).WithStandardSession().Build())
	fake.HandleData(http.MethodGet, "/my/contracts", http.StatusOK, testutil.NewContract("c-a"))

	_, err := c.ListContracts(context.Background(), api.FirstPage())
	var protoErr *api.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, api.ShapePaginated, protoErr.Expected)
	require.Equal(t, api.ShapeSingle, protoErr.Got)
	require.True(t, client.IsFatal(err))
}
