package client

import "github.com/zjrosen/spacetraders/internal/pubsub"

// ChangeKind names the cache mutation a CacheChange reports.
type ChangeKind string

const (
	ChangeRegistered       ChangeKind = "registered"
	ChangeLoaded           ChangeKind = "loaded"
	ChangeAgentRefreshed   ChangeKind = "agent_refreshed"
	ChangeContractAccepted ChangeKind = "contract_accepted"
	ChangeShipNav          ChangeKind = "ship_nav"
	ChangeShipCargo        ChangeKind = "ship_cargo"
	ChangeShipPurchased    ChangeKind = "ship_purchased"
)

// CacheChange is published after every confirmed session cache mutation.
// Fields that do not apply to Kind are empty.
type CacheChange struct {
	Kind     ChangeKind
	Agent    string
	Ship     string
	Contract string
	Credits  int64 // agent credits after the change
}

func (c *Client) publish(eventType pubsub.EventType, change CacheChange) {
	if c.events == nil || c.cache == nil {
		return
	}
	agent := c.cache.Agent()
	change.Agent = agent.Symbol.String()
	change.Credits = agent.Credits
	c.events.Publish(eventType, change)
}
