package domain

import "time"

// ActivityType groups activity entries by the entity they concern.
type ActivityType string

const (
	ActivityProduct   ActivityType = "product"
	ActivityCustomer  ActivityType = "customer"
	ActivitySupplier  ActivityType = "supplier"
	ActivityPurchase  ActivityType = "purchase"
	ActivitySales     ActivityType = "sales"
	ActivityInventory ActivityType = "inventory"
)

// DefaultActivityCapacity is the number of most recent activities the feed retains.
const DefaultActivityCapacity = 50

// Activity is one human-readable entry of the ledger's activity feed.
type Activity struct {
	ActivityID  string       `json:"activityID"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	RelatedID   *string      `json:"relatedID"`
	Timestamp   time.Time    `json:"timestamp"`
}
