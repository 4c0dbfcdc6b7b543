// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names. These mirror the collections the mobile app
// reads, so documents written here stay visible to existing clients.
const (
	CollectionUsers        = "users"
	CollectionEmployees    = "employees"
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
)

// DefaultRecentTransactionLimit bounds the recent-transactions live query
// when the caller does not specify a limit.
const DefaultRecentTransactionLimit = 100
