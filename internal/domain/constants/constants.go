// Package constants holds string identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop = "develop"
	EnvLocal   = "local"
)

// Event publisher providers.
const (
	EventProviderLocal  = "local"
	EventProviderGoogle = "google"
	EventProviderKafka  = "kafka"
)

// Store drivers.
const (
	StoreDriverMem      = "mem"
	StoreDriverDynamoDB = "dynamodb"
)

// Secondary index names, one per queried field.
const (
	IndexEmail    = "EmailIndex"
	IndexCategory = "CategoryIndex"
	IndexCustomer = "CustomerIndex"
	IndexCart     = "CartIndex"
	IndexOrder    = "OrderIndex"
)
