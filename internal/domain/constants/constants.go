// Package constants defines shared application-level constant values.
package constants

// Runtime environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the event publisher factory.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
