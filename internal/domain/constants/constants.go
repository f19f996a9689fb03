// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// LocationProviderSerial selects the NMEA serial provider.
	LocationProviderSerial = "serial"
	// LocationProviderHTTP relies on position ingest over the HTTP API only.
	LocationProviderHTTP = "http"
)
