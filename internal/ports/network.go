package ports

import "context"

// ConnectivityProbe answers "are we online" and reconnects with stored
// credentials
type ConnectivityProbe interface {
	// Autojoin attempts to join the network, returning false on failure
	Autojoin(ctx context.Context, ssid, password string) bool
	IsConnected(ctx context.Context) bool
}

// CredentialStore loads the network credentials used for autojoin
type CredentialStore interface {
	// LoadCredentials returns empty strings when nothing is stored
	LoadCredentials(ctx context.Context) (ssid string, password string, err error)
}
