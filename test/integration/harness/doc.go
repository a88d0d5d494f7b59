// Package harness provides utilities for integration testing the devcon CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DEVCON_HOME: Isolated per test (temp directory)
//   - DEVCON_DEBUG: Disabled to reduce noise
//   - DEVCON_NATS_URL, DEVCON_MANIFEST_URL, DEVCON_AUTOJOIN_COMMAND: Cleared
//     so the runtime never reaches the network
package harness
