// Package harness provides utilities for integration testing the xiwal CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - XIWAL_HOME: Isolated per test (temp directory)
//   - XIWAL_DEBUG: Disabled to reduce noise
//   - XIWAL_TTYS: A plain file, so --apply never reaches real terminals
//   - PATH: Prefixed with a directory holding a fake ImageMagick when requested
package harness
