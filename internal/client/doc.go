// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle. The bearer secret lives only inside the adapter for
// the duration of the process; nothing is persisted locally.
package client
