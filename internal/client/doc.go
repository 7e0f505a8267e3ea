// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal editor's process lifecycle.
//
// It starts the background draft writer, hands control to the terminal UI
// and flushes unsent drafts once the UI exits.
package client
