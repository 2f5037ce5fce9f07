// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive quiz client runtime.
//
// It wires the session client and the terminal UI into a single process
// lifecycle and restarts the session when the user asks for a new quiz.
package client
