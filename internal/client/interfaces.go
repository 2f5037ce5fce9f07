// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// View is the presentation layer driven by the App. Run blocks until the
// user quits or asks for a new quiz, which is reported by reset.
type View interface {
	Run(ctx context.Context) (reset bool, err error)
}
