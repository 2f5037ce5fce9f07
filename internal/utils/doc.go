// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP response writing, HTTP client
// initialization and identifier generation.
package utils
