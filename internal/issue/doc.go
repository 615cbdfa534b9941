// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that carry remediation steps and
// Markdown-formatted guidance, and classifies failures as user-correctable
// or internal so the CLI can pick the right exit status.
package issue
