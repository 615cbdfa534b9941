// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the platform identifiers used by the package
// catalog to decide which toolchain packages apply to the running host.
package platform
