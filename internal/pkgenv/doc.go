// SPDX-License-Identifier: MPL-2.0

// Package pkgenv reconciles the package catalog with the running process:
// it composes the environment mutations (PATH entries and variables) that
// the platform's toolchain packages declare, applies them to the process
// environment exactly once per process lifetime, and verifies that the
// packages an operation requires are installed, version-compatible, and
// present on disk.
//
// Composition is deterministic: the catalog's declaration order decides
// PATH priority (first declared wins) and variable assignment order (last
// assignment wins). Verification is fail-fast: the first violation stops
// the check and is reported with a remediation hint.
package pkgenv
