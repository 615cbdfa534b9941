// SPDX-License-Identifier: MPL-2.0

// Package catalog defines the toolchain package registry: which packages a
// bitforge distribution knows about, which platforms they apply to, the
// environment each one needs, and the version every platform is required to
// have installed.
//
// The catalog is declared in a CUE document validated against an embedded
// schema. Declaration order is load-bearing: packages declared earlier get
// higher PATH priority when the environment is composed.
package catalog
