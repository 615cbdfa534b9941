// SPDX-License-Identifier: MPL-2.0

package pkgenv

// State tracks whether the environment mutations were already applied in
// this process. The guard is an explicit object owned by the CLI's
// top-level context, not a hidden package global, so tests can exercise
// repeated Setup calls without process restarts.
//
// The guard is process-local on purpose: each process computes and applies
// its own environment, child processes inherit it, and no cross-process
// coordination is needed.
type State struct {
	applied bool
}

// NewState returns a fresh guard with nothing applied.
func NewState() *State {
	return &State{}
}

// IsApplied reports whether mutations were already applied.
func (s *State) IsApplied() bool {
	return s.applied
}

// MarkApplied records that mutations were applied.
func (s *State) MarkApplied() {
	s.applied = true
}
