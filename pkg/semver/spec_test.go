// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"errors"
	"testing"
)

func TestAny_SatisfiesEverything(t *testing.T) {
	spec := Any()

	if !spec.IsAny() {
		t.Error("Any().IsAny() = false, want true")
	}
	for _, v := range []string{"0.0.1", "99.0.0", "1.0.0-alpha", "not-a-version"} {
		if !spec.Satisfies(v) {
			t.Errorf("Any().Satisfies(%q) = false, want true", v)
		}
	}
	if got := spec.String(); got != "*" {
		t.Errorf("Any().String() = %q, want %q", got, "*")
	}
}

func TestParseSpec_EmptyExpressionIsMalformed(t *testing.T) {
	for _, input := range []string{"", "   "} {
		if _, err := ParseSpec(input); !errors.Is(err, ErrInvalidConstraint) {
			t.Errorf("ParseSpec(%q) error = %v, want wrapped ErrInvalidConstraint", input, err)
		}
	}
}

func TestParseSpec_Satisfies(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		{">=0.0.1", "0.0.9", true},
		{">=0.0.1", "0.0.0", false},
		{">=2.0.0", "1.2.3", false},
		{">=1.0.0 <2.0.0", "1.5.0", true},
		{">=1.0.0 <2.0.0", "2.0.0", false},
		{"^0.38.0", "0.38.4", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr+" "+tt.version, func(t *testing.T) {
			spec, err := ParseSpec(tt.expr)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.expr, err)
			}
			if got := spec.Satisfies(tt.version); got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.expr, tt.version, got, tt.want)
			}
		})
	}
}

func TestSpec_UnparsableVersionNeverSatisfies(t *testing.T) {
	spec, err := ParseSpec(">=0.0.1")
	if err != nil {
		t.Fatalf("ParseSpec() error: %v", err)
	}
	if spec.Satisfies("not-a-version") {
		t.Error("Satisfies(\"not-a-version\") = true, want false")
	}
}

func TestSpec_StringRoundTrip(t *testing.T) {
	spec, err := ParseSpec(" >=1.0.0 ")
	if err != nil {
		t.Fatalf("ParseSpec() error: %v", err)
	}
	if got := spec.String(); got != ">=1.0.0" {
		t.Errorf("String() = %q, want %q", got, ">=1.0.0")
	}
}
