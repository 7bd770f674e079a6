package util

import (
	"errors"
	"testing"
)

func TestCleanKey(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "services.xlsx", want: "services.xlsx"},
		{in: " /catalogs/services.csv ", want: "catalogs/services.csv"},
		{in: `catalogs\2024\services.csv`, want: "catalogs/2024/services.csv"},
		{in: "catalogs//./services.csv", want: "catalogs/services.csv"},
		{in: "../etc/passwd", wantErr: true},
		{in: "catalogs/../../x", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := CleanKey(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("CleanKey(%q) expected ErrInvalidKey, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CleanKey(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("CleanKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
