package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "services.xlsx", want: "services.xlsx"},
		{name: "simple prefix", prefix: "catalogs", key: "services.xlsx", want: "catalogs/services.xlsx"},
		{name: "prefix trailing slash", prefix: "catalogs/", key: "services.xlsx", want: "catalogs/services.xlsx"},
		{name: "prefix and key slashes", prefix: "/catalogs/", key: "/clinic/services.csv", want: "catalogs/clinic/services.csv"},
		{name: "empty key", prefix: "catalogs", key: "", want: "catalogs"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	if got := normalizePrefix("  /catalogs/prod/ "); got != "catalogs/prod" {
		t.Fatalf("normalizePrefix = %q", got)
	}
}
