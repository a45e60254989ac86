package utils

import (
	"net/url"
	"testing"
)

func TestIntParam(t *testing.T) {
	values := url.Values{}
	values.Set("minAge", "30")
	values.Set("bad", "thirty")

	if got := IntParam(values, "minAge"); got == nil || *got != 30 {
		t.Errorf("IntParam(minAge) = %v, want 30", got)
	}
	if got := IntParam(values, "missing"); got != nil {
		t.Errorf("IntParam(missing) = %v, want nil", got)
	}
	if got := IntParam(values, "bad"); got != nil {
		t.Errorf("IntParam(bad) = %v, want nil", got)
	}
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"2", 2},
		{"abc", 0},
		{"-3", 0},
	}

	for _, tt := range tests {
		values := url.Values{}
		if tt.raw != "" {
			values.Set("page", tt.raw)
		}
		if got := PageParam(values, "page"); got != tt.want {
			t.Errorf("PageParam(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
