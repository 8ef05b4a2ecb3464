package strava

import (
	"net/http"
	"testing"
)

func TestUpdateFromHeaders(t *testing.T) {
	r := NewRateLimiter()

	h := http.Header{}
	h.Set("X-RateLimit-Limit", "100,1000")
	h.Set("X-RateLimit-Usage", "34,512")
	r.UpdateFromHeaders(h)

	short, daily := r.Status()
	if short != 66 {
		t.Errorf("short remaining = %d, want 66", short)
	}
	if daily != 488 {
		t.Errorf("daily remaining = %d, want 488", daily)
	}
}

func TestUpdateFromHeadersMalformed(t *testing.T) {
	r := NewRateLimiter()
	before, _ := r.Status()

	h := http.Header{}
	h.Set("X-RateLimit-Usage", "garbage")
	r.UpdateFromHeaders(h)

	after, _ := r.Status()
	if before != after {
		t.Errorf("malformed header changed state: %d -> %d", before, after)
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in     string
		short  int
		daily  int
		wantOK bool
	}{
		{"100,1000", 100, 1000, true},
		{"34, 512", 34, 512, true},
		{"100", 0, 0, false},
		{"a,b", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		short, daily, ok := parsePair(tt.in)
		if ok != tt.wantOK || short != tt.short || daily != tt.daily {
			t.Errorf("parsePair(%q) = %d, %d, %v, want %d, %d, %v",
				tt.in, short, daily, ok, tt.short, tt.daily, tt.wantOK)
		}
	}
}
