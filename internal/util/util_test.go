package util

import (
	"errors"
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Port", "PORT"},
		{"TLSCert", "TLS_CERT"},
		{"SelfTLS", "SELF_TLS"},
		{"MinLength", "MIN_LENGTH"},
		{"CacheSize", "CACHE_SIZE"},
		{"TLSCert TLSKey", "TLS_CERT_TLS_KEY"},
		{"SelfTLS false", "SELF_TLS_FALSE"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ToScreamingSnakeCase(tc.in); got != tc.want {
			t.Errorf("ToScreamingSnakeCase(%q): %s, want: %s", tc.in, got, tc.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b uint8
		fail    bool
	}{
		{"#ff4c4c", 0xff, 0x4c, 0x4c, false},
		{"#ffcc00", 0xff, 0xcc, 0x00, false},
		{"#00ff99", 0x00, 0xff, 0x99, false},
		{"#9EF0FF", 0x9e, 0xf0, 0xff, false},
		{"#abc", 0xaa, 0xbb, 0xcc, false},
		{"babyblue", 0, 0, 0, true},
		{"#12345", 0, 0, 0, true},
		{"#gggggg", 0, 0, 0, true},
	}

	for _, tc := range cases {
		r, g, b, err := ParseHexColor(tc.in)
		if tc.fail {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHexColor(%q) should fail with ErrInvalidColor, got %v", tc.in, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("ParseHexColor(%q) should not fail: %s", tc.in, err)
		}
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("ParseHexColor(%q): %d,%d,%d want: %d,%d,%d", tc.in, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}
