package domain

import "testing"

func TestNormalizeIBAN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"DE89370400440532013000", "DE89 3704 0044 0532 0130 00"},
		{"de89 3704 0044 0532 0130 00", "DE89 3704 0044 0532 0130 00"},
		{"  DE89  3704 ", "DE89 3704"},
		{"DE8", "DE8"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeIBAN(tc.in); got != tc.want {
			t.Errorf("NormalizeIBAN(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIBAN_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"DE89370400440532013000", "de12 3456", "x"} {
		once := NormalizeIBAN(in)
		if twice := NormalizeIBAN(once); twice != once {
			t.Errorf("NormalizeIBAN not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRoutingCodeOf(t *testing.T) {
	t.Parallel()

	code, ok := RoutingCodeOf("DE89 3704 0044 0532 0130 00")
	if !ok || code != "37040044" {
		t.Fatalf("code=%q ok=%v, want 37040044 true", code, ok)
	}

	for _, in := range []string{"", "FR89 3704 0044 0532", "DE89 3704", "AT611904300234573201"} {
		if code, ok := RoutingCodeOf(in); ok {
			t.Errorf("RoutingCodeOf(%q)=%q, want absent", in, code)
		}
	}
}
