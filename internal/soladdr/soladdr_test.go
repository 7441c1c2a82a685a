package soladdr

import "testing"

func TestLooksLikeAddress(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"wrapped sol is valid", WrappedSOL, true},
		{"too short", "abc", false},
		{"empty string", "", false},
		{"not base58", "0OIl-------------------------------", false},
		{"symbol is too short to be an address", "SOL", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := LooksLikeAddress(c.in); got != c.want {
				t.Errorf("LooksLikeAddress(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLooksLikeSymbol(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"SOL", true},
		{"USDC", true},
		{"", false},
		{WrappedSOL, false},
	}
	for _, c := range cases {
		if got := LooksLikeSymbol(c.in); got != c.want {
			t.Errorf("LooksLikeSymbol(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(WrappedSOL); err != nil {
		t.Errorf("Validate(%q) = %v, want nil", WrappedSOL, err)
	}
	if err := Validate("not-an-address"); err == nil {
		t.Error("Validate(\"not-an-address\") = nil, want error")
	}
}

func TestInvalidAddressError_MessageIncludesValue(t *testing.T) {
	err := &InvalidAddressError{Value: "bogus"}
	if got := err.Error(); got == "" {
		t.Fatal("expected a non-empty error message")
	}
}
