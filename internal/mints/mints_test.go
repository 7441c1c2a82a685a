package mints

import "testing"

func TestResolve_KnownSymbolCaseInsensitive(t *testing.T) {
	r := New()
	cases := []string{"SOL", "sol", "Sol"}
	for _, in := range cases {
		if got := r.Resolve(in); got != WellKnown["SOL"] {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, WellKnown["SOL"])
		}
	}
}

func TestResolve_UnknownInputPassesThrough(t *testing.T) {
	r := New()
	addr := "SomeArbitraryMintAddressThatIsNotInTheTable"
	if got := r.Resolve(addr); got != addr {
		t.Errorf("Resolve(%q) = %q, want unchanged", addr, got)
	}
}

func TestResolve_EmptyStringPassesThrough(t *testing.T) {
	r := New()
	if got := r.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want \"\"", got)
	}
}

func TestResolve_IsIdempotent(t *testing.T) {
	r := New()
	for symbol := range WellKnown {
		once := r.Resolve(symbol)
		twice := r.Resolve(once)
		if once != twice {
			t.Errorf("Resolve not idempotent for %q: Resolve(x)=%q, Resolve(Resolve(x))=%q", symbol, once, twice)
		}
	}
}

func TestNew_CoversEveryWellKnownEntry(t *testing.T) {
	r := New()
	for symbol, mint := range WellKnown {
		if got := r.Resolve(symbol); got != mint {
			t.Errorf("Resolve(%q) = %q, want %q", symbol, got, mint)
		}
	}
}
