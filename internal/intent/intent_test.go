package intent

import "testing"

func TestTag_IsSentinel(t *testing.T) {
	cases := []struct {
		tag  Tag
		want bool
	}{
		{TagResolveToken, true},
		{TagResolvePair, true},
		{TagReparse, true},
		{TagSystem, false},
		{TagRaydium, false},
		{Tag("unknown"), false},
	}
	for _, c := range cases {
		if got := c.tag.IsSentinel(); got != c.want {
			t.Errorf("Tag(%q).IsSentinel() = %v, want %v", c.tag, got, c.want)
		}
	}
}

func TestUnparseableError_Message(t *testing.T) {
	err := &UnparseableError{Prompt: "do something weird", Examples: []string{"swap 1 SOL for USDC"}}
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestInputShapeError_Message(t *testing.T) {
	err := &InputShapeError{Reason: "prompt is empty"}
	want := "invalid input: prompt is empty"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
