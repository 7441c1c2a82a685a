package patterns

import "testing"

func TestStripPriorityModifiers_WithPriority(t *testing.T) {
	body, hint := StripPriorityModifiers("swap 1 SOL for USDC with priority")
	if hint == nil {
		t.Fatal("expected a priority hint")
	}
	if !hint.High {
		t.Error("expected High = true for \"with priority\"")
	}
	if body != "swap 1 SOL for USDC" {
		t.Errorf("body = %q, want %q", body, "swap 1 SOL for USDC")
	}
}

func TestStripPriorityModifiers_WithHighPriority(t *testing.T) {
	body, hint := StripPriorityModifiers("swap 1 SOL for USDC with high priority")
	if hint == nil || !hint.High {
		t.Fatal("expected a high-priority hint")
	}
	if body != "swap 1 SOL for USDC" {
		t.Errorf("body = %q, want %q", body, "swap 1 SOL for USDC")
	}
}

func TestStripPriorityModifiers_Urgently(t *testing.T) {
	body, hint := StripPriorityModifiers("send 1 SOL to wallet urgently")
	if hint == nil || !hint.High {
		t.Fatal("expected a high-priority hint from \"urgently\"")
	}
	if body != "send 1 SOL to wallet" {
		t.Errorf("body = %q, want %q", body, "send 1 SOL to wallet")
	}
}

func TestStripPriorityModifiers_NoModifier(t *testing.T) {
	body, hint := StripPriorityModifiers("swap 1 SOL for USDC")
	if hint != nil {
		t.Errorf("expected no hint, got %+v", hint)
	}
	if body != "swap 1 SOL for USDC" {
		t.Errorf("body = %q, want unchanged", body)
	}
}
