package cache

import "testing"

func TestIsNegative(t *testing.T) {
	if !IsNegative(NegativeValue()) {
		t.Error("IsNegative(NegativeValue()) = false, want true")
	}
	if IsNegative("some ordinary cached value") {
		t.Error("IsNegative on an ordinary value = true, want false")
	}
}
