package parser

import (
	"testing"

	"github.com/solintent/engine/internal/intent"
)

func TestParseSegment_PatternBankHit(t *testing.T) {
	parsed, hint, err := ParseSegment("send 1 SOL to So11111111111111111111111111111111111112")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if hint != nil {
		t.Errorf("expected no priority hint, got %+v", hint)
	}
	if parsed.Protocol != intent.TagSystem || parsed.Action != "transfer" {
		t.Errorf("Protocol/Action = %s/%s, want system/transfer", parsed.Protocol, parsed.Action)
	}
}

func TestParseSegment_StripsPriorityModifierFirst(t *testing.T) {
	parsed, hint, err := ParseSegment("swap 1 SOL for USDC with high priority")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if hint == nil || !hint.High {
		t.Fatal("expected a high-priority hint")
	}
	if parsed.Protocol != intent.TagAggregator {
		t.Errorf("Protocol = %s, want aggregator", parsed.Protocol)
	}
}

func TestParseSegment_GenericFallback(t *testing.T) {
	parsed, _, err := ParseSegment("trade my BONK stash for some WIF bags")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if parsed.Confidence != intent.ConfidenceGenericFallback {
		t.Errorf("Confidence = %v, want generic-fallback confidence", parsed.Confidence)
	}
}

func TestParseSegment_StripsEmoji(t *testing.T) {
	parsed, _, err := ParseSegment("swap 1 SOL for USDC 🚀🔥")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if parsed.Protocol != intent.TagAggregator {
		t.Errorf("Protocol = %s, want aggregator", parsed.Protocol)
	}
}

func TestParseSegment_Unparseable(t *testing.T) {
	_, _, err := ParseSegment("hello there")
	if err == nil {
		t.Fatal("expected an UnparseableError")
	}
	var unparseable *intent.UnparseableError
	if _, ok := err.(*intent.UnparseableError); !ok {
		t.Errorf("err = %T, want *intent.UnparseableError", err)
	}
	_ = unparseable
}

func TestParseSegment_EmptyAfterStripping(t *testing.T) {
	_, _, err := ParseSegment("   ")
	if err == nil {
		t.Fatal("expected an error for an empty segment")
	}
	if _, ok := err.(*intent.InputShapeError); !ok {
		t.Errorf("err = %T, want *intent.InputShapeError", err)
	}
}
