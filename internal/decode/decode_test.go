package decode

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

type fakeHandlers struct{ names []string }

func (f fakeHandlers) RegistrationOrder() []string { return f.names }

func encodeTx(t *testing.T, raw rawTransaction) string {
	t.Helper()
	blob, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal raw tx: %v", err)
	}
	return base64.StdEncoding.EncodeToString(blob)
}

func TestDecode_RecognizesKnownProgram(t *testing.T) {
	d, err := New(fakeHandlers{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	txB64 := encodeTx(t, rawTransaction{
		Instructions: []rawInstruction{
			{
				ProgramID: "11111111111111111111111111111111111111",
				Accounts:  []rawAccountMeta{{Pubkey: "abc", IsSigner: true, IsWritable: true}},
				Data:      base64.StdEncoding.EncodeToString([]byte{2, 0, 0, 0}),
			},
		},
	})

	records, err := d.Decode(txB64)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].RecognizedVenue != "system" {
		t.Errorf("RecognizedVenue = %q, want %q", records[0].RecognizedVenue, "system")
	}
	if records[0].ProgramName != "System Program" {
		t.Errorf("ProgramName = %q, want %q", records[0].ProgramName, "System Program")
	}
	if records[0].DataHex != "02000000" {
		t.Errorf("DataHex = %q, want %q", records[0].DataHex, "02000000")
	}
	if len(records[0].Accounts) != 1 || records[0].Accounts[0] != "abc" {
		t.Errorf("Accounts = %v, want [\"abc\"] (pubkeys extracted from account metadata)", records[0].Accounts)
	}
}

func TestDecode_UnknownProgramFallsBackToFuzzyMatch(t *testing.T) {
	d, err := New(fakeHandlers{names: []string{"raydium"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	txB64 := encodeTx(t, rawTransaction{
		Instructions: []rawInstruction{
			{ProgramID: "some-raydium-pool-variant", Accounts: nil, Data: ""},
		},
	})

	records, err := d.Decode(txB64)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if records[0].RecognizedVenue != "raydium" {
		t.Errorf("RecognizedVenue = %q, want %q", records[0].RecognizedVenue, "raydium")
	}
}

func TestDecode_InvalidBase64(t *testing.T) {
	d, err := New(fakeHandlers{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Decode("not-valid-base64!!!"); err == nil {
		t.Error("expected error for invalid base64, got nil")
	}
}
