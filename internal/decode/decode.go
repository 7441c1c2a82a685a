// Package decode implements the auxiliary Decoder (§4.11): given a
// base64-encoded transaction, produce a list of
// {programId, accounts[], dataHex, recognizedVenue?} records. The
// well-known-programs table is shipped as embedded CSV data rather than
// Go code, mirroring the teacher's static_context_provider.go CSV-
// loading idiom, adapted from an external data directory to an
// embedded file since this engine ships as a single binary.
package decode

import (
	"embed"
	"encoding/base64"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/known_programs.csv
var knownProgramsCSV embed.FS

// ProgramInfo is one row of the well-known-programs table.
type ProgramInfo struct {
	ProgramID string
	Name      string
	Venue     string
}

// InstructionRecord is one decoded instruction.
type InstructionRecord struct {
	ProgramID       string   `json:"programId"`
	Accounts        []string `json:"accounts"`
	DataHex         string   `json:"dataHex"`
	RecognizedVenue string   `json:"recognizedVenue,omitempty"`
	ProgramName     string   `json:"programName,omitempty"`
}

// Decoder recognizes program IDs against the known-programs table, plus
// a fuzzy name-substring match against a registered handler's name.
type Decoder struct {
	byProgramID  map[string]ProgramInfo
	handlerNames []string
}

// HandlerNamer is satisfied by the Protocol Registry; kept narrow so
// this package doesn't need to import internal/registry directly.
type HandlerNamer interface {
	RegistrationOrder() []string
}

func New(handlers HandlerNamer) (*Decoder, error) {
	file, err := knownProgramsCSV.Open("data/known_programs.csv")
	if err != nil {
		return nil, fmt.Errorf("open known programs table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse known programs table: %w", err)
	}

	byProgramID := make(map[string]ProgramInfo)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header row
		}
		byProgramID[row[0]] = ProgramInfo{ProgramID: row[0], Name: row[1], Venue: row[2]}
	}

	var handlerNames []string
	if handlers != nil {
		handlerNames = handlers.RegistrationOrder()
	}

	return &Decoder{byProgramID: byProgramID, handlerNames: handlerNames}, nil
}

// rawAccountMeta mirrors internal/txn.AccountMeta's wire shape: the
// builder's Transaction serializes instructions with full account
// metadata, not bare pubkey strings.
type rawAccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// rawInstruction is the legacy/versioned transaction's wire shape for a
// single instruction, the parts this decoder needs regardless of
// transaction version.
type rawInstruction struct {
	ProgramID string           `json:"programId"`
	Accounts  []rawAccountMeta `json:"accounts"`
	Data      string           `json:"data"` // base64 instruction data
}

type rawTransaction struct {
	Instructions []rawInstruction `json:"instructions"`
}

// Decode parses a base64-encoded transaction (legacy or versioned,
// distinguished only by whether the outer payload decodes to the JSON
// shape above — the actual wire-format parsing is a chain-SDK concern
// outside this repo's scope) into a list of instruction records with
// recognized venues attached where possible.
func (d *Decoder) Decode(txB64 string) ([]InstructionRecord, error) {
	blob, err := base64.StdEncoding.DecodeString(txB64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 transaction: %w", err)
	}

	var raw rawTransaction
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("unrecognized transaction payload: %w", err)
	}

	records := make([]InstructionRecord, 0, len(raw.Instructions))
	for _, ix := range raw.Instructions {
		dataBytes, _ := base64.StdEncoding.DecodeString(ix.Data)
		accounts := make([]string, len(ix.Accounts))
		for i, acc := range ix.Accounts {
			accounts[i] = acc.Pubkey
		}
		record := InstructionRecord{
			ProgramID: ix.ProgramID,
			Accounts:  accounts,
			DataHex:   hex.EncodeToString(dataBytes),
		}
		if info, ok := d.byProgramID[ix.ProgramID]; ok {
			record.RecognizedVenue = info.Venue
			record.ProgramName = info.Name
		} else if venue := d.fuzzyMatch(ix.ProgramID); venue != "" {
			record.RecognizedVenue = venue
		}
		records = append(records, record)
	}
	return records, nil
}

// fuzzyMatch does a name-substring match against registered handler
// names when the program ID isn't in the well-known table — useful for
// venue variants (e.g. a new Raydium pool program) sharing a name
// fragment with a registered handler.
func (d *Decoder) fuzzyMatch(programID string) string {
	lower := strings.ToLower(programID)
	for _, name := range d.handlerNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
