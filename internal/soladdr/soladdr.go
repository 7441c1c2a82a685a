// Package soladdr validates and classifies the base58 identifiers the
// engine passes around: mints and wallet public keys. Base58
// handling is grounded on the same github.com/mr-tron/base58 package
// used by the retrieved solana-token-lab dex_parser.go to decode
// program/account identifiers out of log data.
package soladdr

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
)

// MinLen and MaxLen bound a well-formed base58 Solana public key.
const (
	MinLen = 32
	MaxLen = 44
)

// WrappedSOL is the canonical mint for native SOL once wrapped.
const WrappedSOL = "So11111111111111111111111111111111111111112"

// LooksLikeAddress reports whether s is in the 32-44 character base58
// range AND decodes to exactly 32 bytes, the shape of a Solana public
// key. It does not verify the key lies on curve or off it.
func LooksLikeAddress(s string) bool {
	if len(s) < MinLen || len(s) > MaxLen {
		return false
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(decoded) == ed25519.PublicKeySize
}

// LooksLikeSymbol reports whether s is short enough to be a ticker
// symbol (length <= 10) rather than a full mint address, per the
// parser's post-extraction normalization rule for `to` fields.
func LooksLikeSymbol(s string) bool {
	return len(s) > 0 && len(s) <= 10
}

// Validate returns an error describing why s is not a well-formed
// base58 public key, or nil if it is.
func Validate(s string) error {
	if !LooksLikeAddress(s) {
		return &InvalidAddressError{Value: s}
	}
	return nil
}

// InvalidAddressError reports a malformed base58 public key.
type InvalidAddressError struct{ Value string }

func (e *InvalidAddressError) Error() string {
	return "not a valid base58 Solana address: " + e.Value
}
