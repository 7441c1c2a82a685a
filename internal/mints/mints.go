// Package mints implements the Mint Registry: a small, fixed, immutable
// table substituting a human-friendly symbol with its canonical mint
// address. Grounded on the teacher's static, env-independent lookup
// tables (internal/models.defaultNetworks) — built once, read without
// locking thereafter, per the concurrency model's "built once at
// startup, thereafter immutable" rule for this kind of table.
package mints

import "strings"

// Registry resolves token symbols to canonical mint addresses.
type Registry struct {
	bySymbol map[string]string
}

// WellKnown is the shipped table named in the external contract: SOL and
// seventeen widely traded SPL tokens. Part of the external interface —
// changing an entry is a contract change, not an implementation detail.
var WellKnown = map[string]string{
	"SOL":   "So11111111111111111111111111111111111111112",
	"USDC":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	"USDT":  "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
	"RAY":   "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
	"SRM":   "SRMuApVNdxXokk5GT7XD5cUUgXMBCoAz2LHeuAoKWRt",
	"FTT":   "AGFEad2et2ZJif9jaGpdMixQqvW5i81aBdvKe7PHNfz3",
	"MNGO":  "MangoCzJ36AjZyKwVj3VnYU4GTonjfVEnJmvvWaxLac",
	"MSOL":  "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So",
	"ORCA":  "orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE",
	"GMT":   "7i5KKsX2weiTkry7jA4ZwSuXGhs5eJBEjY8vVxR4pfRx",
	"BONK":  "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
	"JUP":   "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN",
	"WIF":   "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm",
	"PYTH":  "HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3",
	"JTO":   "jtojtomepa8beP8AuQc6eXt5FriJwfFMwQx2v2f9mCL",
	"RNDR":  "rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof",
	"HNT":   "hntyVP6YFm1Hg25TN9WGLqM12b8TQmcknKrdu1oxWux",
	"MNDE":  "MNDEFzGvMt87ueuHvVU9VcTqsAP5b3fTGPsHuuPA5ey",
}

// New builds a Registry from the well-known table. The returned value is
// immutable; callers never mutate it after construction.
func New() *Registry {
	r := &Registry{bySymbol: make(map[string]string, len(WellKnown))}
	for symbol, mint := range WellKnown {
		r.bySymbol[strings.ToUpper(symbol)] = mint
	}
	return r
}

// Resolve substitutes a symbol with its canonical mint. Lookup is
// case-insensitive. An unknown input — including anything that is
// already a mint address — is returned unchanged, which is what makes
// Resolve idempotent: Resolve(Resolve(x)) == Resolve(x) for all x.
func (r *Registry) Resolve(token string) string {
	if token == "" {
		return ""
	}
	if mint, ok := r.bySymbol[strings.ToUpper(token)]; ok {
		return mint
	}
	return token
}
