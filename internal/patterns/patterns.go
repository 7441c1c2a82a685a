// Package patterns implements the Pattern Bank: an ordered list of
// recognition rules, each a matcher plus a target (protocol, action)
// plus a parameter extractor. First match wins. Grounded in shape (not
// content — the domain differs entirely) on the rule-table idiom seen
// in other_examples' natural_language.go command parser: a table of
// regex-like rules walked top-to-bottom, the first satisfied rule
// winning and producing a structured command.
package patterns

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
)

// Pattern is one bank entry. Match is tried first against the
// case-preserving form of the segment (mint addresses are
// case-sensitive base58), then against the lower-cased form (verbs are
// not case-sensitive), per §4.3's pre-processing rule.
type Pattern struct {
	Name      string
	Match     *regexp.Regexp
	Protocol  intent.Tag
	Action    string
	Extractor func(groups map[string]string) map[string]interface{}
}

// Bank is the process-wide, immutable, ordered rule list. Built once at
// package init; never mutated after.
var Bank []Pattern

var registry = mints.New()

func init() {
	Bank = buildBank()
}

func numGroups(re *regexp.Regexp) []string { return re.SubexpNames() }

func groupMap(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string)
	for i, name := range numGroups(re) {
		if name == "" || i >= len(m) {
			continue
		}
		out[name] = m[i]
	}
	return out
}

func amountOf(groups map[string]string) interface{} {
	raw := groups["amount"]
	if raw == "" {
		return nil
	}
	if raw == "all" {
		return intent.AmountAll
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return f
}

// normalizeParams applies the post-extraction Mint Registry rules from
// §4.3: `from` is always resolved; `to` only when it looks like a
// symbol (len<=10); `token` is resolved unless the action is unstake
// or close (which need the raw symbol for presentation).
func normalizeParams(action string, params map[string]interface{}) map[string]interface{} {
	if from, ok := params["from"].(string); ok && from != "" {
		params["from"] = registry.Resolve(from)
	}
	if to, ok := params["to"].(string); ok && to != "" {
		if len(to) <= 10 {
			params["to"] = registry.Resolve(to)
		}
	}
	if tok, ok := params["token"].(string); ok && tok != "" {
		if action != "unstake" && action != "close" {
			params["token"] = registry.Resolve(tok)
		}
	}
	return params
}

// MatchSegment walks the bank top to bottom against both the case-preserving
// and lower-cased forms of segment, returning the first hit.
func MatchSegment(original, lowered string) (*intent.ParsedIntent, bool) {
	for _, p := range Bank {
		if m := p.Match.FindStringSubmatch(original); m != nil {
			return buildResult(p, m), true
		}
	}
	for _, p := range Bank {
		if m := p.Match.FindStringSubmatch(lowered); m != nil {
			return buildResult(p, m), true
		}
	}
	return nil, false
}

func buildResult(p Pattern, m []string) *intent.ParsedIntent {
	groups := groupMap(p.Match, m)
	params := p.Extractor(groups)
	params = normalizeParams(p.Action, params)
	return &intent.ParsedIntent{
		Protocol:   p.Protocol,
		Action:     p.Action,
		Params:     params,
		Confidence: intent.ConfidenceDirectMatch,
	}
}

const amt = `(?P<amount>[0-9]*\.?[0-9]+|all)`
const addr = `(?P<addr>[1-9A-HJ-NP-Za-km-z]{32,44})`
const addr2 = `(?P<addr2>[1-9A-HJ-NP-Za-km-z]{32,44})`
const sym = `(?P<symbol>[A-Za-z][A-Za-z0-9]{0,9})`
const sym2 = `(?P<symbol2>[A-Za-z][A-Za-z0-9]{0,9})`

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

func buildBank() []Pattern {
	var b []Pattern

	// --- Lending: named venue precedes generic (§4.3 ordering rule 1) ---
	for _, venue := range []struct {
		name string
		tag  intent.Tag
	}{{"kamino", intent.TagKamino}, {"marginfi", intent.TagMarginfi}, {"solend", intent.TagSolend}} {
		v := venue
		b = append(b,
			Pattern{
				Name:     v.name + "-supply",
				Match:    re(`\b(?:supply|deposit|lend|put|invest|lock)\s+` + amt + `\s+` + sym + `\s+(?:to|on|into)\s+` + v.name + `\b`),
				Protocol: v.tag, Action: "supply",
				Extractor: func(g map[string]string) map[string]interface{} {
					return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
				},
			},
			Pattern{
				Name:     v.name + "-borrow",
				Match:    re(`\bborrow\s+` + amt + `\s+` + sym + `\s+(?:on|from)\s+` + v.name + `\b`),
				Protocol: v.tag, Action: "borrow",
				Extractor: func(g map[string]string) map[string]interface{} {
					return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
				},
			},
			Pattern{
				Name:     v.name + "-repay",
				Match:    re(`\b(?:repay|pay back|pay off|settle|return)\s+` + amt + `\s+` + sym + `\s+(?:on|to|against)?\s*(?:my\s+)?` + v.name + `\b`),
				Protocol: v.tag, Action: "repay",
				Extractor: func(g map[string]string) map[string]interface{} {
					return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
				},
			},
			Pattern{
				Name:     v.name + "-withdraw",
				Match:    re(`\b(?:withdraw|pull out|take out|pull)\s+` + amt + `\s+` + sym + `\s+(?:from)?\s*(?:my\s+)?` + v.name + `\b`),
				Protocol: v.tag, Action: "withdraw",
				Extractor: func(g map[string]string) map[string]interface{} {
					return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
				},
			},
		)
	}
	// generic lending defaults to Kamino
	b = append(b,
		Pattern{
			Name:     "lend-generic-supply",
			Match:    re(`\b(?:supply|deposit|lend|put|invest|lock)\s+` + amt + `\s+` + sym + `\b`),
			Protocol: intent.TagKamino, Action: "supply",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "lend-generic-borrow",
			Match:    re(`\bborrow\s+` + amt + `\s+` + sym + `\b`),
			Protocol: intent.TagKamino, Action: "borrow",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
	)

	// --- Native/liquid stake: unstake precedes stake (ordering rule 2) ---
	b = append(b,
		Pattern{
			Name:     "marinade-unstake",
			Match:    re(`\bunstake\s+` + amt + `\s+msol\b`),
			Protocol: intent.TagMarinade, Action: "unstake",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": "MSOL"}
			},
		},
		Pattern{
			Name:     "native-unstake",
			Match:    re(`\b(?:deactivate|withdraw)\s+stake\b`),
			Protocol: intent.TagNativeStake, Action: "unstake",
			Extractor: func(g map[string]string) map[string]interface{} { return map[string]interface{}{} },
		},
		Pattern{
			Name:     "marinade-liquid-stake",
			Match:    re(`\b(?:liquid stake|stake)\s+` + amt + `\s+sol\s+with\s+marinade\b`),
			Protocol: intent.TagMarinade, Action: "stake",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g)}
			},
		},
		Pattern{
			Name:     "native-stake",
			Match:    re(`\b(?:native\s+)?stake\s+` + amt + `\s+sol\b`),
			Protocol: intent.TagNativeStake, Action: "stake",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g)}
			},
		},
	)

	// --- Venue-qualified swap precedes unqualified (ordering rule 3) ---
	for _, venue := range []struct {
		name string
		tag  intent.Tag
	}{{"raydium", intent.TagRaydium}, {"orca", intent.TagOrca}, {"meteora", intent.TagMeteora}} {
		v := venue
		b = append(b, Pattern{
			Name:     "swap-on-" + v.name,
			Match:    re(`\bswap\s+` + amt + `\s+` + sym + `\s+for\s+` + sym2 + `\s+on\s+` + v.name + `\b`),
			Protocol: v.tag, Action: "swap",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "from": g["symbol"], "to": g["symbol2"]}
			},
		})
	}

	// --- Token-2022 transfer precedes plain transfer family ---
	b = append(b, Pattern{
		Name:     "token2022-transfer",
		Match:    re(`\bsend\s+` + amt + `\s+` + sym + `\s+to\s+` + addr + `\s+using\s+token-2022\b`),
		Protocol: intent.TagToken2022, Action: "transfer",
		Extractor: func(g map[string]string) map[string]interface{} {
			return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"], "to": g["addr"]}
		},
	})

	// --- Full-address token transfer precedes symbol transfer (rule 4) ---
	b = append(b,
		Pattern{
			Name:     "transfer-sol",
			Match:    re(`\bsend\s+` + amt + `\s+sol\s+to\s+` + addr + `\b`),
			Protocol: intent.TagSystem, Action: "transfer",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "to": g["addr"]}
			},
		},
		Pattern{
			Name:     "transfer-token-by-addr",
			Match:    re(`\bsend\s+` + amt + `\s+` + addr + `\s+to\s+` + addr2 + `\b`),
			Protocol: intent.TagSPLToken, Action: "transfer",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["addr"], "to": g["addr2"]}
			},
		},
		Pattern{
			Name:     "transfer-token-by-symbol",
			Match:    re(`\bsend\s+` + amt + `\s+` + sym + `\s+to\s+` + addr + `\b`),
			Protocol: intent.TagSPLToken, Action: "transfer",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"], "to": g["addr"]}
			},
		},
		Pattern{
			Name:     "pay-form",
			Match:    re(`\bpay\s+` + addr + `\s+` + amt + `\s+` + sym + `\b`),
			Protocol: intent.TagSPLToken, Action: "transfer",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"], "to": g["addr"]}
			},
		},
	)

	// --- Memo ---
	b = append(b,
		Pattern{
			Name:     "memo-quoted",
			Match:    re(`\bmemo\s+"(?P<text>[^"]*)"`),
			Protocol: intent.TagMemo, Action: "memo",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"text": g["text"]}
			},
		},
		Pattern{
			Name:     "memo-write-onchain",
			Match:    re(`\bwrite\s+onchain\s+memo:\s*(?P<text>.+)$`),
			Protocol: intent.TagMemo, Action: "memo",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"text": strings.TrimSpace(g["text"])}
			},
		},
		Pattern{
			Name:     "memo-bare",
			Match:    re(`\bmemo\s+(?P<text>.+)$`),
			Protocol: intent.TagMemo, Action: "memo",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"text": strings.TrimSpace(g["text"])}
			},
		},
	)

	// --- Jito tip ---
	b = append(b,
		Pattern{
			Name:     "jito-tip-to",
			Match:    re(`\btip\s+` + amt + `\s+sol\s+to\s+jito\b`),
			Protocol: intent.TagJito, Action: "tip",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g)}
			},
		},
		Pattern{
			Name:     "jito-tip-prefix",
			Match:    re(`\bjito\s+tip\s+` + amt + `\b`),
			Protocol: intent.TagJito, Action: "tip",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g)}
			},
		},
		Pattern{
			Name:     "jito-tip-send",
			Match:    re(`\bsend\s+jito\s+tip\b`),
			Protocol: intent.TagJito, Action: "tip",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{}
			},
		},
	)

	// --- Memecoin venue (pump.fun) ---
	b = append(b,
		Pattern{
			Name:     "pumpfun-create",
			Match:    re(`\bcreate\s+token\s+on\s+pump\.fun\s+called\s+"(?P<tname>[^"]+)"\s+symbol\s+(?P<symbol>[A-Za-z0-9]+)`),
			Protocol: intent.TagPumpfun, Action: "create",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"name": g["tname"], "symbol": g["symbol"]}
			},
		},
		Pattern{
			Name:     "pumpfun-buy",
			Match:    re(`\bbuy\s+` + amt + `\s*(?:` + sym + `\s+)?on\s+pump\.fun\b`),
			Protocol: intent.TagPumpfun, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "pumpfun-sell",
			Match:    re(`\bsell\s+` + amt + `\s*(?:` + sym + `\s+)?on\s+pump\.fun\b`),
			Protocol: intent.TagPumpfun, Action: "sell",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
	)

	// --- Venue LP ops ---
	b = append(b,
		Pattern{
			Name:     "orca-provide-liquidity",
			Match:    re(`\bprovide\s+` + amt + `\s+` + sym + `\s+liquidity\s+on\s+orca\b`),
			Protocol: intent.TagOrca, Action: "provide-liquidity",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "add-liquidity-pool",
			Match:    re(`\badd\s+liquidity\s+to\s+` + addr + `\b`),
			Protocol: intent.TagOrca, Action: "add-liquidity",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"pool": g["addr"]}
			},
		},
		Pattern{
			Name:     "remove-liquidity-pool",
			Match:    re(`\bremove\s+liquidity\s+from\s+` + addr + `\b`),
			Protocol: intent.TagOrca, Action: "remove-liquidity",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"pool": g["addr"]}
			},
		},
		Pattern{
			Name:     "orca-open-position",
			Match:    re(`\bopen\s+orca\s+position\s+(?P<base>[A-Za-z0-9]+)/(?P<quote>[A-Za-z0-9]+)\s+from\s+(?P<tickLow>-?[0-9]+)\s+to\s+(?P<tickHigh>-?[0-9]+)\b`),
			Protocol: intent.TagOrca, Action: "open-position",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{
					"base": g["base"], "quote": g["quote"],
					"tickLower": g["tickLow"], "tickUpper": g["tickHigh"],
				}
			},
		},
		Pattern{
			Name:     "orca-close-position",
			Match:    re(`\bclose\s+orca\s+position\s+` + addr + `\b`),
			Protocol: intent.TagOrca, Action: "close-position",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"position": g["addr"]}
			},
		},
		Pattern{
			Name:     "meteora-add-liquidity-pair",
			Match:    re(`\badd\s+liquidity\s+` + amt + `\s+(?P<symbol1>[A-Za-z0-9]+)\s+and\s+(?P<amount2>[0-9]*\.?[0-9]+)\s+(?P<symbol2>[A-Za-z0-9]+)\s+to\s+meteora\b`),
			Protocol: intent.TagMeteora, Action: "add-liquidity",
			Extractor: func(g map[string]string) map[string]interface{} {
				a2, _ := strconv.ParseFloat(g["amount2"], 64)
				return map[string]interface{}{
					"amount": amountOf(g), "token": g["symbol1"],
					"amount2": a2, "token2": g["symbol2"],
				}
			},
		},
		Pattern{
			Name:     "meteora-remove-liquidity-pct",
			Match:    re(`\bremove\s+(?P<pct>[0-9]+)%\s+liquidity\s+from\s+meteora\s+position\s+` + addr + `\b`),
			Protocol: intent.TagMeteora, Action: "remove-liquidity",
			Extractor: func(g map[string]string) map[string]interface{} {
				pct, _ := strconv.Atoi(g["pct"])
				return map[string]interface{}{"percent": pct, "position": g["addr"]}
			},
		},
	)

	// --- Account creation: ATA precedes generic account (rule 5) ---
	b = append(b,
		Pattern{
			Name:     "create-token-account",
			Match:    re(`\bcreate\s+(?:token\s+account|ata)\s+for\s+` + sym + `\b`),
			Protocol: intent.TagSPLToken, Action: "create-account",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "create-account-generic",
			Match:    re(`\bcreate\s+account\b`),
			Protocol: intent.TagSystem, Action: "create-account",
			Extractor: func(g map[string]string) map[string]interface{} { return map[string]interface{}{} },
		},
	)

	// --- Buy/sell by symbol, address, or pair ---
	b = append(b,
		Pattern{
			Name:     "buy-pair",
			Match:    re(`\bbuy\s+` + amt + `\s+sol\s+of\s+pair\s+` + addr + `\b`),
			Protocol: intent.TagResolvePair, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "pair": g["addr"]}
			},
		},
		Pattern{
			Name:     "sell-pair",
			Match:    re(`\bsell\s+from\s+pair\s+` + addr + `\b`),
			Protocol: intent.TagResolvePair, Action: "sell",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"pair": g["addr"]}
			},
		},
		Pattern{
			Name:     "buy-sol-of-token",
			Match:    re(`\bbuy\s+` + amt + `\s+sol\s+of\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "buy-token-with-sol",
			Match:    re(`\bbuy\s+` + sym + `\s+with\s+` + amt + `\s+sol\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "ape-into",
			Match:    re(`\bape\s+` + amt + `\s+sol\s+into\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "put-into",
			Match:    re(`\bput\s+` + amt + `\s+sol\s+into\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "long-short",
			Match:    re(`\b(?:long|short)\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": 1.0, "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "yolo-spend",
			Match:    re(`\b(?:yolo|spend)\s+` + amt + `\s+sol\s+(?:into|on)\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "buy",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "sell-all",
			Match:    re(`\bsell\s+all\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "sell",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": intent.AmountAll, "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "sell-amount",
			Match:    re(`\bsell\s+` + amt + `\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "sell",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "token": g["symbol"]}
			},
		},
		Pattern{
			Name:     "dump-exit",
			Match:    re(`\b(?:dump|exit)\s+` + sym + `\b`),
			Protocol: intent.TagResolveToken, Action: "sell",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": intent.AmountAll, "token": g["symbol"]}
			},
		},
	)

	// --- Swap / convert / trade / exchange (aggregator), unqualified (after venue-qualified) ---
	b = append(b,
		Pattern{
			Name:     "swap-for",
			Match:    re(`\bswap\s+` + amt + `\s+` + sym + `\s+for\s+` + sym2 + `\b`),
			Protocol: intent.TagAggregator, Action: "swap",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "from": g["symbol"], "to": g["symbol2"]}
			},
		},
		Pattern{
			Name:     "change-all",
			Match:    re(`\bchange\s+all\s+` + sym + `\s+(?:for|to)\s+` + sym2 + `\b`),
			Protocol: intent.TagAggregator, Action: "swap",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": intent.AmountAll, "from": g["symbol"], "to": g["symbol2"]}
			},
		},
		Pattern{
			Name:     "convert-trade-exchange-change",
			Match:    re(`\b(?:convert|trade|exchange|change)\s+` + amt + `\s+` + sym + `\s+(?:for|to|into)\s+` + sym2 + `\b`),
			Protocol: intent.TagAggregator, Action: "swap",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"amount": amountOf(g), "from": g["symbol"], "to": g["symbol2"]}
			},
		},
	)

	// --- Priority modifier reparse, declared last per §4.3 — unreachable
	// by construction; kept only to document intent, real stripping
	// happens pre-match via StripPriorityModifiers. See DESIGN.md. ---
	b = append(b,
		Pattern{
			Name:     "reparse-priority-tail",
			Match:    re(`^(?P<body>.+?)\s+with\s+(?:high\s+)?priority$`),
			Protocol: intent.TagReparse, Action: "reparse",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"originalPrompt": g["body"]}
			},
		},
		Pattern{
			Name:     "reparse-urgently",
			Match:    re(`^(?P<body>.+?)\s+urgently$`),
			Protocol: intent.TagReparse, Action: "reparse",
			Extractor: func(g map[string]string) map[string]interface{} {
				return map[string]interface{}{"originalPrompt": g["body"]}
			},
		},
	)

	return b
}
