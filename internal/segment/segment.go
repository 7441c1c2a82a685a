// Package segment implements the Prompt Segmenter: splitting a compound
// prompt ("do X and then Y") into independently parseable pieces along
// a closed set of joiners, but only where the joiner is immediately
// followed by a recognized action verb — preserving the verb at the
// start of the following segment.
package segment

import (
	"regexp"
	"strings"
)

// verbs is the closed set of action verbs that may follow a joiner.
// Longer, multi-word verbs are listed before their single-word prefixes
// so the regex alternation tries them first.
var verbs = []string{
	"liquid stake", "native stake", "take a loan", "loan me", "take out",
	"pay back", "pay off", "get a loan", "pull out",
	"swap", "send", "transfer", "tip", "stake", "unstake", "buy", "sell",
	"ape", "memo", "write", "create", "close", "dump", "convert", "trade",
	"exchange", "provide", "add", "remove", "open", "deactivate",
	"withdraw", "supply", "deposit", "lend", "borrow", "repay", "put",
	"invest", "lock", "settle", "return",
}

// joiners is the closed set of splitting tokens.
var joiners = []string{" and ", " then ", " also ", " + ", ", "}

var splitRe = buildSplitRe()

func buildSplitRe() *regexp.Regexp {
	var joinerAlts []string
	for _, j := range joiners {
		joinerAlts = append(joinerAlts, regexp.QuoteMeta(j))
	}
	var verbAlts []string
	for _, v := range verbs {
		verbAlts = append(verbAlts, regexp.QuoteMeta(v))
	}
	// The joiner is captured so the verb it precedes is preserved in the
	// following segment's head; the verb itself must sit at a word
	// boundary so "and" inside "expand"/"band"/"understand" never
	// matches a joiner lookahead (the joiner token itself already
	// requires surrounding spaces, which rules those words out too).
	pattern := "(?i)(" + strings.Join(joinerAlts, "|") + ")(" + strings.Join(verbAlts, "|") + ")\\b"
	return regexp.MustCompile(pattern)
}

// Split divides prompt into segments along recognized joiners, only
// where a recognized verb immediately follows. A prompt with no
// matching joiner returns a singleton slice. Empty segments (e.g. from
// leading/trailing joiners) are discarded.
func Split(prompt string) []string {
	matches := splitRe.FindAllStringSubmatchIndex(prompt, -1)
	if len(matches) == 0 {
		trimmed := strings.TrimSpace(prompt)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	var segments []string
	prev := 0
	for _, m := range matches {
		joinerStart, joinerEnd := m[2], m[3]
		verbStart := m[4]
		head := strings.TrimSpace(prompt[prev:joinerStart])
		if head != "" {
			segments = append(segments, head)
		}
		prev = verbStart
		_ = joinerEnd
	}
	tail := strings.TrimSpace(prompt[prev:])
	if tail != "" {
		segments = append(segments, tail)
	}
	if len(segments) == 0 {
		trimmed := strings.TrimSpace(prompt)
		if trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return segments
}
