package patterns

import (
	"regexp"
	"strings"
)

// PriorityHint is the modifier captured by StripPriorityModifiers.
type PriorityHint struct {
	High bool
	Raw  string
}

var priorityTailRe = regexp.MustCompile(`(?i)\s+with\s+(high\s+)?priority$`)
var urgentlyTailRe = regexp.MustCompile(`(?i)\s+urgently$`)

// StripPriorityModifiers removes a trailing priority/urgency modifier
// from prompt before pattern matching runs, and returns the hint
// separately. This supersedes the bank's own reparse-* entries, which
// the specification's own review flags as unreachable: an earlier
// literal pattern in the bank would otherwise swallow the whole line
// before the modifier can be stripped. Running this pass first, outside
// the bank, makes the modifier always observable regardless of which
// action pattern ultimately matches the remainder.
func StripPriorityModifiers(prompt string) (string, *PriorityHint) {
	if m := priorityTailRe.FindStringSubmatchIndex(prompt); m != nil {
		hint := &PriorityHint{High: true, Raw: strings.TrimSpace(prompt[m[0]:m[1]])}
		return strings.TrimSpace(prompt[:m[0]]), hint
	}
	if loc := urgentlyTailRe.FindStringIndex(prompt); loc != nil {
		hint := &PriorityHint{High: true, Raw: strings.TrimSpace(prompt[loc[0]:loc[1]])}
		return strings.TrimSpace(prompt[:loc[0]]), hint
	}
	return prompt, nil
}
