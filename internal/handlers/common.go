// Package handlers implements the protocol handlers named in §4.8:
// each declares its name, description, supported actions, a parameter
// validator, and a builder producing opaque instruction records. The
// wire-level encoding of any individual protocol's instruction data is
// delegated to a chain-SDK collaborator outside this package (§1); a
// handler's Build method only assembles the account list and a data
// payload placeholder for that collaborator to encode.
package handlers

import "fmt"

// ToolError is a structured (Tool, Message, Code) error, reused here
// for handler-level failures so every boundary in the engine reports
// errors the same way.
type ToolError struct {
	Tool    string
	Message string
	Code    string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Tool, e.Message, e.Code)
}

// NotImplemented builds the explicit error a skeleton-only handler
// raises instead of silently emitting placeholder instructions, per
// spec.md §9's explicit choice (a) for Raydium/Orca/Meteora/Pump.fun/
// Kamino/Marginfi/Solend/Token-2022/Meteora-LP.
func NotImplemented(name, action string) error {
	return &ToolError{
		Tool:    name,
		Message: fmt.Sprintf("action %q is not implemented: this handler only ships skeleton coverage; swaps route through the aggregator", action),
		Code:    "not_implemented",
	}
}

func floatParam(params map[string]interface{}, key string) (float64, bool) {
	v, ok := params[key].(float64)
	return v, ok
}

func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}
