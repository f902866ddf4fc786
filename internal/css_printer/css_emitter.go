// Package css_printer flattens a resolved rule tree into an ordered list
// of CSS rules (Emit) and then walks that list into CSS text (Print),
// separating "what order do rules come out in" from "what bytes does
// each rule produce".
package css_printer

import "github.com/stylekit/scssc/internal/css_ast"

// FlatRule is one emitted rule: a fully concatenated selector and the
// properties declared directly on it. Rules with no properties still
// appear: an empty block is never elided.
type FlatRule struct {
	Selector   string
	Properties []css_ast.Property
}

// Emit flattens a resolved tree into depth-first pre-order: each rule is
// emitted before its children, and a child's effective selector is its
// parent's effective selector plus a descendant combinator plus its own
// selector.
func Emit(sheet *css_ast.StyleSheet) []FlatRule {
	var flat []FlatRule
	for _, rule := range sheet.Rules {
		flat = emitRule(rule, "", flat)
	}
	return flat
}

func emitRule(rule *css_ast.StyleRule, parentSelector string, flat []FlatRule) []FlatRule {
	effective := rule.Selector
	if parentSelector != "" {
		effective = parentSelector + " " + rule.Selector
	}

	flat = append(flat, FlatRule{Selector: effective, Properties: rule.Properties})

	for _, child := range rule.Children {
		flat = emitRule(child, effective, flat)
	}
	return flat
}
