// Package css_resolver performs an in-place variable substitution pass
// over a parsed rule tree: a small tree walk that rewrites fields in
// place and returns early on the first error, with no partial output on
// failure.
package css_resolver

import (
	"strings"

	"github.com/stylekit/scssc/internal/css_ast"
	"github.com/stylekit/scssc/internal/errs"
)

// Resolve rewrites every variable reference in sheet to its literal
// value, under lexical scoping: a reference resolves to the nearest
// preceding binding of the same name, searching a scope's flattened
// variable snapshot in reverse so shadowing is honored for free.
func Resolve(sheet *css_ast.StyleSheet) error {
	if err := resolveVariableList(sheet.Variables); err != nil {
		return err
	}
	for _, rule := range sheet.Rules {
		if err := resolveRule(rule); err != nil {
			return err
		}
	}
	return nil
}

func resolveRule(rule *css_ast.StyleRule) error {
	if err := resolveVariableList(rule.Variables); err != nil {
		return err
	}
	for i, prop := range rule.Properties {
		if !isReference(prop.Value) {
			continue
		}
		resolved, ok := lookupReverse(rule.Variables, len(rule.Variables), prop.Value)
		if !ok {
			return errs.New(errs.UndefinedVariable, "undefined variable "+prop.Value+" referenced by property "+prop.Name)
		}
		rule.Properties[i].Value = resolved
	}
	for _, child := range rule.Children {
		if err := resolveRule(child); err != nil {
			return err
		}
	}
	return nil
}

// resolveVariableList resolves each entry of a single flattened variable
// list in source order. Forward references within the same list are
// rejected: a reference at index i may only see entries in [0, i).
func resolveVariableList(vars []css_ast.Variable) error {
	for i := range vars {
		if !isReference(vars[i].Value) {
			continue
		}
		resolved, ok := lookupReverse(vars, i, vars[i].Value)
		if !ok {
			return errs.New(errs.UndefinedVariable, "undefined variable "+vars[i].Value+" referenced by "+vars[i].Name)
		}
		vars[i].Value = resolved
	}
	return nil
}

func isReference(value string) bool {
	return strings.HasPrefix(value, "$")
}

// lookupReverse scans vars[0:limit] in reverse for a binding named name,
// so the nearest (innermost, or latest-declared) binding wins.
func lookupReverse(vars []css_ast.Variable, limit int, name string) (string, bool) {
	for i := limit - 1; i >= 0; i-- {
		if vars[i].Name == name {
			return vars[i].Value, true
		}
	}
	return "", false
}
