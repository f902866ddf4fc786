// Package css_ast defines the nested rule tree the parser produces: a
// straightforward tagged tree with owned child slices and no
// back-references.
package css_ast

// Variable is a name/value pair. Name always includes the leading '$';
// Value is an unresolved lexeme until the resolver pass runs, after
// which it is always a literal and never begins with '$'.
type Variable struct {
	Name  string
	Value string
}

// Property is a declaration's name/value pair. Value is an unresolved
// lexeme until resolution.
type Property struct {
	Name  string
	Value string
}

// StyleRule is a single nested rule: one selector, its own properties,
// its nested child rules in source order, and a flattened snapshot of
// every variable visible at this scope (ancestor bindings first, own
// bindings appended after, in source order).
type StyleRule struct {
	Selector   string
	Properties []Property
	Children   []*StyleRule
	Variables  []Variable
}

// StyleSheet is the parse tree's root: the top-level rules and the
// top-level variable declarations.
type StyleSheet struct {
	Rules     []*StyleRule
	Variables []Variable
}
