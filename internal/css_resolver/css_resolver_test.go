package css_resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylekit/scssc/internal/css_ast"
	"github.com/stylekit/scssc/internal/css_lexer"
	"github.com/stylekit/scssc/internal/css_parser"
	"github.com/stylekit/scssc/internal/errs"
	"github.com/stylekit/scssc/internal/logger"
)

func parseAndResolve(t *testing.T, contents string) (*css_ast.StyleSheet, error) {
	t.Helper()
	tz, err := css_lexer.Tokenize(logger.Source{Contents: contents})
	require.NoError(t, err)
	sheet, err := css_parser.Parse(tz)
	require.NoError(t, err)
	return sheet, Resolve(sheet)
}

func TestResolveSimpleReference(t *testing.T) {
	sheet, err := parseAndResolve(t, "$zig-orange: #f7a41d; .button { color: $zig-orange; }")
	require.NoError(t, err)
	assert.Equal(t, "#f7a41d", sheet.Rules[0].Properties[0].Value)
}

func TestResolveForwardReferenceIsUndefinedVariable(t *testing.T) {
	_, err := parseAndResolve(t, "$a: $b; $b: #000;")
	require.Error(t, err)
	cerr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedVariable, cerr.Kind)
}

func TestResolveUndefinedVariableInProperty(t *testing.T) {
	_, err := parseAndResolve(t, ".a { color: $missing; }")
	require.Error(t, err)
	cerr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedVariable, cerr.Kind)
}

// Shadowing law: a reference at the innermost depth sees the nearest
// binding, not an outer one with the same name.
func TestResolveShadowingLaw(t *testing.T) {
	sheet, err := parseAndResolve(t, "$c: #111; .a { $c: #222; .b { color: $c; } }")
	require.NoError(t, err)

	a := sheet.Rules[0]
	require.Empty(t, a.Properties)

	b := a.Children[0]
	require.Len(t, b.Properties, 1)
	assert.Equal(t, "#222", b.Properties[0].Value)
}

func TestResolveNoValueBeginsWithDollarAfterward(t *testing.T) {
	sheet, err := parseAndResolve(t, "$a: #111; $b: $a; .x { color: $b; border: $a; }")
	require.NoError(t, err)

	for _, v := range sheet.Variables {
		assert.False(t, strings.HasPrefix(v.Value, "$"), "variable %s still references %s", v.Name, v.Value)
	}
	for _, p := range sheet.Rules[0].Properties {
		assert.False(t, strings.HasPrefix(p.Value, "$"), "property %s still references %s", p.Name, p.Value)
	}
}
