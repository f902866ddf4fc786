package css_printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylekit/scssc/internal/css_ast"
)

func TestEmitFlattensNestingWithDescendantCombinator(t *testing.T) {
	sheet := &css_ast.StyleSheet{
		Rules: []*css_ast.StyleRule{
			{
				Selector: "A",
				Children: []*css_ast.StyleRule{
					{
						Selector: "B",
						Children: []*css_ast.StyleRule{
							{Selector: "C"},
						},
					},
				},
			},
		},
	}

	flat := Emit(sheet)
	require := func(ok bool) {
		if !ok {
			t.Fatal("expected 3 flat rules")
		}
	}
	require(len(flat) == 3)
	assert.Equal(t, "A", flat[0].Selector)
	assert.Equal(t, "A B", flat[1].Selector)
	assert.Equal(t, "A B C", flat[2].Selector)
}

func TestEmitIsDepthFirstPreOrder(t *testing.T) {
	sheet := &css_ast.StyleSheet{
		Rules: []*css_ast.StyleRule{
			{Selector: ".a", Children: []*css_ast.StyleRule{{Selector: ".a-child"}}},
			{Selector: ".b"},
		},
	}
	flat := Emit(sheet)
	var selectors []string
	for _, r := range flat {
		selectors = append(selectors, r.Selector)
	}
	assert.Equal(t, []string{".a", ".a .a-child", ".b"}, selectors)
}

func TestEmitKeepsEmptyRules(t *testing.T) {
	sheet := &css_ast.StyleSheet{
		Rules: []*css_ast.StyleRule{{Selector: ".empty"}},
	}
	flat := Emit(sheet)
	assert.Len(t, flat, 1)
	assert.Empty(t, flat[0].Properties)
}

func TestEmitIsIdempotentOnAlreadyFlatTree(t *testing.T) {
	sheet := &css_ast.StyleSheet{
		Rules: []*css_ast.StyleRule{
			{Selector: ".a", Properties: []css_ast.Property{{Name: "color", Value: "red"}}},
			{Selector: ".b"},
		},
	}
	first := Emit(sheet)

	reflattened := &css_ast.StyleSheet{}
	for _, r := range first {
		reflattened.Rules = append(reflattened.Rules, &css_ast.StyleRule{Selector: r.Selector, Properties: r.Properties})
	}
	second := Emit(reflattened)

	assert.Equal(t, first, second)
}

func TestPrintSingleRuleNoNesting(t *testing.T) {
	flat := []FlatRule{
		{Selector: ".button", Properties: []css_ast.Property{{Name: "margin", Value: "0"}}},
	}
	assert.Equal(t, ".button {\n  margin: 0;\n}\n", Print(flat))
}

func TestPrintTwoRulesHaveBlankLineBetween(t *testing.T) {
	flat := []FlatRule{
		{Selector: ".button", Properties: []css_ast.Property{{Name: "margin", Value: "0"}, {Name: "padding", Value: "0"}}},
		{Selector: "h1", Properties: []css_ast.Property{{Name: "color", Value: "red"}}},
	}
	expected := ".button {\n  margin: 0;\n  padding: 0;\n}\n\nh1 {\n  color: red;\n}\n"
	assert.Equal(t, expected, Print(flat))
}

func TestPrintEmptyRuleBody(t *testing.T) {
	flat := []FlatRule{{Selector: ".a"}}
	assert.Equal(t, ".a {\n}\n", Print(flat))
}
