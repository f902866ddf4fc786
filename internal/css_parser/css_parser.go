// Package css_parser turns a flat token sequence into the nested rule
// tree defined by internal/css_ast, via recursive descent over a
// buffered token array indexed by a cursor. The grammar has three
// productions: stylesheet, rule, and variable or property declaration.
package css_parser

import (
	"github.com/stylekit/scssc/internal/css_ast"
	"github.com/stylekit/scssc/internal/css_lexer"
	"github.com/stylekit/scssc/internal/errs"
	"github.com/stylekit/scssc/internal/logger"
)

type parser struct {
	source logger.Source
	tokens []css_lexer.Token
	index  int
}

// Parse consumes a Tokenization produced by css_lexer.Tokenize and
// returns the root of the nested rule tree, or the first grammatical
// error encountered.
func Parse(tz css_lexer.Tokenization) (*css_ast.StyleSheet, error) {
	p := &parser{source: tz.Source, tokens: tz.Tokens}
	return p.parseStyleSheet()
}

func (p *parser) peek() css_lexer.Token {
	return p.tokens[p.index]
}

func (p *parser) eat() css_lexer.Token {
	t := p.tokens[p.index]
	if t.Kind != css_lexer.EndOfFile {
		p.index++
	}
	return t
}

func (p *parser) lexeme(t css_lexer.Token) string {
	return t.Lexeme(p.source)
}

func (p *parser) expect(kind css_lexer.T) (css_lexer.Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return t, errs.New(errs.NotImplemented, "expected "+kind.String()+" but found "+t.Kind.String())
	}
	return p.eat(), nil
}

// parseStyleSheet implements the top-level grammar: a sequence of
// variable declarations and style rules, in source order.
func (p *parser) parseStyleSheet() (*css_ast.StyleSheet, error) {
	sheet := &css_ast.StyleSheet{}

	for p.peek().Kind != css_lexer.EndOfFile {
		switch p.peek().Kind {
		case css_lexer.VariableName:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			sheet.Variables = append(sheet.Variables, v)

		case css_lexer.Selector:
			rule, err := p.parseStyleRule(sheet.Variables)
			if err != nil {
				return nil, err
			}
			sheet.Rules = append(sheet.Rules, rule)

		default:
			return nil, errs.New(errs.NotImplemented, "unexpected "+p.peek().Kind.String()+" at top level")
		}
	}

	return sheet, nil
}

// parseVariable expects VariableName, VariableValue, EndStatement in
// order and records the resulting binding.
func (p *parser) parseVariable() (css_ast.Variable, error) {
	name, err := p.expect(css_lexer.VariableName)
	if err != nil {
		return css_ast.Variable{}, err
	}
	value, err := p.expect(css_lexer.VariableValue)
	if err != nil {
		return css_ast.Variable{}, err
	}
	if _, err := p.expect(css_lexer.EndStatement); err != nil {
		return css_ast.Variable{}, err
	}
	return css_ast.Variable{Name: p.lexeme(name), Value: p.lexeme(value)}, nil
}

// parseStyleRule expects Selector, BlockStart, then a sequence of
// variables, properties, and nested rules, then BlockEnd. parentVars is
// the flattened environment visible just outside this rule; the rule's
// own Variables field starts as a copy of it (shadowing is by append,
// never by replacement) and grows as declarations are parsed.
func (p *parser) parseStyleRule(parentVars []css_ast.Variable) (*css_ast.StyleRule, error) {
	selectorTok, err := p.expect(css_lexer.Selector)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(css_lexer.BlockStart); err != nil {
		return nil, err
	}

	rule := &css_ast.StyleRule{
		Selector:  p.lexeme(selectorTok),
		Variables: append([]css_ast.Variable(nil), parentVars...),
	}

	for {
		switch p.peek().Kind {
		case css_lexer.VariableName:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			rule.Variables = append(rule.Variables, v)

		case css_lexer.PropertyName:
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			rule.Properties = append(rule.Properties, prop)

		case css_lexer.Selector:
			child, err := p.parseStyleRule(rule.Variables)
			if err != nil {
				return nil, err
			}
			rule.Children = append(rule.Children, child)

		case css_lexer.BlockEnd:
			p.eat()
			return rule, nil

		default:
			return nil, errs.New(errs.NotImplemented, "unexpected "+p.peek().Kind.String()+" inside a rule")
		}
	}
}

// parseProperty expects PropertyName, PropertyValue, EndStatement.
func (p *parser) parseProperty() (css_ast.Property, error) {
	name, err := p.expect(css_lexer.PropertyName)
	if err != nil {
		return css_ast.Property{}, err
	}
	value, err := p.expect(css_lexer.PropertyValue)
	if err != nil {
		return css_ast.Property{}, err
	}
	if _, err := p.expect(css_lexer.EndStatement); err != nil {
		return css_ast.Property{}, err
	}
	return css_ast.Property{Name: p.lexeme(name), Value: p.lexeme(value)}, nil
}
