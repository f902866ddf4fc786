package css_printer

import "strings"

// Print performs the linear walk over a flat rule list: a blank line
// between rules (never before the first), two-space-indented
// declarations, and no trailing blank line beyond each rule's closing
// "}\n".
func Print(rules []FlatRule) string {
	var b strings.Builder
	for i, rule := range rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, prop := range rule.Properties {
			b.WriteString("  ")
			b.WriteString(prop.Name)
			b.WriteString(": ")
			b.WriteString(prop.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
