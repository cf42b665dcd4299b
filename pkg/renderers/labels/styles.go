package labels

import (
	"sort"
	"strings"
)

// printCSS keeps rem units stable across print drivers and stops text from
// reflowing or splitting across pages. Elements marked .wrap may break lines.
const printCSS = `@media print {
  html { font-size: 16px; }
  body { margin: 0; }
  .label-canvas p:not(.wrap) { white-space: nowrap; position: absolute; }
  .label-canvas, .label-canvas * { page-break-inside: avoid; break-inside: avoid; }
  * { -webkit-print-color-adjust: exact; print-color-adjust: exact; color-adjust: exact; }
}
`

// PrintCSS returns the print block embedded in every label.
func PrintCSS() string {
	return printCSS
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.NewReplacer("<", "", ">", "", ";", "", "}", "").Replace(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
