package templates

import (
	"strings"
)

// tableRow renders cells as one markdown table row.
func tableRow(cells []string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(c, "|", `\|`))
		sb.WriteString(" |")
	}
	return sb.String()
}

func separatorRow(count int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i := 0; i < count; i++ {
		sb.WriteString("---|")
	}
	return sb.String()
}
