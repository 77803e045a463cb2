package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownReport(t *testing.T) {
	out := MarkdownReport(&ReportData{
		Title: "proxyparty",
		Sections: []ReportSection{
			{
				Name:    "propagate",
				Headers: []string{"benchmark", "avg"},
				Rows:    [][]string{{"1 * 1", "10µs"}, {"a|b", "1ms"}},
			},
		},
	})

	assert.Contains(t, out, "# proxyparty")
	assert.Contains(t, out, "## propagate")
	assert.Contains(t, out, "| benchmark | avg |")
	assert.Contains(t, out, "|---|---|")
	assert.Contains(t, out, "| 1 * 1 | 10µs |")
	assert.Contains(t, out, `| a\|b | 1ms |`)
}

func TestMarkdownReportLeavesTextUnescaped(t *testing.T) {
	out := MarkdownReport(&ReportData{
		Title:    "set<any> & map<any>",
		Sections: []ReportSection{{Name: `"deep" <propagate>`}},
	})

	assert.Contains(t, out, "# set<any> & map<any>")
	assert.Contains(t, out, `## "deep" <propagate>`)
	assert.NotContains(t, out, "&lt;")
	assert.NotContains(t, out, "&amp;")
	assert.NotContains(t, out, "&quot;")
}
