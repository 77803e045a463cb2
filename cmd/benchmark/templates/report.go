package templates

//go:generate qtc -file=report.qtpl

// ReportData is the input of the markdown benchmark report.
type ReportData struct {
	Title    string
	Sections []ReportSection
}

type ReportSection struct {
	Name    string
	Headers []string
	Rows    [][]string
}
