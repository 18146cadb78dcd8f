package domain

// TableData is the tabular content of a calculations report: a header row,
// one row per priced item, a blank separator row and a total footer row.
// Rendering to a concrete document format happens outside the core.
type TableData struct {
	Cells [][]string `json:"cells"`
	Cols  int        `json:"cols"`
	Rows  int        `json:"rows"`
}

// ReportFile is a rendered report ready to hand to the caller.
type ReportFile struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}
