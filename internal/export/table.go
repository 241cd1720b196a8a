package export

// Columns is the column schema shared by the table view and both exports.
var Columns = []string{"Title", "Company", "Date Posted", "Job Link"}

// Table is a header row plus data rows, all with len(Columns) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

func NewTable(rows [][4]string) Table {
	t := Table{
		Header: append([]string(nil), Columns...),
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r[0], r[1], r[2], r[3]})
	}
	return t
}

// Len is the number of data rows.
func (t Table) Len() int { return len(t.Rows) }
