package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
)

const (
	docxHeading    = "Job Postings"
	docxTableStyle = "LightList-Accent4"
)

// WriteDocx writes t as a Word document: a heading followed by one table
// whose first row is the header.
func WriteDocx(w io.Writer, t Table) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new docx: %w", err)
	}

	if _, err := doc.AddHeading(docxHeading, 0); err != nil {
		return fmt.Errorf("docx heading: %w", err)
	}

	table := doc.AddTable()
	table.Style(docxTableStyle)
	addRow := func(cells []string) {
		row := table.AddRow()
		for _, cell := range cells {
			row.AddCell().AddParagraph(cell)
		}
	}

	addRow(t.Header)
	for _, row := range t.Rows {
		addRow(row)
	}

	return copyDocx(doc, w)
}

type docxSaver interface {
	SaveTo(fileName string) error
}

// copyDocx saves doc into a scratch directory and streams the file to w.
func copyDocx(doc docxSaver, w io.Writer) error {
	dir, err := os.MkdirTemp("", "job-scraper-docx-*")
	if err != nil {
		return fmt.Errorf("docx scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document.docx")
	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
