package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"job-scraper/internal/config"
	"job-scraper/internal/observability"
)

// ErrNothingToExport is returned for a table without data rows.
var ErrNothingToExport = errors.New("no data to export")

// Artifacts are the paths of the files written by one export.
type Artifacts struct {
	Docx string
	PDF  string
}

type Exporter struct {
	dir      string
	docxName string
	pdfName  string
	logger   *observability.Logger
}

func NewExporter(cfg *config.Config, logger *observability.Logger) *Exporter {
	return &Exporter{
		dir:      cfg.Export.Dir,
		docxName: cfg.Export.DocxName,
		pdfName:  cfg.Export.PDFName,
		logger:   logger,
	}
}

// Export writes t as a Word document and a PDF report into the export
// directory, replacing earlier exports.
func (e *Exporter) Export(t Table) (Artifacts, error) {
	if t.Len() == 0 {
		return Artifacts{}, ErrNothingToExport
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("could not create export directory: %w", err)
	}

	out := Artifacts{
		Docx: filepath.Join(e.dir, e.docxName),
		PDF:  filepath.Join(e.dir, e.pdfName),
	}

	if err := writeFile(out.Docx, func(w io.Writer) error { return WriteDocx(w, t) }); err != nil {
		return Artifacts{}, fmt.Errorf("export docx: %w", err)
	}
	if err := writeFile(out.PDF, func(w io.Writer) error { return WritePDF(w, t) }); err != nil {
		return Artifacts{}, fmt.Errorf("export pdf: %w", err)
	}

	e.logger.Info("Export finished", "rows", t.Len(), "docx", out.Docx, "pdf", out.PDF)
	return out, nil
}

// writeFile writes to a temporary file next to path and renames it into
// place, so a failed export never leaves a truncated file behind.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
