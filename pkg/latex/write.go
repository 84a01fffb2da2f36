package latex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile renders the table and writes it to path, replacing any existing
// file. Callers that must not overwrite check for the file first.
func WriteFile(path string, t Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("latex: create %s: %w", path, err)
	}
	if _, err := file.Write(Render(t)); err != nil {
		file.Close()
		return fmt.Errorf("latex: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("latex: close %s: %w", path, err)
	}
	return nil
}

// CompileHint returns a shell command that typesets the document next to
// its source and opens the resulting PDF.
func CompileHint(path string) string {
	noExt := strings.TrimSuffix(path, filepath.Ext(path))
	base := filepath.Base(noExt)
	return fmt.Sprintf("pdflatex %s && rm -f %s.aux %s.log && mv -f %s.pdf %s && open %s.pdf",
		path, base, base, base, filepath.Dir(noExt), noExt)
}
