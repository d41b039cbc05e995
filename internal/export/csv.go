// Package export writes fetched video metadata to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"ytcsv/internal/youtube"
)

// header is the fixed first row of every export.
var header = []string{"Video ID", "Title", "Description", "Published At"}

// FileError reports a filesystem failure while writing an export.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FileName derives the output file name from a channel handle by stripping
// a leading @ and appending the .csv extension.
func FileName(handle string) string {
	return strings.TrimPrefix(handle, "@") + ".csv"
}

// WriteCSV writes the header row and one row per video to path. An empty
// video list still produces a file containing only the header.
func WriteCSV(path string, videos []youtube.Video) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return &FileError{Path: path, Err: err}
	}
	for _, v := range videos {
		if err := w.Write([]string{v.ID, v.Title, v.Description, v.PublishedAt}); err != nil {
			f.Close()
			return &FileError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &FileError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Path: path, Err: err}
	}

	return nil
}
