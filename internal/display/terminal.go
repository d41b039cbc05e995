// Package display provides terminal output formatting for ytcsv.
package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"ytcsv/internal/youtube"
)

const titleWidth = 60

// TerminalFormatter formats videos for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatVideos renders videos as an aligned table, one row per video.
func (f *TerminalFormatter) FormatVideos(videos []youtube.Video) string {
	if len(videos) == 0 {
		return "No videos found.\n"
	}

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tPUBLISHED\tTITLE")
	for _, v := range videos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID, v.PublishedAt, f.TruncateText(v.Title, titleWidth))
	}
	w.Flush()

	return buf.String()
}

// TruncateText truncates text to maxLen, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}
