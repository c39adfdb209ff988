// package formatter exports play queue snapshots to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
)

// ParseFormat accepts a format name or a file extension with or without the leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, name)
	}
}

// ExportToCSV converts a snapshot to CSV format with columns: QueueID, SongID, Title, Artist, Genre, Duration
func ExportToCSV(snapshot models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"QueueID", "SongID", "Title", "Artist", "Genre", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for id, song := range snapshot.All() {
		record := []string{
			strconv.FormatInt(id, 10),
			strconv.FormatInt(song.ID, 10),
			song.Title,
			song.Artist,
			song.Genre.Name,
			strconv.Itoa(song.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a snapshot to a Markdown document titled title
func ExportToMarkdown(snapshot models.Snapshot, title string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "**Songs**: %d\n", snapshot.Len())
	fmt.Fprintf(&buf, "**Length**: %s\n\n", models.FormatSeconds(snapshot.TotalDuration()))

	if snapshot.IsEmpty() {
		buf.WriteString("_The queue is empty._\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Title | Artist | Genre | Length |\n")
	buf.WriteString("|---:|---|---|---|---:|\n")
	for id, song := range snapshot.All() {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s | %s |\n",
			id, escapeCell(song.Title), escapeCell(song.Artist), escapeCell(song.Genre.Name), song.FormatDuration())
	}

	return buf.Bytes(), nil
}

// ExportToText converts a snapshot to plain text format
func ExportToText(snapshot models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Play queue: %d songs (%s)\n\n", snapshot.Len(), models.FormatSeconds(snapshot.TotalDuration()))
	for id, song := range snapshot.All() {
		fmt.Fprintf(&buf, "#%d. %s - %s [%s]\n", id, song.Artist, song.Title, song.FormatDuration())
	}

	return buf.Bytes(), nil
}

// Export renders snapshot in the given format.
func Export(snapshot models.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(snapshot)
	case FormatMarkdown:
		return ExportToMarkdown(snapshot, "Play Queue")
	case FormatText:
		return ExportToText(snapshot)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
}

// WriteExport renders snapshot and writes it to path, creating parent directories as needed.
//
// Defaults to play_queue.{format} in the working directory.
func WriteExport(snapshot models.Snapshot, format Format, path string) (string, error) {
	if path == "" {
		path = "play_queue." + string(format)
	}

	data, err := Export(snapshot, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
