// ABOUTME: Selection history log writing and reading
// ABOUTME: Formats applied selections as markdown or JSON and appends to daily logs
package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harper/fontsel/internal/alias"
)

// Entry records one applied font selection.
type Entry struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	SansAlias      string    `json:"sans_alias"`
	SerifAlias     string    `json:"serif_alias"`
	MonospaceAlias string    `json:"monospace_alias"`
	Sans           string    `json:"sans"`
	Serif          string    `json:"serif"`
	Monospace      string    `json:"monospace"`
	OutputPath     string    `json:"output_path"`
	System         bool      `json:"system"`
}

// NewEntry stamps a selection with a fresh ID and the current time
func NewEntry(sel alias.Selection, outputPath string, system bool) Entry {
	return Entry{
		ID:             uuid.New().String(),
		Timestamp:      time.Now(),
		SansAlias:      sel.SansAlias,
		SerifAlias:     sel.SerifAlias,
		MonospaceAlias: sel.MonospaceAlias,
		Sans:           sel.Sans,
		Serif:          sel.Serif,
		Monospace:      sel.Monospace,
		OutputPath:     outputPath,
		System:         system,
	}
}

// WriteHistory appends entry to the day's log file in logDir
func WriteHistory(logDir, format string, entry Entry) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	// One file per day
	date := entry.Timestamp.Format("2006-01-02")
	logFile := filepath.Join(logDir, date+".log")

	var content string
	switch format {
	case "json":
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case "markdown":
		content = formatMarkdown(entry)
	default:
		return fmt.Errorf("unknown history format %q", format)
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Standard file permissions for user data
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

func formatMarkdown(entry Entry) string {
	var sb strings.Builder

	timeStr := entry.Timestamp.Format("15:04:05")
	sb.WriteString(fmt.Sprintf("## %s - %s\n", timeStr, entry.ID))
	sb.WriteString(fmt.Sprintf("- **Sans**: %s (%s)\n", entry.Sans, entry.SansAlias))
	sb.WriteString(fmt.Sprintf("- **Serif**: %s (%s)\n", entry.Serif, entry.SerifAlias))
	sb.WriteString(fmt.Sprintf("- **Monospace**: %s (%s)\n", entry.Monospace, entry.MonospaceAlias))
	sb.WriteString(fmt.Sprintf("- **Output**: %s\n", entry.OutputPath))
	sb.WriteString("\n")

	return sb.String()
}

// ReadHistory returns JSON entries from logDir recorded at or after since,
// newest first. Markdown lines are skipped. JSON lines that cannot be
// parsed are skipped and reported through onSkip when it is non-nil.
// limit <= 0 means no limit.
func ReadHistory(logDir string, since time.Time, limit int, onSkip func(path string, line int, err error)) ([]Entry, error) {
	files, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, file := range files {
		fileEntries, err := readJSONLines(file, onSkip)
		if err != nil {
			return nil, err
		}
		for _, e := range fileEntries {
			if !since.IsZero() && e.Timestamp.Before(since) {
				continue
			}
			entries = append(entries, e)
		}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// readJSONLines reads whole lines with no length cap.
func readJSONLines(path string, onSkip func(string, int, error)) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	reader := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}

		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "{") {
			var e Entry
			if err := json.Unmarshal([]byte(line), &e); err != nil {
				if onSkip != nil {
					onSkip(path, lineNo, err)
				}
			} else {
				entries = append(entries, e)
			}
		}

		if readErr != nil {
			break
		}
	}

	return entries, nil
}
