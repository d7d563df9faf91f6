package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is a single log entry as stored in the index
type Record struct {
	Timestamp   string `json:"@timestamp"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	Application string `json:"application"`
	Logger      string `json:"logger"`
	Thread      string `json:"thread"`
	Profiles    string `json:"profiles"`
	Method      string `json:"method"`
	Stacktrace  string `json:"stacktrace,omitempty"`
	TraceID     string `json:"traceId,omitempty"`
}

// Text returns the message followed by the stack trace when there is one
func (r Record) Text() string {
	if r.Stacktrace == "" {
		return r.Message
	}

	return r.Message + "\n" + r.Stacktrace
}

// Line renders the record as a single plain log line
func (r Record) Line() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s [%s] %s", r.Timestamp, strings.ToUpper(r.Severity), r.Logger, r.Message)

	if r.TraceID != "" {
		fmt.Fprintf(&b, " trace=%s", r.TraceID)
	}

	return b.String()
}

// FormatPage renders records one per line, stack traces indented underneath
func FormatPage(records []Record) string {
	var b strings.Builder

	for _, r := range records {
		b.WriteString(r.Line())
		b.WriteByte('\n')

		if r.Stacktrace != "" {
			for _, line := range strings.Split(strings.TrimRight(r.Stacktrace, "\n"), "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

// decodeRecords turns raw hit sources into records, skipping hits that are not valid log entries
func decodeRecords(sources []json.RawMessage) ([]Record, int) {
	records := make([]Record, 0, len(sources))
	dropped := 0

	for _, source := range sources {
		var r Record
		if err := json.Unmarshal(source, &r); err != nil || r.Timestamp == "" {
			dropped++
			continue
		}

		records = append(records, r)
	}

	return records, dropped
}
