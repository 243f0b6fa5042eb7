package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"
)

// HistoryFilename is the download name for the CSV export.
const HistoryFilename = "turnolisto_history.csv"

var historyHeader = []string{"ID", "Number", "Name", "Status", "CreatedAt"}

// HistoryCSV renders the full ticket history since the last reset as CSV.
// Pure read-only projection; free-text fields are escaped per RFC 4180
// (quoted, inner quotes doubled) by the csv writer.
func (s *QueueService) HistoryCSV(ctx context.Context) ([]byte, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(historyHeader); err != nil {
		return nil, err
	}
	for i := range state.Tickets {
		t := &state.Tickets[i]
		record := []string{
			t.ID,
			strconv.Itoa(t.Number),
			t.Name,
			string(t.Status),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
