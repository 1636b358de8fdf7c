package csv

import (
	"bytes"
	stdcsv "encoding/csv"
)

// Record is anything that renders itself as one CSV row.
type Record interface {
	Fields() []string
}

type FilterFunc[T Record] func(T) bool

// Create renders records under the given header, keeping those the filter
// accepts. A nil filter keeps everything. Fields carrying commas or quotes
// (stock names, movement descriptions) are quoted per RFC 4180.
func Create[T Record](header []string, records []T, filter FilterFunc[T]) []byte {
	var buf bytes.Buffer
	w := stdcsv.NewWriter(&buf)
	_ = w.Write(header)
	for _, r := range records {
		if filter == nil || filter(r) {
			_ = w.Write(r.Fields())
		}
	}
	w.Flush()
	return buf.Bytes()
}
