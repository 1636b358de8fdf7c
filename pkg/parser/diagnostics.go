package parser

// Diagnostics counts non-fatal anomalies absorbed during a parse: rows that
// failed a structural check and numeric fields that fell back to zero. All
// recording methods are nil-safe so the parser runs fine without a collector.
type Diagnostics struct {
	RowsRejected    int
	FieldsDefaulted int
}

func (d *Diagnostics) rejectRow() {
	if d == nil {
		return
	}
	d.RowsRejected++
}

func (d *Diagnostics) defaultField() {
	if d == nil {
		return
	}
	d.FieldsDefaulted++
}
