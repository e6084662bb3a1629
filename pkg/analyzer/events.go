package analyzer

import (
	"fmt"

	"github.com/ccollicutt/camcheck/pkg/parser"
)

// Input event names emitted by the camera.
const (
	EventKeyQ      = "KeyQ"
	EventKeyE      = "KeyE"
	EventArrowUp   = "ArrowUp"
	EventArrowDown = "ArrowDown"
	EventKeyW      = "KeyW"
	EventKeyS      = "KeyS"
	EventKeyA      = "KeyA"
	EventKeyD      = "KeyD"
	EventReset     = "reset"

	// ZoomEventPrefix prefixes every zoom-triggering event (zoom_in, zoom_out, ...).
	ZoomEventPrefix = "zoom"
)

// direction is a unit step in the camera's local right/forward basis.
type direction struct {
	dx, dy int
}

var panDirections = map[string]direction{
	EventKeyW: {0, 1},
	EventKeyS: {0, -1},
	EventKeyA: {-1, 0},
	EventKeyD: {1, 0},
}

var panInverse = map[string]string{
	EventKeyW: EventKeyS,
	EventKeyS: EventKeyW,
	EventKeyA: EventKeyD,
	EventKeyD: EventKeyA,
}

// Run is a maximal stretch of consecutive records sharing one event name.
// Start is inclusive and End exclusive.
type Run struct {
	Event string
	Start int
	End   int
}

// Len returns the number of records in the run.
func (r Run) Len() int {
	return r.End - r.Start
}

// Runs groups adjacent records with equal event names.
func Runs(records []parser.Record) []Run {
	var runs []Run
	for i, rec := range records {
		if n := len(runs); n > 0 && runs[n-1].Event == rec.Event {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, Run{Event: rec.Event, Start: i, End: i + 1})
	}
	return runs
}

// before returns the record preceding the run, or the run's first record when
// the run opens the log.
func (r Run) before(records []parser.Record) parser.Record {
	if r.Start > 0 {
		return records[r.Start-1]
	}
	return records[r.Start]
}

// at builds a diagnostic for the record at index i.
func at(records []parser.Record, i int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Entry:      i + 1,
		SourceLine: records[i].LineNum,
		Message:    fmt.Sprintf(format, args...),
	}
}

// span builds a diagnostic covering a whole run of records.
func span(records []parser.Record, first, last int, format string, args ...any) Diagnostic {
	d := at(records, first, format, args...)
	d.EndEntry = last + 1
	return d
}
