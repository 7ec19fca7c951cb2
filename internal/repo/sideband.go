package repo

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/totemkb/zmkenv/internal/progress"
)

// Git's sideband progress arrives as human-oriented text, redrawn in place
// with carriage returns:
//
//	remote: Enumerating objects: 1234, done.
//	Receiving objects:  42% (1234/2945)
//	Resolving deltas: 100% (812/812), done.
//
// sidebandParser extracts the absolute (current, max) counts from that
// stream and forwards them to a progress.Meter, which owns the monotonic
// display translation.
type sidebandParser struct {
	meter progress.Meter
	buf   strings.Builder
}

// countedRe matches the "(current/max)" form emitted once a phase knows its
// total object count.
var countedRe = regexp.MustCompile(`\((\d+)/(\d+)\)`)

// enumeratingRe matches the early counting phases that report a running
// total with no max.
var enumeratingRe = regexp.MustCompile(`(?:Enumerating|Counting) objects: (\d+)`)

func newSidebandParser(meter progress.Meter) *sidebandParser {
	return &sidebandParser{meter: meter}
}

// Write implements io.Writer for use as go-git's CloneOptions.Progress.
// Chunks may split lines arbitrarily; complete lines are delimited by
// either a newline or the carriage return of an in-place redraw.
func (p *sidebandParser) Write(data []byte) (int, error) {
	for _, b := range data {
		if b == '\n' || b == '\r' {
			p.parseLine(p.buf.String())
			p.buf.Reset()
			continue
		}
		p.buf.WriteByte(b)
	}
	return len(data), nil
}

func (p *sidebandParser) parseLine(line string) {
	if line == "" {
		return
	}

	if m := countedRe.FindStringSubmatch(line); m != nil {
		cur, err1 := strconv.Atoi(m[1])
		max, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			p.meter.Advance(cur, max)
		}
		return
	}

	if m := enumeratingRe.FindStringSubmatch(line); m != nil {
		if cur, err := strconv.Atoi(m[1]); err == nil {
			p.meter.Advance(cur, 0)
		}
	}
}
