package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// barWidth is the rendered width of the bar itself, excluding the label.
const barWidth = 40

// Bar renders a Tracker to a terminal as a labelled progress bar.
//
// The bubbles progress component is used purely as a renderer via ViewAs;
// redraws happen in place with a carriage return. Bar implements Meter, so
// it can be handed directly to a reporting clone transport.
type Bar struct {
	model   progress.Model
	tracker *Tracker
	label   string
	out     io.Writer
}

// NewBar creates a bar writing to out with the given label and length.
// A non-positive length falls back to DefaultLength.
func NewBar(out io.Writer, label string, length int) *Bar {
	m := progress.New(progress.WithDefaultGradient())
	m.Width = barWidth

	b := &Bar{
		model:   m,
		tracker: NewTracker(length),
		label:   label,
		out:     out,
	}
	b.render()
	return b
}

// Advance consumes an absolute progress report and redraws the bar when the
// position moved. Implements Meter.
func (b *Bar) Advance(cur, max int) {
	if b.tracker.Advance(cur, max) > 0 || max > 0 {
		b.render()
	}
}

// Step advances the bar by exactly one unit. Used by the coarse-grained
// steps (volume recreation, image build) that report one unit per
// subprocess regardless of its duration.
func (b *Bar) Step() {
	b.Advance(b.tracker.Position()+1, 0)
}

// Finish completes the bar and terminates the line. The bar is forced to
// its full length, covering reporters that never announce a max count.
func (b *Bar) Finish() {
	b.Advance(b.tracker.Length(), 0)
	fmt.Fprintln(b.out)
}

func (b *Bar) render() {
	fmt.Fprintf(b.out, "\r%s %s", b.label, b.model.ViewAs(b.tracker.Fraction()))
}
