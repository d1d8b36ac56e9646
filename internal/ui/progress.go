package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Phase is one stage of a run, shown in front of its bar
type Phase string

const (
	PhaseScanning  Phase = "Scanning"
	PhaseParsing   Phase = "Parsing"
	PhaseExporting Phase = "Exporting"
)

// DefaultPhases is the order a run goes through
var DefaultPhases = []Phase{PhaseScanning, PhaseParsing, PhaseExporting}

var barTheme = progressbar.Theme{
	Saucer:        "█",
	SaucerHead:    "█",
	SaucerPadding: "░",
	BarStart:      "[",
	BarEnd:        "]",
}

// ProgressBar is the bar of one phase. Add and Increment may be called from
// several goroutines.
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase Phase
}

// NewProgressBar writes to stdout. A negative total shows a spinner.
func NewProgressBar(phase Phase, total int) *ProgressBar {
	return NewProgressBarWithOutput(phase, total, os.Stdout)
}

func NewProgressBarWithOutput(phase Phase, total int, output io.Writer) *ProgressBar {
	return newBar(phase, total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetTheme(barTheme),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(true),
	)
}

// discardBar counts like a real bar but renders nothing
func discardBar(phase Phase, total int) *ProgressBar {
	return newBar(phase, total, progressbar.OptionSetWriter(io.Discard))
}

func newBar(phase Phase, total int, opts ...progressbar.Option) *ProgressBar {
	opts = append(opts, progressbar.OptionSetDescription(label(phase, "")))
	return &ProgressBar{bar: progressbar.NewOptions(total, opts...), phase: phase}
}

func label(phase Phase, detail string) string {
	if detail == "" {
		return fmt.Sprintf("[%s]", phase)
	}
	return fmt.Sprintf("[%s] %s", phase, detail)
}

func (pb *ProgressBar) Phase() Phase { return pb.phase }

func (pb *ProgressBar) Add(n int) error { return pb.bar.Add(n) }

func (pb *ProgressBar) Increment() error { return pb.bar.Add(1) }

// Current returns the count so far
func (pb *ProgressBar) Current() int64 { return pb.bar.State().CurrentNum }

func (pb *ProgressBar) Finish() error { return pb.bar.Finish() }

// Describe sets the text shown after the phase name
func (pb *ProgressBar) Describe(detail string) {
	pb.bar.Describe(label(pb.phase, detail))
}

// Pipeline walks through a fixed list of phases, one bar at a time
type Pipeline struct {
	phases   []Phase
	current  int
	bar      *ProgressBar
	disabled bool
	output   io.Writer
}

// NewPipeline creates a new pipeline progress tracker
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput creates a new pipeline with custom output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		output:  output,
	}
}

// Disable suppresses all output. Bars are still returned so callers need no
// nil checks.
func (p *Pipeline) Disable() {
	p.disabled = true
}

// NextPhase finishes the current bar and starts the next phase. It returns
// nil once every phase has been used.
func (p *Pipeline) NextPhase(total int) *ProgressBar {
	p.Finish()

	p.current++
	if p.current >= len(p.phases) {
		p.bar = nil
		return nil
	}

	phase := p.phases[p.current]
	if p.disabled {
		p.bar = discardBar(phase, total)
	} else {
		p.bar = NewProgressBarWithOutput(phase, total, p.output)
	}
	return p.bar
}

// Finish completes the current phase
func (p *Pipeline) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

// PrintSummary prints a line unless the pipeline is disabled
func (p *Pipeline) PrintSummary(message string) {
	if !p.disabled {
		fmt.Fprintln(p.output, message)
	}
}
