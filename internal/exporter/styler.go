package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Styler holds the style IDs registered in a workbook
type Styler struct {
	File *excelize.File

	HeaderStyle     int // column titles
	RecordStyle     int // "[Method]" rows of the Arguments sheet
	RequestStyle    int
	ResponseStyle   int
	DiagnosticStyle int // malformed @arg/@resArg descriptors
	DeprecatedStyle int
	DefaultStyle    int
}

// styleSpec is the part of a style that differs between roles. Every style
// gets the thin gray border and vertical centering.
type styleSpec struct {
	name     string
	target   *int
	font     *excelize.Font
	fill     string
	centered bool
	wrap     bool
}

// NewStyler registers the workbook styles
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}

	specs := []styleSpec{
		{name: "header", target: &s.HeaderStyle, font: &excelize.Font{Bold: true, Color: "#000000"}, fill: "#E0E0E0", centered: true},
		{name: "record", target: &s.RecordStyle, font: &excelize.Font{Bold: true, Color: "#0000FF"}},
		{name: "request", target: &s.RequestStyle},
		{name: "response", target: &s.ResponseStyle, font: &excelize.Font{Color: "#2E7D32"}},
		{name: "diagnostic", target: &s.DiagnosticStyle, font: &excelize.Font{Color: "#D32F2F"}, fill: "#FDECEA", wrap: true},
		{name: "deprecated", target: &s.DeprecatedStyle, font: &excelize.Font{Color: "#757575", Italic: true}},
		{name: "default", target: &s.DefaultStyle},
	}

	for _, spec := range specs {
		id, err := f.NewStyle(spec.style())
		if err != nil {
			return nil, fmt.Errorf("%s style: %w", spec.name, err)
		}
		*spec.target = id
	}
	return s, nil
}

func (spec styleSpec) style() *excelize.Style {
	st := &excelize.Style{
		Font:      spec.font,
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: spec.wrap},
		Border:    thinBorder("D4D4D4"),
	}
	if spec.centered {
		st.Alignment.Horizontal = "center"
	}
	if spec.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{spec.fill}, Pattern: 1}
	}
	return st
}

func thinBorder(color string) []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	border := make([]excelize.Border, len(sides))
	for i, side := range sides {
		border[i] = excelize.Border{Type: side, Color: color, Style: 1}
	}
	return border
}
