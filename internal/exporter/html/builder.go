package html

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"dockit/internal/config"
	"dockit/internal/exporter/common"
	"dockit/internal/model"
	"dockit/internal/render"
)

// HTMLExporter renders every record with the Markdown template and publishes
// the result as one self-contained HTML page
type HTMLExporter struct {
	md goldmark.Markdown
}

// NewHTMLExporter creates a new HTMLExporter
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// ReportData is the data passed to the page template
type ReportData struct {
	GeneratedAt  string
	TotalMethods int
	TotalClasses int
	Deprecated   int
	Records      []RecordView
}

// RecordView is one endpoint card
type RecordView struct {
	ID         string
	Title      string
	Method     string
	URL        string
	Deprecated bool
	Body       template.HTML
}

// Name implements Exporter
func (e *HTMLExporter) Name() string {
	return "html"
}

// Export writes <file_name>.html
func (e *HTMLExporter) Export(report *model.Report, cfg *config.Config) error {
	renderer, err := render.New(cfg.Template.Path)
	if err != nil {
		return err
	}

	data, err := e.BuildData(report, renderer)
	if err != nil {
		return err
	}

	outputFile := cfg.GetOutputPath(".html")
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer f.Close()

	tmpl, err := template.New("api-report").Funcs(template.FuncMap{
		"methodColor": getMethodColor,
		"methodBadge": getMethodBadge,
	}).Parse(APIReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

// BuildData renders each record and converts it to HTML
func (e *HTMLExporter) BuildData(report *model.Report, renderer *render.Renderer) (*ReportData, error) {
	records := common.SortRecords(report.Records())

	data := &ReportData{
		GeneratedAt:  report.GeneratedAt,
		TotalMethods: len(records),
		TotalClasses: report.ClassCount(),
		Records:      make([]RecordView, 0, len(records)),
	}

	for _, rec := range records {
		var buf bytes.Buffer
		if err := e.md.Convert([]byte(renderer.Render(rec)), &buf); err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", rec.ID(), err)
		}
		if rec.Deprecated {
			data.Deprecated++
		}

		data.Records = append(data.Records, RecordView{
			ID:         anchor(rec.ID()),
			Title:      rec.DisplayTitle(),
			Method:     rec.RequestMethod,
			URL:        rec.RequestURL,
			Deprecated: rec.Deprecated,
			// goldmark drops raw HTML unless configured otherwise
			Body: template.HTML(buf.String()),
		})
	}

	return data, nil
}

// anchor turns a record id into an element id
func anchor(id string) string {
	return "m-" + strings.NewReplacer(".", "-", " ", "-").Replace(id)
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

// getMethodBadge returns badge text for HTTP method
func getMethodBadge(method string) string {
	if method == "" {
		return "N/A"
	}
	return strings.ToUpper(method)
}
