package word

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"dockit/internal/config"
	"dockit/internal/exporter/common"
	"dockit/internal/model"
)

const (
	ruleWidth  = 80
	tableWidth = 100
)

// WordExporter writes a plain-text API reference into a .docx document
type WordExporter struct{}

// NewWordExporter creates a new WordExporter
func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

// Name implements Exporter
func (e *WordExporter) Name() string {
	return "word"
}

// Export writes <file_name>.docx
func (e *WordExporter) Export(report *model.Report, cfg *config.Config) error {
	tmpl, err := buildTemplate()
	if err != nil {
		return err
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(tmpl), int64(len(tmpl)))
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()
	records := common.SortRecords(report.Records())

	replacements := []struct{ old, new string }{
		{placeholderDate, report.GeneratedAt},
		{placeholderTotalClasses, strconv.Itoa(report.ClassCount())},
		{placeholderTotalMethods, strconv.Itoa(len(records))},
		// The library XML-encodes the text and turns newlines into breaks
		{placeholderContent, BuildContent(records)},
	}
	for _, rep := range replacements {
		if err := doc.Replace(rep.old, rep.new, -1); err != nil {
			return fmt.Errorf("failed to replace %s: %w", rep.old, err)
		}
	}

	outFile := cfg.GetOutputPath(".docx")
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}

// BuildContent renders every record as fixed-width plain text
func BuildContent(records []*model.MethodRecord) string {
	var sb strings.Builder

	for i, rec := range records {
		buildRecordText(&sb, rec)

		if i < len(records)-1 {
			sb.WriteString("\n" + strings.Repeat("-", ruleWidth) + "\n\n")
		}
	}
	return sb.String()
}

func buildRecordText(sb *strings.Builder, rec *model.MethodRecord) {
	title := rec.DisplayTitle()
	if rec.Deprecated {
		title = "[Deprecated] " + title
	}
	sb.WriteString(title + "\n")

	if rec.RequestMethod != "" || rec.RequestURL != "" {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", rec.RequestMethod, rec.RequestURL))
	}
	sb.WriteString(fmt.Sprintf("Method: %s\n", rec.ID()))

	for _, line := range []struct{ label, value string }{
		{"Version", rec.Version},
		{"Status", rec.Status},
		{"Author", rec.Author},
	} {
		if line.value != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", line.label, line.value))
		}
	}

	for _, desc := range rec.DescriptionList {
		sb.WriteString("  • " + desc + "\n")
	}
	sb.WriteString("\n")

	if len(rec.RequestArgList) > 0 {
		sb.WriteString("REQUEST PARAMETERS:\n")
		writeArgumentTable(sb, rec.RequestArgList)
	}

	sb.WriteString("RESPONSE:\n")
	resType := rec.ResponseObjectClassName
	if resType == "" {
		resType = "-"
	}
	sb.WriteString(fmt.Sprintf("Type: %s\n", resType))
	if len(rec.ResponseArgList) > 0 {
		writeArgumentTable(sb, rec.ResponseArgList)
	}

	if rec.Remark != "" {
		sb.WriteString(fmt.Sprintf("Remark: %s\n", rec.Remark))
	}
}

func writeArgumentTable(sb *strings.Builder, args []*model.Argument) {
	sb.WriteString(fmt.Sprintf("%-25s %-20s %-10s %s\n", "Name", "Type", "Required", "Description"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, row := range common.FlattenArguments(args) {
		arg := row.Arg
		name := strings.Repeat("  ", row.Indent)
		if row.Indent > 0 {
			name += "└ "
		}
		name += arg.Name
		if arg.IsDiagnostic() {
			name = "(invalid)"
		}

		sb.WriteString(fmt.Sprintf("%-25s %-20s %-10s %s\n",
			truncate(name, 25),
			truncate(arg.Type, 20),
			truncate(arg.Required, 10),
			arg.Description))
	}
	sb.WriteString("\n")
}

// truncate truncates a string to a maximum length in runes
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
