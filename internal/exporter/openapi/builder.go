package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"dockit/internal/config"
	"dockit/internal/exporter/common"
	"dockit/internal/logger"
	"dockit/internal/model"
)

const (
	specVersion     = "3.0.3"
	defaultTitle    = "API Reference"
	defaultVersion  = "1.0.0"
	jsonContentType = "application/json"
)

var pathParamRegex = regexp.MustCompile(`\{([^{}]+)\}`)

var supportedMethods = map[string]bool{
	http.MethodGet: true, http.MethodPost: true, http.MethodPut: true, http.MethodDelete: true,
	http.MethodPatch: true, http.MethodHead: true, http.MethodOptions: true,
}

// OpenAPIExporter builds an OpenAPI 3 document from the documented records
type OpenAPIExporter struct {
	// Stateless
}

// NewOpenAPIExporter creates a new OpenAPIExporter
func NewOpenAPIExporter() *OpenAPIExporter {
	return &OpenAPIExporter{}
}

// Name implements Exporter
func (b *OpenAPIExporter) Name() string {
	return "openapi"
}

// Export writes <file_name>.json
func (b *OpenAPIExporter) Export(report *model.Report, cfg *config.Config) error {
	doc := b.Build(report)

	if err := doc.Validate(context.Background()); err != nil {
		return fmt.Errorf("generated document is invalid: %w", err)
	}

	outputFile := cfg.GetOutputPath(".json")
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Build returns the document. Records without a URL are skipped; a record
// without an HTTP method is published as GET.
func (b *OpenAPIExporter) Build(report *model.Report) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: specVersion,
		Info: &openapi3.Info{
			Title:   defaultTitle,
			Version: defaultVersion,
		},
		Paths: openapi3.NewPaths(),
	}
	if report.GeneratedAt != "" {
		doc.Info.Description = "Generated on " + report.GeneratedAt
	}

	operationIDs := make(map[string]int)

	for _, rec := range common.SortRecords(report.Records()) {
		path := normalizePath(rec.RequestURL)
		if path == "" {
			logger.Debug("[OPENAPI] %s has no @url, skipped", rec.ID())
			continue
		}

		method := strings.ToUpper(rec.RequestMethod)
		if method == "" {
			method = http.MethodGet
		}
		if !supportedMethods[method] {
			logger.Warn("%s: unsupported HTTP method %q, skipped", rec.ID(), rec.RequestMethod)
			continue
		}

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		if item.GetOperation(method) != nil {
			logger.Warn("Duplicate operation %s %s (%s), keeping the first", method, path, rec.ID())
			continue
		}

		op := b.buildOperation(rec, method, path)
		op.OperationID = uniqueOperationID(operationIDs, rec)
		item.SetOperation(method, op)
	}

	return doc
}

func (b *OpenAPIExporter) buildOperation(rec *model.MethodRecord, method, path string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = rec.DisplayTitle()
	op.Description = strings.Join(rec.DescriptionList, "\n")
	op.Deprecated = rec.Deprecated
	if rec.ClassName != "" {
		op.Tags = []string{rec.ClassName}
	}

	args := validArguments(rec.RequestArgList)

	// Every {name} in the path must be declared as a path parameter
	inPath := make(map[string]bool)
	for _, m := range pathParamRegex.FindAllStringSubmatch(path, -1) {
		name := m[1]
		if inPath[name] {
			continue
		}
		inPath[name] = true

		param := openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema())
		if arg := findRoot(args, name); arg != nil {
			param.Schema = schemaFor(arg).NewRef()
			param.Description = arg.Description
		}
		op.AddParameter(param)
	}

	var rest []*model.Argument
	for _, arg := range args {
		if !inPath[arg.Name] {
			rest = append(rest, arg)
		}
	}

	if method == http.MethodGet || method == http.MethodDelete {
		for _, arg := range rest {
			op.AddParameter(openapi3.NewQueryParameter(arg.Name).
				WithDescription(arg.Description).
				WithRequired(IsRequired(arg.Required)).
				WithSchema(schemaFor(arg)))
		}
	} else if len(rest) > 0 {
		body := openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(objectSchema(rest))
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	response := openapi3.NewResponse().WithDescription(responseDescription(rec))
	if resArgs := validArguments(rec.ResponseArgList); len(resArgs) > 0 {
		schema := objectSchema(resArgs)
		schema.Title = rec.ResponseObjectClassName
		response.WithJSONSchema(schema)
	} else if rec.ResponseObjectClassName != "" {
		schema := openapi3.NewObjectSchema()
		schema.Title = rec.ResponseObjectClassName
		response.WithJSONSchema(schema)
	}
	op.AddResponse(http.StatusOK, response)

	return op
}

// objectSchema builds an object whose properties are args
func objectSchema(args []*model.Argument) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	var required []string
	for _, arg := range args {
		schema.WithProperty(arg.Name, schemaFor(arg))
		if IsRequired(arg.Required) {
			required = append(required, arg.Name)
		}
	}
	if len(required) > 0 {
		schema.WithRequired(required)
	}
	return schema
}

// schemaFor maps one argument (and its children) onto a schema
func schemaFor(arg *model.Argument) *openapi3.Schema {
	children := validArguments(arg.Children)

	var schema *openapi3.Schema
	switch model.TypeKind(arg.Type) {
	case model.KindArray:
		items := openapi3.NewStringSchema()
		if len(children) > 0 {
			items = objectSchema(children)
		}
		schema = openapi3.NewArraySchema().WithItems(items)
	case model.KindInteger:
		schema = openapi3.NewIntegerSchema()
	case model.KindNumber:
		schema = openapi3.NewFloat64Schema()
	case model.KindBoolean:
		schema = openapi3.NewBoolSchema()
	case model.KindObject:
		schema = objectSchema(children)
	default:
		if len(children) > 0 {
			// A DTO type name with documented fields
			schema = objectSchema(children)
			schema.Title = arg.Type
		} else {
			schema = openapi3.NewStringSchema()
		}
	}

	schema.Description = arg.Description
	return schema
}

func validArguments(args []*model.Argument) []*model.Argument {
	var out []*model.Argument
	for _, arg := range args {
		if arg.IsDiagnostic() || arg.Name == "" {
			continue
		}
		out = append(out, arg)
	}
	return out
}

func findRoot(args []*model.Argument, name string) *model.Argument {
	for _, arg := range args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// IsRequired interprets a free-form required marker
func IsRequired(marker string) bool {
	switch strings.ToLower(strings.TrimSpace(marker)) {
	case "true", "yes", "y", "required", "o", "1":
		return true
	}
	return false
}

func responseDescription(rec *model.MethodRecord) string {
	if rec.ResponseObjectClassName != "" {
		return rec.ResponseObjectClassName
	}
	return "Successful response"
}

// normalizePath trims the URL, drops a query string and ensures a leading slash
func normalizePath(url string) string {
	url = strings.TrimSpace(url)
	if idx := strings.IndexByte(url, '?'); idx >= 0 {
		url = url[:idx]
	}
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return url
}

// uniqueOperationID returns ClassName_methodName, suffixed for overloads
func uniqueOperationID(seen map[string]int, rec *model.MethodRecord) string {
	id := rec.MethodName
	if rec.ClassName != "" {
		id = rec.ClassName + "_" + rec.MethodName
	}
	seen[id]++
	if n := seen[id]; n > 1 {
		return fmt.Sprintf("%s_%d", id, n)
	}
	return id
}
