package model

import (
	"dockit/internal/placeholder"
)

// Template keys of a MethodRecord. They are the first segment of a ${...} token.
const (
	KeyMethodName = "methodName"
	KeyClassName  = "className"
	KeyTitle      = "title"
	KeyVersion    = "version"
	KeyStatus     = "status"
	KeyAuthor     = "author"
	KeyDesc       = "desc"
	KeyURL        = "url"
	KeyMethod     = "method"
	KeyRemark     = "remark"
	KeyArg        = "arg"
	KeyResArg     = "resArg"
	KeyResType    = "resType"
	KeyResSample  = "resSample"
)

// MethodRecord is the documentation extracted from one method's Javadoc
type MethodRecord struct {
	// Java method name (always set)
	MethodName string `yaml:"method_name"`

	// Enclosing class or interface name
	ClassName string `yaml:"class_name,omitempty"`

	// @title
	Title string `yaml:"title,omitempty"`

	// @version
	Version string `yaml:"version,omitempty"`

	// @status
	Status string `yaml:"status,omitempty"`

	// @author
	Author string `yaml:"author,omitempty"`

	// @remark
	Remark string `yaml:"remark,omitempty"`

	// One entry per @desc tag, in tag order
	DescriptionList []string `yaml:"description,omitempty"`

	// @url
	RequestURL string `yaml:"url,omitempty"`

	// @method (GET, POST, ...)
	RequestMethod string `yaml:"http_method,omitempty"`

	// Type linked from the @return tag ({@link UserVO})
	ResponseObjectClassName string `yaml:"response_type,omitempty"`

	// Set when the comment carries @deprecated
	Deprecated bool `yaml:"deprecated,omitempty"`

	// Request arguments, roots only. Nested fields hang off their parent.
	RequestArgList []*Argument `yaml:"request_args,omitempty"`

	// Response fields, roots only
	ResponseArgList []*Argument `yaml:"response_args,omitempty"`
}

// NewMethodRecord creates an empty record for the named method
func NewMethodRecord(methodName string) *MethodRecord {
	return &MethodRecord{
		MethodName:      methodName,
		DescriptionList: make([]string, 0),
		RequestArgList:  make([]*Argument, 0),
		ResponseArgList: make([]*Argument, 0),
	}
}

// Fields implements placeholder.Describer
func (r *MethodRecord) Fields() []placeholder.Field {
	return []placeholder.Field{
		{Key: KeyMethodName, Kind: placeholder.KindSimple, Value: r.MethodName},
		{Key: KeyClassName, Kind: placeholder.KindSimple, Value: r.ClassName},
		{Key: KeyTitle, Kind: placeholder.KindSimple, Value: r.Title},
		{Key: KeyVersion, Kind: placeholder.KindSimple, Value: r.Version},
		{Key: KeyStatus, Kind: placeholder.KindSimple, Value: r.Status},
		{Key: KeyAuthor, Kind: placeholder.KindSimple, Value: r.Author},
		{Key: KeyDesc, Kind: placeholder.KindList, Value: r.DescriptionList},
		{Key: KeyURL, Kind: placeholder.KindSimple, Value: r.RequestURL},
		{Key: KeyMethod, Kind: placeholder.KindSimple, Value: r.RequestMethod},
		{Key: KeyRemark, Kind: placeholder.KindSimple, Value: r.Remark},
		{Key: KeyArg, Kind: placeholder.KindList, Value: describers(r.RequestArgList)},
		{Key: KeyResArg, Kind: placeholder.KindList, Value: describers(r.ResponseArgList)},
		{Key: KeyResType, Kind: placeholder.KindSimple, Value: r.ResponseObjectClassName},
		{Key: KeyResSample, Kind: placeholder.KindSimple, Value: r.ResponseSample()},
	}
}

// DisplayTitle returns the title, falling back to the method name
func (r *MethodRecord) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.MethodName
}

// ID returns "ClassName.methodName" (or just the method name without a class)
func (r *MethodRecord) ID() string {
	if r.ClassName == "" {
		return r.MethodName
	}
	return r.ClassName + "." + r.MethodName
}

func describers(args []*Argument) []placeholder.Describer {
	out := make([]placeholder.Describer, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// SourceFile groups the records parsed from one Java file
type SourceFile struct {
	Path      string          `yaml:"path"`
	Package   string          `yaml:"package,omitempty"`
	ClassName string          `yaml:"class_name,omitempty"`
	Records   []*MethodRecord `yaml:"records"`
}

// Report is everything one run extracted
type Report struct {
	GeneratedAt string       `yaml:"generated_at"`
	Sources     []SourceFile `yaml:"sources"`
}

// Records returns every record in source order
func (r *Report) Records() []*MethodRecord {
	var records []*MethodRecord
	for _, src := range r.Sources {
		records = append(records, src.Records...)
	}
	return records
}

// ClassCount returns the number of source files that produced at least one record
func (r *Report) ClassCount() int {
	count := 0
	for _, src := range r.Sources {
		if len(src.Records) > 0 {
			count++
		}
	}
	return count
}
