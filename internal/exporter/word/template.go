package word

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Placeholders of the generated template
const (
	placeholderDate         = "{{Date}}"
	placeholderTotalMethods = "{{TotalMethods}}"
	placeholderTotalClasses = "{{TotalClasses}}"
	placeholderContent      = "{{Content}}"
)

// templateParts are the minimal parts Word needs to open a document.
// Order matters: [Content_Types].xml must come first.
var templateParts = []struct {
	name string
	body string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr><w:t>API Reference</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: ` + placeholderDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Classes: ` + placeholderTotalClasses + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Documented Methods: ` + placeholderTotalMethods + `</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/></w:rPr><w:t xml:space="preserve">` + placeholderContent + `</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// buildTemplate returns a .docx archive with the placeholders above
func buildTemplate() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range templateParts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish template: %w", err)
	}
	return buf.Bytes(), nil
}
