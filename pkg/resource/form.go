package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Payload is a create or update body. Implementations write their fields
// into the form in the order they should be transmitted.
type Payload interface {
	EncodeForm(form *Form)
}

// File is a binary attachment sent as a multipart part.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// OpenFile loads a file from disk as an attachment. The content type is
// derived from the extension.
func OpenFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read attachment: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return File{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Content:     bytes.NewReader(data),
	}, nil
}

type formField struct {
	name  string
	value any
	clear bool
	file  *File
}

// Form is the ordered set of fields of one request body. It is encoded as
// multipart form data when it carries at least one file and as JSON
// otherwise.
type Form struct {
	fields []formField
}

// Add sets name to value.
func (f *Form) Add(name string, value any) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// AddClear transmits name as explicitly empty.
func (f *Form) AddClear(name string) {
	f.fields = append(f.fields, formField{name: name, clear: true})
}

// AddFile attaches file under name.
func (f *Form) AddFile(name string, file File) {
	f.fields = append(f.fields, formField{name: name, file: &file})
}

// EncodeForm makes a Form usable as a Payload on its own.
func (f *Form) EncodeForm(dst *Form) {
	dst.fields = append(dst.fields, f.fields...)
}

// Names lists the field names in transmission order.
func (f *Form) Names() []string {
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.name)
	}

	return names
}

// HasFiles reports whether the form must be sent as multipart.
func (f *Form) HasFiles() bool {
	for _, field := range f.fields {
		if field.file != nil {
			return true
		}
	}

	return false
}

func encodePayload(p Payload) (io.Reader, string, error) {
	form := new(Form)
	p.EncodeForm(form)

	if form.HasFiles() {
		return form.encodeMultipart()
	}

	return form.encodeJSON()
}

func (f *Form) encodeJSON() (io.Reader, string, error) {
	body := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		if field.clear {
			body[field.name] = nil
			continue
		}
		body[field.name] = field.value
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	return bytes.NewReader(data), "application/json", nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (f *Form) encodeMultipart() (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if field.file == nil {
			value := ""
			if !field.clear {
				value = formValue(field.value)
			}
			if err := w.WriteField(field.name, value); err != nil {
				return nil, "", fmt.Errorf("failed to write form field %q: %w", field.name, err)
			}
			continue
		}

		contentType := field.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(field.name), quoteEscaper.Replace(field.file.Name)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", field.name, err)
		}
		if field.file.Content != nil {
			if _, err := io.Copy(part, field.file.Content); err != nil {
				return nil, "", fmt.Errorf("failed to write form file %q: %w", field.name, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}

func formValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
