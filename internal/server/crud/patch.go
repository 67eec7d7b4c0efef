package crud

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type fieldState uint8

const (
	absent fieldState = iota
	null
	present
)

// Patch is a request body read as a set of optional fields. It accepts
// JSON objects and multipart forms. A JSON null or an empty multipart field
// means "clear".
type Patch struct {
	json   map[string]json.RawMessage
	values map[string][]string
	files  map[string][]*multipart.FileHeader
}

func ReadPatch(c *fiber.Ctx) (*Patch, error) {
	p := new(Patch)

	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid multipart body")
		}
		p.values = form.Value
		p.files = form.File
	case len(bytes.TrimSpace(c.Body())) == 0:
	default:
		if err := json.Unmarshal(c.Body(), &p.json); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
		}
	}

	return p, nil
}

// Has reports whether the field was sent at all.
func (p *Patch) Has(name string) bool {
	if _, ok := p.json[name]; ok {
		return true
	}
	if _, ok := p.values[name]; ok {
		return true
	}
	_, ok := p.files[name]
	return ok
}

func (p *Patch) File(name string) *multipart.FileHeader {
	if files := p.files[name]; len(files) > 0 {
		return files[0]
	}

	return nil
}

// String stores a sent value in dst. Clearing stores "".
func (p *Patch) String(name string, dst *string) error {
	v, state, err := lookup(p, name, parseString)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = v
	case null:
		*dst = ""
	case absent:
	}

	return nil
}

// OptionalString stores a sent value in dst. Clearing, or sending "",
// stores nil.
func (p *Patch) OptionalString(name string, dst **string) error {
	v, state, err := lookup(p, name, parseString)
	if err != nil {
		return err
	}

	switch {
	case state == present && v != "":
		*dst = &v
	case state != absent:
		*dst = nil
	}

	return nil
}

func (p *Patch) Int64(name string, dst *int64) error {
	v, state, err := lookup(p, name, parseInt64)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = v
	case null:
		*dst = 0
	case absent:
	}

	return nil
}

func (p *Patch) OptionalInt64(name string, dst **int64) error {
	v, state, err := lookup(p, name, parseInt64)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = &v
	case null:
		*dst = nil
	case absent:
	}

	return nil
}

func (p *Patch) Bool(name string, dst *bool) error {
	v, state, err := lookup(p, name, strconv.ParseBool)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = v
	case null:
		*dst = false
	case absent:
	}

	return nil
}

func (p *Patch) OptionalBool(name string, dst **bool) error {
	v, state, err := lookup(p, name, strconv.ParseBool)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = &v
	case null:
		*dst = nil
	case absent:
	}

	return nil
}

func (p *Patch) OptionalTime(name string, dst **time.Time) error {
	v, state, err := lookup(p, name, parseTime)
	if err != nil {
		return err
	}

	switch state {
	case present:
		*dst = &v
	case null:
		*dst = nil
	case absent:
	}

	return nil
}

func lookup[T any](p *Patch, name string, parse func(string) (T, error)) (T, fieldState, error) {
	var zero T

	if raw, ok := p.json[name]; ok {
		if string(bytes.TrimSpace(raw)) == "null" {
			return zero, null, nil
		}

		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, present, nil
		}

		// numbers and booleans sent as strings
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			if v, err := parse(text); err == nil {
				return v, present, nil
			}
		}

		return zero, absent, invalidField(name)
	}

	if values, ok := p.values[name]; ok && len(values) > 0 {
		if values[0] == "" {
			return zero, null, nil
		}

		v, err := parse(values[0])
		if err != nil {
			return zero, absent, invalidField(name)
		}

		return v, present, nil
	}

	return zero, absent, nil
}

func invalidField(name string) error {
	return fiber.NewError(fiber.StatusBadRequest, name+" has an invalid value")
}

func parseString(s string) (string, error) { return s, nil }
func parseInt64(s string) (int64, error)   { return strconv.ParseInt(s, 10, 64) }
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}
