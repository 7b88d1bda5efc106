package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	ReasonMissing       = "missing"
	ReasonWrongType     = "wrong_type"
	ReasonOutOfRange    = "out_of_range"
	ReasonMalformed     = "malformed"
	ReasonInvalidChoice = "invalid_choice"
	ReasonInvalid       = "invalid"
)

type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed, not only the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed for reason.
func (e *ValidationError) Has(field, reason string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Reason == reason {
			return true
		}
	}
	return false
}

// schemaBaseURL anchors embedded schemas so they never resolve against the
// working directory.
const schemaBaseURL = "https://realestate-api.local/"

// Validator holds the compiled JSON schemas, keyed by file name without
// extension.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every *.json file in dir of fsys.
func NewValidator(fsys fs.FS, dir string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	compiler.ExtractAnnotations = true

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", p, err)
		}
		if err := compiler.AddResource(schemaBaseURL+p, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", p, err)
		}
		names = append(names, entry.Name())
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(schemaBaseURL + path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		v.schemas[strings.TrimSuffix(name, ".json")] = schema
	}
	return v, nil
}

// Validate runs Coerce then Check against the named schema and decodes the
// accepted document into dst.
func (v *Validator) Validate(name string, raw []byte, dst any) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	doc, err := Coerce(schema, raw)
	if err != nil {
		return err
	}
	if err := Check(schema, doc); err != nil {
		return err
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", name, err)
	}
	if err := json.Unmarshal(encoded, dst); err != nil {
		return fmt.Errorf("decode %s document: %w", name, err)
	}
	return nil
}

// Coerce parses raw into a document holding only the properties the schema
// declares, with schema defaults filled in for absent ones.
func Coerce(schema *jsonschema.Schema, raw []byte) (map[string]any, error) {
	parsed, err := decodeJSON(raw)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Reason: ReasonMalformed, Message: "request body is not valid JSON"}}}
	}
	input, ok := parsed.(map[string]any)
	if !ok {
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Reason: ReasonMalformed, Message: "request body must be a JSON object"}}}
	}

	doc := make(map[string]any, len(schema.Properties))
	for name, prop := range schema.Properties {
		value, present := input[name]
		if !present {
			if prop.Default != nil {
				doc[name] = prop.Default
			}
			continue
		}
		doc[name] = normalizeInteger(prop, value)
	}
	return doc, nil
}

// decodeJSON parses exactly one JSON value, keeping numbers as json.Number
// the way the schema validator expects them.
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}
	return parsed, nil
}

// normalizeInteger turns 3.0 into 3 for integer fields so the typed decode
// does not reject it.
func normalizeInteger(prop *jsonschema.Schema, value any) any {
	n, ok := value.(json.Number)
	if !ok || !hasType(prop, "integer") {
		return value
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return value
	}
	return json.Number(strconv.FormatInt(int64(f), 10))
}

func hasType(s *jsonschema.Schema, t string) bool {
	for _, typ := range s.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// Check reports missing required properties and every violated constraint
// of doc.
func Check(schema *jsonschema.Schema, doc map[string]any) error {
	var fields []FieldError
	for _, name := range schema.Required {
		if _, ok := doc[name]; !ok {
			fields = append(fields, FieldError{Field: name, Reason: ReasonMissing, Message: "field required"})
		}
	}

	if err := schema.Validate(doc); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return err
		}
		fields = append(fields, leafErrors(verr)...)
	}

	if len(fields) == 0 {
		return nil
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return &ValidationError{Fields: fields}
}

func leafErrors(verr *jsonschema.ValidationError) []FieldError {
	if len(verr.Causes) > 0 {
		var out []FieldError
		for _, cause := range verr.Causes {
			out = append(out, leafErrors(cause)...)
		}
		return out
	}

	keyword := path.Base(verr.KeywordLocation)
	// missing properties are already reported one by one
	if keyword == "required" {
		return nil
	}

	field := strings.ReplaceAll(strings.TrimPrefix(verr.InstanceLocation, "/"), "/", ".")
	if field == "" {
		field = "body"
	}
	return []FieldError{{Field: field, Reason: reasonFor(keyword), Message: verr.Message}}
}

func reasonFor(keyword string) string {
	switch keyword {
	case "type":
		return ReasonWrongType
	case "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "minLength", "maxLength", "minItems", "maxItems":
		return ReasonOutOfRange
	case "format", "pattern":
		return ReasonMalformed
	case "enum", "const":
		return ReasonInvalidChoice
	default:
		return ReasonInvalid
	}
}
