package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Schema is the subset of JSON Schema needed to describe tool arguments.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Format               string             `json:"format,omitempty"`
	Description          string             `json:"description,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
	Defs                 map[string]*Schema `json:"$defs,omitempty"`
}

// GenerateJSONSchema returns the schema of T. Invalid `jsonschema` tags are
// reported as an error in the schema description of the offending property
// rather than failing the whole generation.
//
//	type Input struct {
//	    Expression string `json:"expression" jsonschema:"description=Two integers and an optional operator"`
//	}
//	schema := jsonschema.GenerateJSONSchema[Input]()
func GenerateJSONSchema[T any]() *Schema {
	g := &generator{
		inProgress: make(map[reflect.Type]bool),
		referenced: make(map[reflect.Type]bool),
		defs:       make(map[string]*Schema),
	}
	schema := g.schemaFor(reflect.TypeFor[T]())
	if len(g.defs) > 0 {
		schema.Defs = g.defs
	}
	return schema
}

type generator struct {
	inProgress map[reflect.Type]bool
	referenced map[reflect.Type]bool
	defs       map[string]*Schema
}

var timeType = reflect.TypeFor[time.Time]()

func (g *generator) schemaFor(t reflect.Type) *Schema {
	if t == timeType {
		return &Schema{Type: "string", Format: "date-time"}
	}
	switch t.Kind() {
	case reflect.Ptr:
		return g.schemaFor(t.Elem())
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: g.schemaFor(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: g.schemaFor(t.Elem())}
	case reflect.Struct:
		return g.structSchema(t)
	default:
		return &Schema{Type: "object"}
	}
}

func (g *generator) structSchema(t reflect.Type) *Schema {
	if g.inProgress[t] {
		g.referenced[t] = true
		return &Schema{Ref: "#/$defs/" + defName(t)}
	}
	g.inProgress[t] = true
	defer delete(g.inProgress, t)

	schema := &Schema{Type: "object", Properties: make(map[string]*Schema)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		fieldSchema := g.schemaFor(field.Type)
		requiredByTag := false
		if fieldSchema.Ref == "" {
			var err error
			requiredByTag, err = applyTag(field, fieldSchema)
			if err != nil {
				fieldSchema.Description = strings.TrimSpace(fieldSchema.Description + " (invalid jsonschema tag: " + err.Error() + ")")
			}
		}
		schema.Properties[name] = fieldSchema

		if requiredByTag || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}

	if g.referenced[t] {
		g.defs[defName(t)] = schema
		if len(g.inProgress) > 1 {
			return &Schema{Ref: "#/$defs/" + defName(t)}
		}
	}
	return schema
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag reads `jsonschema:"description=..,enum=a,enum=b,required"`.
// Descriptions cannot contain commas.
func applyTag(field reflect.StructField, schema *Schema) (required bool, err error) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false, nil
	}

	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		switch {
		case !hasValue && key == "required":
			required = true
		case key == "description":
			schema.Description = value
		case key == "enum":
			v, err := enumValue(field.Type, value)
			if err != nil {
				return required, err
			}
			schema.Enum = append(schema.Enum, v)
		}
	}
	return required, nil
}

func enumValue(t reflect.Type, value string) (any, error) {
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to int64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to float64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to bool failed: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type: %v", t)
	}
}

func defName(t reflect.Type) string {
	if t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	return "anonymousStruct"
}

// JSON returns the compact JSON encoding of the schema.
func (s *Schema) JSON() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return data, nil
}

func (s *Schema) String() string {
	data, err := s.JSON()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
