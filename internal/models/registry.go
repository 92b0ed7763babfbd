package models

import (
	"time"

	"github.com/google/uuid"
)

// FieldKind classifies a field for the map conversions. Identifier and
// timestamp fields are rendered as their canonical textual forms.
type FieldKind int

const (
	// FieldValue is a plain field rendered as-is.
	FieldValue FieldKind = iota
	// FieldID is a UUID field rendered as its canonical string form.
	FieldID
	// FieldTimestamp is a time field rendered as RFC 3339 text.
	FieldTimestamp
)

// FieldSpec describes one field of an entity type E. Get reads the field
// value; Set writes it and reports whether the value had a usable type.
type FieldSpec[E any] struct {
	Name     string
	Kind     FieldKind
	Required bool
	Get      func(*E) any
	Set      func(*E, any) bool
}

// protectedFields are excluded from Apply by default so that bulk updates
// cannot overwrite identity or audit data.
var protectedFields = []string{"id", "created_at", "updated_at"}

// Descriptor is the compile-time field registry of an entity type E. It owns
// the table naming and the map conversions, keeping the entity structs free of
// reflection.
type Descriptor[E any] struct {
	typeName string
	table    string
	fields   []FieldSpec[E]
	index    map[string]int
}

// NewDescriptor builds the descriptor for the entity type named typeName with
// the given fields in declaration order.
func NewDescriptor[E any](typeName string, fields ...FieldSpec[E]) *Descriptor[E] {
	index := make(map[string]int, len(fields))
	for i, field := range fields {
		index[field.Name] = i
	}

	return &Descriptor[E]{
		typeName: typeName,
		table:    TableNameFromType(typeName),
		fields:   fields,
		index:    index,
	}
}

// TypeName returns the entity type name the descriptor was built for.
func (d *Descriptor[E]) TypeName() string {
	return d.typeName
}

// TableName returns the derived table name.
func (d *Descriptor[E]) TableName() string {
	return d.table
}

// QualifiedName returns the schema-qualified table name.
func (d *Descriptor[E]) QualifiedName() string {
	return SchemaName + "." + d.table
}

// FieldNames returns the field names in declaration order.
func (d *Descriptor[E]) FieldNames() []string {
	names := make([]string, len(d.fields))
	for i, field := range d.fields {
		names[i] = field.Name
	}
	return names
}

// RequiredFields returns the names of the fields that must be provided when
// creating the entity, i.e. the non-nullable fields without a generated
// default.
func (d *Descriptor[E]) RequiredFields() []string {
	var names []string
	for _, field := range d.fields {
		if field.Required {
			names = append(names, field.Name)
		}
	}
	return names
}

// ToMap renders the entity as a map keyed by field name, in declaration
// order semantics. Identifier and timestamp fields are converted to their
// canonical string forms; fields named in exclude are skipped.
func (d *Descriptor[E]) ToMap(entity *E, exclude ...string) map[string]any {
	excluded := toSet(exclude)

	result := make(map[string]any, len(d.fields))
	for _, field := range d.fields {
		if _, skip := excluded[field.Name]; skip {
			continue
		}
		result[field.Name] = renderValue(field.Kind, field.Get(entity))
	}

	return result
}

// Apply bulk-sets entity fields from data. The identity and audit fields are
// excluded so their integrity survives arbitrary input; keys that name no
// field and values of the wrong type are silently ignored.
func (d *Descriptor[E]) Apply(entity *E, data map[string]any) {
	d.ApplyExcluding(entity, data, protectedFields...)
}

// ApplyExcluding bulk-sets entity fields from data with a caller-provided
// exclusion set instead of the default one.
func (d *Descriptor[E]) ApplyExcluding(entity *E, data map[string]any, exclude ...string) {
	excluded := toSet(exclude)

	for name, value := range data {
		if _, skip := excluded[name]; skip {
			continue
		}
		i, ok := d.index[name]
		if !ok {
			continue
		}
		d.fields[i].Set(entity, value)
	}
}

// renderValue converts identifier and timestamp values to their canonical
// textual forms and passes everything else through.
func renderValue(kind FieldKind, value any) any {
	switch kind {
	case FieldID:
		if id, ok := value.(uuid.UUID); ok {
			return id.String()
		}
	case FieldTimestamp:
		if ts, ok := value.(time.Time); ok {
			return ts.Format(time.RFC3339Nano)
		}
	}
	return value
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// BaseFields returns the specs for the shared identity and audit fields. The
// base accessor locates the embedded Base inside the entity. All three fields
// carry generated defaults and are therefore not required.
func BaseFields[E any](base func(*E) *Base) []FieldSpec[E] {
	return []FieldSpec[E]{
		{
			Name: "id",
			Kind: FieldID,
			Get:  func(e *E) any { return base(e).ID },
			Set: func(e *E, v any) bool {
				id, ok := v.(uuid.UUID)
				if ok {
					base(e).ID = id
				}
				return ok
			},
		},
		{
			Name: "created_at",
			Kind: FieldTimestamp,
			Get:  func(e *E) any { return base(e).CreatedAt },
			Set: func(e *E, v any) bool {
				ts, ok := v.(time.Time)
				if ok {
					base(e).CreatedAt = ts
				}
				return ok
			},
		},
		{
			Name: "updated_at",
			Kind: FieldTimestamp,
			Get:  func(e *E) any { return base(e).UpdatedAt },
			Set: func(e *E, v any) bool {
				ts, ok := v.(time.Time)
				if ok {
					base(e).UpdatedAt = ts
				}
				return ok
			},
		},
	}
}

// NamedFields returns the spec for the name field. Names are non-nullable and
// have no default, so the field is required.
func NamedFields[E any](named func(*E) *Named) []FieldSpec[E] {
	return []FieldSpec[E]{
		{
			Name:     "name",
			Kind:     FieldValue,
			Required: true,
			Get:      func(e *E) any { return named(e).Name },
			Set: func(e *E, v any) bool {
				name, ok := v.(string)
				if ok {
					named(e).Name = name
				}
				return ok
			},
		},
	}
}

// DescribedFields returns the spec for the nullable description field.
func DescribedFields[E any](described func(*E) *Described) []FieldSpec[E] {
	return []FieldSpec[E]{
		{
			Name: "description",
			Kind: FieldValue,
			Get: func(e *E) any {
				if desc := described(e).Description; desc != nil {
					return *desc
				}
				return nil
			},
			Set: func(e *E, v any) bool {
				switch value := v.(type) {
				case nil:
					described(e).Description = nil
				case string:
					described(e).Description = &value
				case *string:
					described(e).Description = value
				default:
					return false
				}
				return true
			},
		},
	}
}
