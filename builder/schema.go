package builder

import (
	"fmt"
	"reflect"
)

// schema is the set of settable fields of an entity type, derived once per
// request by reflecting over the struct's exported fields.
type schema struct {
	name   string
	typ    reflect.Type
	fields map[string]reflect.StructField
}

func schemaOf[E any]() schema {
	typ := reflect.TypeOf(new(E)).Elem()
	if typ.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %s is not a struct type", ErrUnimplementedModel, typ))
	}

	fields := map[string]reflect.StructField{}

	for i := range typ.NumField() {
		if f := typ.Field(i); f.IsExported() {
			fields[f.Name] = f
		}
	}

	return schema{
		name:   typ.Name(),
		typ:    typ,
		fields: fields,
	}
}

func (s schema) has(field string) bool {
	_, ok := s.fields[field]

	return ok
}

// accepts reports whether a setter for the given name is legitimate:
// either the entity has the field itself, or it is a relation key whose
// primary key lands in the <field>ID column.
func (s schema) accepts(field string) bool {
	return s.has(field) || s.has(field+relationSuffix)
}

const relationSuffix = "ID"

// instantiate constructs the entity from the resolved field map.
// Keys the schema does not recognize are dropped; they may still serve as
// hook context. Values must be assignable to their field, or convertible
// without changing representation class (named types, widening numerics).
func instantiate[E any](s schema, fields Fields) (E, error) { //nolint:ireturn // generic value, not an interface
	entity := reflect.New(s.typ).Elem()

	for name, value := range fields {
		field, ok := s.fields[name]
		if !ok || value == nil {
			continue
		}

		val := reflect.ValueOf(value)

		switch {
		case val.Type().AssignableTo(field.Type):
			entity.FieldByIndex(field.Index).Set(val)
		case convertible(val.Type(), field.Type):
			entity.FieldByIndex(field.Index).Set(val.Convert(field.Type))
		default:
			return *new(E), fmt.Errorf("%w: cannot set %s.%s (%s) to value of type %T",
				ErrInvalidFieldValue, s.name, name, field.Type, value)
		}
	}

	return entity.Interface().(E), nil //nolint:forcetypeassert // entity was built from E's type
}

// convertible restricts reflect's conversion rules to ones that keep the
// value intact: identical kinds (named types) or numeric widening. It
// rejects e.g. the int-to-string rune conversion.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	if from.Kind() == to.Kind() {
		return true
	}

	return numeric(from.Kind()) && numeric(to.Kind())
}

func numeric(k reflect.Kind) bool {
	switch k { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
