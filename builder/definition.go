package builder

import (
	"context"
	"fmt"
)

// Fields maps field names to values. A value may be a literal or a
// zero-argument producer (any func with no parameters and one result),
// which is invoked once per Build call. Producers make it possible to
// embed "build a related entity on demand" in a default, without paying
// for it when the caller overrides the field.
type Fields map[string]any

// Definition describes how to build one entity type: it supplies the
// default value for every field a valid entity needs. DefaultFields is
// called again on every Build, never cached, so it can hand out freshly
// generated fake values.
type Definition[E any] interface {
	DefaultFields() Fields
}

// Unimplemented is the base every fixture definition should embed.
// A definition that never overrides DefaultFields fails with
// ErrUnimplementedDefaults the first time defaults are requested.
type Unimplemented[E any] struct{}

func (Unimplemented[E]) DefaultFields() Fields {
	panic(fmt.Errorf("%w: definition for %T does not implement DefaultFields", ErrUnimplementedDefaults, *new(E)))
}

// ContextProvider is implemented by definitions that want to expose extra
// non-field data to their hooks. Values already set on the builder win
// over the provided context.
type ContextProvider interface {
	BuildContext() Fields
}

// PreHook runs before the entity is constructed. It may mutate the
// resolved field map or perform side effects; data carries the builder's
// pending values including non-field context.
type PreHook interface {
	Pre(ctx context.Context, fields Fields, data Fields) error
}

// PostHook runs after the entity was constructed and saved, with the
// identity already assigned. Typically used to attach related entities.
type PostHook[E any] interface {
	Post(ctx context.Context, entity *E, data Fields) error
}
