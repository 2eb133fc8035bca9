package builder

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/google/uuid"

	"github.com/go-arrower/fixtures/fake"
	"github.com/go-arrower/fixtures/store"
)

var (
	// ErrFieldNotFound signals a setter for a field the entity does not have.
	ErrFieldNotFound = errors.New("field not found")
	// ErrUnimplementedDefaults signals a definition without default fields.
	ErrUnimplementedDefaults = errors.New("default fields not implemented")
	// ErrUnimplementedModel signals an entity type without an enumerable schema.
	ErrUnimplementedModel = errors.New("model not implemented")
	// ErrInvalidFieldValue signals a value that cannot be assigned to its field.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Repository is the persistence collaborator a built entity is handed to.
// Save errors propagate to the Build caller unmodified and untried, the
// builder performs no transaction management of its own.
type Repository[E any] interface {
	Save(ctx context.Context, entity E) error
}

type Option[E any] func(*config[E])

type config[E any] struct {
	idFieldName string
	repo        Repository[E]
	faker       *fake.Faker
}

// WithIDField overwrites the name of the identity field, which defaults
// to "ID".
func WithIDField[E any](name string) Option[E] {
	return func(c *config[E]) {
		c.idFieldName = name
	}
}

// WithRepository sets the persistence collaborator Build saves into.
// Without it, entities land in the process-wide store.Of store for E.
func WithRepository[E any](repo Repository[E]) Option[E] {
	return func(c *config[E]) {
		c.repo = repo
	}
}

// WithFaker sets the generator registry used for identity assignment,
// replacing the package-wide fake.Default.
func WithFaker[E any](f *fake.Faker) Option[E] {
	return func(c *config[E]) {
		c.faker = f
	}
}

// Builder assembles one entity of type E from the definition's defaults
// and the caller's overrides. Builders are immutable values in spirit:
// every setter returns a new builder with its own pending data, so two
// chains branched off the same base never observe each other's mutations.
// A single builder instance is not meant to be shared across goroutines.
type Builder[E any] struct {
	def    Definition[E]
	data   Fields
	config config[E]
}

// New returns a builder for the given fixture definition.
func New[E any](def Definition[E], opts ...Option[E]) *Builder[E] {
	b := &Builder[E]{
		def:    def,
		data:   Fields{},
		config: config[E]{idFieldName: "ID", repo: nil, faker: nil},
	}

	for _, opt := range opts {
		opt(&b.config)
	}

	return b
}

func (b *Builder[E]) copy() *Builder[E] {
	data := make(Fields, len(b.data))
	maps.Copy(data, b.data)

	return &Builder[E]{def: b.def, data: data, config: b.config}
}

// Set returns a new builder with the field set to the given value,
// overriding the definition's default for it. The value may be a literal
// or a zero-argument producer resolved at Build time. Setting a field the
// entity does not have panics with ErrFieldNotFound right away, before
// any persistence can occur.
func (b *Builder[E]) Set(field string, value any) *Builder[E] {
	if s := schemaOf[E](); !s.accepts(field) {
		panic(fmt.Errorf("%w: %s has no field %q", ErrFieldNotFound, s.name, field))
	}

	next := b.copy()
	next.data[field] = value

	return next
}

// SetData returns a new builder carrying an unvalidated key value pair.
// The pair never reaches the entity; it is visible to the Pre and Post
// hooks only, e.g. to parameterise a related entity built in Post.
func (b *Builder[E]) SetData(key string, value any) *Builder[E] {
	next := b.copy()
	next.data[key] = value

	return next
}

// Update returns a new builder with fn applied to a copy of the pending
// data. It is the extension point for custom setters that touch more than
// one value:
//
//	func (b AuthorBuilder) WithContact(name, email string) AuthorBuilder {
//		return AuthorBuilder{b.Update(func(data builder.Fields) {
//			data["PublishingName"] = name
//			data["contact_email"] = email
//		})}
//	}
func (b *Builder[E]) Update(fn func(data Fields)) *Builder[E] {
	next := b.copy()
	fn(next.data)

	return next
}

// Build assembles the entity and hands it to the persistence collaborator:
// defaults are computed and overlaid with the caller's overrides, producer
// values resolved, relations translated to their primary keys, a missing
// identity drawn from the generator, then the entity is constructed,
// saved, and returned after the hooks ran.
func (b *Builder[E]) Build(ctx context.Context) (E, error) { //nolint:ireturn // generic value, not an interface
	return b.build(ctx, true)
}

// BuildInMemory is Build without the save: it returns the fully populated
// entity and leaves the persistence collaborator untouched.
func (b *Builder[E]) BuildInMemory(ctx context.Context) (E, error) { //nolint:ireturn // generic value, not an interface
	return b.build(ctx, false)
}

// MustBuild is Build panicking on error. Handy as a producer inside
// another definition's defaults:
//
//	builder.Fields{"User": func() any { return builder.New(UserDef{}).MustBuild(ctx) }}
func (b *Builder[E]) MustBuild(ctx context.Context) E { //nolint:ireturn // generic value, not an interface
	entity, err := b.Build(ctx)
	if err != nil {
		panic(err)
	}

	return entity
}

func (b *Builder[E]) build(ctx context.Context, persist bool) (E, error) { //nolint:ireturn
	if b.def == nil {
		panic(fmt.Errorf("%w: builder has no definition", ErrUnimplementedDefaults))
	}

	sch := schemaOf[E]()
	defaults := b.def.DefaultFields()

	fields := make(Fields, len(defaults)+len(b.data))
	maps.Copy(fields, defaults)

	for k, v := range b.data { // overrides always win, independent of call order
		if sch.accepts(k) {
			fields[k] = v
		}
	}

	for k, v := range fields {
		fields[k] = resolve(v)
	}

	b.translateRelations(sch, fields)

	if _, ok := fields[b.config.idFieldName]; !ok {
		fields[b.config.idFieldName] = b.nextID(sch)
	}

	data := b.hookData()

	if h, ok := any(b.def).(PreHook); ok {
		if err := h.Pre(ctx, fields, data); err != nil {
			return *new(E), fmt.Errorf("pre hook failed: %w", err)
		}
	}

	entity, err := instantiate[E](sch, fields)
	if err != nil {
		return *new(E), err
	}

	if persist {
		if err := b.repository().Save(ctx, entity); err != nil {
			return *new(E), fmt.Errorf("could not save %s: %w", sch.name, err)
		}
	}

	if h, ok := any(b.def).(PostHook[E]); ok {
		if err := h.Post(ctx, &entity, data); err != nil {
			return *new(E), fmt.Errorf("post hook failed: %w", err)
		}
	}

	return entity, nil
}

// translateRelations replaces every resolved relation value with its
// primary key: a struct under key K moves to K+"ID" if only the latter is
// a field. Runs after producer resolution, so relation defaults are
// materialized before translation.
func (b *Builder[E]) translateRelations(sch schema, fields Fields) {
	for k, v := range fields {
		if sch.has(k) || !sch.has(k+relationSuffix) {
			continue
		}

		if pk, ok := primaryKey(v, b.config.idFieldName); ok {
			fields[k+relationSuffix] = pk
			delete(fields, k)
		}
	}
}

// nextID draws a fresh identity from the generator, based on the kind of
// the identity field: counters for integers, UUIDs for strings.
func (b *Builder[E]) nextID(sch schema) any {
	field, ok := sch.fields[b.config.idFieldName]
	if !ok {
		panic(fmt.Errorf("%w: %s has no identity field %q", ErrFieldNotFound, sch.name, b.config.idFieldName))
	}

	switch field.Type.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return b.faker().ID()
	case reflect.String:
		return uuid.New().String()
	default:
		panic("type of identity field is not supported: " + field.Type.Kind().String())
	}
}

func (b *Builder[E]) hookData() Fields {
	data := Fields{}

	if p, ok := any(b.def).(ContextProvider); ok {
		maps.Copy(data, p.BuildContext())
	}

	maps.Copy(data, b.data) // values set on the builder win over provided context

	return data
}

func (b *Builder[E]) repository() Repository[E] { //nolint:ireturn // configurable collaborator
	if b.config.repo != nil {
		return b.config.repo
	}

	return store.Of[E]()
}

func (b *Builder[E]) faker() *fake.Faker {
	if b.config.faker != nil {
		return b.config.faker
	}

	return fake.Default()
}

// resolve invokes zero-argument producers and passes every other value
// through untouched.
func resolve(value any) any {
	if value == nil {
		return nil
	}

	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Func && !val.IsNil() &&
		val.Type().NumIn() == 0 && val.Type().NumOut() == 1 {
		return val.Call(nil)[0].Interface()
	}

	return value
}

// primaryKey extracts the identity of a built entity, reporting false for
// anything that is not a struct carrying the identity field.
func primaryKey(value any, idFieldName string) (any, bool) {
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	if !val.IsValid() || val.Kind() != reflect.Struct {
		return nil, false
	}

	field := val.FieldByName(idFieldName)
	if !field.IsValid() {
		return nil, false
	}

	return field.Interface(), true
}
