// Package testdata provides entities and fixture definitions shared by
// the builder tests.
package testdata

import (
	"context"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/fixtures/builder"
	"github.com/go-arrower/fixtures/fake"
)

type User struct {
	ID    int
	Email string
}

type Author struct {
	ID             int
	UserID         int
	PublishingName string
	Age            int
}

type (
	EntityID string
	Entity   struct {
		ID   EntityID
		Name string
	}
)

type UserDefinition struct {
	builder.Unimplemented[User]
}

func (UserDefinition) DefaultFields() builder.Fields {
	return builder.Fields{
		"Email": fake.Email,
	}
}

type AuthorDefinition struct {
	builder.Unimplemented[Author]
}

func (AuthorDefinition) DefaultFields() builder.Fields {
	return builder.Fields{
		"User": func() any {
			return builder.New[User](UserDefinition{}).MustBuild(context.Background())
		},
		"PublishingName": fake.Name,
		"Age":            gofakeit.Number(18, 90),
	}
}

type EntityDefinition struct {
	builder.Unimplemented[Entity]
}

func (EntityDefinition) DefaultFields() builder.Fields {
	return builder.Fields{
		"Name": gofakeit.Name(),
	}
}
