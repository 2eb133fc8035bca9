package fake_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/fixtures/fake"
)

func TestFaker_Counters(t *testing.T) {
	t.Parallel()

	f := fake.New(fake.DefaultSeed)

	assert.Equal(t, int64(1), f.ID())
	assert.Equal(t, int64(2), f.ID())
	assert.Equal(t, int64(0), f.Number())
	assert.Equal(t, int64(1), f.Number())
}

func TestFaker_Vocabularies(t *testing.T) {
	t.Parallel()

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		assert.Equal(t, "Ada Hamilton", f.Name())
		assert.Equal(t, "Ada Hopper", f.Name())
	})

	t.Run("email", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		assert.Equal(t, "applied.hamilton@test.com", f.Email())
		assert.Equal(t, "applied.hopper@test.com", f.Email())
	})

	t.Run("journal name", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		assert.Equal(t, "The Argentina journal of applied biology", f.JournalName())
	})

	t.Run("country name", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		country := f.CountryName()
		assert.Equal(t, "Argentina", country)
		assert.LessOrEqual(t, len(country), 50)
	})

	t.Run("gibberish", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		assert.Equal(t, "amber amber amber", f.Gibberish())
		assert.Equal(t, "amber amber basin", f.Gibberish())
	})

	t.Run("title", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		assert.Equal(t, "Amber Amber Amber", f.Title())
	})
}

func TestFaker_NumberedNames(t *testing.T) {
	t.Parallel()

	f := fake.New(fake.DefaultSeed)

	assert.Equal(t, "Publisher 0", f.PublisherName())
	assert.Equal(t, "Publisher 1", f.PublisherName())
	assert.Equal(t, "Publication 0", f.PublicationTitle())
	assert.Equal(t, "Institution 0", f.InstitutionName())
	assert.Equal(t, "Affiliation 0", f.AffiliationName())
}

func TestFaker_Tokens(t *testing.T) {
	t.Parallel()

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		first := f.UUID()
		second := f.UUID()

		_, err := uuid.Parse(first)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("ulid", func(t *testing.T) {
		t.Parallel()

		f := fake.New(fake.DefaultSeed)

		first := f.ULID()
		second := f.ULID()

		_, err := ulid.Parse(first)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.True(t, strings.Compare(first, second) < 0, "ulids sort by creation order")
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, fake.Default(), fake.Default())

	// The process-wide generators stay unique, independent of what other
	// parallel tests drew already.
	assert.NotEqual(t, fake.ID(), fake.ID())
	assert.NotEqual(t, fake.Name(), fake.Name())
	assert.NotEqual(t, fake.ISSN(), fake.ISSN())
}
