// Package fake generates deterministic synthetic data for test fixtures.
//
// Each generator draws from a process-wide, lazily advanced sequence, so two
// draws from the same generator never return the same raw value within one
// sequence epoch. Generators over finite vocabularies restart from scratch
// once exhausted and will repeat earlier values; use the counter-backed
// generators when uniqueness matters.
//
// A seeded default Faker is available through the package-level functions.
// Construct your own with New to seed or reset deterministically in tests.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSeed seeds the package-level Faker.
const DefaultSeed int64 = 642

const (
	idStart         = 1
	arxivStart      = 1000
	utStart         = 100000000000000
	researcherStart = 1000
	issnStart       = 1000000  // seven digit payload, check digit appended
	orcidStart      = 15040608 // keeps the payload inside the valid ORCID range
)

// Faker is a registry of synthetic data generators sharing one seed.
// All methods are safe for concurrent use.
type Faker struct {
	mu      sync.Mutex
	rand    *gofakeit.Faker
	entropy *ulid.MonotonicEntropy
	title   cases.Caser

	ids          *Sequence[int64]
	numbers      *Sequence[int64]
	dois         *Sequence[int64]
	pmids        *Sequence[int64]
	arxivs       *Sequence[int64]
	uts          *Sequence[int64]
	manuscripts  *Sequence[int64]
	publishers   *Sequence[int64]
	publications *Sequence[int64]
	institutions *Sequence[int64]
	affiliations *Sequence[int64]
	researchers  *Sequence[int64]
	issns        *Sequence[int64]
	orcids       *Sequence[int64]

	names     *Sequence[[]string]
	emails    *Sequence[[]string]
	journals  *Sequence[[]string]
	countries *Sequence[[]string]
	gibberish *Sequence[[]string]
}

// New returns a Faker with every generator reset to its initial state.
func New(seed int64) *Faker {
	return &Faker{
		mu:      sync.Mutex{},
		rand:    gofakeit.New(seed),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0), //nolint:gosec // synthetic test data, not crypto
		title:   cases.Title(language.English),

		ids:          NewSequence(Count(idStart)),
		numbers:      NewSequence(Count(0)),
		dois:         NewSequence(Count(0)),
		pmids:        NewSequence(Count(0)),
		arxivs:       NewSequence(Count(arxivStart)),
		uts:          NewSequence(Count(utStart)),
		manuscripts:  NewSequence(Count(0)),
		publishers:   NewSequence(Count(0)),
		publications: NewSequence(Count(0)),
		institutions: NewSequence(Count(0)),
		affiliations: NewSequence(Count(0)),
		researchers:  NewSequence(Count(researcherStart)),
		issns:        NewSequence(Count(issnStart)),
		orcids:       NewSequence(Count(orcidStart)),

		names:     NewSequence(Product(firstNames, lastNames)),
		emails:    NewSequence(Product(adjectives, lastNames)),
		journals:  NewSequence(Product(countries, adjectives, disciplines)),
		countries: NewSequence(Product(countries)),
		gibberish: NewSequence(Product(words, words, words)),
	}
}

var defaultFaker = New(DefaultSeed) //nolint:gochecknoglobals // process-wide registry, resettable via New

// Default returns the process-wide Faker, seeded with DefaultSeed.
func Default() *Faker { return defaultFaker }

// ID returns the next unique integer identifier, starting at 1.
func (f *Faker) ID() int64 { return f.ids.Next() }

// Number returns the next integer of a plain counter, starting at 0.
func (f *Faker) Number() int64 { return f.numbers.Next() }

// Name returns a full name from the cross-product of known first and
// last names.
func (f *Faker) Name() string {
	n := f.names.Next()

	return n[0] + " " + n[1]
}

// Email returns an address of the form "adjective.lastname@test.com".
func (f *Faker) Email() string {
	e := f.emails.Next()

	return strings.ToLower(e[0]) + "." + strings.ToLower(e[1]) + "@test.com"
}

// JournalName returns a plausible academic journal name.
func (f *Faker) JournalName() string {
	j := f.journals.Next()

	return fmt.Sprintf("The %s journal of %s %s", j[0], j[1], j[2])
}

const maxCountryLen = 50

// CountryName returns a country name, truncated to 50 characters.
func (f *Faker) CountryName() string {
	c := f.countries.Next()[0]
	if len(c) > maxCountryLen {
		c = c[:maxCountryLen]
	}

	return c
}

// Gibberish returns a sentence of three common words.
func (f *Faker) Gibberish() string {
	return strings.Join(f.gibberish.Next(), " ")
}

// Title returns a title-cased three word phrase.
func (f *Faker) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.title.String(strings.Join(f.gibberish.Next(), " "))
}

// PublisherName returns the next numbered publisher name.
func (f *Faker) PublisherName() string {
	return fmt.Sprintf("Publisher %d", f.publishers.Next())
}

// PublicationTitle returns the next numbered publication title.
func (f *Faker) PublicationTitle() string {
	return fmt.Sprintf("Publication %d", f.publications.Next())
}

// InstitutionName returns the next numbered institution name.
func (f *Faker) InstitutionName() string {
	return fmt.Sprintf("Institution %d", f.institutions.Next())
}

// AffiliationName returns the next numbered affiliation name.
func (f *Faker) AffiliationName() string {
	return fmt.Sprintf("Affiliation %d", f.affiliations.Next())
}

// UUID returns a random universally unique identifier.
// Unlike the sequence backed generators it is unique across processes.
func (f *Faker) UUID() string {
	return uuid.New().String()
}

// ULID returns a lexicographically sortable unique identifier drawn from
// the Faker's seeded entropy.
func (f *Faker) ULID() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), f.entropy).String()
}

// Package-level generators delegating to the default Faker.

func ID() int64 { return defaultFaker.ID() }

func Number() int64 { return defaultFaker.Number() }

func Name() string { return defaultFaker.Name() }

func Email() string { return defaultFaker.Email() }

func JournalName() string { return defaultFaker.JournalName() }

func CountryName() string { return defaultFaker.CountryName() }

func Gibberish() string { return defaultFaker.Gibberish() }

func Title() string { return defaultFaker.Title() }

func PublisherName() string { return defaultFaker.PublisherName() }

func PublicationTitle() string { return defaultFaker.PublicationTitle() }

func InstitutionName() string { return defaultFaker.InstitutionName() }

func AffiliationName() string { return defaultFaker.AffiliationName() }

func UUID() string { return defaultFaker.UUID() }

func ULID() string { return defaultFaker.ULID() }

func ISSN() string { return defaultFaker.ISSN() }

func ORCID() string { return defaultFaker.ORCID() }

func DOI() string { return defaultFaker.DOI() }

func PMID() string { return defaultFaker.PMID() }

func ArXiv() string { return defaultFaker.ArXiv() }

func UT(prefix string) string { return defaultFaker.UT(prefix) }

func ManuscriptID() string { return defaultFaker.ManuscriptID() }

func ResearcherID() string { return defaultFaker.ResearcherID() }
