package fake

// Small fixed vocabularies backing the cross-product generators.
// Kept short on purpose: the products stay enumerable in tests and the
// generated values stay readable in test failures.

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Claude", "Donald", "Edsger",
	"Grace", "John", "Katherine", "Ken", "Linus", "Margaret",
}

var lastNames = []string{
	"Hamilton", "Hopper", "Kernighan", "Knuth", "Lamport",
	"Liskov", "Lovelace", "Ritchie", "Shannon", "Turing",
}

var adjectives = []string{
	"applied", "computational", "experimental", "modern",
	"practical", "quantitative", "theoretical",
}

var disciplines = []string{
	"biology", "chemistry", "economics", "linguistics",
	"mathematics", "physics", "sociology",
}

var countries = []string{
	"Argentina", "Brazil", "Canada", "Denmark", "Estonia",
	"Finland", "Germany", "Hungary", "Iceland", "Japan",
	"Kenya", "Luxembourg", "Mexico", "New Zealand", "Norway",
	"Portugal", "Singapore", "Sweden", "Switzerland", "Uruguay",
}

var words = []string{
	"amber", "basin", "cedar", "delta", "ember",
	"fjord", "grove", "harbor", "island", "juniper",
}
