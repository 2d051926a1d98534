package biome

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Size thresholds for picking a name pool. A region strictly larger than
// BigRegion cells takes a big name.
const (
	BigRegion    = 10000
	MediumRegion = 1000
)

var (
	vowels     = []string{"a", "e", "i", "o", "u"}
	consonants = []string{"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "qu", "r", "s", "t", "v", "w", "x", "y", "z"}
	bigrams    = []string{
		"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
		"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
		"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
		"ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne", "ea",
		"ra", "ce", "li", "ch", "ll", "be", "ma", "si", "om", "ur",
	}
)

// Namer generates display names for biome regions.
type Namer struct {
	db  *Database
	rng *rand.Rand
}

// NewNamer creates a Namer drawing pool names from db.
func NewNamer(db *Database, r *rand.Rand) *Namer {
	return &Namer{db: db, rng: r}
}

// Name returns "The <Word> <PoolName>", with the pool chosen by size tier.
func (n *Namer) Name(c Category, size int) string {
	pool := n.Pool(c, size)
	return "The " + capitalize(n.word()) + " " + pool[n.rng.IntN(len(pool))]
}

// Pool returns the candidate base names for a region of the given size.
func (n *Namer) Pool(c Category, size int) []string {
	d := n.db.Get(c)
	switch {
	case size > BigRegion:
		return d.BigNames
	case size > MediumRegion:
		return d.MediumNames
	default:
		return d.SmallNames
	}
}

// word concatenates 2-5 tokens, each a consonant-vowel pair, a common bigram
// or a lone consonant.
func (n *Namer) word() string {
	var b strings.Builder
	tokens := 2 + n.rng.IntN(4)
	for i := 0; i < tokens; i++ {
		switch n.rng.IntN(3) {
		case 0:
			b.WriteString(pick(n.rng, consonants))
			b.WriteString(pick(n.rng, vowels))
		case 1:
			b.WriteString(pick(n.rng, bigrams))
		default:
			b.WriteString(pick(n.rng, consonants))
		}
	}
	return b.String()
}

func pick(r *rand.Rand, from []string) string {
	return from[r.IntN(len(from))]
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
