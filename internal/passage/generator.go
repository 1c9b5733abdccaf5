package passage

import (
	"errors"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// GeneratorConfig controls generated passages.
type GeneratorConfig struct {
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator builds passages from random words of a word list. It satisfies
// the same Pick contract as Set, drawing a fresh passage each time.
type Generator struct {
	words []string
	cfg   GeneratorConfig
	rnd   *rand.Rand
}

// NewGenerator returns a generator over words.
func NewGenerator(words []string, cfg GeneratorConfig) (*Generator, error) {
	if len(words) == 0 {
		return nil, ErrEmptySet
	}
	if cfg.Words <= 0 {
		return nil, errors.New("word count must be > 0")
	}
	return &Generator{
		words: words,
		cfg:   cfg,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed makes generated passages reproducible.
func (g *Generator) Seed(seed int64) {
	g.rnd = rand.New(rand.NewSource(seed))
}

// Pick generates one passage.
func (g *Generator) Pick() (string, error) {
	out := make([]string, 0, g.cfg.Words)
	for i := 0; i < g.cfg.Words; i++ {
		word := g.words[g.rnd.Intn(len(g.words))]
		word = applyCaps(g.rnd, word, g.cfg.CapsPct)
		word = applyPunct(g.rnd, word, g.cfg.PunctPct, g.cfg.PunctSet)
		out = append(out, word)
	}
	return strings.Join(out, " "), nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 || rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 || rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}
