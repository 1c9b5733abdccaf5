// Package model defines shared data structures.
package model

// Config defines practice settings resolved from flags and the config file.
type Config struct {
	PassagesPath string
	WordsPath    string
	Lang         string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	Theme        string
	LogLevel     string
}

// WordsMode reports whether passages are generated from a word list.
func (c Config) WordsMode() bool {
	return c.WordsPath != ""
}
