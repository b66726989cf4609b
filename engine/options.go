package engine

import (
	"time"
	"unicode/utf8"

	"github.com/npillmayer/dimex"
)

type config struct {
	maxIterations int // 0 means: derive from input length
	refTime       time.Time
	seeds         []dimex.Token
}

// Option configures a single parse.
type Option func(c *config)

// MaxIterations sets the maximum number of passes over the input. Values
// < 1 restore the default, which is 4 + 2 × the number of runes of the input.
// The final pass, which adds nothing and confirms the fixpoint, counts
// towards the limit: a single word derived in one pass needs a limit of 2.
func MaxIterations(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 0
		}
		c.maxIterations = n
	}
}

// ReferenceTime sets the point in time relative expressions refer to.
// It defaults to the time Parse is called.
func ReferenceTime(t time.Time) Option {
	return func(c *config) {
		c.refTime = t
	}
}

// Seed puts tokens into the working set before the first pass. Seeds take
// part in rule matching like any derived token. Seeds with a range outside
// of the input are ignored.
func Seed(tokens ...dimex.Token) Option {
	return func(c *config) {
		c.seeds = append(c.seeds, tokens...)
	}
}

func makeConfig(text string, opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxIterations == 0 {
		c.maxIterations = DefaultIterations(text)
	}
	if c.refTime.IsZero() {
		c.refTime = time.Now()
	}
	return c
}

// DefaultIterations is the ceiling on passes for a given input.
func DefaultIterations(text string) int {
	return 4 + 2*utf8.RuneCountInString(text)
}
