// Package id generates record identifiers on the client side, before the
// record store has seen the record.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefix marks identifiers minted by this package, matching the shape of
// the ids the record store hands out.
const Prefix = "ID-"

// Generator mints time-sortable identifiers. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewGenerator returns a generator seeded from crypto/rand. IDs minted within
// the same millisecond stay lexicographically increasing.
func NewGenerator() *Generator {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
		now:     time.Now,
	}
}

// New returns a fresh identifier such as "ID-01HV3K...".
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		// only when the clock runs backwards past the monotonic window
		panic(err)
	}
	return Prefix + v.String()
}

var defaultGenerator = NewGenerator()

// New returns a fresh identifier from the package generator.
func New() string {
	return defaultGenerator.New()
}

// Time extracts the creation time of an identifier minted by this package.
func Time(s string) (time.Time, bool) {
	if !strings.HasPrefix(s, Prefix) {
		return time.Time{}, false
	}
	v, err := ulid.ParseStrict(strings.TrimPrefix(s, Prefix))
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(v.Time()), true
}
