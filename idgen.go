package roster

import (
	"math/rand/v2"

	"github.com/jward/roster/internal/store"
)

// Identifier bounds, inclusive. Generators never produce a value
// outside this range, so any identifier below MinID (e.g. -1) is
// guaranteed to be absent from a service.
const (
	MinID int64 = 1
	MaxID int64 = 10000
)

// IDGenerator produces user identifiers. Implementations are injected
// into a Service with WithIDGenerator so tests can pin identifiers.
type IDGenerator interface {
	// NextID returns the next identifier in [MinID, MaxID]. No
	// uniqueness is guaranteed across calls.
	NextID() int64
}

// randGenerator draws uniformly from [MinID, MaxID].
type randGenerator struct {
	r *rand.Rand
}

// NewRandGenerator returns an IDGenerator backed by r. A nil r falls
// back to the process-wide random source.
func NewRandGenerator(r *rand.Rand) IDGenerator {
	return &randGenerator{r: r}
}

func (g *randGenerator) NextID() int64 {
	span := MaxID - MinID + 1
	if g.r == nil {
		return MinID + rand.Int64N(span)
	}
	return MinID + g.r.Int64N(span)
}

// defaultIDGen is the process-wide generator used by CreateUser and by
// services built without WithIDGenerator.
var defaultIDGen IDGenerator = &randGenerator{}

// CreateUser builds a User and assigns it a random identifier from the
// process-wide generator. It never fails, for any string inputs. The
// returned user is not attached to any service.
func CreateUser(name, email string) *User {
	u := store.NewUser(name, email)
	id := defaultIDGen.NextID()
	u.ID = &id
	return u
}
