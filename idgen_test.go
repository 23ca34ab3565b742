package roster

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandGenerator_Bounds(t *testing.T) {
	t.Parallel()
	gen := NewRandGenerator(rand.New(rand.NewPCG(42, 0)))

	// Enough draws to cover the full range with high probability.
	seenMin, seenMax := false, false
	for i := 0; i < 200000; i++ {
		id := gen.NextID()
		require.GreaterOrEqual(t, id, MinID)
		require.LessOrEqual(t, id, MaxID)
		if id == MinID {
			seenMin = true
		}
		if id == MaxID {
			seenMax = true
		}
	}
	assert.True(t, seenMin, "range is inclusive of MinID")
	assert.True(t, seenMax, "range is inclusive of MaxID")
}

func TestRandGenerator_NilSourceFallsBack(t *testing.T) {
	t.Parallel()
	gen := NewRandGenerator(nil)
	for i := 0; i < 100; i++ {
		id := gen.NextID()
		assert.GreaterOrEqual(t, id, MinID)
		assert.LessOrEqual(t, id, MaxID)
	}
}

func TestRandGenerator_SeededIsReproducible(t *testing.T) {
	t.Parallel()
	a := NewRandGenerator(rand.New(rand.NewPCG(7, 7)))
	b := NewRandGenerator(rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextID(), b.NextID())
	}
}

func TestCreateUser_AssignsIdentifier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		email string
	}{
		{"Alice", "alice@example.com"},
		{"", ""},
		{"Bob", "not-an-email"},
	}
	for _, tt := range tests {
		u := CreateUser(tt.name, tt.email)
		require.NotNil(t, u.ID, "CreateUser always assigns an identifier")
		assert.GreaterOrEqual(t, *u.ID, MinID)
		assert.LessOrEqual(t, *u.ID, MaxID)
		assert.Equal(t, tt.name, u.Name)
		assert.Equal(t, tt.email, u.Email)
	}
}

func TestCreateUser_Detached(t *testing.T) {
	t.Parallel()
	svc := NewService()
	defer svc.Close()

	u := CreateUser("Alice", "alice@example.com")

	// A user built by the standalone helper is not in any service.
	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	got, err := svc.GetUser(*u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
