package abiguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abiguard/abiguard-go/pkg/abiguard"
)

type fakeStore struct {
	root string
}

func TestLiftBorrowUnlift(t *testing.T) {
	s := &fakeStore{root: "/var/lib/demo"}

	p := abiguard.Lift(s)
	require.NotNil(t, p)

	got := abiguard.Borrow[*fakeStore](p)
	assert.Same(t, s, got)

	// Borrow does not release; the same pointer stays valid.
	assert.Same(t, s, abiguard.Borrow[*fakeStore](p))

	abiguard.Unlift(p)
}

func TestLiftDistinctPointers(t *testing.T) {
	p1 := abiguard.Lift("one")
	p2 := abiguard.Lift("two")
	defer abiguard.Unlift(p1)
	defer abiguard.Unlift(p2)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, "one", abiguard.Borrow[string](p1))
	assert.Equal(t, "two", abiguard.Borrow[string](p2))
}

func TestBorrowNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		abiguard.Borrow[*fakeStore](nil)
	})
}

func TestBorrowAfterUnliftPanics(t *testing.T) {
	p := abiguard.Lift("tenant-42")
	abiguard.Unlift(p)

	assert.Panics(t, func() {
		abiguard.Borrow[string](p)
	})
}

func TestBorrowWrongTypePanics(t *testing.T) {
	p := abiguard.Lift("text")
	defer abiguard.Unlift(p)

	assert.Panics(t, func() {
		abiguard.Borrow[int](p)
	})
}

func TestUnliftNilNoop(t *testing.T) {
	abiguard.Unlift(nil) // must not crash
}

func TestUnliftTwicePanics(t *testing.T) {
	p := abiguard.Lift(7)
	abiguard.Unlift(p)

	assert.Panics(t, func() {
		abiguard.Unlift(p)
	})
}
