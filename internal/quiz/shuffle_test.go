package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mariano/flashdeck/internal/quiz"
)

func TestShuffle_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	input := []string{"a", "b", "c", "d", "e", "f", "g", "b"}

	got := quiz.Shuffle(r, input)

	require.Len(t, got, len(input))
	counts := func(xs []string) map[string]int {
		m := make(map[string]int)
		for _, x := range xs {
			m[x]++
		}
		return m
	}
	assert.Equal(t, counts(input), counts(got), "shuffle must preserve the multiset")
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	input := []int{1, 2, 3, 4, 5}

	for i := 0; i < 20; i++ {
		quiz.Shuffle(r, input)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, input)
}

func TestShuffle_EmptyAndSingleton(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	assert.Empty(t, quiz.Shuffle(r, []int{}))
	assert.Equal(t, []int{9}, quiz.Shuffle(r, []int{9}))
}

func TestShuffle_EventuallyProducesDifferentOrders(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}

	differs := false
	for i := 0; i < 50 && !differs; i++ {
		got := quiz.Shuffle(r, input)
		for j := range got {
			if got[j] != input[j] {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "50 shuffles of 8 elements should not all be identity")
}
