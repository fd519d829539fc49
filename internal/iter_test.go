package internal

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"c"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(first, nil, second) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)
}

func TestIterSeq2Concat_Stop(t *testing.T) {
	assert := assert.New(t)

	var seqs []iter.Seq2[string, int]
	for range 3 {
		seqs = append(seqs, maps.All(map[string]int{"x": 1}))
	}

	count := 0
	for range IterSeq2Concat(seqs...) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
