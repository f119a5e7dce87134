package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewSource(1)), 20)
	b := generate(rand.New(rand.NewSource(1)), 20)

	assert.Equal(t, a, b)
	assert.Len(t, a, 20)
	assert.Equal(t, "seed-00001", a[0].Item.ID)
	for _, d := range a {
		assert.NotEmpty(t, d.Item.Title)
		assert.NotEmpty(t, d.Authors)
		assert.Len(t, d.Venues, 1)
	}
}
