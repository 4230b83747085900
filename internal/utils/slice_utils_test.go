package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReverseForEach(t *testing.T) {
	visited := make([]int, 0, 3)
	indexes := make([]int, 0, 3)
	ReverseForEach([]int{1, 2, 3}, func(idx int, element int) {
		indexes = append(indexes, idx)
		visited = append(visited, element)
	})
	assert.Equal(t, []int{3, 2, 1}, visited)
	assert.Equal(t, []int{2, 1, 0}, indexes)
}

func TestFindAndFilter(t *testing.T) {
	values := []string{"upcoming", "delayed", "in-progress"}
	found, ok := Find(values, func(v string) bool { return v == "delayed" })
	assert.True(t, ok)
	assert.Equal(t, "delayed", found)

	_, ok = Find(values, func(v string) bool { return v == "cancelled" })
	assert.False(t, ok)

	assert.Equal(t, []string{"upcoming", "in-progress"}, Filter(values, func(v string) bool { return v != "delayed" }))
}

func TestCachedValue(t *testing.T) {
	var calls atomic.Int32
	value := NewCachedValue(0, func() *int {
		n := int(calls.Add(1))
		return &n
	})
	assert.Equal(t, 1, *value.GetValue())
	assert.Equal(t, 1, *value.GetValue())
	value.Reset()
	assert.Equal(t, 2, *value.GetValue())

	expiring := NewCachedValue(time.Nanosecond, func() *int {
		n := int(calls.Add(1))
		return &n
	})
	first := *expiring.GetValue()
	time.Sleep(time.Millisecond)
	assert.NotEqual(t, first, *expiring.GetValue())
}
