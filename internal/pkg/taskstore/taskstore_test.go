package taskstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTask struct {
	ID     string
	Status string
}

func TestStorePutGet(t *testing.T) {
	s := New[*fakeTask](time.Minute)

	s.Put("a", &fakeTask{ID: "a", Status: "pending"})

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "pending", got.Status)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStoreOverwrite(t *testing.T) {
	s := New[*fakeTask](time.Minute)

	s.Put("a", &fakeTask{ID: "a", Status: "pending"})
	s.Put("a", &fakeTask{ID: "a", Status: "done"})

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "done", got.Status)
	assert.Equal(t, 1, s.Count())
}

func TestStoreDelete(t *testing.T) {
	s := New[*fakeTask](time.Minute)

	s.Put("a", &fakeTask{ID: "a", Status: "pending"})
	s.Delete("a")

	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	s := New[*fakeTask](time.Millisecond * 10)

	s.Put("a", &fakeTask{ID: "a", Status: "pending"})
	time.Sleep(time.Millisecond * 30)

	_, ok := s.Get("a")
	assert.False(t, ok, "expect entry to be expired after its TTL")
}
