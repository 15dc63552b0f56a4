package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	base := time.Now()
	s := newSession(owner, ShapeDropdown, base)

	ttl := 5 * time.Minute
	assert.False(t, s.Expired(base.Add(4*time.Minute), ttl))
	assert.True(t, s.Expired(base.Add(6*time.Minute), ttl))

	s.Touch(base.Add(6 * time.Minute))
	assert.False(t, s.Expired(base.Add(10*time.Minute), ttl))
}

func TestRegistrySecondStartOverwrites(t *testing.T) {
	r := NewRegistry()
	now := time.Now()

	first := newSession(owner, ShapeDropdown, now)
	second := newSession(owner, ShapeToggle, now)
	r.Put(first)
	r.Put(second)

	got, ok := r.Get(owner)
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
	assert.NotEqual(t, first.ID, got.ID)
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry()
	base := time.Now()
	ttl := 5 * time.Minute

	stale := newSession("stale-user", ShapeDropdown, base)
	fresh := newSession("fresh-user", ShapeDropdown, base.Add(4*time.Minute))
	r.Put(stale)
	r.Put(fresh)

	evicted := r.Sweep(base.Add(6*time.Minute), ttl)
	assert.Equal(t, 1, evicted)

	_, ok := r.Get("stale-user")
	assert.False(t, ok)
	_, ok = r.Get("fresh-user")
	assert.True(t, ok)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Put(newSession(owner, ShapeDropdown, time.Now()))
	r.Remove(owner)

	_, ok := r.Get(owner)
	assert.False(t, ok)
}
