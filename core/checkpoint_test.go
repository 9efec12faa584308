package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinevo/coinevo-core/common"
	"github.com/coinevo/coinevo-core/common/result"
)

const (
	hash1 = "c106ebad646e2dc0f9ab96741b2c320d3435b43d6f6f9660b1f318f33a764ad2"
	hash2 = "40bccdd5ce631f0cc959bb8bf7d3af00c6bae7d93c1a2a9cdcf0d73fb771b8a0"
	hash3 = "45f7a39a86145d97f41dbbbc53b45dc40e7f71cd82a631c8d7d28a7e29d6a94c"
)

func TestAddCheckpoint(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()
	assert.True(cs.Add(10, hash1).IsOK())
	assert.Equal(1, cs.Len())

	// Re-adding the same hash is a no-op.
	assert.True(cs.Add(10, hash1).IsOK())
	assert.Equal(1, cs.Len())

	// A different hash at an occupied height is rejected without mutation.
	res := cs.Add(10, hash2)
	assert.True(res.IsError())
	assert.Equal(result.CodeCheckpointConflict, res.Code)
	assert.Equal(1, cs.Len())

	expected, _ := common.HexToHash(hash1)
	ok, isCheckpoint := cs.CheckBlock(10, expected)
	assert.True(ok)
	assert.True(isCheckpoint)
}

func TestAddMalformedHash(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()

	res := cs.Add(10, "not-a-hash")
	assert.True(res.IsError())
	assert.Equal(result.CodeHashParseError, res.Code)

	res = cs.Add(10, hash1[:60])
	assert.True(res.IsError())
	assert.Equal(result.CodeHashParseError, res.Code)

	assert.Equal(0, cs.Len())
}

func TestCheckpointZone(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()
	assert.False(cs.IsInCheckpointZone(0))
	assert.False(cs.IsInCheckpointZone(100))

	cs.Add(10, hash1)
	cs.Add(20, hash2)

	assert.True(cs.IsInCheckpointZone(0))
	assert.True(cs.IsInCheckpointZone(15))
	assert.True(cs.IsInCheckpointZone(20))
	assert.False(cs.IsInCheckpointZone(21))
}

func TestCheckBlock(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()
	cs.Add(10, hash1)

	good, _ := common.HexToHash(hash1)
	bad, _ := common.HexToHash(hash2)

	// No checkpoint at the height: the store makes no claim.
	ok, isCheckpoint := cs.CheckBlock(11, bad)
	assert.True(ok)
	assert.False(isCheckpoint)

	ok, isCheckpoint = cs.CheckBlock(10, good)
	assert.True(ok)
	assert.True(isCheckpoint)

	ok, isCheckpoint = cs.CheckBlock(10, bad)
	assert.False(ok)
	assert.True(isCheckpoint)
}

func TestAlternativeBlockAllowed(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()

	// Genesis can never be replaced, even with no checkpoints stored.
	assert.False(cs.IsAlternativeBlockAllowed(100, 0))
	assert.True(cs.IsAlternativeBlockAllowed(100, 1))

	cs.Add(10, hash1)
	cs.Add(20, hash2)

	assert.False(cs.IsAlternativeBlockAllowed(15, 0))

	// Boundary checkpoint for chain height 15 is 10.
	assert.False(cs.IsAlternativeBlockAllowed(15, 5))
	assert.False(cs.IsAlternativeBlockAllowed(15, 10))
	assert.True(cs.IsAlternativeBlockAllowed(15, 11))

	// Chain height 5 precedes the first checkpoint, unconstrained.
	assert.True(cs.IsAlternativeBlockAllowed(5, 999))

	// Boundary for chain height 20 and beyond is 20.
	assert.False(cs.IsAlternativeBlockAllowed(20, 20))
	assert.True(cs.IsAlternativeBlockAllowed(25, 21))
}

func TestMaxHeight(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()

	_, res := cs.MaxHeight()
	assert.True(res.IsError())
	assert.Equal(result.CodeEmptyStore, res.Code)

	cs.Add(0, hash1)
	max, res := cs.MaxHeight()
	assert.True(res.IsOK())
	assert.Equal(uint64(0), max)

	cs.Add(20, hash2)
	cs.Add(10, hash3)
	max, res = cs.MaxHeight()
	assert.True(res.IsOK())
	assert.Equal(uint64(20), max)
}

func TestPoints(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()
	cs.Add(20, hash2)
	cs.Add(10, hash1)
	cs.Add(30, hash3)

	points := cs.Points()
	assert.Equal(3, len(points))
	assert.Equal(uint64(10), points[0].Height)
	assert.Equal(uint64(20), points[1].Height)
	assert.Equal(uint64(30), points[2].Height)

	h1, _ := common.HexToHash(hash1)
	assert.Equal(h1, points[0].Hash)
}

func TestCheckForConflicts(t *testing.T) {
	assert := assert.New(t)

	cs := NewCheckpointStore()
	cs.Add(10, hash1)

	other := NewCheckpointStore()
	other.Add(10, hash1)
	other.Add(30, hash3)

	assert.True(cs.CheckForConflicts(other).IsOK())

	disagreeing := NewCheckpointStore()
	disagreeing.Add(10, hash2)

	res := cs.CheckForConflicts(disagreeing)
	assert.True(res.IsError())
	assert.Equal(result.CodeCheckpointConflict, res.Code)
	assert.Contains(res.Message, "10")

	// The receiver is never mutated.
	assert.Equal(1, cs.Len())

	// Comparing a store against itself must not self-deadlock.
	assert.True(cs.CheckForConflicts(cs).IsOK())
}

func TestCheckForConflictsCrossed(t *testing.T) {
	assert := assert.New(t)

	a := NewCheckpointStore()
	a.Add(10, hash1)
	a.Add(20, hash2)

	b := NewCheckpointStore()
	b.Add(20, hash2)
	b.Add(30, hash3)

	// Crossed checks from two goroutines must not deadlock on the two
	// store locks.
	done := make(chan result.Result, 2)
	go func() { done <- a.CheckForConflicts(b) }()
	go func() { done <- b.CheckForConflicts(a) }()

	assert.True((<-done).IsOK())
	assert.True((<-done).IsOK())
}
