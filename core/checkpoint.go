package core

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/coinevo/coinevo-core/common"
	"github.com/coinevo/coinevo-core/common/result"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "checkpoint"})

// Checkpoint fixes the expected hash of the block at a given height.
type Checkpoint struct {
	Height uint64
	Hash   common.Hash
}

// CheckpointStore holds the trusted (height, hash) pairs of a chain and
// answers the consensus queries about them. The store only grows; a stored
// hash is never rewritten.
type CheckpointStore struct {
	points map[uint64]common.Hash

	mu *sync.RWMutex
}

// NewCheckpointStore creates an empty CheckpointStore.
func NewCheckpointStore() *CheckpointStore {
	return &CheckpointStore{
		points: make(map[uint64]common.Hash),
		mu:     &sync.RWMutex{},
	}
}

// Add records a checkpoint at the given height. Re-adding the hash already
// stored at a height is a no-op; adding a different hash at an occupied
// height fails and leaves the store unchanged.
func (cs *CheckpointStore) Add(height uint64, hashStr string) result.Result {
	hash, err := common.HexToHash(hashStr)
	if err != nil {
		return result.Error("Failed to parse checkpoint hash %v at height %v: %v", hashStr, height, err).
			WithErrorCode(result.CodeHashParseError)
	}
	return cs.AddHash(height, hash)
}

// AddHash is the Add variant for an already-parsed hash.
func (cs *CheckpointStore) AddHash(height uint64, hash common.Hash) result.Result {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if existing, ok := cs.points[height]; ok {
		if existing != hash {
			return result.Error("Checkpoint at height %v already exists with a different hash: have %v, new %v",
				height, existing.Hex(), hash.Hex()).WithErrorCode(result.CodeCheckpointConflict)
		}
		return result.OK
	}
	cs.points[height] = hash
	return result.OK
}

// IsInCheckpointZone indicates whether the given height is still covered by
// a checkpoint, i.e. at or below the highest stored checkpoint.
func (cs *CheckpointStore) IsInCheckpointZone(height uint64) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	max, found := cs.maxHeight()
	return found && height <= max
}

// CheckBlock verifies a block against the store. If no checkpoint exists at
// the block's height the store makes no claim and ok is true. Otherwise
// isCheckpoint is true and ok reports whether the hashes match.
func (cs *CheckpointStore) CheckBlock(height uint64, hash common.Hash) (ok bool, isCheckpoint bool) {
	cs.mu.RLock()
	expected, isCheckpoint := cs.points[height]
	cs.mu.RUnlock()

	if !isCheckpoint {
		return true, false
	}
	if expected == hash {
		logger.WithFields(log.Fields{
			"height": height,
			"hash":   hash.Hex(),
		}).Info("Checkpoint passed")
		return true, true
	}
	logger.WithFields(log.Fields{
		"height":   height,
		"expected": expected.Hex(),
		"fetched":  hash.Hex(),
	}).Warning("Checkpoint failed")
	return false, true
}

// IsAlternativeBlockAllowed decides whether a block at candidateHeight may be
// accepted as part of a competing branch, given the current chain height. A
// candidate at or below the last checkpoint enforced on the current chain
// would rewrite trusted history and is rejected.
func (cs *CheckpointStore) IsAlternativeBlockAllowed(chainHeight uint64, candidateHeight uint64) bool {
	// The genesis block can never be replaced.
	if candidateHeight == 0 {
		return false
	}

	cs.mu.RLock()
	defer cs.mu.RUnlock()

	boundary, found := uint64(0), false
	for height := range cs.points {
		if height <= chainHeight && (!found || height > boundary) {
			boundary, found = height, true
		}
	}
	// The chain is still before its first checkpoint.
	if !found {
		return true
	}
	return candidateHeight > boundary
}

// MaxHeight returns the greatest stored checkpoint height. Calling it on an
// empty store is a programming error and fails with CodeEmptyStore; zero is a
// valid checkpoint height and cannot double as a sentinel.
func (cs *CheckpointStore) MaxHeight() (uint64, result.Result) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	max, found := cs.maxHeight()
	if !found {
		return 0, result.Error("Max height queried on an empty checkpoint store").
			WithErrorCode(result.CodeEmptyStore)
	}
	return max, result.OK
}

func (cs *CheckpointStore) maxHeight() (uint64, bool) {
	max, found := uint64(0), false
	for height := range cs.points {
		if !found || height > max {
			max, found = height, true
		}
	}
	return max, found
}

// Points returns a snapshot of all checkpoints in ascending height order.
func (cs *CheckpointStore) Points() []Checkpoint {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	points := make([]Checkpoint, 0, len(cs.points))
	for height, hash := range cs.points {
		points = append(points, Checkpoint{Height: height, Hash: hash})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Height < points[j].Height })
	return points
}

// Len returns the number of stored checkpoints.
func (cs *CheckpointStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return len(cs.points)
}

// CheckForConflicts verifies that every checkpoint in other agrees with this
// store wherever the two share a height. Neither store is mutated. Used to
// detect trust disagreement between independently sourced checkpoint sets
// before merging them.
func (cs *CheckpointStore) CheckForConflicts(other *CheckpointStore) result.Result {
	// Snapshot other before locking the receiver so crossed calls on two
	// stores never take the locks in opposite order.
	otherPoints := other.Points()

	cs.mu.RLock()
	defer cs.mu.RUnlock()

	for _, pt := range otherPoints {
		if existing, ok := cs.points[pt.Height]; ok && existing != pt.Hash {
			return result.Error("Conflicting checkpoint at height %v: have %v, other has %v",
				pt.Height, existing.Hex(), pt.Hash.Hex()).WithErrorCode(result.CodeCheckpointConflict)
		}
	}
	return result.OK
}
