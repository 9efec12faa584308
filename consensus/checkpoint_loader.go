package consensus

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/coinevo/coinevo-core/common"
	"github.com/coinevo/coinevo-core/common/result"
	"github.com/coinevo/coinevo-core/core"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "consensus"})

// CheckpointHashline is one (height, hash) record of a checkpoint override file.
type CheckpointHashline struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

// CheckpointFile is the on-disk format of a checkpoint override file.
type CheckpointFile struct {
	Hashlines []CheckpointHashline `json:"hashlines"`
}

// CheckpointLoader populates a CheckpointStore from its layered sources:
// the compiled-in table for a network, an optional override file, and a
// trust anchor. The first writer for a height wins; later identical writes
// are no-ops and later conflicting writes are rejected by the store.
type CheckpointLoader struct {
	store  *core.CheckpointStore
	anchor TrustAnchor
}

// NewCheckpointLoader creates a loader that populates the given store. A nil
// anchor falls back to the inert DNS anchor.
func NewCheckpointLoader(store *core.CheckpointStore, anchor TrustAnchor) *CheckpointLoader {
	if anchor == nil {
		anchor = NewDNSTrustAnchor()
	}
	return &CheckpointLoader{
		store:  store,
		anchor: anchor,
	}
}

// Store returns the store this loader populates.
func (cl *CheckpointLoader) Store() *core.CheckpointStore {
	return cl.store
}

// LoadDefaults injects the compiled-in checkpoint table for the given
// network kind. The table is internally consistent, but every entry still
// goes through the store's conflict-checked Add.
func (cl *CheckpointLoader) LoadDefaults(kind core.NetworkKind) result.Result {
	for _, cp := range core.HardcodedCheckpoints[kind] {
		if res := cl.store.Add(cp.Height, cp.HashStr); res.IsError() {
			return res
		}
	}
	return result.OK
}

// LoadFromFile merges checkpoints from an override file. An absent file is
// not an error; the override is optional by design. Entries at or below the
// store's current max height are skipped, so a lower-priority source never
// rewrites the already-established frontier.
func (cl *CheckpointLoader) LoadFromFile(path string) result.Result {
	if !common.FileExists(path) {
		logger.WithFields(log.Fields{"path": path}).Debug("Checkpoint file not found")
		return result.OK
	}

	// An empty store has no frontier yet; every file entry is eligible.
	// Height 0 is a valid checkpoint height, not a sentinel.
	prevMax, hasFrontier := uint64(0), false
	if max, res := cl.store.MaxHeight(); res.IsOK() {
		prevMax, hasFrontier = max, true
	}

	file, err := cl.decodeFile(path)
	if err != nil {
		return result.Error("Failed to load checkpoints from %v: %v", path, err).
			WithErrorCode(result.CodeCheckpointFileError)
	}

	for _, line := range file.Hashlines {
		if hasFrontier && line.Height <= prevMax {
			logger.WithFields(log.Fields{"height": line.Height}).Debug("Ignoring checkpoint below current max height")
			continue
		}
		logger.WithFields(log.Fields{
			"height": line.Height,
			"hash":   line.Hash,
		}).Debug("Adding checkpoint from file")
		if res := cl.store.Add(line.Height, line.Hash); res.IsError() {
			return res
		}
	}
	return result.OK
}

func (cl *CheckpointLoader) decodeFile(path string) (*CheckpointFile, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open checkpoint file")
	}
	defer r.Close()

	file := &CheckpointFile{}
	if err := json.NewDecoder(r).Decode(file); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkpoint file")
	}
	return file, nil
}

// LoadFromTrustAnchor merges checkpoints fetched from the trust anchor for
// the given network kind. Fetched checkpoints are checked for conflicts as a
// set before any of them is added.
func (cl *CheckpointLoader) LoadFromTrustAnchor(kind core.NetworkKind) result.Result {
	points, err := cl.anchor.FetchCheckpoints(kind)
	if err != nil {
		return result.Error("Failed to fetch checkpoints from trust anchor: %v", err).
			WithErrorCode(result.CodeCheckpointFileError)
	}
	if len(points) == 0 {
		return result.OK
	}

	fetched := core.NewCheckpointStore()
	for _, pt := range points {
		if res := fetched.AddHash(pt.Height, pt.Hash); res.IsError() {
			return res
		}
	}
	if res := cl.store.CheckForConflicts(fetched); res.IsError() {
		return res
	}
	for _, pt := range fetched.Points() {
		if res := cl.store.AddHash(pt.Height, pt.Hash); res.IsError() {
			return res
		}
	}
	return result.OK
}

// LoadAll runs the file load and, if requested, the trust anchor load. The
// overall outcome succeeds only when every invoked step does.
func (cl *CheckpointLoader) LoadAll(path string, kind core.NetworkKind, useTrustAnchor bool) result.Result {
	res := cl.LoadFromFile(path)
	if useTrustAnchor {
		if anchorRes := cl.LoadFromTrustAnchor(kind); anchorRes.IsError() {
			return anchorRes
		}
	}
	return res
}
