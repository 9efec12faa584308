package consensus

import (
	"github.com/coinevo/coinevo-core/core"
)

// TrustAnchor supplies checkpoints from an out-of-band source asserted to be
// authentic, keyed by network kind. Implementations must not mutate any
// store; merging fetched checkpoints is the loader's job.
type TrustAnchor interface {
	FetchCheckpoints(kind core.NetworkKind) ([]core.Checkpoint, error)
}

// DNSTrustAnchor will fetch checkpoints published in DNS records. The wire
// format is not settled yet, so it currently reports an empty set.
type DNSTrustAnchor struct {
}

// NewDNSTrustAnchor creates a DNSTrustAnchor.
func NewDNSTrustAnchor() *DNSTrustAnchor {
	return &DNSTrustAnchor{}
}

// FetchCheckpoints implements TrustAnchor.
func (ta *DNSTrustAnchor) FetchCheckpoints(kind core.NetworkKind) ([]core.Checkpoint, error) {
	return nil, nil
}
