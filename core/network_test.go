package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNetworkKind(t *testing.T) {
	assert := assert.New(t)

	kind, err := ParseNetworkKind("mainnet")
	assert.Nil(err)
	assert.Equal(Mainnet, kind)

	kind, err = ParseNetworkKind("Stagenet")
	assert.Nil(err)
	assert.Equal(Stagenet, kind)

	_, err = ParseNetworkKind("devnet")
	assert.NotNil(err)

	assert.Equal("testnet", Testnet.String())
	assert.Equal("undefined", UndefinedNetwork.String())
}

func TestHardcodedCheckpointTables(t *testing.T) {
	assert := assert.New(t)

	// Mainnet table entries are parseable and strictly ascending.
	table := HardcodedCheckpoints[Mainnet]
	assert.NotEmpty(table)

	cs := NewCheckpointStore()
	prev, first := uint64(0), true
	for _, cp := range table {
		assert.True(cs.Add(cp.Height, cp.HashStr).IsOK())
		if !first {
			assert.True(cp.Height > prev)
		}
		prev, first = cp.Height, false
	}
	assert.Equal(len(table), cs.Len())

	assert.Empty(HardcodedCheckpoints[Testnet])
	assert.Empty(HardcodedCheckpoints[Stagenet])
	assert.Empty(HardcodedCheckpoints[Fakechain])
	assert.Empty(HardcodedCheckpoints[UndefinedNetwork])
}
