package main

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerkleRoundTrip(t *testing.T) {
	snaps := []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 40),
		soloSnapshot(2, "hive:bob", 2, 30),
		soloSnapshot(3, "hive:carol", 3, 20),
		soloSnapshot(4, "hive:dave", 4, 9),
		soloSnapshot(5, "hive:erin", 5, 1),
	}
	for i := range snaps {
		snaps[i].WeekIndex = 3
		snaps[i].WeekNonce = 123456789
	}
	leaves := make([][]byte, len(snaps))
	for i := range snaps {
		leaves[i] = encodeClaimLeaf(&snaps[i])
	}
	root, proofs := buildMerkle(leaves)

	for i := range snaps {
		assert.True(t, verifyMerkleProof(encodeClaimLeaf(&snaps[i]), proofs[i], root),
			"honest snapshot %d must verify", i)
	}
}

func TestMerkleRejectsMutatedSnapshot(t *testing.T) {
	snaps := []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 40),
		soloSnapshot(2, "hive:bob", 2, 30),
		soloSnapshot(3, "hive:carol", 3, 20),
	}
	leaves := make([][]byte, len(snaps))
	for i := range snaps {
		leaves[i] = encodeClaimLeaf(&snaps[i])
	}
	root, proofs := buildMerkle(leaves)

	mutations := []func(*ClaimSnapshot){
		func(s *ClaimSnapshot) { s.ID++ },
		func(s *ClaimSnapshot) { s.WeekNonce++ },
		func(s *ClaimSnapshot) { s.User = "hive:mallory" },
		func(s *ClaimSnapshot) { s.Individual.Score++ },
		func(s *ClaimSnapshot) { s.Individual.Rank-- },
		func(s *ClaimSnapshot) { s.Club.ID = 9 },
		func(s *ClaimSnapshot) { s.Club.MemberRank = 1 },
		func(s *ClaimSnapshot) { s.Club.DistributionMethod++ },
	}
	for mi, mutate := range mutations {
		s := snaps[1]
		mutate(&s)
		assert.False(t, verifyMerkleProof(encodeClaimLeaf(&s), proofs[1], root),
			"mutation %d must break the proof", mi)
	}
}

func TestMerkleLeafCannotActAsNode(t *testing.T) {
	a := soloSnapshot(1, "hive:alice", 1, 10)
	b := soloSnapshot(2, "hive:bob", 2, 10)
	leaves := [][]byte{encodeClaimLeaf(&a), encodeClaimLeaf(&b)}
	root, proofs := buildMerkle(leaves)

	// a truncated or padded proof node is rejected outright
	assert.False(t, verifyMerkleProof(leaves[0], [][]byte{proofs[0][0][:31]}, root))
	assert.False(t, verifyMerkleProof(leaves[0][:31], proofs[0], root))
	assert.False(t, verifyMerkleProof(leaves[0], proofs[0], root[:31]))
}

func TestParseHash(t *testing.T) {
	h := keccak256([]byte("x"))
	assert.Equal(t, h, parseHash("0x"+hex.EncodeToString(h)))
	assert.Equal(t, h, parseHash(hex.EncodeToString(h)))
	expectAbort(t, "invalid hash hex", func() { parseHash("zz") })
	expectAbort(t, "invalid hash hex", func() { parseHash("abcd") })
}

func TestExecutionsDigestDistinguishesBatches(t *testing.T) {
	a := []ProposalExecution{{Target: "contract:x", Method: "m", Payload: "{}", Value: 0}}
	b := []ProposalExecution{{Target: "contract:x", Method: "m", Payload: "{}", Value: 1}}
	require.NotEqual(t, executionsDigest(a), executionsDigest(b))
	require.Equal(t, executionsDigest(a), executionsDigest(a))
}
