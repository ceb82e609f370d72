package main

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"arena_dao/sdk"
)

const hashSize = 32

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// encodeClaimLeaf hashes a snapshot into its Merkle leaf. The field order is
// part of the wire contract with the oracle and must never change. Leaves are
// hashed twice so an inner node can never be replayed as a leaf.
func encodeClaimLeaf(s *ClaimSnapshot) []byte {
	w := newBinWriter()
	w.u64(s.ID)
	w.u64(s.WeekIndex)
	w.u64(s.WeekNonce)
	w.str(s.User)
	w.u64(s.Individual.Score)
	w.u64(s.Individual.Rank)
	w.u64(s.Club.ID)
	w.u64(s.Club.Score)
	w.u64(s.Club.Rank)
	w.u8(s.Club.DistributionMethod)
	w.u64(s.Club.MemberCount)
	w.u64(s.Club.MemberRank)
	w.u64(s.Club.MemberScore)
	return keccak256(keccak256(w.buf))
}

// verifyMerkleProof folds the leaf up through the proof nodes using sorted
// pair hashing, so the oracle does not have to ship left/right flags.
func verifyMerkleProof(leaf []byte, proof [][]byte, root []byte) bool {
	if len(leaf) != hashSize || len(root) != hashSize {
		return false
	}
	node := leaf
	for _, sibling := range proof {
		if len(sibling) != hashSize {
			return false
		}
		pair := make([]byte, 0, 2*hashSize)
		if bytes.Compare(node, sibling) <= 0 {
			pair = append(pair, node...)
			pair = append(pair, sibling...)
		} else {
			pair = append(pair, sibling...)
			pair = append(pair, node...)
		}
		node = keccak256(pair)
	}
	return bytes.Equal(node, root)
}

// parseHash decodes one hex hash, with or without 0x prefix.
func parseHash(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != hashSize {
		sdk.Abort("invalid hash hex")
	}
	return b
}

func parseProof(nodes []string) [][]byte {
	proof := make([][]byte, len(nodes))
	for i, n := range nodes {
		proof[i] = parseHash(n)
	}
	return proof
}

// executionsDigest pins a proposal's full execution list into one hash.
func executionsDigest(execs []ProposalExecution) []byte {
	w := newBinWriter()
	w.u64(uint64(len(execs)))
	for i := range execs {
		w.str(execs[i].Target.String())
		w.str(execs[i].Method)
		w.str(execs[i].Payload)
		w.amount(execs[i].Value)
	}
	return keccak256(w.buf)
}
