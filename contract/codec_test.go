package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeekRecordCodecRoundTrip(t *testing.T) {
	in := &WeekRecord{
		ID:                     3,
		Nonce:                  123456789,
		Date:                   t0,
		Status:                 WeekOngoing,
		MerkleRoot:             make([]byte, hashSize),
		TotalSnapshotCount:     40,
		TotalIndividualEntries: 10,
		TotalClubEntries:       2,
		MaxClubMembers:         500,
		Individual: PoolData{
			TotalRewardAmount:     TokensToAmount(1024),
			RemainingRewardAmount: TokensToAmount(900),
			RankRewardPiece:       930_909_090,
			ScoreRewardPiece:      512_000_000,
			TotalScores:           100,
			ScoreWeight:           50,
		},
		Club: PoolData{
			TotalRewardAmount:     TokensToAmount(3072),
			RemainingRewardAmount: TokensToAmount(3072),
			TotalScores:           50,
			ScoreWeight:           50,
		},
	}
	for i := range in.MerkleRoot {
		in.MerkleRoot[i] = byte(i)
	}
	out := decodeWeekRecord(encodeWeekRecord(in))
	require.Equal(t, in, out)
}

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &Proposal{
		ID:                       7,
		Title:                    "lower the quorum",
		Proposer:                 "hive:alice",
		YesVotes:                 6,
		NoVotes:                  4,
		TotalVoters:              2,
		StartTime:                t0,
		EndTime:                  t0 + DefaultVotingDuration,
		MaxWeekIndex:             4,
		MinWeekIndex:             1,
		QuorumThreshold:          8,
		ApprovalThresholdPercent: 66,
		Executions: []ProposalExecution{
			{Target: "contract:arenadao", Method: "dao_set_quorum_percent", Payload: `{"value":50}`},
			{Target: "hive:grantee", Value: TokensToAmount(5)},
		},
		Results: []ProposalResult{
			{Status: ExecutionSuccess, CallResult: "ok"},
			{Status: ExecutionFailed, CallResult: "insufficient contract balance"},
		},
		Ended:   true,
		Outcome: OutcomeApproved,
	}
	out := decodeProposal(encodeProposal(in))
	require.Equal(t, in, out)
}

func TestDecodeCorruptStateAborts(t *testing.T) {
	rec := encodeWeekRecord(&WeekRecord{MerkleRoot: make([]byte, hashSize)})
	expectAbort(t, "corrupt state object", func() {
		decodeWeekRecord(rec[:len(rec)-3])
	})
	expectAbort(t, "corrupt state object", func() {
		decodeProposal([]byte{0x01})
	})
}
