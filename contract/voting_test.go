package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// govWeek seeds week 0 with claimed placements: alice holds individual ranks
// 1-6, bob holds 7-10, carol leads club rank 1 and dave sits second in club
// rank 2. Maximum votes over the window come to 14 (10 individual entries,
// 2 club entries, owner bonus 2).
func govWeek(t *testing.T) {
	t.Helper()
	snaps := []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
		soloSnapshot(2, "hive:alice", 2, 10),
		soloSnapshot(3, "hive:alice", 3, 10),
		soloSnapshot(4, "hive:alice", 4, 10),
		soloSnapshot(5, "hive:alice", 5, 10),
		soloSnapshot(6, "hive:alice", 6, 10),
		soloSnapshot(7, "hive:bob", 7, 5),
		soloSnapshot(8, "hive:bob", 8, 5),
		soloSnapshot(9, "hive:bob", 9, 5),
		soloSnapshot(10, "hive:bob", 10, 5),
		{
			ID:   11,
			User: "hive:carol",
			Club: ClubData{ID: 7, Score: 30, Rank: 1, MemberCount: 10, MemberRank: 1, MemberScore: 9},
		},
		{
			ID:   12,
			User: "hive:dave",
			Club: ClubData{ID: 8, Score: 20, Rank: 2, MemberCount: 10, MemberRank: 2, MemberScore: 1},
		},
	}
	f := addWeekFixture(t, 0, snaps, 10, 100, 2, 50)
	for i := range f.snaps {
		setCaller(f.snaps[i].User)
		RewardsClaim(f.claimPayload(t, i))
	}
}

func aliceProofs() []IndividualRankProof {
	return []IndividualRankProof{
		{WeekIndex: 0, Rank: 1},
		{WeekIndex: 0, Rank: 2},
		{WeekIndex: 0, Rank: 3},
		{WeekIndex: 0, Rank: 4},
		{WeekIndex: 0, Rank: 5},
		{WeekIndex: 0, Rank: 6},
	}
}

func bobProofs() []IndividualRankProof {
	return []IndividualRankProof{
		{WeekIndex: 0, Rank: 7},
		{WeekIndex: 0, Rank: 8},
		{WeekIndex: 0, Rank: 9},
		{WeekIndex: 0, Rank: 10},
	}
}

func TestCalculateMinimumWeekIndex(t *testing.T) {
	require.Equal(t, uint64(0), calculateMinimumWeekIndex(0, 4))
	require.Equal(t, uint64(0), calculateMinimumWeekIndex(3, 4))
	require.Equal(t, uint64(1), calculateMinimumWeekIndex(4, 4))
	require.Equal(t, uint64(7), calculateMinimumWeekIndex(10, 4))
	require.Equal(t, uint64(5), calculateMinimumWeekIndex(5, 1))
}

func TestVotingPowerFromClaimedRanks(t *testing.T) {
	initArena(t)
	govWeek(t)

	require.Equal(t, uint64(6), calculatePower("hive:alice", 0, 0, aliceProofs(), nil))
	require.Equal(t, uint64(4), calculatePower("hive:bob", 0, 0, bobProofs(), nil))

	// Duplicate proofs in one call count once.
	dup := append(aliceProofs(), IndividualRankProof{WeekIndex: 0, Rank: 1})
	require.Equal(t, uint64(6), calculatePower("hive:alice", 0, 0, dup, nil))

	// A rank claimed by somebody else carries nothing.
	require.Equal(t, uint64(0), calculatePower("hive:bob", 0, 0, aliceProofs(), nil))

	// Proofs outside the eligible window are ignored.
	stale := []IndividualRankProof{{WeekIndex: 3, Rank: 1}}
	require.Equal(t, uint64(0), calculatePower("hive:alice", 0, 0, stale, nil))

	// Only the club's top member votes through a club placement.
	carol := []ClubRankProof{{WeekIndex: 0, ClubRank: 1, MemberRank: 1}}
	require.Equal(t, uint64(1), calculatePower("hive:carol", 0, 0, nil, carol))
	dave := []ClubRankProof{{WeekIndex: 0, ClubRank: 2, MemberRank: 2}}
	require.Equal(t, uint64(0), calculatePower("hive:dave", 0, 0, nil, dave))

	// The interim owner never needs proofs.
	require.Equal(t, uint64(2), calculatePower(ownerAddress, 0, 0, nil, nil))
}

func TestVerifyProofRankCeiling(t *testing.T) {
	initArena(t)
	govWeek(t)

	p := IndividualRankProof{WeekIndex: 0, Rank: 5}
	require.True(t, verifyIndividualRankProof("hive:alice", &p, 0, 0, 25))
	require.False(t, verifyIndividualRankProof("hive:alice", &p, 0, 0, 4))

	zero := IndividualRankProof{WeekIndex: 0, Rank: 0}
	require.False(t, verifyIndividualRankProof("hive:alice", &zero, 0, 0, 25))
}

func TestCalculateMaximumVotes(t *testing.T) {
	initArena(t)
	govWeek(t)

	// 10 individual entries + 2 club entries + owner bonus 2.
	require.Equal(t, uint64(14), calculateMaximumVotes(0, 0))

	// Missing weeks inside the window contribute only the owner bonus.
	require.Equal(t, interimOwnerPower(1, 3), calculateMaximumVotes(1, 3))
}

func TestPowerGetView(t *testing.T) {
	initArena(t)
	govWeek(t)

	args := PowerQueryArgs{User: "hive:alice", IndividualProofs: aliceProofs()}
	b, err := args.MarshalJSON()
	require.NoError(t, err)
	resp := PowerGet(pl(string(b)))
	require.NotNil(t, resp)

	var info PowerInfo
	require.NoError(t, info.UnmarshalJSON([]byte(*resp)))
	require.Equal(t, uint64(6), info.Power)
	require.Equal(t, uint64(14), info.MaximumVotes)
	require.Equal(t, uint64(0), info.MinWeekIndex)
	require.Equal(t, uint64(0), info.MaxWeekIndex)
}
