package main

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"arena_dao/sdk"
)

func weekInfoOf(t *testing.T, week uint64) WeekInfo {
	t.Helper()
	resp := WeekGet(pl(fmt.Sprintf(`{"id":%d}`, week)))
	require.NotNil(t, resp)
	var info WeekInfo
	require.NoError(t, info.UnmarshalJSON([]byte(*resp)))
	return info
}

func TestInitDefaultsAndDoubleInit(t *testing.T) {
	initArena(t)

	var rc RewardConfigInfo
	require.NoError(t, rc.UnmarshalJSON([]byte(*RewardConfigGet(nil))))
	require.Equal(t, uint64(1), rc.RewardLevel)
	require.Equal(t, uint64(1000), rc.RewardIndividualMax)
	require.Equal(t, uint64(200), rc.RewardClubMax)
	require.Equal(t, uint64(25), rc.RewardToIndividualPercent)
	require.Equal(t, uint64(50), rc.IndividualScoreWeight)
	require.Equal(t, uint64(50), rc.ClubScoreWeight)
	require.Equal(t, uint64(500), rc.MaxClubMembers)
	require.False(t, rc.AllowClaimsForOthers)

	var dc DAOConfigInfo
	require.NoError(t, dc.UnmarshalJSON([]byte(*DaoConfigGet(nil))))
	require.Equal(t, uint64(60), dc.QuorumThresholdPercent)
	require.Equal(t, uint64(66), dc.ApprovalThresholdPercent)
	require.Equal(t, uint64(4), dc.EligibleWeekCount)
	require.Equal(t, uint64(25), dc.VotingMaximumRank)
	require.Equal(t, DefaultVotingDuration, dc.VotingDurationSecs)
	require.Equal(t, uint64(5), dc.MaxExecutionsPerProposal)
	require.True(t, dc.InterimActive)
	require.True(t, dc.AllowOnlyTrustedTargets)

	expectAbort(t, "already initialized", func() {
		ContractInit(pl(`{"signer":"hive:x","treasury":"hive:y","rewardAsset":"hive"}`))
	})
}

func TestAddWeekValidation(t *testing.T) {
	initArena(t)
	root := "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

	setCaller("hive:rando")
	expectAbort(t, "signer only", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	})

	setCaller(oracleAddress)
	expectAbort(t, "nonce out of range", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":99999999,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	})
	expectAbort(t, "at least one snapshot", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":0,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	})
	expectAbort(t, "positive individual score total", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":0}`, root)))
	})
	expectAbort(t, "individual entry count out of range", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1001,"totalIndividualScores":1}`, root)))
	})
	expectAbort(t, "club entry count out of range", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalClubEntries":201,"totalIndividualScores":1}`, root)))
	})

	resp := RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	require.NotNil(t, resp)
	require.Contains(t, *resp, `"id":0`)

	// A second record inside the same calendar week is refused.
	setTime(t0 + WeekSeconds/2)
	setCaller(oracleAddress)
	expectAbort(t, "previous week has not elapsed", func() {
		RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000001,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	})

	setTime(t0 + WeekSeconds)
	setCaller(oracleAddress)
	resp = RewardsAddWeek(pl(fmt.Sprintf(`{"nonce":100000001,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":1,"totalIndividualScores":1}`, root)))
	require.NotNil(t, resp)
	require.Contains(t, *resp, `"id":1`)
}

// The canonical week used by the payout tests: 10 individual entries with score
// total 100, 2 club entries with score total 50. With the default level 1 pool
// of 4096 tokens that yields an individual pool of 1024 tokens (rank piece
// 930909090, score piece 512000000) and a club pool of 3072 tokens (club rank
// piece 51200000000, club score piece 3072000000).
func payoutWeek(t *testing.T, snaps []ClaimSnapshot) *weekFixture {
	t.Helper()
	return addWeekFixture(t, 0, snaps, 10, 100, 2, 50)
}

func clubSnapshot(id uint64, user string, method DistributionMethod, memberRank, memberScore uint64) ClaimSnapshot {
	return ClaimSnapshot{
		ID:   id,
		User: user,
		Club: ClubData{
			ID:                 7,
			Score:              30,
			Rank:               1,
			DistributionMethod: uint8(method),
			MemberCount:        10,
			MemberRank:         memberRank,
			MemberScore:        memberScore,
		},
	}
}

func TestClaimIndividualPayouts(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
		soloSnapshot(2, "hive:bob", 5, 10),
	})

	setCaller("hive:alice")
	res := claimResultOf(t, RewardsClaim(f.claimPayload(t, 0)))
	require.Equal(t, int64(14_429_090_900), res.IndividualAmount)
	require.Equal(t, int64(0), res.ClubAmount)
	require.Equal(t, int64(14_429_090_900), res.TotalAmount)

	setCaller("hive:bob")
	res = claimResultOf(t, RewardsClaim(f.claimPayload(t, 1)))
	require.Equal(t, int64(10_705_454_540), res.TotalAmount)

	transfers := sdk.MockTransfers()
	require.Len(t, transfers, 2)
	require.Equal(t, "hive:alice", transfers[0].To)
	require.Equal(t, int64(14_429_090_900), transfers[0].Amount)
	require.Equal(t, rewardAsset, transfers[0].Asset)
	require.Equal(t, "hive:bob", transfers[1].To)

	info := weekInfoOf(t, 0)
	require.Equal(t, uint64(2), info.ClaimedSnapshotCount)
	require.Equal(t, int64(102_400_000_000-14_429_090_900-10_705_454_540), info.Individual.RemainingRewardAmount)
	require.Equal(t, int64(307_200_000_000), info.Club.RemainingRewardAmount)
}

func TestClaimClubDistributionMethods(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		clubSnapshot(1, "hive:carol", DistributionShared, 1, 9),
		clubSnapshot(2, "hive:dave", DistributionRankBased, 2, 6),
		clubSnapshot(3, "hive:erin", DistributionScoreBased, 3, 6),
		clubSnapshot(4, "hive:frank", DistributionBalanced, 4, 3),
	})

	// Club rank 1 of 2, club score 30 of 50: the club's share is
	// 51200000000*2 + 3072000000*30 = 194560000000. Shared pays a flat
	// tenth, rank based pays piece 3537454545 times 9 for member rank 2,
	// score based pays 6/30 of the share, balanced blends both halves at
	// the week's club score weight.
	expected := []struct {
		user   string
		amount int64
	}{
		{"hive:carol", 19_456_000_000},
		{"hive:dave", 31_837_090_905},
		{"hive:erin", 38_912_000_000},
		{"hive:frank", 22_109_090_904},
	}
	for i, e := range expected {
		setCaller(e.user)
		res := claimResultOf(t, RewardsClaim(f.claimPayload(t, i)))
		require.Equal(t, int64(0), res.IndividualAmount, e.user)
		require.Equal(t, e.amount, res.ClubAmount, e.user)
	}

	info := weekInfoOf(t, 0)
	paid := int64(19_456_000_000 + 31_837_090_905 + 38_912_000_000 + 22_109_090_904)
	require.Equal(t, int64(307_200_000_000)-paid, info.Club.RemainingRewardAmount)
}

func TestClaimReplayAndRankUniqueness(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
		soloSnapshot(2, "hive:gina", 1, 5),
		clubSnapshot(3, "hive:carol", DistributionShared, 1, 9),
		clubSnapshot(4, "hive:henry", DistributionShared, 1, 8),
	})

	setCaller("hive:alice")
	RewardsClaim(f.claimPayload(t, 0))
	expectAbort(t, "snapshot already claimed", func() {
		RewardsClaim(f.claimPayload(t, 0))
	})

	// Same individual rank under a different snapshot id.
	setCaller("hive:gina")
	expectAbort(t, "individual rank already claimed", func() {
		RewardsClaim(f.claimPayload(t, 1))
	})

	setCaller("hive:carol")
	RewardsClaim(f.claimPayload(t, 2))

	// Same (clubRank, memberRank) slot under a different member.
	setCaller("hive:henry")
	expectAbort(t, "club member rank already claimed", func() {
		RewardsClaim(f.claimPayload(t, 3))
	})
}

func TestClaimValidationAborts(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
		soloSnapshot(2, "hive:bob", 11, 10),
		soloSnapshot(3, "hive:carol", 2, 200),
	})

	setCaller("hive:alice")
	expectAbort(t, "unknown week", func() {
		s := f.snaps[0]
		s.WeekIndex = 9
		b, err := (&ClaimArgs{Snapshot: s, Proof: hexProof(f.proofs[0])}).MarshalJSON()
		require.NoError(t, err)
		RewardsClaim(pl(string(b)))
	})
	expectAbort(t, "week nonce mismatch", func() {
		s := f.snaps[0]
		s.WeekNonce = 999999999
		b, err := (&ClaimArgs{Snapshot: s, Proof: hexProof(f.proofs[0])}).MarshalJSON()
		require.NoError(t, err)
		RewardsClaim(pl(string(b)))
	})
	expectAbort(t, "merkle proof rejected", func() {
		RewardsClaim(pl(fmt.Sprintf(`{"snapshot":{"id":1,"weekIndex":0,"weekNonce":100000000,"user":"hive:alice","individual":{"score":10,"rank":1},"club":{}},"proof":[%q]}`,
			"00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")))
	})

	// Oracle-signed but internally inconsistent snapshots still abort.
	setCaller("hive:bob")
	expectAbort(t, "beyond week entries", func() {
		RewardsClaim(f.claimPayload(t, 1))
	})
	setCaller("hive:carol")
	expectAbort(t, "individual score exceeds week total", func() {
		RewardsClaim(f.claimPayload(t, 2))
	})
}

func TestClaimForOthersGate(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
	})

	setCaller("hive:bob")
	expectAbort(t, "claims for others are disabled", func() {
		RewardsClaim(f.claimPayload(t, 0))
	})

	setCaller(ownerAddress)
	RewardSetAllowClaimsForOthers(pl(`{"value":true}`))

	setCaller("hive:bob")
	res := claimResultOf(t, RewardsClaim(f.claimPayload(t, 0)))
	require.Equal(t, "hive:alice", res.Recipient)

	// The payout goes to the snapshot user, not the caller.
	transfers := sdk.MockTransfers()
	require.Len(t, transfers, 1)
	require.Equal(t, "hive:alice", transfers[0].To)
}

func TestClaimBannedUser(t *testing.T) {
	initArena(t)
	f := payoutWeek(t, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
	})

	setCaller(ownerAddress)
	DaoSetUserBan(pl(`{"user":"hive:alice","banned":true}`))

	setCaller("hive:alice")
	expectAbort(t, "user is banned", func() {
		RewardsClaim(f.claimPayload(t, 0))
	})

	setCaller(ownerAddress)
	DaoSetUserBan(pl(`{"user":"hive:alice","banned":false}`))

	setCaller("hive:alice")
	res := claimResultOf(t, RewardsClaim(f.claimPayload(t, 0)))
	require.Equal(t, int64(14_429_090_900), res.TotalAmount)
}

func TestClaimBannedClubZeroesClubShare(t *testing.T) {
	initArena(t)
	snap := clubSnapshot(1, "hive:carol", DistributionShared, 1, 9)
	snap.Individual = IndividualData{Score: 10, Rank: 1}
	f := payoutWeek(t, []ClaimSnapshot{snap})

	setCaller(ownerAddress)
	DaoSetClubBan(pl(`{"clubId":7,"banned":true}`))

	setCaller("hive:carol")
	res := claimResultOf(t, RewardsClaim(f.claimPayload(t, 0)))
	require.Equal(t, int64(14_429_090_900), res.IndividualAmount)
	require.Equal(t, int64(0), res.ClubAmount)

	// The member slot is consumed even though the club paid nothing.
	require.NotNil(t, clubRankHolder(0, 1, 1))
	info := weekInfoOf(t, 0)
	require.Equal(t, int64(307_200_000_000), info.Club.RemainingRewardAmount)
}

func TestClaimPoolSufficiencyBoundary(t *testing.T) {
	initArena(t)
	// Two entries, both carrying the full score total. The first claim takes
	// 2*17066666666 + 100*512000000 = 85333333332 of the 102400000000 pool;
	// the second would need 68266666666 against the 17066666668 left.
	f := addWeekFixture(t, 0, []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 100),
		soloSnapshot(2, "hive:bob", 2, 100),
	}, 2, 100, 0, 0)

	setCaller("hive:alice")
	res := claimResultOf(t, RewardsClaim(f.claimPayload(t, 0)))
	require.Equal(t, int64(85_333_333_332), res.IndividualAmount)

	remaining := weekInfoOf(t, 0).Individual.RemainingRewardAmount
	require.Equal(t, int64(102_400_000_000-85_333_333_332), remaining)

	setCaller("hive:bob")
	expectAbort(t, "individual pool exhausted", func() {
		RewardsClaim(f.claimPayload(t, 1))
	})

	// The refused claim leaves the pool untouched and non-negative.
	info := weekInfoOf(t, 0)
	require.Equal(t, remaining, info.Individual.RemainingRewardAmount)
	require.GreaterOrEqual(t, info.Individual.RemainingRewardAmount, int64(0))
	require.Equal(t, uint64(1), info.ClaimedSnapshotCount)
}

func TestClaimSnapshotQuota(t *testing.T) {
	initArena(t)
	snaps := []ClaimSnapshot{
		soloSnapshot(1, "hive:alice", 1, 10),
		soloSnapshot(2, "hive:bob", 2, 10),
	}
	leaves := make([][]byte, len(snaps))
	for i := range snaps {
		snaps[i].WeekNonce = 100000000
		leaves[i] = encodeClaimLeaf(&snaps[i])
	}
	root, proofs := buildMerkle(leaves)

	// The oracle commits to one claimable snapshot even though the tree
	// holds two.
	setTime(t0)
	setCaller(oracleAddress)
	RewardsAddWeek(pl(fmt.Sprintf(
		`{"nonce":100000000,"merkleRoot":%q,"totalSnapshots":1,"totalIndividualEntries":10,"totalIndividualScores":100}`,
		hex.EncodeToString(root),
	)))

	f := &weekFixture{snaps: snaps, root: root, proofs: proofs}
	setCaller("hive:alice")
	RewardsClaim(f.claimPayload(t, 0))

	setCaller("hive:bob")
	expectAbort(t, "week snapshot quota exhausted", func() {
		RewardsClaim(f.claimPayload(t, 1))
	})
}

func TestWeekRetentionWindow(t *testing.T) {
	initArena(t)
	fixtures := make([]*weekFixture, 10)
	for w := uint64(0); w < 10; w++ {
		user := fmt.Sprintf("hive:user%d", w)
		fixtures[w] = addWeekFixture(t, w, []ClaimSnapshot{
			soloSnapshot(1, user, 1, 10),
		}, 10, 100, 0, 0)
	}

	require.Equal(t, "expired", weekInfoOf(t, 0).Status)
	require.Equal(t, "expired", weekInfoOf(t, 1).Status)
	require.Equal(t, "ongoing", weekInfoOf(t, 2).Status)

	setCaller("hive:user0")
	expectAbort(t, "week is not claimable", func() {
		RewardsClaim(fixtures[0].claimPayload(t, 0))
	})

	setCaller("hive:user2")
	res := claimResultOf(t, RewardsClaim(fixtures[2].claimPayload(t, 0)))
	require.Greater(t, res.TotalAmount, int64(0))
}

func TestTreasurySweep(t *testing.T) {
	initArena(t)

	setCaller("hive:rando")
	expectAbort(t, "dao only", func() {
		RewardsTreasurySweep(pl(`{"amount":1}`))
	})

	setCaller(ownerAddress)
	expectAbort(t, "exceeds balance", func() {
		RewardsTreasurySweep(pl(fmt.Sprintf(`{"amount":%d}`, 5000*AmountScale)))
	})

	RewardsTreasurySweep(pl(fmt.Sprintf(`{"amount":%d}`, 96*AmountScale)))
	require.Equal(t, int64(96*AmountScale), sdk.MockBalance(treasuryAddress, sdk.Asset(rewardAsset)))

	// Amount zero drains whatever is left.
	setCaller(ownerAddress)
	RewardsTreasurySweep(pl(`{"amount":0}`))
	require.Equal(t, int64(0), sdk.MockBalance(sdk.MockContractAddress(), sdk.Asset(rewardAsset)))
	require.Equal(t, int64(4096*AmountScale), sdk.MockBalance(treasuryAddress, sdk.Asset(rewardAsset)))
}

func TestClaimReentrancyGuard(t *testing.T) {
	initArena(t)
	claimGuard = true
	expectAbort(t, "claim reentrancy", func() {
		RewardsClaim(pl(`{}`))
	})
	claimGuard = false
}
