package main

import (
	"fmt"

	"arena_dao/sdk"
)

// ContractInit wires the role addresses once and seeds both config blocks with
// their defaults. Interim governance starts active so the owner can operate
// the contract until the DAO takes over.
func ContractInit(payload *string) *string {
	if loadContractConfig() != nil {
		sdk.Abort("already initialized")
	}
	args := &InitArgs{}
	parseArgs(payload, "init", args)
	if args.Signer == "" || args.Treasury == "" || args.RewardAsset == "" {
		sdk.Abort("init: signer, treasury and rewardAsset are required")
	}

	storeContractConfig(&ContractConfig{
		Owner:          sender(),
		Signer:         AddressFromString(args.Signer),
		LedgerContract: args.LedgerContract,
		Treasury:       AddressFromString(args.Treasury),
		RewardAsset:    AssetFromString(args.RewardAsset),
	})
	storeRewardConfig(&RewardConfig{
		RewardLevel:               1,
		RewardIndividualMax:       1000,
		RewardClubMax:             200,
		RewardToIndividualPercent: 25,
		IndividualScoreWeight:     50,
		ClubScoreWeight:           50,
		MaxClubMembers:            500,
		AllowClaimsForOthers:      false,
	})
	storeDAOConfig(&DAOConfig{
		QuorumThresholdPercent:   60,
		ApprovalThresholdPercent: 66,
		EligibleWeekCount:        4,
		VotingMaximumRank:        25,
		VotingDurationSecs:       DefaultVotingDuration,
		MaxExecutionsPerProposal: 5,
		InterimActive:            true,
		AllowOnlyTrustedTargets:  true,
	})
	emitInterimChanged(true, sender().String())
	return respondOK()
}

// RewardsAddWeek opens a new weekly reward cycle. Oracle signer only, at most
// one record per calendar week, strictly sequential ids.
func RewardsAddWeek(payload *string) *string {
	requireSigner()
	args := &AddWeekArgs{}
	parseArgs(payload, "add week", args)

	if args.Nonce < WeekNonceMin || args.Nonce > WeekNonceMax {
		sdk.Abort("week nonce out of range")
	}
	if args.TotalSnapshots == 0 {
		sdk.Abort("week needs at least one snapshot")
	}
	if args.TotalIndividualScores == 0 {
		sdk.Abort("week needs a positive individual score total")
	}
	rc := mustLoadRewardConfig()
	if args.TotalIndividualEntries == 0 || args.TotalIndividualEntries > rc.RewardIndividualMax {
		sdk.Abort("individual entry count out of range")
	}
	if args.TotalClubEntries > rc.RewardClubMax {
		sdk.Abort("club entry count out of range")
	}
	root := parseHash(args.MerkleRoot)

	now := nowUnix()
	weekStart := now - now%WeekSeconds
	id := latestWeekIndex()
	if id > 0 {
		prev := mustLoadWeekRecord(id - 1)
		if weekStart < prev.Date+WeekSeconds {
			sdk.Abort("previous week has not elapsed")
		}
	}

	cfg := mustLoadContractConfig()
	balance := Amount(sdk.GetBalance(contractSelf(), cfg.RewardAsset))
	total := rewardLevelTable[rc.RewardLevel]
	if total > balance {
		total = balance
	}
	individualPool := total * Amount(rc.RewardToIndividualPercent) / 100
	clubPool := total - individualPool

	rec := &WeekRecord{
		ID:                     id,
		Nonce:                  args.Nonce,
		Date:                   weekStart,
		Status:                 WeekOngoing,
		MerkleRoot:             root,
		TotalSnapshotCount:     args.TotalSnapshots,
		TotalIndividualEntries: args.TotalIndividualEntries,
		TotalClubEntries:       args.TotalClubEntries,
		MaxClubMembers:         rc.MaxClubMembers,
		Individual: buildPool(individualPool, args.TotalIndividualEntries,
			args.TotalIndividualScores, rc.IndividualScoreWeight),
		Club: buildPool(clubPool, args.TotalClubEntries,
			args.TotalClubScores, rc.ClubScoreWeight),
	}
	storeWeekRecord(rec)
	storeCounter(keyWeeksCount, id+1)

	// Slide the retention window: the record 8 positions back stops
	// accepting claims the moment this one lands.
	if id >= ActiveWeekWindow {
		old := loadWeekRecord(id - ActiveWeekWindow)
		if old != nil && old.Status == WeekOngoing {
			old.Status = WeekExpired
			storeWeekRecord(old)
			emitWeekExpired(old.ID, old.Individual.RemainingRewardAmount+old.Club.RemainingRewardAmount)
		}
	}

	emitWeekAdded(id, individualPool, clubPool)
	return respond(IdArgs{Id: id})
}

// buildPool precomputes the two payout pieces so claims only multiply.
// rankRewardPiece is the triangular base unit: rank 1 earns entries×piece,
// the last rank earns 1×piece.
func buildPool(pool Amount, entries, totalScores, scoreWeight uint64) PoolData {
	p := PoolData{
		TotalRewardAmount:     pool,
		RemainingRewardAmount: pool,
		TotalScores:           totalScores,
		ScoreWeight:           scoreWeight,
	}
	rankPortion := pool * Amount(100-scoreWeight) / 100
	scorePortion := pool * Amount(scoreWeight) / 100
	if entries > 0 {
		p.RankRewardPiece = rankPortion / Amount(entries*(entries+1)/2)
	}
	if totalScores > 0 {
		p.ScoreRewardPiece = scorePortion / Amount(totalScores)
	}
	return p
}

// claimGuard blocks nested claim entry. The host runs calls serialized, so a
// plain flag is enough; replay protection is additionally guaranteed by
// marking all state before the outbound transfer.
var claimGuard bool

// RewardsClaim pays out one snapshot against an ongoing week. Every
// precondition is a fatal abort; the only soft failure is a banned club, which
// zeroes the club component so the individual share still pays.
func RewardsClaim(payload *string) *string {
	if claimGuard {
		sdk.Abort("claim reentrancy")
	}
	claimGuard = true
	defer func() { claimGuard = false }()

	args := &ClaimArgs{}
	parseArgs(payload, "claim", args)
	s := &args.Snapshot

	latest := latestWeekIndex()
	week := mustLoadWeekRecord(s.WeekIndex)
	if weekStatusAt(week, latest) != WeekOngoing {
		sdk.Abort("week is not claimable")
	}
	if s.WeekNonce != week.Nonce {
		sdk.Abort("week nonce mismatch")
	}
	leaf := encodeClaimLeaf(s)
	if !verifyMerkleProof(leaf, parseProof(args.Proof), week.MerkleRoot) {
		sdk.Abort("merkle proof rejected")
	}
	rc := mustLoadRewardConfig()
	if !rc.AllowClaimsForOthers && sender().String() != s.User {
		sdk.Abort("claims for others are disabled")
	}
	if isUserBanned(s.User) {
		sdk.Abort("user is banned")
	}
	if isSnapshotHashUsed(leaf) {
		sdk.Abort("snapshot already claimed")
	}
	if claimedSnapshotCount(s.WeekIndex) >= week.TotalSnapshotCount {
		sdk.Abort("week snapshot quota exhausted")
	}
	if isSnapshotIDUsed(s.WeekIndex, s.ID) {
		sdk.Abort("snapshot id already used")
	}

	individualAmount := individualReward(week, s)
	clubAmount := clubReward(week, s)

	if individualAmount > week.Individual.RemainingRewardAmount {
		sdk.Abort("individual pool exhausted")
	}
	if clubAmount > week.Club.RemainingRewardAmount {
		sdk.Abort("club pool exhausted")
	}

	// Commit all replay prevention and accounting before the transfer.
	markSnapshotHash(leaf)
	markSnapshotID(s.WeekIndex, s.ID)
	bumpClaimedSnapshotCount(s.WeekIndex)
	week.Individual.RemainingRewardAmount -= individualAmount
	week.Club.RemainingRewardAmount -= clubAmount
	storeWeekRecord(week)

	total := individualAmount + clubAmount
	if total > 0 {
		cfg := mustLoadContractConfig()
		sdk.HiveTransfer(AddressFromString(s.User), AmountToInt64(total), cfg.RewardAsset)
	}
	emitClaim(s.WeekIndex, s.ID, s.User, individualAmount, clubAmount)

	return respond(ClaimResult{
		SnapshotId:       s.ID,
		Recipient:        s.User,
		IndividualAmount: AmountToInt64(individualAmount),
		ClubAmount:       AmountToInt64(clubAmount),
		TotalAmount:      AmountToInt64(total),
	})
}

// individualReward computes the personal component and consumes the rank slot.
// A rank of zero means no individual placement for this snapshot.
func individualReward(week *WeekRecord, s *ClaimSnapshot) Amount {
	rank := s.Individual.Rank
	if rank == 0 {
		return 0
	}
	if rank > week.TotalIndividualEntries {
		sdk.Abort(fmt.Sprintf("individual rank %d beyond week entries", rank))
	}
	if s.Individual.Score > week.Individual.TotalScores {
		sdk.Abort("individual score exceeds week total")
	}
	claimIndividualRank(week.ID, rank, &RankHolder{
		User:  AddressFromString(s.User),
		Score: s.Individual.Score,
	})
	rankPart := week.Individual.RankRewardPiece * Amount(week.TotalIndividualEntries-rank+1)
	scorePart := week.Individual.ScoreRewardPiece * Amount(s.Individual.Score)
	return rankPart + scorePart
}

// clubReward computes the member's cut of their club's pool share and consumes
// the (clubRank, memberRank) slot. A banned club yields zero without aborting
// so the caller still collects their individual reward.
func clubReward(week *WeekRecord, s *ClaimSnapshot) Amount {
	c := &s.Club
	if c.Rank == 0 || c.Score == 0 {
		return 0
	}
	if c.Rank > week.TotalClubEntries {
		sdk.Abort(fmt.Sprintf("club rank %d beyond week entries", c.Rank))
	}
	if c.Score > week.Club.TotalScores {
		sdk.Abort("club score exceeds week total")
	}
	if c.MemberCount == 0 || c.MemberCount > week.MaxClubMembers {
		sdk.Abort("club member count out of range")
	}
	if c.MemberRank == 0 || c.MemberRank > c.MemberCount {
		sdk.Abort("club member rank out of range")
	}
	if c.MemberScore > c.Score {
		sdk.Abort("member score exceeds club score")
	}
	claimClubRank(week.ID, c.Rank, c.MemberRank, &RankHolder{
		User:  AddressFromString(s.User),
		Score: c.MemberScore,
	})
	if isClubBanned(c.ID) {
		return 0
	}

	clubTotal := week.Club.RankRewardPiece*Amount(week.TotalClubEntries-c.Rank+1) +
		week.Club.ScoreRewardPiece*Amount(c.Score)
	return memberCut(clubTotal, c, week.Club.ScoreWeight)
}

// memberCut splits one club's pool share across its members according to the
// club's distribution method.
func memberCut(clubTotal Amount, c *ClubData, scoreWeight uint64) Amount {
	m := c.MemberCount
	switch DistributionMethod(c.DistributionMethod) {
	case DistributionShared:
		return clubTotal / Amount(m)
	case DistributionRankBased:
		piece := clubTotal / Amount(m*(m+1)/2)
		return piece * Amount(m-c.MemberRank+1)
	case DistributionScoreBased:
		return clubTotal * Amount(c.MemberScore) / Amount(c.Score)
	case DistributionBalanced:
		rankPortion := clubTotal * Amount(100-scoreWeight) / 100
		scorePortion := clubTotal * Amount(scoreWeight) / 100
		piece := rankPortion / Amount(m*(m+1)/2)
		return piece*Amount(m-c.MemberRank+1) + scorePortion*Amount(c.MemberScore)/Amount(c.Score)
	default:
		sdk.Abort("unknown distribution method")
	}
	return 0
}

// applyTreasurySweep moves contract-held funds to the treasury address. Kept
// error-returning so proposal executions can record a failure as data.
func applyTreasurySweep(amount Amount) error {
	cfg := mustLoadContractConfig()
	balance := Amount(sdk.GetBalance(contractSelf(), cfg.RewardAsset))
	if amount == 0 {
		amount = balance
	}
	if amount <= 0 || amount > balance {
		return fmt.Errorf("sweep amount %d exceeds balance %d", amount, balance)
	}
	sdk.HiveTransfer(cfg.Treasury, AmountToInt64(amount), cfg.RewardAsset)
	emitTreasurySweep(cfg.Treasury.String(), amount)
	return nil
}

// RewardsTreasurySweep is on the permanent restricted list, so it can never be
// routed through a normal proposal; only the dao gate (interim owner or an
// owner-proposed execution) reaches it.
func RewardsTreasurySweep(payload *string) *string {
	requireDAO()
	args := &SweepArgs{}
	parseArgs(payload, "sweep", args)
	if err := applyTreasurySweep(Amount(args.Amount)); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}
