package main

// Voting power is "one point per distinct historical top placement you can
// prove". Proofs check against the claimed-rank registry, so a rank that was
// never claimed for rewards carries no governance weight: the claim is what
// commits the rank-to-address binding.

// interimOwnerPower is the bootstrap operator's flat bonus over an eligible
// window, enough to carry any early vote on its own.
func interimOwnerPower(minWeek, maxWeek uint64) uint64 {
	return 2 * (maxWeek - minWeek + 1)
}

func verifyIndividualRankProof(user string, p *IndividualRankProof, minWeek, maxWeek, maxRank uint64) bool {
	if p.WeekIndex < minWeek || p.WeekIndex > maxWeek {
		return false
	}
	if p.Rank == 0 || p.Rank > maxRank {
		return false
	}
	holder := individualRankHolder(p.WeekIndex, p.Rank)
	return holder != nil && holder.User.String() == user
}

// verifyClubRankProof accepts only the club's top-ranked member; rank 2 and
// below carry no club voting power.
func verifyClubRankProof(user string, p *ClubRankProof, minWeek, maxWeek, maxRank uint64) bool {
	if p.MemberRank != 1 {
		return false
	}
	if p.WeekIndex < minWeek || p.WeekIndex > maxWeek {
		return false
	}
	if p.ClubRank == 0 || p.ClubRank > maxRank {
		return false
	}
	holder := clubRankHolder(p.WeekIndex, p.ClubRank, p.MemberRank)
	return holder != nil && holder.User.String() == user
}

// calculatePower tallies verifying proofs after an exact-duplicate scan within
// each submitted list. Duplicates are only rejected per call; the same proof
// may be reused across different proposals.
func calculatePower(user string, minWeek, maxWeek uint64, individualProofs []IndividualRankProof, clubProofs []ClubRankProof) uint64 {
	cfg := mustLoadContractConfig()
	if cfg.Owner.String() == user {
		return interimOwnerPower(minWeek, maxWeek)
	}
	dc := mustLoadDAOConfig()

	power := uint64(0)
	for i := range individualProofs {
		dup := false
		for j := 0; j < i; j++ {
			if individualProofs[j] == individualProofs[i] {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if verifyIndividualRankProof(user, &individualProofs[i], minWeek, maxWeek, dc.VotingMaximumRank) {
			power++
		}
	}
	for i := range clubProofs {
		dup := false
		for j := 0; j < i; j++ {
			if clubProofs[j] == clubProofs[i] {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if verifyClubRankProof(user, &clubProofs[i], minWeek, maxWeek, dc.VotingMaximumRank) {
			power++
		}
	}
	return power
}

// calculateMaximumVotes is the quorum denominator: every rankable entry in the
// window plus the interim owner's flat bonus, so the bonus never makes quorum
// unreachable early on.
func calculateMaximumVotes(minWeek, maxWeek uint64) uint64 {
	total := interimOwnerPower(minWeek, maxWeek)
	for w := minWeek; w <= maxWeek; w++ {
		rec := loadWeekRecord(w)
		if rec == nil {
			continue
		}
		total += rec.TotalIndividualEntries + rec.TotalClubEntries
	}
	return total
}

func calculateMinimumWeekIndex(fromWeek, eligibleWeekCount uint64) uint64 {
	if fromWeek < eligibleWeekCount {
		return 0
	}
	return fromWeek - eligibleWeekCount + 1
}
