package main

import (
	"encoding/hex"
)

// Read-only entry points. Views abort on unknown ids instead of returning
// empty objects so callers can tell "missing" from "zero-valued".

func poolInfo(p *PoolData) PoolInfo {
	return PoolInfo{
		TotalRewardAmount:     AmountToInt64(p.TotalRewardAmount),
		RemainingRewardAmount: AmountToInt64(p.RemainingRewardAmount),
		RankRewardPiece:       AmountToInt64(p.RankRewardPiece),
		ScoreRewardPiece:      AmountToInt64(p.ScoreRewardPiece),
		TotalScores:           p.TotalScores,
		ScoreWeight:           p.ScoreWeight,
	}
}

func weekInfo(rec *WeekRecord, latest uint64) WeekInfo {
	return WeekInfo{
		Id:                     rec.ID,
		Nonce:                  rec.Nonce,
		Date:                   rec.Date,
		Status:                 weekStatusAt(rec, latest).String(),
		MerkleRoot:             hex.EncodeToString(rec.MerkleRoot),
		TotalSnapshotCount:     rec.TotalSnapshotCount,
		ClaimedSnapshotCount:   claimedSnapshotCount(rec.ID),
		TotalIndividualEntries: rec.TotalIndividualEntries,
		TotalClubEntries:       rec.TotalClubEntries,
		MaxClubMembers:         rec.MaxClubMembers,
		Individual:             poolInfo(&rec.Individual),
		Club:                   poolInfo(&rec.Club),
	}
}

func proposalInfo(p *Proposal) ProposalInfo {
	execs := make([]ExecutionInfo, len(p.Executions))
	for i := range p.Executions {
		status := ""
		result := ""
		if i < len(p.Results) {
			switch p.Results[i].Status {
			case ExecutionSuccess:
				status = "success"
			case ExecutionFailed:
				status = "failed"
			case ExecutionExpired:
				status = "expired"
			default:
				status = "not_executed"
			}
			result = p.Results[i].CallResult
		}
		execs[i] = ExecutionInfo{
			Target:     p.Executions[i].Target.String(),
			Method:     p.Executions[i].Method,
			Payload:    p.Executions[i].Payload,
			Value:      AmountToInt64(p.Executions[i].Value),
			Status:     status,
			CallResult: result,
		}
	}
	return ProposalInfo{
		Id:                       p.ID,
		Title:                    p.Title,
		Proposer:                 p.Proposer.String(),
		YesVotes:                 p.YesVotes,
		NoVotes:                  p.NoVotes,
		TotalVoters:              p.TotalVoters,
		StartTime:                p.StartTime,
		EndTime:                  p.EndTime,
		MaxWeekIndex:             p.MaxWeekIndex,
		MinWeekIndex:             p.MinWeekIndex,
		QuorumThreshold:          p.QuorumThreshold,
		ApprovalThresholdPercent: p.ApprovalThresholdPercent,
		Executions:               execs,
		Ended:                    p.Ended,
		Outcome:                  p.Outcome.String(),
	}
}

// WeekGet returns one week record with its live status.
func WeekGet(payload *string) *string {
	args := &IdArgs{}
	parseArgs(payload, "week query", args)
	rec := mustLoadWeekRecord(args.Id)
	return respond(weekInfo(rec, latestWeekIndex()))
}

// WeekLatest reports the next week index to be created (equals the count of
// existing weeks).
func WeekLatest(payload *string) *string {
	return respond(IdArgs{Id: latestWeekIndex()})
}

// ProposalGet returns one proposal with its executions and results.
func ProposalGet(payload *string) *string {
	args := &IdArgs{}
	parseArgs(payload, "proposal query", args)
	return respond(proposalInfo(mustLoadProposal(args.Id)))
}

// VoteGet returns one user's vote on one proposal.
func VoteGet(payload *string) *string {
	args := &VoteQueryArgs{}
	parseArgs(payload, "vote query", args)
	v := loadUserVote(args.ProposalId, args.User)
	if v == nil {
		return respond(VoteInfo{Decision: "not_voted"})
	}
	decision := "no"
	if v.Decision == VoteYes {
		decision = "yes"
	}
	return respond(VoteInfo{Decision: decision, Power: v.Power})
}

// RewardConfigGet exposes the current reward parameter block.
func RewardConfigGet(payload *string) *string {
	rc := mustLoadRewardConfig()
	return respond(RewardConfigInfo{
		RewardLevel:               rc.RewardLevel,
		RewardIndividualMax:       rc.RewardIndividualMax,
		RewardClubMax:             rc.RewardClubMax,
		RewardToIndividualPercent: rc.RewardToIndividualPercent,
		IndividualScoreWeight:     rc.IndividualScoreWeight,
		ClubScoreWeight:           rc.ClubScoreWeight,
		MaxClubMembers:            rc.MaxClubMembers,
		AllowClaimsForOthers:      rc.AllowClaimsForOthers,
	})
}

// DaoConfigGet exposes the current governance parameter block.
func DaoConfigGet(payload *string) *string {
	dc := mustLoadDAOConfig()
	return respond(DAOConfigInfo{
		QuorumThresholdPercent:   dc.QuorumThresholdPercent,
		ApprovalThresholdPercent: dc.ApprovalThresholdPercent,
		EligibleWeekCount:        dc.EligibleWeekCount,
		VotingMaximumRank:        dc.VotingMaximumRank,
		VotingDurationSecs:       dc.VotingDurationSecs,
		MaxExecutionsPerProposal: dc.MaxExecutionsPerProposal,
		InterimActive:            dc.InterimActive,
		AllowOnlyTrustedTargets:  dc.AllowOnlyTrustedTargets,
	})
}

// PowerGet computes a user's voting power over the current eligible window
// without mutating anything, for wallets to preview before voting.
func PowerGet(payload *string) *string {
	args := &PowerQueryArgs{}
	parseArgs(payload, "power query", args)
	user := args.User
	if user == "" {
		user = sender().String()
	}
	dc := mustLoadDAOConfig()
	weekCount := latestWeekIndex()
	maxWeek := uint64(0)
	if weekCount > 0 {
		maxWeek = weekCount - 1
	}
	minWeek := calculateMinimumWeekIndex(maxWeek, dc.EligibleWeekCount)
	return respond(PowerInfo{
		Power:        calculatePower(user, minWeek, maxWeek, args.IndividualProofs, args.ClubProofs),
		MaximumVotes: calculateMaximumVotes(minWeek, maxWeek),
		MinWeekIndex: minWeek,
		MaxWeekIndex: maxWeek,
	})
}

// BanGet reports whether a user address is banned.
func BanGet(payload *string) *string {
	args := &SetAddressArgs{}
	parseArgs(payload, "ban query", args)
	if isUserBanned(args.Address) {
		s := `{"banned":true}`
		return &s
	}
	s := `{"banned":false}`
	return &s
}

// RestrictedGet reports whether a method name is on the restricted list.
func RestrictedGet(payload *string) *string {
	args := &SetRestrictedArgs{}
	parseArgs(payload, "restricted query", args)
	if isRestrictedMethod(args.Method) {
		s := `{"restricted":true}`
		return &s
	}
	s := `{"restricted":false}`
	return &s
}
