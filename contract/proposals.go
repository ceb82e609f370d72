package main

import (
	"fmt"

	"arena_dao/sdk"
)

// isTrustedTarget consults the external ledger's trusted-address registry.
// Self-calls are always allowed since they can only reach the dao-managed
// dispatch table.
func isTrustedTarget(cfg *ContractConfig, target sdk.Address) bool {
	if target == contractSelf() {
		return true
	}
	if cfg.LedgerContract == "" {
		return false
	}
	v := sdk.ContractStateGet(cfg.LedgerContract, "trusted:"+target.String())
	return v != nil && *v != ""
}

func hasRestrictedOrValue(execs []ProposalExecution) bool {
	for i := range execs {
		if execs[i].Value > 0 || isRestrictedMethod(execs[i].Method) {
			return true
		}
	}
	return false
}

// GovCreate opens a proposal with its eligible week window and thresholds
// frozen, so later config changes never touch in-flight votes. While interim
// governance is active the owner's non-restricted proposals skip voting and
// land Approved immediately, still subject to the execution timelock.
func GovCreate(payload *string) *string {
	args := &CreateProposalArgs{}
	parseArgs(payload, "create proposal", args)

	proposer := sender()
	if isUserBanned(proposer.String()) {
		sdk.Abort("proposer is banned")
	}
	if args.Title == "" || len(args.Title) > MaxTitleBytes {
		sdk.Abort("title must be 1-128 bytes")
	}
	dc := mustLoadDAOConfig()
	cfg := mustLoadContractConfig()
	if len(args.Executions) == 0 || uint64(len(args.Executions)) > dc.MaxExecutionsPerProposal {
		sdk.Abort("execution count out of range")
	}

	execs := make([]ProposalExecution, len(args.Executions))
	for i, in := range args.Executions {
		if in.Target == "" {
			sdk.Abort("execution target missing")
		}
		if in.Value < 0 {
			sdk.Abort("execution value negative")
		}
		execs[i] = ProposalExecution{
			Target:  AddressFromString(in.Target),
			Method:  in.Method,
			Payload: in.Payload,
			Value:   Amount(in.Value),
		}
	}

	isOwner := proposer == cfg.Owner
	if dc.AllowOnlyTrustedTargets {
		for i := range execs {
			if !isTrustedTarget(cfg, execs[i].Target) {
				sdk.Abort("execution target not trusted: " + execs[i].Target.String())
			}
		}
	}
	if hasRestrictedOrValue(execs) && !isOwner {
		sdk.Abort("restricted or value-carrying executions are interim-owner only")
	}

	weekCount := latestWeekIndex()
	maxWeek := uint64(0)
	if weekCount > 0 {
		maxWeek = weekCount - 1
	}
	minWeek := calculateMinimumWeekIndex(maxWeek, dc.EligibleWeekCount)

	if !isOwner && proposalsThisWeek(maxWeek, proposer.String()) >= MaxProposalsPerWeek {
		sdk.Abort("weekly proposal quota exhausted")
	}

	power := calculatePower(proposer.String(), minWeek, maxWeek, args.IndividualProofs, args.ClubProofs)
	if power == 0 {
		sdk.Abort("no voting power")
	}

	digest := executionsDigest(execs)
	if isExecutionsDigestUsed(maxWeek, digest) {
		sdk.Abort("identical executions already proposed this week")
	}

	now := nowUnix()
	quorum := calculateMaximumVotes(minWeek, maxWeek) * dc.QuorumThresholdPercent / 100
	id := loadCounter(keyProposalCount)
	p := &Proposal{
		ID:                       id,
		Title:                    args.Title,
		Proposer:                 proposer,
		StartTime:                now,
		EndTime:                  now + dc.VotingDurationSecs,
		MaxWeekIndex:             maxWeek,
		MinWeekIndex:             minWeek,
		QuorumThreshold:          quorum,
		ApprovalThresholdPercent: dc.ApprovalThresholdPercent,
		Executions:               execs,
		Results:                  make([]ProposalResult, len(execs)),
		Outcome:                  OutcomePending,
	}

	// Bootstrap fast-path: voting collapses to zero for the interim
	// owner's non-restricted batches.
	restricted := false
	for i := range execs {
		if isRestrictedMethod(execs[i].Method) {
			restricted = true
			break
		}
	}
	if dc.InterimActive && isOwner && !restricted {
		p.EndTime = now
		p.Outcome = OutcomeApproved
	}

	storeProposal(p)
	storeCounter(keyProposalCount, id+1)
	markExecutionsDigest(maxWeek, digest)
	bumpProposalsThisWeek(maxWeek, proposer.String())
	emitProposalCreated(id, proposer.String(), p.EndTime)
	if p.Outcome == OutcomeApproved {
		emitProposalFinalized(id, OutcomeApproved)
	}
	return respond(IdArgs{Id: id})
}

// GovVote records one immutable vote. Power is computed against the
// proposal's frozen window, not the current week.
func GovVote(payload *string) *string {
	args := &VoteArgs{}
	parseArgs(payload, "vote", args)

	var decision VoteDecision
	switch args.Decision {
	case "yes":
		decision = VoteYes
	case "no":
		decision = VoteNo
	default:
		sdk.Abort("decision must be yes or no")
	}

	p := mustLoadProposal(args.ProposalId)
	if p.Ended || p.Outcome != OutcomePending {
		sdk.Abort("proposal is not open for voting")
	}
	if nowUnix() >= p.EndTime {
		sdk.Abort("voting window closed")
	}
	voter := sender().String()
	if prior := loadUserVote(p.ID, voter); prior != nil && prior.Decision != VoteNotVoted {
		sdk.Abort("already voted")
	}

	power := calculatePower(voter, p.MinWeekIndex, p.MaxWeekIndex, args.IndividualProofs, args.ClubProofs)
	if power == 0 {
		sdk.Abort("no voting power")
	}

	storeUserVote(p.ID, voter, &UserVote{Decision: decision, Power: power})
	if decision == VoteYes {
		p.YesVotes += power
	} else {
		p.NoVotes += power
	}
	p.TotalVoters++
	storeProposal(p)
	emitVoteCast(p.ID, voter, args.Decision, power)
	return respondOK()
}

// GovFinalize settles the vote once the window has closed. Approved proposals
// stay un-ended, awaiting timelocked execution.
func GovFinalize(payload *string) *string {
	args := &IdArgs{}
	parseArgs(payload, "finalize", args)

	p := mustLoadProposal(args.Id)
	if p.Ended || p.Outcome != OutcomePending {
		sdk.Abort("proposal already settled")
	}
	if nowUnix() < p.EndTime {
		sdk.Abort("voting still open")
	}

	total := p.YesVotes + p.NoVotes
	if total == 0 || total < p.QuorumThreshold {
		p.Outcome = OutcomeQuorumNotMet
		p.Ended = true
	} else if p.YesVotes*100/total >= p.ApprovalThresholdPercent {
		p.Outcome = OutcomeApproved
	} else {
		p.Outcome = OutcomeRejected
		p.Ended = true
	}
	storeProposal(p)
	emitProposalFinalized(p.ID, p.Outcome)
	return respond(proposalInfo(p))
}

var execGuard bool

// GovExecute runs an approved batch after the timelock. Restriction flags are
// rechecked at call time since the DAO may have flagged a method after
// approval. One failing execution does not roll back the others; a lapsed
// window expires the whole batch permanently.
func GovExecute(payload *string) *string {
	if execGuard {
		sdk.Abort("execution reentrancy")
	}
	execGuard = true
	defer func() { execGuard = false }()

	args := &IdArgs{}
	parseArgs(payload, "execute", args)

	p := mustLoadProposal(args.Id)
	if p.Ended || p.Outcome != OutcomeApproved {
		sdk.Abort("proposal is not executable")
	}
	cfg := mustLoadContractConfig()
	if hasRestrictedOrValue(p.Executions) && sender() != cfg.Owner {
		sdk.Abort("restricted or value-carrying executions are interim-owner only")
	}

	now := nowUnix()
	if now < p.EndTime+ExecutionTimelockSecs {
		sdk.Abort("execution timelock has not elapsed")
	}
	if now >= p.EndTime+ExecutionWindowSecs {
		for i := range p.Results {
			p.Results[i] = ProposalResult{Status: ExecutionExpired}
			emitExecutionResult(p.ID, i, ExecutionExpired, "")
		}
		p.Ended = true
		storeProposal(p)
		return respond(proposalInfo(p))
	}

	allOK := true
	for i := range p.Executions {
		ex := &p.Executions[i]
		ok, result := invokeExecution(ex.Target, ex.Method, ex.Payload, ex.Value)
		status := ExecutionSuccess
		if !ok {
			status = ExecutionFailed
			allOK = false
		}
		p.Results[i] = ProposalResult{Status: status, CallResult: result}
		emitExecutionResult(p.ID, i, status, result)
	}
	p.Ended = true
	storeProposal(p)
	if allOK {
		storeLastExecutionTime(now)
	}
	return respond(proposalInfo(p))
}

// GovReactivateInterim is the dead-DAO escape hatch: if nothing has fully
// executed for 60 days, the bootstrap operator reclaims fast-track power.
func GovReactivateInterim(payload *string) *string {
	requireInterimOwner()
	dc := mustLoadDAOConfig()
	if dc.InterimActive {
		sdk.Abort("interim governance already active")
	}
	now := nowUnix()
	last := lastExecutionTime()
	if now <= last+InterimReactivateSecs {
		sdk.Abort(fmt.Sprintf("dao still alive: last full execution %d", last))
	}
	dc.InterimActive = true
	storeDAOConfig(dc)
	emitInterimChanged(true, sender().String())
	return respondOK()
}
