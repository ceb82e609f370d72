//go:build wasm

package main

// Wasm entry points. The shims live behind the build tag so the native test
// build never sees the wasmexport directives.

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport rewards_add_week
func exportRewardsAddWeek(payload *string) *string { return RewardsAddWeek(payload) }

//go:wasmexport rewards_claim
func exportRewardsClaim(payload *string) *string { return RewardsClaim(payload) }

//go:wasmexport rewards_treasury_sweep
func exportRewardsTreasurySweep(payload *string) *string { return RewardsTreasurySweep(payload) }

//go:wasmexport reward_set_level
func exportRewardSetLevel(payload *string) *string { return RewardSetLevel(payload) }

//go:wasmexport reward_set_individual_max
func exportRewardSetIndividualMax(payload *string) *string { return RewardSetIndividualMax(payload) }

//go:wasmexport reward_set_club_max
func exportRewardSetClubMax(payload *string) *string { return RewardSetClubMax(payload) }

//go:wasmexport reward_set_individual_percent
func exportRewardSetIndividualPercent(payload *string) *string {
	return RewardSetIndividualPercent(payload)
}

//go:wasmexport reward_set_individual_score_weight
func exportRewardSetIndividualScoreWeight(payload *string) *string {
	return RewardSetIndividualScoreWeight(payload)
}

//go:wasmexport reward_set_club_score_weight
func exportRewardSetClubScoreWeight(payload *string) *string {
	return RewardSetClubScoreWeight(payload)
}

//go:wasmexport reward_set_max_club_members
func exportRewardSetMaxClubMembers(payload *string) *string {
	return RewardSetMaxClubMembers(payload)
}

//go:wasmexport reward_set_allow_claims_for_others
func exportRewardSetAllowClaimsForOthers(payload *string) *string {
	return RewardSetAllowClaimsForOthers(payload)
}

//go:wasmexport dao_set_quorum_percent
func exportDaoSetQuorumPercent(payload *string) *string { return DaoSetQuorumPercent(payload) }

//go:wasmexport dao_set_approval_percent
func exportDaoSetApprovalPercent(payload *string) *string { return DaoSetApprovalPercent(payload) }

//go:wasmexport dao_set_eligible_week_count
func exportDaoSetEligibleWeekCount(payload *string) *string {
	return DaoSetEligibleWeekCount(payload)
}

//go:wasmexport dao_set_voting_maximum_rank
func exportDaoSetVotingMaximumRank(payload *string) *string {
	return DaoSetVotingMaximumRank(payload)
}

//go:wasmexport dao_set_voting_duration
func exportDaoSetVotingDuration(payload *string) *string { return DaoSetVotingDuration(payload) }

//go:wasmexport dao_set_max_executions
func exportDaoSetMaxExecutions(payload *string) *string { return DaoSetMaxExecutions(payload) }

//go:wasmexport dao_set_allow_only_trusted_targets
func exportDaoSetAllowOnlyTrustedTargets(payload *string) *string {
	return DaoSetAllowOnlyTrustedTargets(payload)
}

//go:wasmexport dao_set_interim_active
func exportDaoSetInterimActive(payload *string) *string { return DaoSetInterimActive(payload) }

//go:wasmexport dao_set_signer
func exportDaoSetSigner(payload *string) *string { return DaoSetSigner(payload) }

//go:wasmexport dao_set_treasury
func exportDaoSetTreasury(payload *string) *string { return DaoSetTreasury(payload) }

//go:wasmexport dao_set_user_ban
func exportDaoSetUserBan(payload *string) *string { return DaoSetUserBan(payload) }

//go:wasmexport dao_set_club_ban
func exportDaoSetClubBan(payload *string) *string { return DaoSetClubBan(payload) }

//go:wasmexport dao_set_restricted_method
func exportDaoSetRestrictedMethod(payload *string) *string {
	return DaoSetRestrictedMethod(payload)
}

//go:wasmexport gov_create
func exportGovCreate(payload *string) *string { return GovCreate(payload) }

//go:wasmexport gov_vote
func exportGovVote(payload *string) *string { return GovVote(payload) }

//go:wasmexport gov_finalize
func exportGovFinalize(payload *string) *string { return GovFinalize(payload) }

//go:wasmexport gov_execute
func exportGovExecute(payload *string) *string { return GovExecute(payload) }

//go:wasmexport gov_reactivate_interim
func exportGovReactivateInterim(payload *string) *string { return GovReactivateInterim(payload) }

//go:wasmexport week_get
func exportWeekGet(payload *string) *string { return WeekGet(payload) }

//go:wasmexport week_latest
func exportWeekLatest(payload *string) *string { return WeekLatest(payload) }

//go:wasmexport proposal_get
func exportProposalGet(payload *string) *string { return ProposalGet(payload) }

//go:wasmexport vote_get
func exportVoteGet(payload *string) *string { return VoteGet(payload) }

//go:wasmexport reward_config_get
func exportRewardConfigGet(payload *string) *string { return RewardConfigGet(payload) }

//go:wasmexport dao_config_get
func exportDaoConfigGet(payload *string) *string { return DaoConfigGet(payload) }

//go:wasmexport power_get
func exportPowerGet(payload *string) *string { return PowerGet(payload) }

//go:wasmexport ban_get
func exportBanGet(payload *string) *string { return BanGet(payload) }

//go:wasmexport restricted_get
func exportRestrictedGet(payload *string) *string { return RestrictedGet(payload) }
