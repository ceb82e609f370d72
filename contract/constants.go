package main

// Time windows. Weeks are fixed-length; governance windows run in seconds
// against the block timestamp.
const (
	WeekSeconds           int64 = 7 * 24 * 3600
	ExecutionTimelockSecs int64 = 24 * 3600
	ExecutionWindowSecs   int64 = 5 * 24 * 3600
	InterimReactivateSecs int64 = 60 * 24 * 3600
	VotingDurationMinSecs int64 = 3600
	VotingDurationMaxSecs int64 = 14 * 24 * 3600
	DefaultVotingDuration int64 = 7 * 24 * 3600
)

// ActiveWeekWindow is the sliding window of claimable weeks; older weeks expire
// and their remaining pools fall back to the contract balance.
const ActiveWeekWindow uint64 = 8

// Proposal limits.
const (
	MaxProposalsPerWeek uint64 = 4
	MaxTitleBytes              = 128
)

// Week nonces come from the oracle and must be 9 decimal digits so collisions
// across deployments stay unlikely.
const (
	WeekNonceMin uint64 = 100_000_000
	WeekNonceMax uint64 = 999_999_999
)

// Hard bounds for DAO-mutable reward parameters. Setters abort outside these
// ranges no matter who calls them.
const (
	RewardToIndividualPercentMin uint64 = 1
	RewardToIndividualPercentMax uint64 = 30
	ScoreWeightMax               uint64 = 100
	MaxClubMembersMin            uint64 = 100
	MaxClubMembersMax            uint64 = 1000
	RewardIndividualMaxMin       uint64 = 5
	RewardIndividualMaxMax       uint64 = 10_000
	RewardClubMaxMin             uint64 = 10
	RewardClubMaxMax             uint64 = 100_000
	RewardLevelMax               uint64 = 5
)

// Hard bounds for DAO-mutable governance parameters.
const (
	QuorumPercentMin     uint64 = 1
	QuorumPercentMax     uint64 = 80
	ApprovalPercentMin   uint64 = 50
	ApprovalPercentMax   uint64 = 95
	EligibleWeekCountMin uint64 = 1
	EligibleWeekCountMax uint64 = 8
	VotingMaximumRankMin uint64 = 1
	VotingMaximumRankMax uint64 = 100
	MaxExecutionsMin     uint64 = 1
	MaxExecutionsMax     uint64 = 10
)

// rewardLevelTable maps RewardConfig.RewardLevel to the nominal weekly pool.
// The effective pool is additionally clamped to the contract's live balance.
var rewardLevelTable = [RewardLevelMax + 1]Amount{
	TokensToAmount(8192),
	TokensToAmount(4096),
	TokensToAmount(2048),
	TokensToAmount(1024),
	TokensToAmount(512),
	TokensToAmount(256),
}

// restrictedMethodFloor lists ledger methods that can never be un-restricted.
// Proposals may add to the restricted set but these entries are permanent.
var restrictedMethodFloor = []string{
	"transfer",
	"transferFrom",
	"approve",
	"burn",
	"updateRewarderAddress",
	"rewards_treasury_sweep",
}

func isFloorRestricted(method string) bool {
	for _, m := range restrictedMethodFloor {
		if m == method {
			return true
		}
	}
	return false
}
