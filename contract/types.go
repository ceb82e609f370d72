package main

import (
	"arena_dao/sdk"
)

// Amount is a ledger amount in the token's smallest unit (8 decimal places).
type Amount int64

// AmountScale defines the precision multiplier for converting whole tokens to Amount.
const AmountScale = 100_000_000

// TokensToAmount scales whole token counts into the stored integer unit.
// Example payload: TokensToAmount(4096)
func TokensToAmount(tokens int64) Amount {
	return Amount(tokens * AmountScale)
}

// AmountToInt64 exposes the raw scaled int64 for ledger transfer functions.
// Example payload: AmountToInt64(TokensToAmount(1))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// WeekStatus captures a reward week's lifecycle.
type WeekStatus uint8

const (
	WeekNotExist WeekStatus = 0
	WeekOngoing  WeekStatus = 1
	WeekExpired  WeekStatus = 2
)

// String prints the week status as lower-case text for events and logs.
// Example payload: WeekOngoing.String()
func (ws WeekStatus) String() string {
	switch ws {
	case WeekOngoing:
		return "ongoing"
	case WeekExpired:
		return "expired"
	default:
		return "notexist"
	}
}

// DistributionMethod selects how a club's payout is split across its members.
type DistributionMethod uint8

const (
	DistributionShared     DistributionMethod = 0
	DistributionRankBased  DistributionMethod = 1
	DistributionScoreBased DistributionMethod = 2
	DistributionBalanced   DistributionMethod = 3
)

// ProposalOutcome is the terminal (or pending) result of a proposal vote.
type ProposalOutcome uint8

const (
	OutcomePending      ProposalOutcome = 0
	OutcomeRejected     ProposalOutcome = 1
	OutcomeQuorumNotMet ProposalOutcome = 2
	OutcomeApproved     ProposalOutcome = 3
)

// String serializes the outcome for events and view responses.
// Example payload: OutcomeApproved.String()
func (po ProposalOutcome) String() string {
	switch po {
	case OutcomeRejected:
		return "rejected"
	case OutcomeQuorumNotMet:
		return "quorum_not_met"
	case OutcomeApproved:
		return "approved"
	default:
		return "pending"
	}
}

// ExecutionStatus tracks each proposal execution independently.
type ExecutionStatus uint8

const (
	ExecutionNotExecuted ExecutionStatus = 0
	ExecutionSuccess     ExecutionStatus = 1
	ExecutionFailed      ExecutionStatus = 2
	ExecutionExpired     ExecutionStatus = 3
)

// VoteDecision is a voter's recorded choice; NotVoted is the only overwritable state.
type VoteDecision uint8

const (
	VoteNotVoted VoteDecision = 0
	VoteYes      VoteDecision = 1
	VoteNo       VoteDecision = 2
)

// ContractConfig holds the role wiring set once at contract_init.
type ContractConfig struct {
	Owner          sdk.Address // interim owner / bootstrap operator
	Signer         sdk.Address // oracle signer allowed to push week data
	LedgerContract string      // token ledger contract (trusted-address registry)
	Treasury       sdk.Address
	RewardAsset    sdk.Asset
}

// RewardConfig is the DAO-mutable reward parameter block.
type RewardConfig struct {
	RewardLevel               uint64
	RewardIndividualMax       uint64
	RewardClubMax             uint64
	RewardToIndividualPercent uint64
	IndividualScoreWeight     uint64
	ClubScoreWeight           uint64
	MaxClubMembers            uint64
	AllowClaimsForOthers      bool
}

// PoolData is the per-pool (individual/club) reward accounting of one week.
type PoolData struct {
	TotalRewardAmount     Amount
	RemainingRewardAmount Amount
	RankRewardPiece       Amount
	ScoreRewardPiece      Amount
	TotalScores           uint64
	ScoreWeight           uint64
}

// WeekRecord is immutable once created except for pool depletion and expiry.
type WeekRecord struct {
	ID                     uint64
	Nonce                  uint64
	Date                   int64
	Status                 WeekStatus
	MerkleRoot             []byte
	TotalSnapshotCount     uint64
	TotalIndividualEntries uint64
	TotalClubEntries       uint64
	MaxClubMembers         uint64
	Individual             PoolData
	Club                   PoolData
}

// IndividualData is the personal slice of a claim snapshot.
type IndividualData struct {
	Score uint64 `json:"score"`
	Rank  uint64 `json:"rank"`
}

// ClubData is the club slice of a claim snapshot.
type ClubData struct {
	ID                 uint64 `json:"id"`
	Score              uint64 `json:"score"`
	Rank               uint64 `json:"rank"`
	DistributionMethod uint8  `json:"distributionMethod"`
	MemberCount        uint64 `json:"memberCount"`
	MemberRank         uint64 `json:"memberRank"`
	MemberScore        uint64 `json:"memberScore"`
}

// ClaimSnapshot is submitted by claimants, never stored; only its hash and the
// consumed rank slots persist.
type ClaimSnapshot struct {
	ID         uint64         `json:"id"`
	WeekIndex  uint64         `json:"weekIndex"`
	WeekNonce  uint64         `json:"weekNonce"`
	User       string         `json:"user"`
	Individual IndividualData `json:"individual"`
	Club       ClubData       `json:"club"`
}

// RankHolder records who consumed an individual rank slot, and with what score.
type RankHolder struct {
	User  sdk.Address
	Score uint64
}

// DAOConfig is the governance parameter block, hard-bounded at every mutation.
type DAOConfig struct {
	QuorumThresholdPercent   uint64
	ApprovalThresholdPercent uint64
	EligibleWeekCount        uint64
	VotingMaximumRank        uint64
	VotingDurationSecs       int64
	MaxExecutionsPerProposal uint64
	InterimActive            bool
	AllowOnlyTrustedTargets  bool
}

// ProposalExecution is one generic external call carried by a proposal.
// An empty Method means a plain value transfer to Target.
type ProposalExecution struct {
	Target  sdk.Address
	Method  string
	Payload string
	Value   Amount
}

// ProposalResult captures one execution's outcome as data, not as an abort.
type ProposalResult struct {
	Status     ExecutionStatus
	CallResult string
}

// Proposal freezes its eligible week window and thresholds at creation time so
// later DAO changes never alter in-flight votes.
type Proposal struct {
	ID                       uint64
	Title                    string
	Proposer                 sdk.Address
	YesVotes                 uint64
	NoVotes                  uint64
	TotalVoters              uint64
	StartTime                int64
	EndTime                  int64
	MaxWeekIndex             uint64
	MinWeekIndex             uint64
	QuorumThreshold          uint64
	ApprovalThresholdPercent uint64
	Executions               []ProposalExecution
	Results                  []ProposalResult
	Ended                    bool
	Outcome                  ProposalOutcome
}

// UserVote is one user's immutable vote on one proposal.
type UserVote struct {
	Decision VoteDecision
	Power    uint64
}

// IndividualRankProof claims a historical individual leaderboard placement.
type IndividualRankProof struct {
	WeekIndex uint64 `json:"weekIndex"`
	Rank      uint64 `json:"rank"`
}

// ClubRankProof claims a historical club placement; only memberRank 1 carries power.
type ClubRankProof struct {
	WeekIndex  uint64 `json:"weekIndex"`
	ClubRank   uint64 `json:"clubRank"`
	MemberRank uint64 `json:"memberRank"`
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
