package main

// Wire payloads for the exported entry points. Every struct here carries
// tinyjson marshalers in payload_tinyjson.go; regenerate with
// `tinyjson -all contract/payload.go` after touching the fields.

//tinyjson:json
type InitArgs struct {
	Signer         string `json:"signer"`
	LedgerContract string `json:"ledgerContract"`
	Treasury       string `json:"treasury"`
	RewardAsset    string `json:"rewardAsset"`
}

//tinyjson:json
type AddWeekArgs struct {
	Nonce                  uint64 `json:"nonce"`
	MerkleRoot             string `json:"merkleRoot"`
	TotalSnapshots         uint64 `json:"totalSnapshots"`
	TotalIndividualEntries uint64 `json:"totalIndividualEntries"`
	TotalClubEntries       uint64 `json:"totalClubEntries"`
	TotalIndividualScores  uint64 `json:"totalIndividualScores"`
	TotalClubScores        uint64 `json:"totalClubScores"`
}

//tinyjson:json
type ClaimArgs struct {
	Snapshot ClaimSnapshot `json:"snapshot"`
	Proof    []string      `json:"proof"`
}

//tinyjson:json
type SweepArgs struct {
	Amount int64 `json:"amount"`
}

//tinyjson:json
type SetUintArgs struct {
	Value uint64 `json:"value"`
}

//tinyjson:json
type SetBoolArgs struct {
	Value bool `json:"value"`
}

//tinyjson:json
type SetAddressArgs struct {
	Address string `json:"address"`
}

//tinyjson:json
type BanUserArgs struct {
	User   string `json:"user"`
	Banned bool   `json:"banned"`
}

//tinyjson:json
type BanClubArgs struct {
	ClubId uint64 `json:"clubId"`
	Banned bool   `json:"banned"`
}

//tinyjson:json
type SetRestrictedArgs struct {
	Method     string `json:"method"`
	Restricted bool   `json:"restricted"`
}

//tinyjson:json
type ExecutionInput struct {
	Target  string `json:"target"`
	Method  string `json:"method"`
	Payload string `json:"payload"`
	Value   int64  `json:"value"`
}

//tinyjson:json
type CreateProposalArgs struct {
	Title            string                `json:"title"`
	Executions       []ExecutionInput      `json:"executions"`
	IndividualProofs []IndividualRankProof `json:"individualProofs"`
	ClubProofs       []ClubRankProof       `json:"clubProofs"`
}

//tinyjson:json
type VoteArgs struct {
	ProposalId       uint64                `json:"proposalId"`
	Decision         string                `json:"decision"`
	IndividualProofs []IndividualRankProof `json:"individualProofs"`
	ClubProofs       []ClubRankProof       `json:"clubProofs"`
}

//tinyjson:json
type IdArgs struct {
	Id uint64 `json:"id"`
}

//tinyjson:json
type VoteQueryArgs struct {
	ProposalId uint64 `json:"proposalId"`
	User       string `json:"user"`
}

//tinyjson:json
type PowerQueryArgs struct {
	User             string                `json:"user"`
	IndividualProofs []IndividualRankProof `json:"individualProofs"`
	ClubProofs       []ClubRankProof       `json:"clubProofs"`
}

// --- view responses ---

//tinyjson:json
type PoolInfo struct {
	TotalRewardAmount     int64  `json:"totalRewardAmount"`
	RemainingRewardAmount int64  `json:"remainingRewardAmount"`
	RankRewardPiece       int64  `json:"rankRewardPiece"`
	ScoreRewardPiece      int64  `json:"scoreRewardPiece"`
	TotalScores           uint64 `json:"totalScores"`
	ScoreWeight           uint64 `json:"scoreWeight"`
}

//tinyjson:json
type WeekInfo struct {
	Id                     uint64   `json:"id"`
	Nonce                  uint64   `json:"nonce"`
	Date                   int64    `json:"date"`
	Status                 string   `json:"status"`
	MerkleRoot             string   `json:"merkleRoot"`
	TotalSnapshotCount     uint64   `json:"totalSnapshotCount"`
	ClaimedSnapshotCount   uint64   `json:"claimedSnapshotCount"`
	TotalIndividualEntries uint64   `json:"totalIndividualEntries"`
	TotalClubEntries       uint64   `json:"totalClubEntries"`
	MaxClubMembers         uint64   `json:"maxClubMembers"`
	Individual             PoolInfo `json:"individual"`
	Club                   PoolInfo `json:"club"`
}

//tinyjson:json
type ExecutionInfo struct {
	Target     string `json:"target"`
	Method     string `json:"method"`
	Payload    string `json:"payload"`
	Value      int64  `json:"value"`
	Status     string `json:"status"`
	CallResult string `json:"callResult"`
}

//tinyjson:json
type ProposalInfo struct {
	Id                       uint64          `json:"id"`
	Title                    string          `json:"title"`
	Proposer                 string          `json:"proposer"`
	YesVotes                 uint64          `json:"yesVotes"`
	NoVotes                  uint64          `json:"noVotes"`
	TotalVoters              uint64          `json:"totalVoters"`
	StartTime                int64           `json:"startTime"`
	EndTime                  int64           `json:"endTime"`
	MaxWeekIndex             uint64          `json:"maxWeekIndex"`
	MinWeekIndex             uint64          `json:"minWeekIndex"`
	QuorumThreshold          uint64          `json:"quorumThreshold"`
	ApprovalThresholdPercent uint64          `json:"approvalThresholdPercent"`
	Executions               []ExecutionInfo `json:"executions"`
	Ended                    bool            `json:"ended"`
	Outcome                  string          `json:"outcome"`
}

//tinyjson:json
type VoteInfo struct {
	Decision string `json:"decision"`
	Power    uint64 `json:"power"`
}

//tinyjson:json
type PowerInfo struct {
	Power        uint64 `json:"power"`
	MaximumVotes uint64 `json:"maximumVotes"`
	MinWeekIndex uint64 `json:"minWeekIndex"`
	MaxWeekIndex uint64 `json:"maxWeekIndex"`
}

//tinyjson:json
type ClaimResult struct {
	SnapshotId       uint64 `json:"snapshotId"`
	Recipient        string `json:"recipient"`
	IndividualAmount int64  `json:"individualAmount"`
	ClubAmount       int64  `json:"clubAmount"`
	TotalAmount      int64  `json:"totalAmount"`
}

//tinyjson:json
type RewardConfigInfo struct {
	RewardLevel               uint64 `json:"rewardLevel"`
	RewardIndividualMax       uint64 `json:"rewardIndividualMax"`
	RewardClubMax             uint64 `json:"rewardClubMax"`
	RewardToIndividualPercent uint64 `json:"rewardToIndividualPercent"`
	IndividualScoreWeight     uint64 `json:"individualScoreWeight"`
	ClubScoreWeight           uint64 `json:"clubScoreWeight"`
	MaxClubMembers            uint64 `json:"maxClubMembers"`
	AllowClaimsForOthers      bool   `json:"allowClaimsForOthers"`
}

//tinyjson:json
type DAOConfigInfo struct {
	QuorumThresholdPercent   uint64 `json:"quorumThresholdPercent"`
	ApprovalThresholdPercent uint64 `json:"approvalThresholdPercent"`
	EligibleWeekCount        uint64 `json:"eligibleWeekCount"`
	VotingMaximumRank        uint64 `json:"votingMaximumRank"`
	VotingDurationSecs       int64  `json:"votingDurationSecs"`
	MaxExecutionsPerProposal uint64 `json:"maxExecutionsPerProposal"`
	InterimActive            bool   `json:"interimActive"`
	AllowOnlyTrustedTargets  bool   `json:"allowOnlyTrustedTargets"`
}
