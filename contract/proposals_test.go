package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"arena_dao/sdk"
)

func createPayload(t *testing.T, title string, execs []ExecutionInput, ind []IndividualRankProof, club []ClubRankProof) *string {
	t.Helper()
	args := CreateProposalArgs{Title: title, Executions: execs, IndividualProofs: ind, ClubProofs: club}
	b, err := args.MarshalJSON()
	require.NoError(t, err)
	return pl(string(b))
}

func votePayload(t *testing.T, id uint64, decision string, ind []IndividualRankProof) *string {
	t.Helper()
	args := VoteArgs{ProposalId: id, Decision: decision, IndividualProofs: ind}
	b, err := args.MarshalJSON()
	require.NoError(t, err)
	return pl(string(b))
}

func createdID(t *testing.T, resp *string) uint64 {
	t.Helper()
	require.NotNil(t, resp)
	var out IdArgs
	require.NoError(t, out.UnmarshalJSON([]byte(*resp)))
	return out.Id
}

func proposalInfoOf(t *testing.T, id uint64) ProposalInfo {
	t.Helper()
	resp := ProposalGet(pl(fmt.Sprintf(`{"id":%d}`, id)))
	require.NotNil(t, resp)
	var info ProposalInfo
	require.NoError(t, info.UnmarshalJSON([]byte(*resp)))
	return info
}

// selfSetUint is a self-call execution against the dao-managed dispatch table.
func selfSetUint(method string, v uint64) ExecutionInput {
	return ExecutionInput{
		Target:  sdk.MockContractAddress(),
		Method:  method,
		Payload: fmt.Sprintf(`{"value":%d}`, v),
	}
}

func TestGovCreateValidation(t *testing.T) {
	initArena(t)
	govWeek(t)
	exec := []ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}

	setCaller(ownerAddress)
	DaoSetUserBan(pl(`{"user":"hive:mallory","banned":true}`))

	setCaller("hive:mallory")
	expectAbort(t, "proposer is banned", func() {
		GovCreate(createPayload(t, "x", exec, nil, nil))
	})

	setCaller("hive:alice")
	expectAbort(t, "title must be", func() {
		GovCreate(createPayload(t, "", exec, aliceProofs(), nil))
	})
	expectAbort(t, "execution count out of range", func() {
		GovCreate(createPayload(t, "empty", nil, aliceProofs(), nil))
	})
	expectAbort(t, "execution count out of range", func() {
		six := make([]ExecutionInput, 6)
		for i := range six {
			six[i] = selfSetUint("dao_set_quorum_percent", 50)
		}
		GovCreate(createPayload(t, "too many", six, aliceProofs(), nil))
	})
	expectAbort(t, "execution target missing", func() {
		GovCreate(createPayload(t, "no target", []ExecutionInput{{Method: "x"}}, aliceProofs(), nil))
	})
	expectAbort(t, "target not trusted", func() {
		GovCreate(createPayload(t, "stranger", []ExecutionInput{
			{Target: "contract:stranger", Method: "poke", Payload: "{}"},
		}, aliceProofs(), nil))
	})

	// Restricted methods and outbound value are reserved for the owner.
	expectAbort(t, "interim-owner only", func() {
		GovCreate(createPayload(t, "sweep", []ExecutionInput{
			{Target: sdk.MockContractAddress(), Method: "rewards_treasury_sweep", Payload: `{"amount":0}`},
		}, aliceProofs(), nil))
	})
	sdk.MockSetContractState(ledgerContract, "trusted:hive:grantee", "1")
	expectAbort(t, "interim-owner only", func() {
		GovCreate(createPayload(t, "grant", []ExecutionInput{
			{Target: "hive:grantee", Value: 100},
		}, aliceProofs(), nil))
	})

	setCaller("hive:nobody")
	expectAbort(t, "no voting power", func() {
		GovCreate(createPayload(t, "powerless", exec, nil, nil))
	})
}

func TestGovCreateDuplicateAndQuota(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller("hive:alice")
	GovCreate(createPayload(t, "first", []ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil))
	expectAbort(t, "identical executions already proposed", func() {
		GovCreate(createPayload(t, "same batch, new title", []ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil))
	})

	for v := uint64(51); v <= 53; v++ {
		GovCreate(createPayload(t, "more", []ExecutionInput{selfSetUint("dao_set_quorum_percent", v)}, aliceProofs(), nil))
	}
	expectAbort(t, "weekly proposal quota exhausted", func() {
		GovCreate(createPayload(t, "fifth", []ExecutionInput{selfSetUint("dao_set_quorum_percent", 54)}, aliceProofs(), nil))
	})

	// The interim owner is not throttled.
	setCaller(ownerAddress)
	for v := uint64(55); v <= 59; v++ {
		GovCreate(createPayload(t, "owner batch", []ExecutionInput{selfSetUint("dao_set_approval_percent", v)}, nil, nil))
	}
}

func TestGovVoteQuorumNotMet(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller("hive:alice")
	id := createdID(t, GovCreate(createPayload(t, "raise quorum",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil)))

	info := proposalInfoOf(t, id)
	require.Equal(t, "pending", info.Outcome)
	require.Equal(t, uint64(8), info.QuorumThreshold) // 14 maximum votes at 60%

	GovVote(votePayload(t, id, "yes", aliceProofs()))
	expectAbort(t, "already voted", func() {
		GovVote(votePayload(t, id, "yes", aliceProofs()))
	})
	expectAbort(t, "voting still open", func() {
		GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	})

	setTime(t0 + DefaultVotingDuration)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info = proposalInfoOf(t, id)
	require.Equal(t, "quorum_not_met", info.Outcome)
	require.True(t, info.Ended)
	require.Equal(t, uint64(6), info.YesVotes)

	setCaller("hive:bob")
	expectAbort(t, "not open for voting", func() {
		GovVote(votePayload(t, id, "yes", bobProofs()))
	})
	expectAbort(t, "not executable", func() {
		GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	})
}

func TestGovQuorumExactBoundary(t *testing.T) {
	initArena(t)
	govWeek(t)

	// Threshold is 8. One power short of it fails quorum.
	setCaller("hive:alice")
	id := createdID(t, GovCreate(createPayload(t, "one short",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil)))
	GovVote(votePayload(t, id, "yes", aliceProofs()))

	setCaller("hive:carol")
	carolVote := VoteArgs{
		ProposalId: id,
		Decision:   "yes",
		ClubProofs: []ClubRankProof{{WeekIndex: 0, ClubRank: 1, MemberRank: 1}},
	}
	b, err := carolVote.MarshalJSON()
	require.NoError(t, err)
	GovVote(pl(string(b)))

	setTime(t0 + DefaultVotingDuration)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.Equal(t, uint64(7), info.YesVotes)
	require.Equal(t, "quorum_not_met", info.Outcome)
	require.True(t, info.Ended)

	// Exactly the threshold meets quorum.
	setCaller("hive:alice")
	id = createdID(t, GovCreate(createPayload(t, "on the line",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 51)}, aliceProofs(), nil)))
	GovVote(votePayload(t, id, "yes", aliceProofs()))
	setCaller("hive:bob")
	GovVote(votePayload(t, id, "yes", bobProofs()[:2]))

	setTime(t0 + 2*DefaultVotingDuration)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info = proposalInfoOf(t, id)
	require.Equal(t, uint64(8), info.YesVotes)
	require.Equal(t, "approved", info.Outcome)
	require.False(t, info.Ended)
}

func TestGovVoteRejectedOnApproval(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller("hive:alice")
	id := createdID(t, GovCreate(createPayload(t, "contested",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil)))
	GovVote(votePayload(t, id, "yes", aliceProofs()))

	setCaller("hive:bob")
	GovVote(votePayload(t, id, "no", bobProofs()))

	// 10 votes clear the quorum of 8 but 60% yes misses the 66% bar.
	setTime(t0 + DefaultVotingDuration)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.Equal(t, "rejected", info.Outcome)
	require.True(t, info.Ended)
	require.Equal(t, uint64(2), info.TotalVoters)
}

func TestGovApproveAndExecute(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller("hive:alice")
	id := createdID(t, GovCreate(createPayload(t, "raise quorum",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil)))
	GovVote(votePayload(t, id, "yes", aliceProofs()))
	setCaller("hive:bob")
	GovVote(votePayload(t, id, "yes", bobProofs()))

	endTime := t0 + DefaultVotingDuration
	setTime(endTime)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.Equal(t, "approved", info.Outcome)
	require.False(t, info.Ended)

	expectAbort(t, "timelock has not elapsed", func() {
		GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	})

	setTime(endTime + ExecutionTimelockSecs)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info = proposalInfoOf(t, id)
	require.True(t, info.Ended)
	require.Equal(t, "success", info.Executions[0].Status)
	require.Equal(t, endTime+ExecutionTimelockSecs, lastExecutionTime())

	var dc DAOConfigInfo
	require.NoError(t, dc.UnmarshalJSON([]byte(*DaoConfigGet(nil))))
	require.Equal(t, uint64(50), dc.QuorumThresholdPercent)

	expectAbort(t, "not executable", func() {
		GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	})
}

func TestGovExecutionWindowLapse(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller("hive:alice")
	id := createdID(t, GovCreate(createPayload(t, "stale",
		[]ExecutionInput{selfSetUint("dao_set_quorum_percent", 50)}, aliceProofs(), nil)))
	GovVote(votePayload(t, id, "yes", aliceProofs()))
	setCaller("hive:bob")
	GovVote(votePayload(t, id, "yes", bobProofs()))

	endTime := t0 + DefaultVotingDuration
	setTime(endTime)
	GovFinalize(pl(fmt.Sprintf(`{"id":%d}`, id)))

	setTime(endTime + ExecutionWindowSecs)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.True(t, info.Ended)
	require.Equal(t, "expired", info.Executions[0].Status)
	require.Equal(t, int64(0), lastExecutionTime())

	// Nothing ran, so the config is untouched.
	var dc DAOConfigInfo
	require.NoError(t, dc.UnmarshalJSON([]byte(*DaoConfigGet(nil))))
	require.Equal(t, uint64(60), dc.QuorumThresholdPercent)
}

func TestGovOwnerFastPath(t *testing.T) {
	initArena(t)
	govWeek(t)

	setCaller(ownerAddress)
	id := createdID(t, GovCreate(createPayload(t, "bootstrap tune",
		[]ExecutionInput{selfSetUint("dao_set_voting_maximum_rank", 30)}, nil, nil)))
	info := proposalInfoOf(t, id)
	require.Equal(t, "approved", info.Outcome)
	require.Equal(t, t0, info.EndTime)

	setCaller("hive:alice")
	expectAbort(t, "not open for voting", func() {
		GovVote(votePayload(t, id, "yes", aliceProofs()))
	})

	setCaller(ownerAddress)
	setTime(t0 + ExecutionTimelockSecs)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	require.Equal(t, "success", proposalInfoOf(t, id).Executions[0].Status)

	// Restricted methods never skip the vote, even for the owner.
	id = createdID(t, GovCreate(createPayload(t, "sweep it",
		[]ExecutionInput{{Target: sdk.MockContractAddress(), Method: "rewards_treasury_sweep", Payload: `{"amount":0}`}}, nil, nil)))
	require.Equal(t, "pending", proposalInfoOf(t, id).Outcome)
}

func TestGovValueTransferExecution(t *testing.T) {
	initArena(t)
	govWeek(t)
	sdk.MockSetContractState(ledgerContract, "trusted:hive:grantee", "1")

	setCaller(ownerAddress)
	id := createdID(t, GovCreate(createPayload(t, "grant",
		[]ExecutionInput{{Target: "hive:grantee", Value: 5 * AmountScale}}, nil, nil)))
	require.Equal(t, "approved", proposalInfoOf(t, id).Outcome)

	setTime(t0 + ExecutionTimelockSecs)
	setCaller("hive:alice")
	expectAbort(t, "interim-owner only", func() {
		GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	})

	setCaller(ownerAddress)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	require.Equal(t, int64(5*AmountScale), sdk.MockBalance("hive:grantee", sdk.Asset(rewardAsset)))
}

func TestGovExternalExecution(t *testing.T) {
	initArena(t)
	govWeek(t)
	sdk.MockSetContractState(ledgerContract, "trusted:contract:partner", "1")

	var gotMethod, gotPayload string
	sdk.MockOnContractCall(func(contractId, method, payload, options string) *string {
		if contractId != "contract:partner" {
			return nil
		}
		gotMethod, gotPayload = method, payload
		s := "done"
		return &s
	})

	setCaller(ownerAddress)
	id := createdID(t, GovCreate(createPayload(t, "partner ping",
		[]ExecutionInput{{Target: "contract:partner", Method: "notify", Payload: `{"week":0}`}}, nil, nil)))

	setTime(t0 + ExecutionTimelockSecs)
	setCaller(ownerAddress)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.Equal(t, "success", info.Executions[0].Status)
	require.Equal(t, "done", info.Executions[0].CallResult)
	require.Equal(t, "notify", gotMethod)
	require.Equal(t, `{"week":0}`, gotPayload)
}

func TestGovExternalExecutionFailureIsData(t *testing.T) {
	initArena(t)
	govWeek(t)
	sdk.MockSetContractState(ledgerContract, "trusted:contract:partner", "1")
	sdk.MockOnContractCall(func(contractId, method, payload, options string) *string {
		return nil
	})

	setCaller(ownerAddress)
	id := createdID(t, GovCreate(createPayload(t, "doomed ping",
		[]ExecutionInput{{Target: "contract:partner", Method: "notify", Payload: "{}"}}, nil, nil)))

	setTime(t0 + ExecutionTimelockSecs)
	setCaller(ownerAddress)
	GovExecute(pl(fmt.Sprintf(`{"id":%d}`, id)))
	info := proposalInfoOf(t, id)
	require.True(t, info.Ended)
	require.Equal(t, "failed", info.Executions[0].Status)

	// A failed batch never refreshes the dao liveness clock.
	require.Equal(t, int64(0), lastExecutionTime())
}

func TestGovReactivateInterim(t *testing.T) {
	initArena(t)

	setCaller(ownerAddress)
	expectAbort(t, "already active", func() {
		GovReactivateInterim(nil)
	})

	DaoSetInterimActive(pl(`{"value":false}`))
	storeLastExecutionTime(t0)

	setCaller("hive:alice")
	expectAbort(t, "interim owner only", func() {
		GovReactivateInterim(nil)
	})

	setCaller(ownerAddress)
	expectAbort(t, "dao still alive", func() {
		GovReactivateInterim(nil)
	})

	setTime(t0 + InterimReactivateSecs + 1)
	setCaller(ownerAddress)
	GovReactivateInterim(nil)
	var dc DAOConfigInfo
	require.NoError(t, dc.UnmarshalJSON([]byte(*DaoConfigGet(nil))))
	require.True(t, dc.InterimActive)
}
