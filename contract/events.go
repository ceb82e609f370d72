package main

import (
	"fmt"
	"strconv"

	"arena_dao/sdk"
)

// emitWeekAdded pings indexers with the new week id and its pool sizes so they
// can track emissions without replaying storage diffs.
func emitWeekAdded(week uint64, individualPool Amount, clubPool Amount) {
	sdk.Log(fmt.Sprintf(
		"wa|id:%d|ip:%d|cp:%d",
		week,
		int64(individualPool),
		int64(clubPool),
	))
}

// emitWeekExpired marks the sliding window pushing a week out of claimability.
func emitWeekExpired(week uint64, remaining Amount) {
	sdk.Log(fmt.Sprintf(
		"we|id:%d|rem:%d",
		week,
		int64(remaining),
	))
}

// emitClaim is the one log line per paid snapshot; amounts are in scaled units.
func emitClaim(week uint64, snapshotID uint64, recipient string, individual Amount, club Amount) {
	sdk.Log(fmt.Sprintf(
		"cl|w:%d|id:%d|to:%s|ia:%d|ca:%d",
		week,
		snapshotID,
		recipient,
		int64(individual),
		int64(club),
	))
}

// emitTreasurySweep records funds leaving towards the treasury address.
func emitTreasurySweep(to string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"ts|to:%s|am:%d",
		to,
		int64(amount),
	))
}

// emitConfigUpdated spells out single-field diffs so auditors can track sensitive flips.
func emitConfigUpdated(field string, old string, new string) {
	sdk.Log(fmt.Sprintf(
		"cu|f:%s|old:%s|new:%s",
		field,
		old,
		new,
	))
}

// emitBanChanged covers both user and club bans through one tagged line.
func emitBanChanged(kind string, subject string, banned bool) {
	sdk.Log(fmt.Sprintf(
		"bn|k:%s|s:%s|b:%s",
		kind,
		subject,
		strconv.FormatBool(banned),
	))
}

// emitProposalCreated keeps observers updated with a short pc line for every new proposal.
func emitProposalCreated(proposalID uint64, proposer string, endTime int64) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|end:%s",
		proposalID,
		proposer,
		strconv.FormatInt(endTime, 10),
	))
}

// emitVoteCast includes the raw power so tallies can be replayed from logs only.
func emitVoteCast(proposalID uint64, voter string, decision string, power uint64) {
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|d:%s|p:%d",
		proposalID,
		voter,
		decision,
		power,
	))
}

// emitProposalFinalized is the swiss army knife log entry for any outcome flip.
func emitProposalFinalized(proposalID uint64, outcome ProposalOutcome) {
	sdk.Log(fmt.Sprintf(
		"pf|id:%d|o:%s",
		proposalID,
		outcome.String(),
	))
}

// emitExecutionResult leaves one line per execution so partial failures stay visible.
func emitExecutionResult(proposalID uint64, index int, status ExecutionStatus, result string) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|i:%d|s:%d|r:%s",
		proposalID,
		index,
		uint8(status),
		result,
	))
}

// emitInterimChanged signals interim governance turning on or off.
func emitInterimChanged(active bool, by string) {
	sdk.Log(fmt.Sprintf(
		"ig|a:%s|by:%s",
		strconv.FormatBool(active),
		by,
	))
}
