package main

import (
	"arena_dao/sdk"
)

func storeProposal(p *Proposal) {
	sdk.StateSetObject(proposalKey(p.ID), string(encodeProposal(p)))
}

func loadProposal(id uint64) *Proposal {
	raw := sdk.StateGetObject(proposalKey(id))
	if raw == nil {
		return nil
	}
	return decodeProposal([]byte(*raw))
}

func mustLoadProposal(id uint64) *Proposal {
	p := loadProposal(id)
	if p == nil {
		sdk.Abort("unknown proposal")
	}
	return p
}

func storeUserVote(proposalID uint64, voter string, v *UserVote) {
	sdk.StateSetObject(voteKey(proposalID, voter), string(encodeUserVote(v)))
}

func loadUserVote(proposalID uint64, voter string) *UserVote {
	raw := sdk.StateGetObject(voteKey(proposalID, voter))
	if raw == nil {
		return nil
	}
	return decodeUserVote([]byte(*raw))
}

// proposalsThisWeek throttles creation; the count is keyed by the reward week
// the proposal was created in plus the proposer.
func proposalsThisWeek(week uint64, proposer string) uint64 {
	raw := sdk.StateGetObject(proposalWeekCountKey(week, proposer))
	if raw == nil {
		return 0
	}
	r := newBinReader([]byte(*raw), "proposal week count")
	n := r.u64()
	r.done()
	return n
}

func bumpProposalsThisWeek(week uint64, proposer string) {
	w := newBinWriter()
	w.u64(proposalsThisWeek(week, proposer) + 1)
	sdk.StateSetObject(proposalWeekCountKey(week, proposer), string(w.buf))
}

// Duplicate-proposal detection: the digest of the full execution list is
// marked per week, so the exact same call batch cannot be proposed twice in
// one week.
func markExecutionsDigest(week uint64, digest []byte) {
	sdk.StateSetObject(executionsDigestKey(week, digest), "1")
}

func isExecutionsDigestUsed(week uint64, digest []byte) bool {
	return sdk.StateGetObject(executionsDigestKey(week, digest)) != nil
}

func storeLastExecutionTime(ts int64) {
	w := newBinWriter()
	w.i64(ts)
	sdk.StateSetObject(keyLastExecution, string(w.buf))
}

func lastExecutionTime() int64 {
	raw := sdk.StateGetObject(keyLastExecution)
	if raw == nil {
		return 0
	}
	r := newBinReader([]byte(*raw), "last execution time")
	ts := r.i64()
	r.done()
	return ts
}
