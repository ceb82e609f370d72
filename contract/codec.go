package main

import (
	"encoding/binary"

	"arena_dao/sdk"
)

// Deterministic binary codec for state objects. Numbers are big-endian u64,
// byte strings are uvarint-length prefixed. Decoding a truncated or oversized
// buffer aborts the transaction, since that always means corrupted state.

type binWriter struct {
	buf []byte
}

func newBinWriter() *binWriter {
	return &binWriter{buf: make([]byte, 0, 128)}
}

func (w *binWriter) u64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *binWriter) i64(v int64) {
	w.u64(uint64(v))
}

func (w *binWriter) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *binWriter) boolean(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *binWriter) bytes(b []byte) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(b)))
	w.buf = append(w.buf, tmp[:n]...)
	w.buf = append(w.buf, b...)
}

func (w *binWriter) str(s string) {
	w.bytes([]byte(s))
}

func (w *binWriter) amount(a Amount) {
	w.i64(int64(a))
}

type binReader struct {
	buf []byte
	pos int
	ctx string
}

func newBinReader(buf []byte, ctx string) *binReader {
	return &binReader{buf: buf, ctx: ctx}
}

func (r *binReader) fail() {
	sdk.Abort("corrupt state object: " + r.ctx)
}

func (r *binReader) u64() uint64 {
	if r.pos+8 > len(r.buf) {
		r.fail()
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *binReader) i64() int64 {
	return int64(r.u64())
}

func (r *binReader) u8() uint8 {
	if r.pos >= len(r.buf) {
		r.fail()
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *binReader) boolean() bool {
	return r.u8() != 0
}

func (r *binReader) bytes() []byte {
	n, sz := binary.Uvarint(r.buf[r.pos:])
	if sz <= 0 || r.pos+sz+int(n) > len(r.buf) {
		r.fail()
	}
	r.pos += sz
	b := make([]byte, n)
	copy(b, r.buf[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return b
}

func (r *binReader) str() string {
	return string(r.bytes())
}

func (r *binReader) amount() Amount {
	return Amount(r.i64())
}

func (r *binReader) done() {
	if r.pos != len(r.buf) {
		r.fail()
	}
}

// --- entity codecs ---

func encodeContractConfig(c *ContractConfig) []byte {
	w := newBinWriter()
	w.str(c.Owner.String())
	w.str(c.Signer.String())
	w.str(c.LedgerContract)
	w.str(c.Treasury.String())
	w.str(c.RewardAsset.String())
	return w.buf
}

func decodeContractConfig(buf []byte) *ContractConfig {
	r := newBinReader(buf, "contract config")
	c := &ContractConfig{
		Owner:          AddressFromString(r.str()),
		Signer:         AddressFromString(r.str()),
		LedgerContract: r.str(),
		Treasury:       AddressFromString(r.str()),
		RewardAsset:    AssetFromString(r.str()),
	}
	r.done()
	return c
}

func encodeRewardConfig(c *RewardConfig) []byte {
	w := newBinWriter()
	w.u64(c.RewardLevel)
	w.u64(c.RewardIndividualMax)
	w.u64(c.RewardClubMax)
	w.u64(c.RewardToIndividualPercent)
	w.u64(c.IndividualScoreWeight)
	w.u64(c.ClubScoreWeight)
	w.u64(c.MaxClubMembers)
	w.boolean(c.AllowClaimsForOthers)
	return w.buf
}

func decodeRewardConfig(buf []byte) *RewardConfig {
	r := newBinReader(buf, "reward config")
	c := &RewardConfig{
		RewardLevel:               r.u64(),
		RewardIndividualMax:       r.u64(),
		RewardClubMax:             r.u64(),
		RewardToIndividualPercent: r.u64(),
		IndividualScoreWeight:     r.u64(),
		ClubScoreWeight:           r.u64(),
		MaxClubMembers:            r.u64(),
		AllowClaimsForOthers:      r.boolean(),
	}
	r.done()
	return c
}

func encodeDAOConfig(c *DAOConfig) []byte {
	w := newBinWriter()
	w.u64(c.QuorumThresholdPercent)
	w.u64(c.ApprovalThresholdPercent)
	w.u64(c.EligibleWeekCount)
	w.u64(c.VotingMaximumRank)
	w.i64(c.VotingDurationSecs)
	w.u64(c.MaxExecutionsPerProposal)
	w.boolean(c.InterimActive)
	w.boolean(c.AllowOnlyTrustedTargets)
	return w.buf
}

func decodeDAOConfig(buf []byte) *DAOConfig {
	r := newBinReader(buf, "dao config")
	c := &DAOConfig{
		QuorumThresholdPercent:   r.u64(),
		ApprovalThresholdPercent: r.u64(),
		EligibleWeekCount:        r.u64(),
		VotingMaximumRank:        r.u64(),
		VotingDurationSecs:       r.i64(),
		MaxExecutionsPerProposal: r.u64(),
		InterimActive:            r.boolean(),
		AllowOnlyTrustedTargets:  r.boolean(),
	}
	r.done()
	return c
}

func encodePoolData(w *binWriter, p *PoolData) {
	w.amount(p.TotalRewardAmount)
	w.amount(p.RemainingRewardAmount)
	w.amount(p.RankRewardPiece)
	w.amount(p.ScoreRewardPiece)
	w.u64(p.TotalScores)
	w.u64(p.ScoreWeight)
}

func decodePoolData(r *binReader, p *PoolData) {
	p.TotalRewardAmount = r.amount()
	p.RemainingRewardAmount = r.amount()
	p.RankRewardPiece = r.amount()
	p.ScoreRewardPiece = r.amount()
	p.TotalScores = r.u64()
	p.ScoreWeight = r.u64()
}

func encodeWeekRecord(rec *WeekRecord) []byte {
	w := newBinWriter()
	w.u64(rec.ID)
	w.u64(rec.Nonce)
	w.i64(rec.Date)
	w.u8(uint8(rec.Status))
	w.bytes(rec.MerkleRoot)
	w.u64(rec.TotalSnapshotCount)
	w.u64(rec.TotalIndividualEntries)
	w.u64(rec.TotalClubEntries)
	w.u64(rec.MaxClubMembers)
	encodePoolData(w, &rec.Individual)
	encodePoolData(w, &rec.Club)
	return w.buf
}

func decodeWeekRecord(buf []byte) *WeekRecord {
	r := newBinReader(buf, "week record")
	rec := &WeekRecord{
		ID:         r.u64(),
		Nonce:      r.u64(),
		Date:       r.i64(),
		Status:     WeekStatus(r.u8()),
		MerkleRoot: r.bytes(),
	}
	rec.TotalSnapshotCount = r.u64()
	rec.TotalIndividualEntries = r.u64()
	rec.TotalClubEntries = r.u64()
	rec.MaxClubMembers = r.u64()
	decodePoolData(r, &rec.Individual)
	decodePoolData(r, &rec.Club)
	r.done()
	return rec
}

func encodeRankHolder(h *RankHolder) []byte {
	w := newBinWriter()
	w.str(h.User.String())
	w.u64(h.Score)
	return w.buf
}

func decodeRankHolder(buf []byte) *RankHolder {
	r := newBinReader(buf, "rank holder")
	h := &RankHolder{
		User:  AddressFromString(r.str()),
		Score: r.u64(),
	}
	r.done()
	return h
}

func encodeProposal(p *Proposal) []byte {
	w := newBinWriter()
	w.u64(p.ID)
	w.str(p.Title)
	w.str(p.Proposer.String())
	w.u64(p.YesVotes)
	w.u64(p.NoVotes)
	w.u64(p.TotalVoters)
	w.i64(p.StartTime)
	w.i64(p.EndTime)
	w.u64(p.MaxWeekIndex)
	w.u64(p.MinWeekIndex)
	w.u64(p.QuorumThreshold)
	w.u64(p.ApprovalThresholdPercent)
	w.u64(uint64(len(p.Executions)))
	for i := range p.Executions {
		ex := &p.Executions[i]
		w.str(ex.Target.String())
		w.str(ex.Method)
		w.str(ex.Payload)
		w.amount(ex.Value)
	}
	w.u64(uint64(len(p.Results)))
	for i := range p.Results {
		w.u8(uint8(p.Results[i].Status))
		w.str(p.Results[i].CallResult)
	}
	w.boolean(p.Ended)
	w.u8(uint8(p.Outcome))
	return w.buf
}

func decodeProposal(buf []byte) *Proposal {
	r := newBinReader(buf, "proposal")
	p := &Proposal{
		ID:       r.u64(),
		Title:    r.str(),
		Proposer: AddressFromString(r.str()),
	}
	p.YesVotes = r.u64()
	p.NoVotes = r.u64()
	p.TotalVoters = r.u64()
	p.StartTime = r.i64()
	p.EndTime = r.i64()
	p.MaxWeekIndex = r.u64()
	p.MinWeekIndex = r.u64()
	p.QuorumThreshold = r.u64()
	p.ApprovalThresholdPercent = r.u64()
	nExec := r.u64()
	p.Executions = make([]ProposalExecution, nExec)
	for i := range p.Executions {
		p.Executions[i] = ProposalExecution{
			Target:  AddressFromString(r.str()),
			Method:  r.str(),
			Payload: r.str(),
			Value:   r.amount(),
		}
	}
	nRes := r.u64()
	p.Results = make([]ProposalResult, nRes)
	for i := range p.Results {
		p.Results[i] = ProposalResult{
			Status:     ExecutionStatus(r.u8()),
			CallResult: r.str(),
		}
	}
	p.Ended = r.boolean()
	p.Outcome = ProposalOutcome(r.u8())
	r.done()
	return p
}

func encodeUserVote(v *UserVote) []byte {
	w := newBinWriter()
	w.u8(uint8(v.Decision))
	w.u64(v.Power)
	return w.buf
}

func decodeUserVote(buf []byte) *UserVote {
	r := newBinReader(buf, "user vote")
	v := &UserVote{
		Decision: VoteDecision(r.u8()),
		Power:    r.u64(),
	}
	r.done()
	return v
}
