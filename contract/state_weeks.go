package main

import (
	"arena_dao/sdk"
)

func storeWeekRecord(rec *WeekRecord) {
	sdk.StateSetObject(weekKey(kWeekRecord, rec.ID), string(encodeWeekRecord(rec)))
}

func loadWeekRecord(week uint64) *WeekRecord {
	raw := sdk.StateGetObject(weekKey(kWeekRecord, week))
	if raw == nil {
		return nil
	}
	return decodeWeekRecord([]byte(*raw))
}

func mustLoadWeekRecord(week uint64) *WeekRecord {
	rec := loadWeekRecord(week)
	if rec == nil {
		sdk.Abort("unknown week")
	}
	return rec
}

func latestWeekIndex() uint64 {
	return loadCounter(keyWeeksCount)
}

// weekStatusAt derives a record's live status without mutating it; records are
// only rewritten when a claim touches their pools.
func weekStatusAt(rec *WeekRecord, latest uint64) WeekStatus {
	if rec.Status == WeekExpired {
		return WeekExpired
	}
	if latest > rec.ID && latest-rec.ID > ActiveWeekWindow {
		return WeekExpired
	}
	return WeekOngoing
}

// --- snapshot consumption markers ---

func markSnapshotID(week, snapshotID uint64) {
	sdk.StateSetObject(weekPairKey(kUsedSnapshotID, week, snapshotID), "1")
}

func isSnapshotIDUsed(week, snapshotID uint64) bool {
	return sdk.StateGetObject(weekPairKey(kUsedSnapshotID, week, snapshotID)) != nil
}

func markSnapshotHash(hash []byte) {
	sdk.StateSetObject(snapshotHashKey(hash), "1")
}

func isSnapshotHashUsed(hash []byte) bool {
	return sdk.StateGetObject(snapshotHashKey(hash)) != nil
}

func claimedSnapshotCount(week uint64) uint64 {
	raw := sdk.StateGetObject(weekKey(kUsedSnapshotCount, week))
	if raw == nil {
		return 0
	}
	r := newBinReader([]byte(*raw), "snapshot count")
	n := r.u64()
	r.done()
	return n
}

func bumpClaimedSnapshotCount(week uint64) {
	w := newBinWriter()
	w.u64(claimedSnapshotCount(week) + 1)
	sdk.StateSetObject(weekKey(kUsedSnapshotCount, week), string(w.buf))
}

// --- rank registries ---

func individualRankHolder(week, rank uint64) *RankHolder {
	raw := sdk.StateGetObject(weekPairKey(kUsedIndividualRank, week, rank))
	if raw == nil {
		return nil
	}
	return decodeRankHolder([]byte(*raw))
}

func claimIndividualRank(week, rank uint64, holder *RankHolder) {
	key := weekPairKey(kUsedIndividualRank, week, rank)
	if sdk.StateGetObject(key) != nil {
		sdk.Abort("individual rank already claimed")
	}
	sdk.StateSetObject(key, string(encodeRankHolder(holder)))
}

func clubRankHolder(week, clubRank, memberRank uint64) *RankHolder {
	raw := sdk.StateGetObject(weekTripleKey(kUsedClubRank, week, clubRank, memberRank))
	if raw == nil {
		return nil
	}
	return decodeRankHolder([]byte(*raw))
}

func claimClubRank(week, clubRank, memberRank uint64, holder *RankHolder) {
	key := weekTripleKey(kUsedClubRank, week, clubRank, memberRank)
	if sdk.StateGetObject(key) != nil {
		sdk.Abort("club member rank already claimed")
	}
	sdk.StateSetObject(key, string(encodeRankHolder(holder)))
}
