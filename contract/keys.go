package main

// State key prefixes. Every object key starts with a single identifying byte
// followed by fixed-width little-endian numeric parts, so keys never collide
// and range layout stays deterministic.
const (
	kContractConfig     byte = 0x01
	kRewardConfig       byte = 0x02
	kDAOConfig          byte = 0x03
	kWeekRecord         byte = 0x10
	kUsedSnapshotID     byte = 0x11
	kUsedIndividualRank byte = 0x12
	kUsedClubRank       byte = 0x13
	kUsedSnapshotHash   byte = 0x14
	kUsedSnapshotCount  byte = 0x15
	kBannedUser         byte = 0x16
	kBannedClub         byte = 0x17
	kProposal           byte = 0x20
	kVote               byte = 0x21
	kProposalWeekCount  byte = 0x22
	kExecutionsDigest   byte = 0x23
	kRestrictedMethod   byte = 0x24
)

// Plain string keys for counters and bookkeeping singletons.
const (
	keyWeeksCount    = "count:weeks"
	keyProposalCount = "count:props"
	keyLastExecution = "gov:last_exec"
)

func packU64LE(dst []byte, v uint64) []byte {
	for i := 0; i < 8; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

func singletonKey(prefix byte) string {
	return string([]byte{prefix})
}

func weekKey(prefix byte, week uint64) string {
	b := make([]byte, 0, 9)
	b = append(b, prefix)
	b = packU64LE(b, week)
	return string(b)
}

// weekPairKey addresses per-week numeric slots such as rank registries,
// snapshot ids and club ids.
func weekPairKey(prefix byte, week, n uint64) string {
	b := make([]byte, 0, 17)
	b = append(b, prefix)
	b = packU64LE(b, week)
	b = packU64LE(b, n)
	return string(b)
}

// weekTripleKey addresses club rank slots: (week, clubRank, memberRank).
func weekTripleKey(prefix byte, week, clubRank, memberRank uint64) string {
	b := make([]byte, 0, 25)
	b = append(b, prefix)
	b = packU64LE(b, week)
	b = packU64LE(b, clubRank)
	b = packU64LE(b, memberRank)
	return string(b)
}

func snapshotHashKey(hash []byte) string {
	b := make([]byte, 0, 1+len(hash))
	b = append(b, kUsedSnapshotHash)
	b = append(b, hash...)
	return string(b)
}

func bannedUserKey(user string) string {
	b := make([]byte, 0, 1+len(user))
	b = append(b, kBannedUser)
	b = append(b, user...)
	return string(b)
}

func bannedClubKey(clubID uint64) string {
	return weekKey(kBannedClub, clubID)
}

func proposalKey(id uint64) string {
	return weekKey(kProposal, id)
}

func voteKey(proposalID uint64, voter string) string {
	b := make([]byte, 0, 9+len(voter))
	b = append(b, kVote)
	b = packU64LE(b, proposalID)
	b = append(b, voter...)
	return string(b)
}

func proposalWeekCountKey(week uint64, proposer string) string {
	b := make([]byte, 0, 9+len(proposer))
	b = append(b, kProposalWeekCount)
	b = packU64LE(b, week)
	b = append(b, proposer...)
	return string(b)
}

func executionsDigestKey(week uint64, digest []byte) string {
	b := make([]byte, 0, 9+len(digest))
	b = append(b, kExecutionsDigest)
	b = packU64LE(b, week)
	b = append(b, digest...)
	return string(b)
}

func restrictedMethodKey(method string) string {
	b := make([]byte, 0, 1+len(method))
	b = append(b, kRestrictedMethod)
	b = append(b, method...)
	return string(b)
}
