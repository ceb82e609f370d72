package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"arena_dao/sdk"
)

const (
	ownerAddress    = "hive:arena"
	oracleAddress   = "hive:oracle"
	treasuryAddress = "hive:vault"
	ledgerContract  = "ledgertoken"
	rewardAsset     = "hive"

	// aligned to a week boundary so addWeek math stays obvious
	t0 = int64(3000 * 604800)
)

var txCounter int

func resetContract() {
	sdk.MockReset()
	cachedEnv = nil
	cachedEnvTxID = ""
	claimGuard = false
	execGuard = false
	invokeExecution = hostInvoke
	txCounter = 0
}

func nextTx() {
	txCounter++
	sdk.MockSetTxID(fmt.Sprintf("tx-%d", txCounter))
	cachedEnv = nil
}

func setCaller(addr string) {
	sdk.MockSetSender(addr)
	nextTx()
}

func setTime(ts int64) {
	sdk.MockSetTimestamp(strconv.FormatInt(ts, 10))
	nextTx()
}

func pl(s string) *string {
	return &s
}

// initArena boots a funded contract with the standard role wiring.
func initArena(t *testing.T) {
	t.Helper()
	resetContract()
	sdk.MockDeposit(sdk.MockContractAddress(), 4096*AmountScale, sdk.Asset(rewardAsset))
	setTime(t0)
	setCaller(ownerAddress)
	ContractInit(pl(fmt.Sprintf(
		`{"signer":%q,"ledgerContract":%q,"treasury":%q,"rewardAsset":%q}`,
		oracleAddress, ledgerContract, treasuryAddress, rewardAsset,
	)))
}

// expectAbort runs fn and requires it to die with an abort containing msg.
func expectAbort(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort containing %q", msg)
		ae, ok := r.(*sdk.AbortError)
		require.True(t, ok, "expected abort, got panic: %v", r)
		require.Contains(t, ae.Msg, msg)
	}()
	fn()
}

// --- merkle fixtures ---

func hashPair(a, b []byte) []byte {
	pair := make([]byte, 0, 2*hashSize)
	if bytes.Compare(a, b) <= 0 {
		pair = append(pair, a...)
		pair = append(pair, b...)
	} else {
		pair = append(pair, b...)
		pair = append(pair, a...)
	}
	return keccak256(pair)
}

// buildMerkle constructs a sorted-pair tree and returns the root plus one
// proof per leaf. Odd nodes are carried up unchanged.
func buildMerkle(leaves [][]byte) ([]byte, [][][]byte) {
	n := len(leaves)
	proofs := make([][][]byte, n)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}
	level := append([][]byte{}, leaves...)
	for len(level) > 1 {
		for j := range pos {
			p := pos[j]
			if p%2 == 0 {
				if p+1 < len(level) {
					proofs[j] = append(proofs[j], level[p+1])
				}
			} else {
				proofs[j] = append(proofs[j], level[p-1])
			}
			pos[j] = p / 2
		}
		var next [][]byte
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0], proofs
}

func hexProof(proof [][]byte) []string {
	out := make([]string, len(proof))
	for i, p := range proof {
		out[i] = hex.EncodeToString(p)
	}
	return out
}

type weekFixture struct {
	snaps  []ClaimSnapshot
	root   []byte
	proofs [][][]byte
	week   uint64
}

// addWeekFixture submits one week as the oracle, backed by a real tree over
// the given snapshots. The caller supplies the aggregate counts.
func addWeekFixture(t *testing.T, week uint64, snaps []ClaimSnapshot, indEntries, indScores, clubEntries, clubScores uint64) *weekFixture {
	t.Helper()
	nonce := uint64(100000000 + week)
	leaves := make([][]byte, len(snaps))
	for i := range snaps {
		snaps[i].WeekIndex = week
		snaps[i].WeekNonce = nonce
		leaves[i] = encodeClaimLeaf(&snaps[i])
	}
	root, proofs := buildMerkle(leaves)

	setTime(t0 + int64(week)*WeekSeconds)
	setCaller(oracleAddress)
	RewardsAddWeek(pl(fmt.Sprintf(
		`{"nonce":%d,"merkleRoot":%q,"totalSnapshots":%d,"totalIndividualEntries":%d,"totalClubEntries":%d,"totalIndividualScores":%d,"totalClubScores":%d}`,
		nonce, hex.EncodeToString(root), len(snaps), indEntries, clubEntries, indScores, clubScores,
	)))
	return &weekFixture{snaps: snaps, root: root, proofs: proofs, week: week}
}

// claimPayload renders the claim JSON for snapshot index i of a fixture.
func (f *weekFixture) claimPayload(t *testing.T, i int) *string {
	t.Helper()
	args := ClaimArgs{Snapshot: f.snaps[i], Proof: hexProof(f.proofs[i])}
	b, err := args.MarshalJSON()
	require.NoError(t, err)
	s := string(b)
	return &s
}

func claimResultOf(t *testing.T, resp *string) ClaimResult {
	t.Helper()
	require.NotNil(t, resp)
	var res ClaimResult
	require.NoError(t, res.UnmarshalJSON([]byte(*resp)))
	return res
}

func soloSnapshot(id uint64, user string, rank, score uint64) ClaimSnapshot {
	return ClaimSnapshot{
		ID:         id,
		User:       user,
		Individual: IndividualData{Score: score, Rank: rank},
	}
}
