package main

import (
	"strconv"
	"time"

	"arena_dao/sdk"
)

// Env lookups go through the host boundary, so we fetch once per transaction
// and reuse the cached copy for every helper in the same call.
var (
	cachedEnv     *sdk.Env
	cachedEnvTxID string
)

func currentEnv() *sdk.Env {
	txID := ""
	if p := sdk.GetEnvKey("tx.id"); p != nil {
		txID = *p
	}
	if cachedEnv != nil && cachedEnvTxID == txID {
		return cachedEnv
	}
	env := sdk.GetEnv()
	cachedEnv = &env
	cachedEnvTxID = txID
	return cachedEnv
}

func sender() sdk.Address {
	return currentEnv().Sender.Address
}

func contractSelf() sdk.Address {
	return AddressFromString("contract:" + currentEnv().ContractId)
}

// nowUnix accepts either a raw unix second count or an RFC3339-ish timestamp,
// since different host versions report block time differently.
func nowUnix() int64 {
	ts := currentEnv().Timestamp
	if ts == "" {
		sdk.Abort("missing block timestamp")
	}
	if n, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return n
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		return t.Unix()
	}
	sdk.Abort("unparseable block timestamp: " + ts)
	return 0
}

// requireSigner gates oracle-only entry points.
func requireSigner() {
	cfg := mustLoadContractConfig()
	if sender() != cfg.Signer {
		sdk.Abort("unauthorized: signer only")
	}
}

// requireDAO gates governance-managed entry points. While interim governance
// is active the configured owner may call directly; afterwards only the
// contract itself, through an approved proposal execution, passes.
func requireDAO() {
	if isDAOCaller() {
		return
	}
	sdk.Abort("unauthorized: dao only")
}

func isDAOCaller() bool {
	s := sender()
	if s == contractSelf() {
		return true
	}
	dao := mustLoadDAOConfig()
	if dao.InterimActive {
		cfg := mustLoadContractConfig()
		return s == cfg.Owner
	}
	return false
}

func requireInterimOwner() {
	cfg := mustLoadContractConfig()
	if sender() != cfg.Owner {
		sdk.Abort("unauthorized: interim owner only")
	}
}
