//go:build !wasm

package sdk

// In-memory stand-in for the wasm host so the contract runs natively in unit
// tests. State, balances and the environment are fully scriptable; aborts
// surface as AbortError panics that test helpers can recover.

import (
	"encoding/json"
	"strconv"
)

// AbortError is what sdk.Abort panics with on the mock host.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return "abort: " + e.Msg }

// MockTransfer records an outgoing hive.transfer performed by the contract.
type MockTransfer struct {
	To     string
	Amount int64
	Asset  string
}

type mockHost struct {
	state     map[string]string
	contracts map[string]map[string]string
	balances  map[string]int64
	transfers []MockTransfer
	logs      []string

	contractId  string
	txId        string
	blockId     string
	blockHeight uint64
	timestamp   string
	sender      string
	caller      string
	payer       string
	intents     []Intent

	callFn func(contractId, method, payload, options string) *string
}

var mock = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:       map[string]string{},
		contracts:   map[string]map[string]string{},
		balances:    map[string]int64{},
		contractId:  "arenadao",
		txId:        "tx-0",
		blockId:     "block-0",
		blockHeight: 1,
		timestamp:   "2026-01-01T00:00:00",
		sender:      "hive:someone",
		caller:      "hive:someone",
		payer:       "hive:someone",
	}
}

// MockReset wipes every bit of host state back to defaults between tests.
func MockReset() {
	mock = newMockHost()
}

// MockSetSender switches the active sender (and caller/payer to match).
func MockSetSender(addr string) {
	mock.sender = addr
	mock.caller = addr
	mock.payer = addr
}

// MockSetTimestamp sets block.timestamp; accepts unix seconds or RFC3339-ish text.
func MockSetTimestamp(ts string) {
	mock.timestamp = ts
}

// MockSetTxID lets tests force env cache invalidation by bumping tx.id.
func MockSetTxID(id string) {
	mock.txId = id
}

// MockSetIntents attaches intents to the next calls.
func MockSetIntents(intents []Intent) {
	mock.intents = intents
}

// MockContractAddress returns the address the contract itself holds funds under.
func MockContractAddress() string {
	return "contract:" + mock.contractId
}

// MockDeposit credits balance to an address (use MockContractAddress for the contract).
func MockDeposit(addr string, amount int64, asset Asset) {
	mock.balances[addr+"|"+asset.String()] += amount
}

// MockBalance reads a balance without going through the contract.
func MockBalance(addr string, asset Asset) int64 {
	return mock.balances[addr+"|"+asset.String()]
}

// MockTransfers returns every hive.transfer the contract performed so far.
func MockTransfers() []MockTransfer {
	return mock.transfers
}

// MockSetContractState seeds a foreign contract's state for contracts.read.
func MockSetContractState(contractId, key, value string) {
	if mock.contracts[contractId] == nil {
		mock.contracts[contractId] = map[string]string{}
	}
	mock.contracts[contractId][key] = value
}

// MockOnContractCall installs the handler backing contracts.call. A nil
// return from the handler models a failed callee.
func MockOnContractCall(fn func(contractId, method, payload, options string) *string) {
	mock.callFn = fn
}

// MockStateGet peeks directly at contract kv storage for assertions.
func MockStateGet(key string) *string {
	val, ok := mock.state[key]
	if !ok {
		return nil
	}
	return &val
}

// MockLogs returns all sdk.Log lines emitted so far.
func MockLogs() []string {
	return mock.logs
}

// --- host function implementations ---

func log(s *string) *string {
	mock.logs = append(mock.logs, *s)
	return s
}

func stateSetObject(key *string, value *string) *string {
	mock.state[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := mock.state[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(mock.state, *key)
	return nil
}

func getEnv(arg *string) *string {
	blob := map[string]interface{}{
		"contract.id":                mock.contractId,
		"tx.id":                      mock.txId,
		"tx.index":                   0,
		"tx.op_index":                0,
		"tx.payer":                   mock.payer,
		"block.id":                   mock.blockId,
		"block.height":               mock.blockHeight,
		"block.timestamp":            mock.timestamp,
		"msg.sender":                 mock.sender,
		"msg.caller":                 mock.caller,
		"msg.required_auths":         []string{mock.sender},
		"msg.required_posting_auths": []string{},
		"intents":                    mock.intents,
	}
	b, _ := json.Marshal(blob)
	s := string(b)
	return &s
}

func getEnvKey(arg *string) *string {
	switch *arg {
	case "block.timestamp":
		return &mock.timestamp
	case "tx.id":
		return &mock.txId
	case "contract.id":
		return &mock.contractId
	default:
		return nil
	}
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := strconv.FormatInt(mock.balances[*arg1+"|"+*arg2], 10)
	return &bal
}

func hiveDraw(arg1 *string, arg2 *string) *string {
	amount, err := strconv.ParseInt(*arg1, 10, 64)
	if err != nil || amount < 0 {
		hostAbort("invalid draw amount")
	}
	from := mock.sender + "|" + *arg2
	if mock.balances[from] < amount {
		hostAbort("insufficient balance for draw")
	}
	mock.balances[from] -= amount
	mock.balances[MockContractAddress()+"|"+*arg2] += amount
	return nil
}

func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	amount, err := strconv.ParseInt(*arg2, 10, 64)
	if err != nil || amount < 0 {
		hostAbort("invalid transfer amount")
	}
	from := MockContractAddress() + "|" + *arg3
	if mock.balances[from] < amount {
		hostAbort("insufficient contract balance")
	}
	mock.balances[from] -= amount
	mock.balances[*arg1+"|"+*arg3] += amount
	mock.transfers = append(mock.transfers, MockTransfer{To: *arg1, Amount: amount, Asset: *arg3})
	return nil
}

func hiveWithdraw(arg1 *string, arg2 *string, arg3 *string) *string {
	return hiveTransfer(arg1, arg2, arg3)
}

func contractRead(contractId *string, key *string) *string {
	st, ok := mock.contracts[*contractId]
	if !ok {
		return nil
	}
	val, ok := st[*key]
	if !ok {
		return nil
	}
	return &val
}

func contractCall(contractId *string, method *string, payload *string, options *string) *string {
	if mock.callFn == nil {
		return nil
	}
	return mock.callFn(*contractId, *method, *payload, *options)
}

func hostAbort(msg string) {
	panic(&AbortError{Msg: msg})
}

func hostRevert(msg string, symbol string) {
	panic(&AbortError{Msg: symbol + ": " + msg})
}
