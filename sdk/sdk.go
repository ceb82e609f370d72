package sdk

import (
	"encoding/json"
	"strconv"
)

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello dao")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("no voting power")
func Abort(msg string) {
	hostAbort(msg)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("bad input", "input_error")
func Revert(msg string, symbol string) {
	hostRevert(msg, symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if v, ok := envMap["contract.id"].(string); ok {
		env.ContractId = v
	}
	if v, ok := envMap["tx.id"].(string); ok {
		env.TxId = v
	}
	if v, ok := envMap["block.id"].(string); ok {
		env.BlockId = v
	}
	if v, ok := envMap["block.height"].(float64); ok {
		env.BlockHeight = uint64(v)
	}
	if v, ok := envMap["tx.index"].(float64); ok {
		env.Index = int64(v)
	}
	if v, ok := envMap["tx.op_index"].(float64); ok {
		env.OpIndex = int64(v)
	}
	if v, ok := envMap["block.timestamp"].(string); ok {
		env.Timestamp = v
	}
	if v, ok := envMap["tx.payer"].(string); ok {
		env.Payer = v
	}

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}
	if v, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:              Address(v),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		}
	}
	if v, ok := envMap["msg.caller"].(string); ok {
		env.Caller = Caller{Address: Address(v)}
	}
	if raw, ok := envMap["intents"]; ok {
		if b, err := json.Marshal(raw); err == nil {
			json.Unmarshal(b, &env.Intents)
		}
	}
	return env
}

// GetEnvStr returns the raw JSON environment string without parsing.
// Example payload: sdk.GetEnvStr()
func GetEnvStr() string {
	return *getEnv(nil)
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		Abort("invalid balance from host")
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

// HiveWithdraw unwraps contract-held funds into the Hive layer (savings etc.).
// Example payload: sdk.HiveWithdraw(sdk.Address("hive:foo"), 50, sdk.AssetHive)
func HiveWithdraw(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveWithdraw(&toaddr, &amt, &as)
}

// ContractStateGet reads another contract's state key (view-only).
// Example payload: sdk.ContractStateGet("contract:ledger", "trusted:hive:foo")
func ContractStateGet(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Returns nil when the callee fails.
// Example payload: sdk.ContractCall("contract:demo", "ping", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}
