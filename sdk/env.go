package sdk

// Intent mirrors the host-side intent attachments (transfer.allow etc).
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Env is the execution environment snapshot handed to the contract by the
// host. Field names follow the flat env blob keys (contract.id, msg.sender,
// block.timestamp, ...) which GetEnv maps manually.
type Env struct {
	ContractId  string
	TxId        string
	BlockId     string
	BlockHeight uint64
	Index       int64
	OpIndex     int64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}
