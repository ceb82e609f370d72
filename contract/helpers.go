package main

import (
	"fmt"

	tinyjson "github.com/CosmWasm/tinyjson"

	"arena_dao/sdk"
)

func unwrapPayload(payload *string, what string) []byte {
	if payload == nil || *payload == "" {
		sdk.Abort(what + " payload missing")
	}
	return []byte(*payload)
}

// parseArgs decodes a JSON payload into one of the generated payload structs.
func parseArgs(payload *string, what string, dst tinyjson.Unmarshaler) {
	if err := tinyjson.Unmarshal(unwrapPayload(payload, what), dst); err != nil {
		sdk.Abort(what + " payload invalid: " + err.Error())
	}
}

// parseArgsErr is the non-aborting variant used by proposal executions, where
// a malformed stored payload must surface as a failed result, not a dead batch.
func parseArgsErr(payload string, dst tinyjson.Unmarshaler) error {
	if payload == "" {
		return fmt.Errorf("payload missing")
	}
	return tinyjson.Unmarshal([]byte(payload), dst)
}

func respond(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("response encoding failed")
	}
	s := string(b)
	return &s
}

func respondOK() *string {
	s := `{"ok":true}`
	return &s
}
