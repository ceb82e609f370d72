package main

import (
	"strconv"

	"arena_dao/sdk"
)

// Config singletons live under one-byte keys and are decoded on demand. The
// state values are raw codec bytes stored in the host's string kv.

func storeContractConfig(c *ContractConfig) {
	sdk.StateSetObject(singletonKey(kContractConfig), string(encodeContractConfig(c)))
}

func loadContractConfig() *ContractConfig {
	raw := sdk.StateGetObject(singletonKey(kContractConfig))
	if raw == nil {
		return nil
	}
	return decodeContractConfig([]byte(*raw))
}

func mustLoadContractConfig() *ContractConfig {
	c := loadContractConfig()
	if c == nil {
		sdk.Abort("contract not initialized")
	}
	return c
}

func storeRewardConfig(c *RewardConfig) {
	sdk.StateSetObject(singletonKey(kRewardConfig), string(encodeRewardConfig(c)))
}

func mustLoadRewardConfig() *RewardConfig {
	raw := sdk.StateGetObject(singletonKey(kRewardConfig))
	if raw == nil {
		sdk.Abort("contract not initialized")
	}
	return decodeRewardConfig([]byte(*raw))
}

func storeDAOConfig(c *DAOConfig) {
	sdk.StateSetObject(singletonKey(kDAOConfig), string(encodeDAOConfig(c)))
}

func mustLoadDAOConfig() *DAOConfig {
	raw := sdk.StateGetObject(singletonKey(kDAOConfig))
	if raw == nil {
		sdk.Abort("contract not initialized")
	}
	return decodeDAOConfig([]byte(*raw))
}

// --- counters ---

func loadCounter(key string) uint64 {
	raw := sdk.StateGetObject(key)
	if raw == nil {
		return 0
	}
	n, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt counter: " + key)
	}
	return n
}

func storeCounter(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// --- bans ---

func setUserBan(user string, banned bool) {
	key := bannedUserKey(user)
	if banned {
		sdk.StateSetObject(key, "1")
	} else {
		sdk.StateDeleteObject(key)
	}
}

func isUserBanned(user string) bool {
	return sdk.StateGetObject(bannedUserKey(user)) != nil
}

func setClubBan(clubID uint64, banned bool) {
	key := bannedClubKey(clubID)
	if banned {
		sdk.StateSetObject(key, "1")
	} else {
		sdk.StateDeleteObject(key)
	}
}

func isClubBanned(clubID uint64) bool {
	return sdk.StateGetObject(bannedClubKey(clubID)) != nil
}

// --- restricted methods ---

// setMethodRestriction stores explicit overrides; the hard floor in
// constants.go is consulted first and can never be cleared.
func setMethodRestriction(method string, restricted bool) {
	if isFloorRestricted(method) && !restricted {
		sdk.Abort("method restriction is permanent: " + method)
	}
	key := restrictedMethodKey(method)
	if restricted {
		sdk.StateSetObject(key, "1")
	} else {
		sdk.StateDeleteObject(key)
	}
}

func isRestrictedMethod(method string) bool {
	if isFloorRestricted(method) {
		return true
	}
	return sdk.StateGetObject(restrictedMethodKey(method)) != nil
}
