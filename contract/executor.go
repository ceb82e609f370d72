package main

import (
	"fmt"

	"arena_dao/sdk"
)

// invokeExecution is the single capability proposal executions run through.
// A package-level var so tests can swap in a scripted executor, mirroring how
// the sdk host is swapped per build.
var invokeExecution = hostInvoke

// hostInvoke routes one execution. Empty method means a plain value transfer;
// a self-targeted call dispatches locally so approved proposals can mutate
// this contract's own configuration; anything else goes out through the host
// contract-call boundary.
func hostInvoke(target sdk.Address, method string, payload string, value Amount) (bool, string) {
	if method == "" {
		if value <= 0 {
			return false, "transfer needs a positive value"
		}
		cfg := mustLoadContractConfig()
		balance := Amount(sdk.GetBalance(contractSelf(), cfg.RewardAsset))
		if value > balance {
			return false, "insufficient contract balance"
		}
		sdk.HiveTransfer(target, AmountToInt64(value), cfg.RewardAsset)
		return true, "transferred"
	}

	if target == contractSelf() {
		return localDispatch(method, payload)
	}

	// The host has no atomic value-carrying call: the value moves first,
	// and a callee that then fails keeps the transferred amount.
	if value > 0 {
		cfg := mustLoadContractConfig()
		balance := Amount(sdk.GetBalance(contractSelf(), cfg.RewardAsset))
		if value > balance {
			return false, "insufficient contract balance"
		}
		sdk.HiveTransfer(target, AmountToInt64(value), cfg.RewardAsset)
	}
	res := sdk.ContractCall(target.String(), method, payload, nil)
	if res == nil {
		return false, "call failed"
	}
	return true, *res
}

// localDispatch maps approved self-call executions onto the dao-managed apply
// functions. The proposal approval is the authority here, so no caller gate;
// failures come back as data instead of aborting the batch.
func localDispatch(method string, payload string) (ok bool, result string) {
	var err error
	switch method {
	case "reward_set_level":
		err = applyUintArg(payload, applySetRewardLevel)
	case "reward_set_individual_max":
		err = applyUintArg(payload, applySetRewardIndividualMax)
	case "reward_set_club_max":
		err = applyUintArg(payload, applySetRewardClubMax)
	case "reward_set_individual_percent":
		err = applyUintArg(payload, applySetRewardToIndividualPercent)
	case "reward_set_individual_score_weight":
		err = applyUintArg(payload, applySetIndividualScoreWeight)
	case "reward_set_club_score_weight":
		err = applyUintArg(payload, applySetClubScoreWeight)
	case "reward_set_max_club_members":
		err = applyUintArg(payload, applySetMaxClubMembers)
	case "reward_set_allow_claims_for_others":
		err = applyBoolArg(payload, applySetAllowClaimsForOthers)
	case "dao_set_quorum_percent":
		err = applyUintArg(payload, applySetQuorumPercent)
	case "dao_set_approval_percent":
		err = applyUintArg(payload, applySetApprovalPercent)
	case "dao_set_eligible_week_count":
		err = applyUintArg(payload, applySetEligibleWeekCount)
	case "dao_set_voting_maximum_rank":
		err = applyUintArg(payload, applySetVotingMaximumRank)
	case "dao_set_voting_duration":
		err = applyUintArg(payload, applySetVotingDuration)
	case "dao_set_max_executions":
		err = applyUintArg(payload, applySetMaxExecutions)
	case "dao_set_allow_only_trusted_targets":
		err = applyBoolArg(payload, applySetAllowOnlyTrustedTargets)
	case "dao_set_interim_active":
		err = applyBoolArg(payload, applySetInterimActive)
	case "dao_set_signer":
		err = applyAddressArg(payload, applySetSigner)
	case "dao_set_treasury":
		err = applyAddressArg(payload, applySetTreasury)
	case "dao_set_user_ban":
		args := &BanUserArgs{}
		if err = parseArgsErr(payload, args); err == nil {
			err = applySetUserBan(args.User, args.Banned)
		}
	case "dao_set_club_ban":
		args := &BanClubArgs{}
		if err = parseArgsErr(payload, args); err == nil {
			err = applySetClubBan(args.ClubId, args.Banned)
		}
	case "dao_set_restricted_method":
		args := &SetRestrictedArgs{}
		if err = parseArgsErr(payload, args); err == nil {
			err = applySetRestrictedMethod(args.Method, args.Restricted)
		}
	case "rewards_treasury_sweep":
		args := &SweepArgs{}
		if err = parseArgsErr(payload, args); err == nil {
			err = applyTreasurySweep(Amount(args.Amount))
		}
	default:
		err = fmt.Errorf("unknown self-call method: %s", method)
	}
	if err != nil {
		return false, err.Error()
	}
	return true, "ok"
}

func applyUintArg(payload string, apply func(uint64) error) error {
	args := &SetUintArgs{}
	if err := parseArgsErr(payload, args); err != nil {
		return err
	}
	return apply(args.Value)
}

func applyBoolArg(payload string, apply func(bool) error) error {
	args := &SetBoolArgs{}
	if err := parseArgsErr(payload, args); err != nil {
		return err
	}
	return apply(args.Value)
}

func applyAddressArg(payload string, apply func(string) error) error {
	args := &SetAddressArgs{}
	if err := parseArgsErr(payload, args); err != nil {
		return err
	}
	return apply(args.Address)
}
