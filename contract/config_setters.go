package main

import (
	"fmt"
	"strconv"

	"arena_dao/sdk"
)

// Every setter validates against its hard-coded range and rejects writing the
// value already held, so an accidental duplicate proposal execution surfaces
// as a failure instead of a silent success.

func u64s(v uint64) string { return strconv.FormatUint(v, 10) }

func checkRange(what string, v, min, max uint64) error {
	if v < min || v > max {
		return fmt.Errorf("%s %d outside [%d,%d]", what, v, min, max)
	}
	return nil
}

func checkChanged(what string, old, new uint64) error {
	if old == new {
		return fmt.Errorf("%s already set to %d", what, new)
	}
	return nil
}

// --- reward config ---

func applySetRewardLevel(v uint64) error {
	if v > RewardLevelMax {
		return fmt.Errorf("reward level %d outside [0,%d]", v, RewardLevelMax)
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("reward level", rc.RewardLevel, v); err != nil {
		return err
	}
	old := rc.RewardLevel
	rc.RewardLevel = v
	storeRewardConfig(rc)
	emitConfigUpdated("rewardLevel", u64s(old), u64s(v))
	return nil
}

func applySetRewardIndividualMax(v uint64) error {
	if err := checkRange("individual max", v, RewardIndividualMaxMin, RewardIndividualMaxMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("individual max", rc.RewardIndividualMax, v); err != nil {
		return err
	}
	old := rc.RewardIndividualMax
	rc.RewardIndividualMax = v
	storeRewardConfig(rc)
	emitConfigUpdated("rewardIndividualMax", u64s(old), u64s(v))
	return nil
}

func applySetRewardClubMax(v uint64) error {
	if err := checkRange("club max", v, RewardClubMaxMin, RewardClubMaxMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("club max", rc.RewardClubMax, v); err != nil {
		return err
	}
	old := rc.RewardClubMax
	rc.RewardClubMax = v
	storeRewardConfig(rc)
	emitConfigUpdated("rewardClubMax", u64s(old), u64s(v))
	return nil
}

func applySetRewardToIndividualPercent(v uint64) error {
	if err := checkRange("individual percent", v, RewardToIndividualPercentMin, RewardToIndividualPercentMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("individual percent", rc.RewardToIndividualPercent, v); err != nil {
		return err
	}
	old := rc.RewardToIndividualPercent
	rc.RewardToIndividualPercent = v
	storeRewardConfig(rc)
	emitConfigUpdated("rewardToIndividualPercent", u64s(old), u64s(v))
	return nil
}

func applySetIndividualScoreWeight(v uint64) error {
	if err := checkRange("individual score weight", v, 0, ScoreWeightMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("individual score weight", rc.IndividualScoreWeight, v); err != nil {
		return err
	}
	old := rc.IndividualScoreWeight
	rc.IndividualScoreWeight = v
	storeRewardConfig(rc)
	emitConfigUpdated("individualScoreWeight", u64s(old), u64s(v))
	return nil
}

func applySetClubScoreWeight(v uint64) error {
	if err := checkRange("club score weight", v, 0, ScoreWeightMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("club score weight", rc.ClubScoreWeight, v); err != nil {
		return err
	}
	old := rc.ClubScoreWeight
	rc.ClubScoreWeight = v
	storeRewardConfig(rc)
	emitConfigUpdated("clubScoreWeight", u64s(old), u64s(v))
	return nil
}

func applySetMaxClubMembers(v uint64) error {
	if err := checkRange("max club members", v, MaxClubMembersMin, MaxClubMembersMax); err != nil {
		return err
	}
	rc := mustLoadRewardConfig()
	if err := checkChanged("max club members", rc.MaxClubMembers, v); err != nil {
		return err
	}
	old := rc.MaxClubMembers
	rc.MaxClubMembers = v
	storeRewardConfig(rc)
	emitConfigUpdated("maxClubMembers", u64s(old), u64s(v))
	return nil
}

func applySetAllowClaimsForOthers(v bool) error {
	rc := mustLoadRewardConfig()
	if rc.AllowClaimsForOthers == v {
		return fmt.Errorf("allowClaimsForOthers already %t", v)
	}
	rc.AllowClaimsForOthers = v
	storeRewardConfig(rc)
	emitConfigUpdated("allowClaimsForOthers", strconv.FormatBool(!v), strconv.FormatBool(v))
	return nil
}

// --- dao config ---

func applySetQuorumPercent(v uint64) error {
	if err := checkRange("quorum percent", v, QuorumPercentMin, QuorumPercentMax); err != nil {
		return err
	}
	dc := mustLoadDAOConfig()
	if err := checkChanged("quorum percent", dc.QuorumThresholdPercent, v); err != nil {
		return err
	}
	old := dc.QuorumThresholdPercent
	dc.QuorumThresholdPercent = v
	storeDAOConfig(dc)
	emitConfigUpdated("quorumThresholdPercent", u64s(old), u64s(v))
	return nil
}

func applySetApprovalPercent(v uint64) error {
	if err := checkRange("approval percent", v, ApprovalPercentMin, ApprovalPercentMax); err != nil {
		return err
	}
	dc := mustLoadDAOConfig()
	if err := checkChanged("approval percent", dc.ApprovalThresholdPercent, v); err != nil {
		return err
	}
	old := dc.ApprovalThresholdPercent
	dc.ApprovalThresholdPercent = v
	storeDAOConfig(dc)
	emitConfigUpdated("approvalThresholdPercent", u64s(old), u64s(v))
	return nil
}

func applySetEligibleWeekCount(v uint64) error {
	if err := checkRange("eligible week count", v, EligibleWeekCountMin, EligibleWeekCountMax); err != nil {
		return err
	}
	dc := mustLoadDAOConfig()
	if err := checkChanged("eligible week count", dc.EligibleWeekCount, v); err != nil {
		return err
	}
	old := dc.EligibleWeekCount
	dc.EligibleWeekCount = v
	storeDAOConfig(dc)
	emitConfigUpdated("eligibleWeekCount", u64s(old), u64s(v))
	return nil
}

func applySetVotingMaximumRank(v uint64) error {
	if err := checkRange("voting maximum rank", v, VotingMaximumRankMin, VotingMaximumRankMax); err != nil {
		return err
	}
	dc := mustLoadDAOConfig()
	if err := checkChanged("voting maximum rank", dc.VotingMaximumRank, v); err != nil {
		return err
	}
	old := dc.VotingMaximumRank
	dc.VotingMaximumRank = v
	storeDAOConfig(dc)
	emitConfigUpdated("votingMaximumRank", u64s(old), u64s(v))
	return nil
}

func applySetVotingDuration(secs uint64) error {
	v := int64(secs)
	if v < VotingDurationMinSecs || v > VotingDurationMaxSecs {
		return fmt.Errorf("voting duration %d outside [%d,%d]", v, VotingDurationMinSecs, VotingDurationMaxSecs)
	}
	dc := mustLoadDAOConfig()
	if dc.VotingDurationSecs == v {
		return fmt.Errorf("voting duration already %d", v)
	}
	old := dc.VotingDurationSecs
	dc.VotingDurationSecs = v
	storeDAOConfig(dc)
	emitConfigUpdated("votingDurationSecs", strconv.FormatInt(old, 10), strconv.FormatInt(v, 10))
	return nil
}

func applySetMaxExecutions(v uint64) error {
	if err := checkRange("max executions", v, MaxExecutionsMin, MaxExecutionsMax); err != nil {
		return err
	}
	dc := mustLoadDAOConfig()
	if err := checkChanged("max executions", dc.MaxExecutionsPerProposal, v); err != nil {
		return err
	}
	old := dc.MaxExecutionsPerProposal
	dc.MaxExecutionsPerProposal = v
	storeDAOConfig(dc)
	emitConfigUpdated("maxExecutionsPerProposal", u64s(old), u64s(v))
	return nil
}

func applySetAllowOnlyTrustedTargets(v bool) error {
	dc := mustLoadDAOConfig()
	if dc.AllowOnlyTrustedTargets == v {
		return fmt.Errorf("allowOnlyTrustedTargets already %t", v)
	}
	dc.AllowOnlyTrustedTargets = v
	storeDAOConfig(dc)
	emitConfigUpdated("allowOnlyTrustedTargets", strconv.FormatBool(!v), strconv.FormatBool(v))
	return nil
}

// applySetInterimActive only deactivates. The reverse direction goes through
// GovReactivateInterim and its 60-day dead-DAO check.
func applySetInterimActive(v bool) error {
	if v {
		return fmt.Errorf("interim governance can only be reactivated through the recovery path")
	}
	dc := mustLoadDAOConfig()
	if !dc.InterimActive {
		return fmt.Errorf("interim governance already inactive")
	}
	dc.InterimActive = false
	storeDAOConfig(dc)
	emitInterimChanged(false, sender().String())
	return nil
}

// --- roles ---

func applySetSigner(addr string) error {
	if addr == "" {
		return fmt.Errorf("signer address missing")
	}
	cfg := mustLoadContractConfig()
	if cfg.Signer.String() == addr {
		return fmt.Errorf("signer already %s", addr)
	}
	old := cfg.Signer.String()
	cfg.Signer = AddressFromString(addr)
	storeContractConfig(cfg)
	emitConfigUpdated("signer", old, addr)
	return nil
}

func applySetTreasury(addr string) error {
	if addr == "" {
		return fmt.Errorf("treasury address missing")
	}
	cfg := mustLoadContractConfig()
	if cfg.Treasury.String() == addr {
		return fmt.Errorf("treasury already %s", addr)
	}
	old := cfg.Treasury.String()
	cfg.Treasury = AddressFromString(addr)
	storeContractConfig(cfg)
	emitConfigUpdated("treasury", old, addr)
	return nil
}

// --- bans ---

func applySetUserBan(user string, banned bool) error {
	if user == "" {
		return fmt.Errorf("ban target missing")
	}
	if isUserBanned(user) == banned {
		return fmt.Errorf("user ban already %t", banned)
	}
	setUserBan(user, banned)
	emitBanChanged("user", user, banned)
	return nil
}

func applySetClubBan(clubID uint64, banned bool) error {
	if isClubBanned(clubID) == banned {
		return fmt.Errorf("club ban already %t", banned)
	}
	setClubBan(clubID, banned)
	emitBanChanged("club", u64s(clubID), banned)
	return nil
}

// --- restricted methods ---

func applySetRestrictedMethod(method string, restricted bool) error {
	if method == "" {
		return fmt.Errorf("method name missing")
	}
	if isFloorRestricted(method) {
		if !restricted {
			return fmt.Errorf("method restriction is permanent: %s", method)
		}
		return fmt.Errorf("method already restricted: %s", method)
	}
	if isRestrictedMethod(method) == restricted {
		return fmt.Errorf("method restriction already %t", restricted)
	}
	setMethodRestriction(method, restricted)
	emitConfigUpdated("restricted:"+method, strconv.FormatBool(!restricted), strconv.FormatBool(restricted))
	return nil
}

// --- exported entry points ---

func daoSetUint(payload *string, what string, apply func(uint64) error) *string {
	requireDAO()
	args := &SetUintArgs{}
	parseArgs(payload, what, args)
	if err := apply(args.Value); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}

func daoSetBool(payload *string, what string, apply func(bool) error) *string {
	requireDAO()
	args := &SetBoolArgs{}
	parseArgs(payload, what, args)
	if err := apply(args.Value); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}

func daoSetAddress(payload *string, what string, apply func(string) error) *string {
	requireDAO()
	args := &SetAddressArgs{}
	parseArgs(payload, what, args)
	if err := apply(args.Address); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}

func RewardSetLevel(payload *string) *string {
	return daoSetUint(payload, "set reward level", applySetRewardLevel)
}

func RewardSetIndividualMax(payload *string) *string {
	return daoSetUint(payload, "set individual max", applySetRewardIndividualMax)
}

func RewardSetClubMax(payload *string) *string {
	return daoSetUint(payload, "set club max", applySetRewardClubMax)
}

func RewardSetIndividualPercent(payload *string) *string {
	return daoSetUint(payload, "set individual percent", applySetRewardToIndividualPercent)
}

func RewardSetIndividualScoreWeight(payload *string) *string {
	return daoSetUint(payload, "set individual score weight", applySetIndividualScoreWeight)
}

func RewardSetClubScoreWeight(payload *string) *string {
	return daoSetUint(payload, "set club score weight", applySetClubScoreWeight)
}

func RewardSetMaxClubMembers(payload *string) *string {
	return daoSetUint(payload, "set max club members", applySetMaxClubMembers)
}

func RewardSetAllowClaimsForOthers(payload *string) *string {
	return daoSetBool(payload, "set allow claims for others", applySetAllowClaimsForOthers)
}

func DaoSetQuorumPercent(payload *string) *string {
	return daoSetUint(payload, "set quorum percent", applySetQuorumPercent)
}

func DaoSetApprovalPercent(payload *string) *string {
	return daoSetUint(payload, "set approval percent", applySetApprovalPercent)
}

func DaoSetEligibleWeekCount(payload *string) *string {
	return daoSetUint(payload, "set eligible week count", applySetEligibleWeekCount)
}

func DaoSetVotingMaximumRank(payload *string) *string {
	return daoSetUint(payload, "set voting maximum rank", applySetVotingMaximumRank)
}

func DaoSetVotingDuration(payload *string) *string {
	return daoSetUint(payload, "set voting duration", applySetVotingDuration)
}

func DaoSetMaxExecutions(payload *string) *string {
	return daoSetUint(payload, "set max executions", applySetMaxExecutions)
}

func DaoSetAllowOnlyTrustedTargets(payload *string) *string {
	return daoSetBool(payload, "set allow only trusted targets", applySetAllowOnlyTrustedTargets)
}

func DaoSetInterimActive(payload *string) *string {
	return daoSetBool(payload, "set interim active", applySetInterimActive)
}

func DaoSetSigner(payload *string) *string {
	return daoSetAddress(payload, "set signer", applySetSigner)
}

func DaoSetTreasury(payload *string) *string {
	return daoSetAddress(payload, "set treasury", applySetTreasury)
}

func DaoSetUserBan(payload *string) *string {
	requireDAO()
	args := &BanUserArgs{}
	parseArgs(payload, "set user ban", args)
	if err := applySetUserBan(args.User, args.Banned); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}

func DaoSetClubBan(payload *string) *string {
	requireDAO()
	args := &BanClubArgs{}
	parseArgs(payload, "set club ban", args)
	if err := applySetClubBan(args.ClubId, args.Banned); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}

func DaoSetRestrictedMethod(payload *string) *string {
	requireDAO()
	args := &SetRestrictedArgs{}
	parseArgs(payload, "set restricted method", args)
	if err := applySetRestrictedMethod(args.Method, args.Restricted); err != nil {
		sdk.Abort(err.Error())
	}
	return respondOK()
}
