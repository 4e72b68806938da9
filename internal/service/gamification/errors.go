package gamification

import "errors"

var (
	ErrDisabled        = errors.New("gamification is disabled")
	ErrUnknownActivity = errors.New("unknown activity type")
	ErrRewardNotFound  = errors.New("reward not found")
)

// Guard-failure reasons carried in AwardResult.Reason.
const (
	ReasonDisabled      = "disabled"
	ReasonBelowMinLevel = "below_min_level"
	ReasonDailyLimit    = "daily_limit_reached"
	ReasonInCooldown    = "in_cooldown"
)
