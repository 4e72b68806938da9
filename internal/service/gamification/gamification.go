package gamification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
	entaward "github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	entreward "github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	entprogress "github.com/amparasaude/ampara_backend/internal/repo/userprogress"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// AwardResult is the structured outcome of an award attempt. Guard
// failures (cooldown, daily limit, level gate) are normal results with
// Success false, not errors.
type AwardResult struct {
	Success       bool
	Reason        string
	Message       string
	PointsAwarded int
	XPAwarded     int
	TotalPoints   int
	TotalXP       int
	Level         int
	LeveledUp     bool
}

type Progress struct {
	UserID        uuid.UUID
	TotalPoints   int
	TotalXP       int
	Level         int
	WeeklyPoints  int
	MonthlyPoints int
	XPForNext     int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Award(ctx context.Context, userID uuid.UUID, activityType string, metadata map[string]any) (*AwardResult, error)
	UserProgress(ctx context.Context, userID uuid.UUID) (*Progress, error)
	ListRewards(ctx context.Context) ([]Reward, error)
	UpsertReward(ctx context.Context, r Reward) error
	RefreshCache(ctx context.Context) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type gamificationService struct {
	db    *repo.Client
	cfg   config.GamificationConfig
	cache *rewardCache
}

func New(db *repo.Client, cfg config.GamificationConfig) Service {
	return &gamificationService{
		db:    db,
		cfg:   cfg,
		cache: newRewardCache(time.Duration(cfg.CacheTTLMinutes) * time.Minute),
	}
}

func (s *gamificationService) Award(ctx context.Context, userID uuid.UUID, activityType string, metadata map[string]any) (*AwardResult, error) {
	if !s.cfg.Enabled {
		return &AwardResult{Success: false, Reason: ReasonDisabled, Message: "gamification is disabled"}, nil
	}

	reward, err := s.reward(ctx, activityType)
	if err != nil {
		return nil, err
	}
	progress, err := s.loadOrCreateProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var dailyCount int
	if reward.Enabled && reward.MaxDailyCount > 0 {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		dailyCount, err = s.db.GamificationAward.Query().
			Where(
				entaward.UserID(userID),
				entaward.ActivityType(activityType),
				entaward.CreatedAtGTE(dayStart),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count daily awards: %w", err)
		}
	}

	var inCooldown bool
	if reward.Enabled && reward.CooldownMinutes > 0 {
		cutoff := now.Add(-time.Duration(reward.CooldownMinutes) * time.Minute)
		inCooldown, err = s.db.GamificationAward.Query().
			Where(
				entaward.UserID(userID),
				entaward.ActivityType(activityType),
				entaward.CreatedAtGT(cutoff),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check cooldown: %w", err)
		}
	}

	if blocked := awardGuard(reward, progress.CurrentLevel, dailyCount, inCooldown); blocked != nil {
		return blocked, nil
	}

	// Audit row + counter update happen in one transaction.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.GamificationAward.Create().
		SetUserID(userID).
		SetActivityType(activityType).
		SetPoints(reward.Points).
		SetXp(reward.XP).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create award: %w", err)
	}

	weekly, weekAnchor := rollCounter(progress.WeeklyPoints, progress.WeekAnchor, startOfWeek(now))
	monthly, monthAnchor := rollCounter(progress.MonthlyPoints, progress.MonthAnchor, startOfMonth(now))

	newXP := progress.TotalXp + reward.XP
	newLevel := LevelFromXP(newXP)

	err = tx.UserProgress.UpdateOneID(progress.ID).
		SetTotalPoints(progress.TotalPoints + reward.Points).
		SetTotalXp(newXP).
		SetCurrentLevel(newLevel).
		SetWeeklyPoints(weekly + reward.Points).
		SetMonthlyPoints(monthly + reward.Points).
		SetWeekAnchor(weekAnchor).
		SetMonthAnchor(monthAnchor).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &AwardResult{
		Success:       true,
		PointsAwarded: reward.Points,
		XPAwarded:     reward.XP,
		TotalPoints:   progress.TotalPoints + reward.Points,
		TotalXP:       newXP,
		Level:         newLevel,
		LeveledUp:     newLevel > progress.CurrentLevel,
	}, nil
}

func (s *gamificationService) UserProgress(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	progress, err := s.loadOrCreateProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Progress{
		UserID:        userID,
		TotalPoints:   progress.TotalPoints,
		TotalXP:       progress.TotalXp,
		Level:         progress.CurrentLevel,
		WeeklyPoints:  progress.WeeklyPoints,
		MonthlyPoints: progress.MonthlyPoints,
		XPForNext:     xpRequiredFor(progress.CurrentLevel + 1),
	}, nil
}

func (s *gamificationService) ListRewards(ctx context.Context) ([]Reward, error) {
	table, err := s.rewardTable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Reward, 0, len(table))
	for _, r := range table {
		out = append(out, r)
	}
	return out, nil
}

func (s *gamificationService) UpsertReward(ctx context.Context, r Reward) error {
	err := s.db.GamificationReward.Create().
		SetActivityType(r.ActivityType).
		SetPoints(r.Points).
		SetXp(r.XP).
		SetMinLevel(r.MinLevel).
		SetMaxDailyCount(r.MaxDailyCount).
		SetCooldownMinutes(r.CooldownMinutes).
		SetEnabled(r.Enabled).
		OnConflictColumns(entreward.FieldActivityType).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert reward: %w", err)
	}
	s.cache.invalidate()
	return nil
}

// RefreshCache drops the cached reward table and reloads it immediately.
func (s *gamificationService) RefreshCache(ctx context.Context) error {
	s.cache.invalidate()
	_, err := s.rewardTable(ctx)
	return err
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// reward resolves one activity's rule set through the cache.
func (s *gamificationService) reward(ctx context.Context, activityType string) (Reward, error) {
	table, err := s.rewardTable(ctx)
	if err != nil {
		return Reward{}, err
	}
	r, ok := table[activityType]
	if !ok {
		return Reward{}, fmt.Errorf("%w: %s", ErrUnknownActivity, activityType)
	}
	return r, nil
}

// rewardTable returns the full reward table, hitting the database only
// when the cached snapshot is stale. When the database is unreachable the
// compile-time fallback table is served instead.
func (s *gamificationService) rewardTable(ctx context.Context) (map[string]Reward, error) {
	if cached, ok := s.cache.get(); ok {
		return cached, nil
	}

	rows, err := s.db.GamificationReward.Query().All(ctx)
	if err != nil {
		slog.Warn("gamification: reward table unreachable, using fallback", "err", err)
		return fallbackRewards, nil
	}

	table := make(map[string]Reward, len(rows))
	for _, row := range rows {
		table[row.ActivityType] = Reward{
			ActivityType:    row.ActivityType,
			Points:          row.Points,
			XP:              row.Xp,
			MinLevel:        row.MinLevel,
			MaxDailyCount:   row.MaxDailyCount,
			CooldownMinutes: row.CooldownMinutes,
			Enabled:         row.Enabled,
		}
	}
	s.cache.set(table)
	return table, nil
}

func (s *gamificationService) loadOrCreateProgress(ctx context.Context, userID uuid.UUID) (*repo.UserProgress, error) {
	progress, err := s.db.UserProgress.Query().
		Where(entprogress.UserID(userID)).
		Only(ctx)
	if err == nil {
		return progress, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	now := time.Now().UTC()
	progress, err = s.db.UserProgress.Create().
		SetUserID(userID).
		SetWeekAnchor(startOfWeek(now)).
		SetMonthAnchor(startOfMonth(now)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return progress, nil
}

// awardGuard applies a reward's eligibility rules to facts already loaded:
// the user's current level, how many times the activity was awarded today,
// and whether an award exists inside the cooldown window. Nil means the
// award may proceed.
func awardGuard(reward Reward, level, dailyCount int, inCooldown bool) *AwardResult {
	if !reward.Enabled {
		return &AwardResult{Success: false, Reason: ReasonDisabled, Message: "this activity is disabled"}
	}
	if level < reward.MinLevel {
		return &AwardResult{
			Success: false,
			Reason:  ReasonBelowMinLevel,
			Message: fmt.Sprintf("requires level %d", reward.MinLevel),
		}
	}
	if reward.MaxDailyCount > 0 && dailyCount >= reward.MaxDailyCount {
		return &AwardResult{
			Success: false,
			Reason:  ReasonDailyLimit,
			Message: fmt.Sprintf("already awarded %d time(s) today", dailyCount),
		}
	}
	if reward.CooldownMinutes > 0 && inCooldown {
		return &AwardResult{
			Success: false,
			Reason:  ReasonInCooldown,
			Message: fmt.Sprintf("wait %d minutes between %s awards", reward.CooldownMinutes, reward.ActivityType),
		}
	}
	return nil
}

// rollCounter resets a periodic counter when the period anchor moved.
func rollCounter(current int, anchor *time.Time, periodStart time.Time) (int, time.Time) {
	// A nil anchor means the counter has never been stamped.
	if anchor == nil || anchor.Before(periodStart) {
		return 0, periodStart
	}
	return current, *anchor
}

// startOfWeek is Monday 00:00 UTC of t's ISO week.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
