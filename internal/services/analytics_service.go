package services

import (
	"time"

	"gorm.io/gorm"

	"carbontrack/internal/emissions"
	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
)

const (
	trendMonths     = 6
	dailySeriesDays = 30
	// MonthlyTarget is stored in tons CO2; impacts are kilograms.
	kgPerTon = 1000.0
)

// categoryBucketOrder fixes the display order and colors of the four buckets.
var categoryBucketOrder = []struct {
	activityType models.ActivityType
	label        string
	color        string
}{
	{models.ActivityTypeTransport, "Transportation", "#ef4444"},
	{models.ActivityTypeEnergy, "Energy", "#f59e0b"},
	{models.ActivityTypeFood, "Food", "#10b981"},
	{models.ActivityTypeShopping, "Shopping", "#6366f1"},
}

// analyticsService derives summary views from stored activities.
type analyticsService struct {
	db    *gorm.DB
	users UserServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB, users UserServicer) AnalyticsServicer {
	return &analyticsService{db: db, users: users}
}

// periodWindow maps a period name to its lookback start and day count.
func periodWindow(period string, now time.Time) (time.Time, int, error) {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), 7, nil
	case "month":
		return now.AddDate(0, -1, 0), 30, nil
	case "year":
		return now.AddDate(-1, 0, 0), 365, nil
	}
	return time.Time{}, 0, apperrors.ErrInvalidPeriod
}

// sumImpact sums the user's impacts between from and to. Nil bounds are open.
func (s *analyticsService) sumImpact(userID string, from, to *time.Time) (float64, error) {
	q := s.db.Model(&models.Activity{}).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var total *float64
	if err := q.Select("SUM(impact)").Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// TotalFootprint sums impacts over the period's lookback window.
func (s *analyticsService) TotalFootprint(userID, period string) (float64, error) {
	start, _, err := periodWindow(period, time.Now())
	if err != nil {
		return 0, err
	}
	total, err := s.sumImpact(userID, &start, nil)
	if err != nil {
		return 0, err
	}
	return emissions.Round2(total), nil
}

// FootprintByCategory groups impacts since the given time (all-time when
// nil) into the four fixed buckets. Buckets that sum to zero are filtered.
func (s *analyticsService) FootprintByCategory(userID string, since *time.Time) ([]CategoryBucket, error) {
	q := s.db.Model(&models.Activity{}).Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("date >= ?", *since)
	}

	var rows []struct {
		Type  models.ActivityType
		Total float64
	}
	if err := q.Select("type, SUM(impact) AS total").Group("type").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[models.ActivityType]float64, len(rows))
	for _, r := range rows {
		totals[r.Type] = r.Total
	}

	buckets := []CategoryBucket{}
	for _, b := range categoryBucketOrder {
		value := emissions.Round2(totals[b.activityType])
		if value == 0 {
			continue
		}
		buckets = append(buckets, CategoryBucket{Category: b.label, Value: value, Color: b.color})
	}
	return buckets, nil
}

// TrendData returns exactly six trailing calendar-month buckets, oldest
// first, zero-filled for months without activity. The series is recomputed
// in full on every call.
func (s *analyticsService) TrendData(userID string) ([]TrendPoint, error) {
	now := time.Now()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(trendMonths - 1), 0)

	var activities []models.Activity
	if err := s.db.Where("user_id = ? AND date >= ?", userID, firstMonth).
		Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	sums := make(map[monthKey]float64)
	for _, a := range activities {
		d := a.Date.In(now.Location())
		sums[monthKey{d.Year(), d.Month()}] += a.Impact
	}

	points := make([]TrendPoint, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := firstMonth.AddDate(0, i, 0)
		points = append(points, TrendPoint{
			Month: m.Month().String()[:3],
			Value: emissions.Round2(sums[monthKey{m.Year(), m.Month()}]),
		})
	}
	return points, nil
}

// dailySeries buckets the user's last 30 days of impacts per calendar day,
// oldest first, zero-filled.
func (s *analyticsService) dailySeries(userID string, now time.Time) ([]DayTotal, error) {
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(dailySeriesDays - 1))

	var activities []models.Activity
	if err := s.db.Where("user_id = ? AND date >= ?", userID, startDay).
		Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sums := make(map[string]float64)
	for _, a := range activities {
		sums[a.Date.In(now.Location()).Format("2006-01-02")] += a.Impact
	}

	series := make([]DayTotal, 0, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		day := startDay.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, DayTotal{Date: day, Value: emissions.Round2(sums[day])})
	}
	return series, nil
}

// efficiency computes the derived metrics for the period. All ratios with a
// zero denominator are defined as 0.
func (s *analyticsService) efficiency(userID string, now, windowStart time.Time, total float64, count int64) (EfficiencyMetrics, error) {
	var metrics EfficiencyMetrics

	if count > 0 {
		metrics.AveragePerActivity = emissions.Round2(total / float64(count))
	}

	series, err := s.dailySeries(userID, now)
	if err != nil {
		return metrics, err
	}

	if count > 0 {
		best, worst := series[0], series[0]
		for _, day := range series[1:] {
			if day.Value < best.Value {
				best = day
			}
			if day.Value > worst.Value {
				worst = day
			}
		}
		metrics.BestDay = &best
		metrics.WorstDay = &worst
	}

	// Low-emission streak: consecutive trailing days at or under the daily
	// share of the monthly target, walking backward from today.
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return metrics, err
	}
	dailyBudget := 0.0
	if user.MonthlyTarget > 0 {
		dailyBudget = user.MonthlyTarget * kgPerTon / 30
	}
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Value > dailyBudget {
			break
		}
		metrics.StreakDays++
	}

	// Period-over-period improvement against the preceding window of equal length.
	windowLen := now.Sub(windowStart)
	prevStart := windowStart.Add(-windowLen)
	previous, err := s.sumImpact(userID, &prevStart, &windowStart)
	if err != nil {
		return metrics, err
	}
	if previous > 0 {
		metrics.Improvement = emissions.Round2((previous - total) / previous * 100)
	}

	return metrics, nil
}

// GetSummary assembles the full analytics payload for the period.
func (s *analyticsService) GetSummary(userID, period string) (*AnalyticsSummary, error) {
	now := time.Now()
	start, days, err := periodWindow(period, now)
	if err != nil {
		return nil, err
	}

	total, err := s.sumImpact(userID, &start, nil)
	if err != nil {
		return nil, err
	}
	total = emissions.Round2(total)

	var count int64
	if err := s.db.Model(&models.Activity{}).
		Where("user_id = ? AND date >= ?", userID, start).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buckets, err := s.FootprintByCategory(userID, &start)
	if err != nil {
		return nil, err
	}

	trend, err := s.TrendData(userID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.efficiency(userID, now, start, total, count)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		TotalFootprint:      total,
		DailyAverage:        emissions.Round2(total / float64(days)),
		ActivityCount:       count,
		FootprintByCategory: buckets,
		TrendData:           trend,
		Efficiency:          metrics,
	}, nil
}
