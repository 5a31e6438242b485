package domain

import "time"

// ReportPeriod identifies the span of a calorie report.
type ReportPeriod string

const (
	ReportPeriodDay   ReportPeriod = "DAY"
	ReportPeriodWeek  ReportPeriod = "WEEK"
	ReportPeriodMonth ReportPeriod = "MONTH"
)

func (p ReportPeriod) String() string { return string(p) }

// DayTotal is the calorie total of one calendar day. Partial is set when a
// meal of the day contains a food without nutrition data.
type DayTotal struct {
	Date      time.Time
	Calories  float64
	Meals     int
	OverLimit bool
	Partial   bool
}

// CalorieReport aggregates day totals over a period. Days is zero-filled:
// every day of the period has an entry.
type CalorieReport struct {
	Period     ReportPeriod
	From       time.Time
	To         time.Time
	Days       []DayTotal
	Total      float64
	DailyLimit *float64
	Partial    bool
}

// Remaining returns DailyLimit minus the period total for a single-day report,
// or nil when no limit is set or the report spans more than one day.
func (r *CalorieReport) Remaining() *float64 {
	if r.DailyLimit == nil || r.Period != ReportPeriodDay {
		return nil
	}
	v := *r.DailyLimit - r.Total
	return &v
}
