// Command report prints a user's calorie report as JSON on stdout.
//
// Flags:
//
//	--user     owner UUID (required)
//	--period   day, week or month (default: day)
//	--date     YYYY-MM-DD in the report timezone; the first day of a week
//	           report, any day of a month report (default: today)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/app"
	"github.com/heartmarshall/carnutri-backend/internal/config"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/internal/service/nutrition"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

const dateLayout = "2006-01-02"

type reportJSON struct {
	Period     string    `json:"period"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Total      float64   `json:"total"`
	DailyLimit *float64  `json:"daily_limit,omitempty"`
	Remaining  *float64  `json:"remaining,omitempty"`
	Partial    bool      `json:"partial"`
	Days       []dayJSON `json:"days"`
}

type dayJSON struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	Meals     int     `json:"meals"`
	OverLimit bool    `json:"over_limit"`
	Partial   bool    `json:"partial"`
}

func toJSON(r *domain.CalorieReport) reportJSON {
	out := reportJSON{
		Period:     strings.ToLower(r.Period.String()),
		From:       r.From.Format(time.RFC3339),
		To:         r.To.Format(time.RFC3339),
		Total:      r.Total,
		DailyLimit: r.DailyLimit,
		Remaining:  r.Remaining(),
		Partial:    r.Partial,
		Days:       make([]dayJSON, len(r.Days)),
	}
	for i, d := range r.Days {
		out.Days[i] = dayJSON{
			Date:      d.Date.Format(dateLayout),
			Calories:  d.Calories,
			Meals:     d.Meals,
			OverLimit: d.OverLimit,
			Partial:   d.Partial,
		}
	}
	return out
}

// buildReport dispatches on period. date is interpreted in loc.
func buildReport(ctx context.Context, svc *nutrition.Service, period, date string, loc *time.Location) (*domain.CalorieReport, error) {
	day := time.Now().In(loc)
	if date != "" {
		var err error
		day, err = time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return nil, fmt.Errorf("parse --date: %w", err)
		}
	}

	switch period {
	case "day":
		return svc.DailyReport(ctx, day)
	case "week":
		return svc.WeeklyReport(ctx, day)
	case "month":
		return svc.MonthlyReport(ctx, day.Year(), day.Month())
	default:
		return nil, fmt.Errorf("unknown --period %q: want day, week or month", period)
	}
}

func main() {
	userFlag := flag.String("user", "", "owner UUID")
	periodFlag := flag.String("period", "day", "day, week or month")
	dateFlag := flag.String("date", "", "YYYY-MM-DD (default: today)")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid --user: %v", err)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	services := app.NewServices(logger, pool, cfg, nil)
	ctx = ctxutil.WithUserID(ctx, userID)

	report, err := buildReport(ctx, services.Nutrition, *periodFlag, *dateFlag, services.Nutrition.Location())
	if err != nil {
		logger.Error("build report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(report)); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
