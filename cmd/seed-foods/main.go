// Command seed-foods imports global foods from a JSON file. Each element is
// {"name", "is_external", "calories", "macros": {"protein", "fat",
// "carbohydrate"}}; at least one of calories and macros is required.
// Invalid entries are skipped and reported.
//
// Flags:
//
//	--file   path to the JSON file (required)
//
// Exit codes: 0 = success, 1 = error, 2 = some entries skipped.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/app"
	"github.com/heartmarshall/carnutri-backend/internal/config"
	"github.com/heartmarshall/carnutri-backend/internal/service/food"
)

type foodRecord struct {
	Name       string        `json:"name"`
	IsExternal bool          `json:"is_external"`
	Calories   *float64      `json:"calories"`
	Macros     *macrosRecord `json:"macros"`
}

type macrosRecord struct {
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbohydrate float64 `json:"carbohydrate"`
}

func (r foodRecord) toInput() food.CreateFoodInput {
	in := food.CreateFoodInput{Name: r.Name, IsExternal: r.IsExternal, Calories: r.Calories}
	if r.Macros != nil {
		in.Macros = &food.MacrosInput{
			Protein:      r.Macros.Protein,
			Fat:          r.Macros.Fat,
			Carbohydrate: r.Macros.Carbohydrate,
		}
	}
	return in
}

func readRecords(path string) ([]food.CreateFoodInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []foodRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	inputs := make([]food.CreateFoodInput, len(records))
	for i, r := range records {
		inputs[i] = r.toInput()
	}
	return inputs, nil
}

func main() {
	fileFlag := flag.String("file", "", "path to the foods JSON file")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	inputs, err := readRecords(*fileFlag)
	if err != nil {
		logger.Error("load foods", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	services := app.NewServices(logger, pool, cfg, nil)

	result, err := services.Food.ImportGlobalFoods(ctx, inputs)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, e := range result.Errors {
		logger.Warn("food skipped",
			slog.Int("index", e.Index),
			slog.String("name", e.Name),
			slog.String("error", e.Err.Error()),
		)
	}

	logger.Info("import completed",
		slog.Int("total", len(inputs)),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)

	if result.Skipped > 0 {
		os.Exit(2)
	}
}
