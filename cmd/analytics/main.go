package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/customer"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/inventory"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/cache"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/insights"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/repository/postgres"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/service"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := postgres.NewDBFromURL(c.String("db-url"))
	if err != nil {
		return err
	}
	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFromContext(c *cli.Context) (*postgres.DB, error) {
	db, ok := c.Context.Value(dbKey).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Generate analytics reports for stores in batch",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Generate customer and inventory reports and write them as JSON files",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "out-dir",
						Usage:   "Directory to write report JSON files to",
						Value:   "./reports",
						EnvVars: []string{"REPORTS_OUT_DIR"},
					},
					&cli.StringFlag{
						Name:  "stores",
						Usage: "Comma-separated store IDs (defaults to every store)",
					},
					&cli.BoolFlag{
						Name:  "customers-only",
						Usage: "Only generate customer reports, skip inventory",
					},
					&cli.BoolFlag{
						Name:  "inventory-only",
						Usage: "Only generate inventory reports, skip customers",
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runReports,
			},
			{
				Name:   "stores",
				Usage:  "List the store IDs present in the transaction history",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: listStores,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runReports(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	svc := service.NewAnalyticsService(
		postgres.NewAnalyticsRepository(db),
		cache.NewNoopReportCache(),
		insights.Disabled{},
		customer.NewAnalyzer(),
		inventory.NewEngine(),
	)

	stores, err := resolveStores(c, svc)
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		log.Println("no stores to process")
		return nil
	}

	outDir := c.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	withCustomers := !c.Bool("inventory-only")
	withInventory := !c.Bool("customers-only")

	bar := progressbar.Default(int64(len(stores)), "generating reports")
	start := time.Now()
	var failed int

	for _, storeID := range stores {
		if withCustomers {
			report, err := svc.CustomerReport(c.Context, storeID)
			if err != nil {
				log.Printf("store %s: customer report failed: %v", storeID, err)
				failed++
			} else if err := writeReport(outDir, storeID, "customers", report); err != nil {
				return err
			}
		}

		if withInventory {
			report, err := svc.InventoryReport(c.Context, storeID)
			if err != nil {
				log.Printf("store %s: inventory report failed: %v", storeID, err)
				failed++
			} else if err := writeReport(outDir, storeID, "inventory", report); err != nil {
				return err
			}
		}

		_ = bar.Add(1)
	}

	log.Printf("processed %d stores in %v (%d failures)", len(stores), time.Since(start), failed)
	return nil
}

func listStores(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	stores, err := postgres.NewAnalyticsRepository(db).ListStoreIDs(c.Context)
	if err != nil {
		return err
	}

	for _, storeID := range stores {
		fmt.Println(storeID)
	}
	return nil
}

func resolveStores(c *cli.Context, svc *service.AnalyticsService) ([]string, error) {
	if raw := strings.TrimSpace(c.String("stores")); raw != "" {
		var stores []string
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				stores = append(stores, trimmed)
			}
		}
		return stores, nil
	}
	return svc.ListStoreIDs(c.Context)
}

func writeReport(outDir, storeID, kind string, report any) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s report for store %s: %w", kind, storeID, err)
	}

	dest := filepath.Join(outDir, storeID, kind+".json")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("could not create report directory: %w", err)
	}
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", dest, err)
	}
	return nil
}
