package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/customer"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/analytics/inventory"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/cache"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/insights"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/repository"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/storage"
)

const (
	reportKindCustomers = "customers"
	reportKindInventory = "inventory"
)

// AnalyticsService runs the customer and inventory pipelines for one store:
// fetch the window of data, compute the report, optionally overlay generated
// narrative insights, cache, and archive.
type AnalyticsService struct {
	repo      repository.AnalyticsData
	cache     cache.ReportCache
	generator insights.Generator
	archiver  storage.Archiver

	analyzer *customer.Analyzer
	engine   *inventory.Engine

	customerWindowMonths int
	inventoryWindowDays  int

	now func() time.Time
}

type AnalyticsServiceOption func(*AnalyticsService)

func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *AnalyticsService) { s.now = now }
}

func WithArchiver(a storage.Archiver) AnalyticsServiceOption {
	return func(s *AnalyticsService) { s.archiver = a }
}

func WithCustomerWindowMonths(months int) AnalyticsServiceOption {
	return func(s *AnalyticsService) {
		if months > 0 {
			s.customerWindowMonths = months
		}
	}
}

func WithInventoryWindowDays(days int) AnalyticsServiceOption {
	return func(s *AnalyticsService) {
		if days > 0 {
			s.inventoryWindowDays = days
		}
	}
}

func NewAnalyticsService(
	repo repository.AnalyticsData,
	cacheImpl cache.ReportCache,
	generator insights.Generator,
	analyzer *customer.Analyzer,
	engine *inventory.Engine,
	opts ...AnalyticsServiceOption,
) *AnalyticsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	if generator == nil {
		generator = insights.Disabled{}
	}
	if analyzer == nil {
		analyzer = customer.NewAnalyzer()
	}
	if engine == nil {
		engine = inventory.NewEngine()
	}

	s := &AnalyticsService{
		repo:                 repo,
		cache:                cacheImpl,
		generator:            generator,
		analyzer:             analyzer,
		engine:               engine,
		customerWindowMonths: 6,
		inventoryWindowDays:  engine.WindowDays,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CustomerReport computes the customer analytics report for a store over the
// trailing window ending now.
func (s *AnalyticsService) CustomerReport(ctx context.Context, storeID string) (domain.CustomerReport, error) {
	now := s.now().UTC()
	since := now.AddDate(0, -s.customerWindowMonths, 0)
	key := s.reportKey(storeID, reportKindCustomers, since, now)

	var cached domain.CustomerReport
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("customer report: cache get failed")
	} else if ok {
		return cached, nil
	}

	var (
		customers    []domain.Customer
		transactions []domain.Transaction
		products     []domain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.repo.GetCustomers(gctx, storeID)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.repo.GetTransactions(gctx, storeID, since, now)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.repo.GetProducts(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CustomerReport{}, err
	}

	report := s.analyzer.Analyze(customers, transactions, products, now)
	report.AIInsights = s.generateCustomerInsights(ctx, report)

	if err := s.cache.Set(ctx, key, report); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("customer report: cache set failed")
	}
	s.archive(ctx, storeID, reportKindCustomers, now, report)

	return report, nil
}

// InventoryReport computes the inventory optimization report for a store over
// the trailing window ending now.
func (s *AnalyticsService) InventoryReport(ctx context.Context, storeID string) (domain.InventoryReport, error) {
	now := s.now().UTC()
	since := now.AddDate(0, 0, -s.inventoryWindowDays)
	key := s.reportKey(storeID, reportKindInventory, since, now)

	var cached domain.InventoryReport
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("inventory report: cache get failed")
	} else if ok {
		return cached, nil
	}

	var (
		products  []domain.Product
		inventory []domain.InventoryRecord
		sales     []domain.SaleRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.repo.GetProducts(gctx, storeID)
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = s.repo.GetInventory(gctx, storeID)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.repo.GetSales(gctx, storeID, since, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.InventoryReport{}, err
	}

	report := s.engine.Analyze(products, inventory, sales, now)
	s.overlayInventoryInsights(ctx, &report)

	if err := s.cache.Set(ctx, key, report); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("inventory report: cache set failed")
	}
	s.archive(ctx, storeID, reportKindInventory, now, report)

	return report, nil
}

// ListStoreIDs exposes the repository's store enumeration for batch callers.
func (s *AnalyticsService) ListStoreIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListStoreIDs(ctx)
}

func (s *AnalyticsService) InvalidateStore(ctx context.Context, storeID string) error {
	return s.cache.InvalidateStore(ctx, storeID)
}

func (s *AnalyticsService) generateCustomerInsights(ctx context.Context, report domain.CustomerReport) json.RawMessage {
	raw, err := s.generator.Generate(ctx, insights.BuildCustomerPrompt(report))
	if err != nil {
		if !errors.Is(err, insights.ErrDisabled) {
			log.Warn().Err(err).Msg("customer report: insight generation failed")
		}
		return nil
	}
	return raw
}

func (s *AnalyticsService) overlayInventoryInsights(ctx context.Context, report *domain.InventoryReport) {
	raw, err := s.generator.Generate(ctx, insights.BuildInventoryPrompt(*report))
	if err != nil {
		if !errors.Is(err, insights.ErrDisabled) {
			log.Warn().Err(err).Msg("inventory report: insight generation failed")
		}
		return
	}
	if !insights.MergeInventoryInsights(report, raw) {
		log.Warn().Msg("inventory report: generated insights unusable, keeping computed fallback")
	}
}

func (s *AnalyticsService) archive(ctx context.Context, storeID, kind string, now time.Time, report any) {
	if s.archiver == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Str("kind", kind).Msg("report archive: encode failed")
		return
	}

	object, err := s.archiver.StoreSnapshot(ctx, storeID, kind, now, payload)
	if err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Str("kind", kind).Msg("report archive: upload failed")
		return
	}
	log.Debug().Str("object", object).Msg("report archived")
}

func (s *AnalyticsService) reportKey(storeID, kind string, since, until time.Time) cache.ReportKey {
	return cache.ReportKey{
		StoreID:     storeID,
		Kind:        kind,
		WindowStart: since.Format("2006-01-02"),
		WindowEnd:   until.Format("2006-01-02"),
	}
}
