package domain

import (
	"encoding/json"
	"time"
)

// Segment names a customer behavioral segment. Segments are independent
// predicate buckets, not a partition: a customer may appear in several or none.
type Segment string

const (
	SegmentChampions          Segment = "champions"
	SegmentLoyalCustomers     Segment = "loyal_customers"
	SegmentPotentialLoyalists Segment = "potential_loyalists"
	SegmentNewCustomers       Segment = "new_customers"
	SegmentAtRisk             Segment = "at_risk"
	SegmentCannotLose         Segment = "cannot_lose"
	SegmentHibernating        Segment = "hibernating"
	SegmentLost               Segment = "lost"
)

// CustomerMetrics holds per-customer RFM inputs and scores, recomputed fresh
// on every run.
type CustomerMetrics struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
	RScore     int     `json:"r_score"`
	FScore     int     `json:"f_score"`
	MScore     int     `json:"m_score"`
	RFMScore   int     `json:"rfm_score"`
}

// SegmentProfile describes one segment and its matched customers.
type SegmentProfile struct {
	Name            Segment  `json:"name"`
	Description     string   `json:"description"`
	Customers       []string `json:"customers"`
	Characteristics []string `json:"characteristics"`
	Recommendations []string `json:"recommendations"`
}

// PurchasePatterns carries the temporal distributions and basket statistics
// over all completed transactions.
type PurchasePatterns struct {
	HourlyDistribution  [24]int            `json:"hourly_distribution"`
	DailyDistribution   [7]int             `json:"daily_distribution"`
	MonthlyDistribution [12]int            `json:"monthly_distribution"`
	SeasonDistribution  map[string]int     `json:"season_distribution"`
	PeakHour            int                `json:"peak_hour"`
	PeakDay             int                `json:"peak_day"`
	PeakMonth           int                `json:"peak_month"`
	AverageBasketSize   float64            `json:"average_basket_size"`
	AverageBasketValue  float64            `json:"average_basket_value"`
}

// LoyaltyMetrics summarizes repeat behavior across the cohort.
type LoyaltyMetrics struct {
	RepeatPurchaseRate       float64 `json:"repeat_purchase_rate"`
	CustomerRetentionRate    float64 `json:"customer_retention_rate"`
	AveragePurchaseFrequency float64 `json:"average_purchase_frequency"`
}

// ChurnAnalysis classifies the cohort by recency against a fixed threshold.
type ChurnAnalysis struct {
	TotalCustomers           int      `json:"total_customers"`
	ActiveCustomers          int      `json:"active_customers"`
	AtRiskCustomers          int      `json:"at_risk_customers"`
	ChurnedCustomers         int      `json:"churned_customers"`
	ChurnRate                float64  `json:"churn_rate"`
	RiskFactors              []string `json:"risk_factors"`
	RetentionRecommendations []string `json:"retention_recommendations"`
}

// CategoryPreference ranks a product category by revenue contribution.
type CategoryPreference struct {
	CategoryID string  `json:"category_id"`
	Revenue    float64 `json:"revenue"`
	Quantity   int     `json:"quantity"`
}

// ProductAffinity is a pair of products frequently bought together.
type ProductAffinity struct {
	ProductA    string `json:"product_a"`
	ProductB    string `json:"product_b"`
	Occurrences int    `json:"occurrences"`
}

// ProductPreferences groups category and affinity rankings.
type ProductPreferences struct {
	TopCategories     []CategoryPreference `json:"top_categories"`
	ProductAffinities []ProductAffinity    `json:"product_affinities"`
}

// MonthlyTrend aggregates one calendar month of transactions.
type MonthlyTrend struct {
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// BehavioralTrends carries month-keyed aggregates and the latest
// month-over-month revenue growth percentage.
type BehavioralTrends struct {
	MonthlyTrends        map[string]MonthlyTrend `json:"monthly_trends"`
	MonthOverMonthGrowth float64                 `json:"month_over_month_growth"`
}

// CLVEntry is one customer's lifetime value and tier.
type CLVEntry struct {
	CustomerID string  `json:"customer_id"`
	TotalValue float64 `json:"total_value"`
	Tier       string  `json:"tier"`
}

// LifetimeValue summarizes historical-spend ranking across the cohort.
type LifetimeValue struct {
	AverageCLV         float64        `json:"average_clv"`
	HighValueCustomers []CLVEntry     `json:"high_value_customers"`
	CLVSegments        map[string]int `json:"clv_segments"`
}

// CustomerOverview heads the customer analytics report.
type CustomerOverview struct {
	TotalCustomers     int       `json:"total_customers"`
	ActiveCustomers    int       `json:"active_customers"`
	AnalysisPeriod     string    `json:"analysis_period"`
	SegmentsIdentified int       `json:"segments_identified"`
	LastAnalyzed       time.Time `json:"last_analyzed"`
}

// CustomerReport is the full customer analytics output contract.
type CustomerReport struct {
	Overview           CustomerOverview           `json:"overview"`
	CustomerSegments   map[Segment]SegmentProfile `json:"customer_segments"`
	PurchasePatterns   PurchasePatterns           `json:"purchase_patterns"`
	LoyaltyMetrics     LoyaltyMetrics             `json:"loyalty_metrics"`
	ChurnAnalysis      ChurnAnalysis              `json:"churn_analysis"`
	ProductPreferences ProductPreferences         `json:"product_preferences"`
	BehavioralTrends   BehavioralTrends           `json:"behavioral_trends"`
	LifetimeValue      LifetimeValue              `json:"lifetime_value"`
	AIInsights         json.RawMessage            `json:"ai_insights"`
}

// Trend is the 3-bucket sales direction classification.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// ProductVelocity holds per-product demand metrics over the sales window.
type ProductVelocity struct {
	ProductID    string  `json:"product_id"`
	DailyAverage float64 `json:"daily_average"`
	Trend        Trend   `json:"trend"`
	Volatility   float64 `json:"volatility"`
	TotalSold    int     `json:"total_sold"`
	DaysTracked  int     `json:"days_tracked"`
}

// ABCClass partitions products by cumulative revenue share.
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// SeasonalityProfile captures monthly demand shape for a product.
type SeasonalityProfile struct {
	ProductID           string  `json:"product_id"`
	SeasonalFactor      float64 `json:"seasonal_factor"`
	PeakMonths          []int   `json:"peak_months"`
	AverageMonthlySales float64 `json:"average_monthly_sales"`
}

// Priority ranks a recommendation's urgency.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities for sorting; larger means more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IssueType labels the dominant inventory problem for a product.
type IssueType string

const (
	IssueStockoutRisk  IssueType = "stockout_risk"
	IssueReorderNeeded IssueType = "reorder_needed"
	IssueOverstock     IssueType = "overstock"
	IssueSlowMoving    IssueType = "slow_moving"
	IssueNone          IssueType = "none"
)

// FinancialImpact estimates the money at stake for a recommendation. All
// fields are non-negative estimates, not accounting figures.
type FinancialImpact struct {
	CostSavings           float64 `json:"cost_savings"`
	RevenueOpportunity    float64 `json:"revenue_opportunity"`
	CarryingCostReduction float64 `json:"carrying_cost_reduction"`
}

// InventoryRecommendation is one product's prioritized action item.
type InventoryRecommendation struct {
	ProductID               string          `json:"product_id"`
	ProductName             string          `json:"product_name"`
	SKU                     string          `json:"sku"`
	Priority                Priority        `json:"priority"`
	IssueType               IssueType       `json:"issue_type"`
	RecommendedReorderPoint int             `json:"recommended_reorder_point"`
	RecommendedSafetyStock  int             `json:"recommended_safety_stock"`
	Actions                 []string        `json:"actions"`
	FinancialImpact         FinancialImpact `json:"financial_impact"`
}

// InventoryOverview heads the inventory analytics report.
type InventoryOverview struct {
	TotalProducts    int       `json:"total_products"`
	ProductsAnalyzed int       `json:"products_analyzed"`
	InventoryValue   float64   `json:"inventory_value"`
	HealthScore      int       `json:"health_score"`
	AnalysisPeriod   string    `json:"analysis_period"`
	LastAnalyzed     time.Time `json:"last_analyzed"`
}

// StrategicInsights is narrative guidance; populated by the text-generation
// collaborator when enabled, otherwise by the deterministic fallback.
type StrategicInsights struct {
	KeyInsights     []string  `json:"key_insights"`
	ActionableSteps []string  `json:"actionable_steps"`
	NextReviewDate  time.Time `json:"next_review_date"`
}

// ABCAnalysis reports the class sizes of the revenue ranking.
type ABCAnalysis struct {
	AProducts int `json:"a_products"`
	BProducts int `json:"b_products"`
	CProducts int `json:"c_products"`
}

// OptimizationSummary counts recommendation outcomes by kind.
type OptimizationSummary struct {
	OverstockedProducts    int `json:"overstocked_products"`
	UnderstockedProducts   int `json:"understocked_products"`
	SlowMovingProducts     int `json:"slow_moving_products"`
	ReorderRecommendations int `json:"reorder_recommendations"`
}

// InventoryReport is the full inventory analytics output contract.
type InventoryReport struct {
	Overview            InventoryOverview         `json:"overview"`
	Recommendations     []InventoryRecommendation `json:"recommendations"`
	StrategicInsights   StrategicInsights         `json:"strategic_insights"`
	ABCAnalysis         ABCAnalysis               `json:"abc_analysis"`
	OptimizationSummary OptimizationSummary       `json:"optimization_summary"`
}
