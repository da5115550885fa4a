package customer

import "github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"

// segmentRule is one independent predicate over a customer's R/F/M scores.
// Rules are evaluated in a fixed order but do not exclude one another unless a
// predicate says so explicitly, so a customer can land in several buckets or
// in none.
type segmentRule struct {
	name            domain.Segment
	description     string
	characteristics []string
	recommendations []string
	match           func(m domain.CustomerMetrics) bool
}

func isChampion(m domain.CustomerMetrics) bool {
	return m.RScore >= 4 && m.FScore >= 4 && m.MScore >= 4
}

var segmentRules = []segmentRule{
	{
		name:            domain.SegmentChampions,
		description:     "Bought recently, buy often and spend the most",
		characteristics: []string{"High purchase frequency", "Recent activity", "Top spenders"},
		recommendations: []string{"Reward with loyalty perks", "Ask for reviews and referrals", "Offer early access to new products"},
		match:           isChampion,
	},
	{
		name:            domain.SegmentLoyalCustomers,
		description:     "Buy regularly and respond well to promotions",
		characteristics: []string{"Consistent purchase cadence", "Above-average spend"},
		recommendations: []string{"Upsell higher-value products", "Invite to membership program"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore >= 3 && m.FScore >= 4 && !isChampion(m)
		},
	},
	{
		name:            domain.SegmentPotentialLoyalists,
		description:     "Recent buyers with moderate frequency",
		characteristics: []string{"Recent activity", "Building purchase habit"},
		recommendations: []string{"Offer membership or loyalty program", "Recommend related products"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore >= 4 && m.FScore >= 2 && m.FScore <= 3
		},
	},
	{
		name:            domain.SegmentNewCustomers,
		description:     "Bought recently for the first time",
		characteristics: []string{"Single purchase", "Recent first visit"},
		recommendations: []string{"Send onboarding offers", "Follow up after first purchase"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore >= 4 && m.FScore <= 1
		},
	},
	{
		name:            domain.SegmentAtRisk,
		description:     "Spent well and purchased often, but long ago",
		characteristics: []string{"Previously frequent", "No recent activity"},
		recommendations: []string{"Send personalized reactivation offers", "Reach out with win-back campaign"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore <= 2 && m.FScore >= 3
		},
	},
	{
		name:            domain.SegmentCannotLose,
		description:     "Made the biggest purchases often, but have gone quiet",
		characteristics: []string{"Top historical spenders", "Long absence"},
		recommendations: []string{"Win back with exclusive offers", "Contact personally before they churn"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore <= 2 && m.FScore >= 4 && m.MScore >= 4
		},
	},
	{
		name:            domain.SegmentHibernating,
		description:     "Low spenders with long inactivity",
		characteristics: []string{"Low frequency", "Low spend", "Inactive"},
		recommendations: []string{"Offer relevant discounts", "Re-engage with seasonal campaigns"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore <= 2 && m.FScore <= 2 && m.MScore <= 2
		},
	},
	{
		name:            domain.SegmentLost,
		description:     "Lowest recency, frequency and spend",
		characteristics: []string{"Longest inactivity", "Minimal engagement"},
		recommendations: []string{"Low-cost reactivation only", "Remove from premium campaigns"},
		match: func(m domain.CustomerMetrics) bool {
			return m.RScore <= 1 && m.FScore <= 1
		},
	},
}

// ClassifySegments applies the eight segment predicates to every customer and
// returns all eight profiles keyed by segment name. Buckets are intentionally
// non-exclusive and non-exhaustive.
func ClassifySegments(metrics []domain.CustomerMetrics) map[domain.Segment]domain.SegmentProfile {
	profiles := make(map[domain.Segment]domain.SegmentProfile, len(segmentRules))
	for _, rule := range segmentRules {
		profile := domain.SegmentProfile{
			Name:            rule.name,
			Description:     rule.description,
			Customers:       []string{},
			Characteristics: rule.characteristics,
			Recommendations: rule.recommendations,
		}
		for _, m := range metrics {
			if rule.match(m) {
				profile.Customers = append(profile.Customers, m.CustomerID)
			}
		}
		profiles[rule.name] = profile
	}
	return profiles
}
