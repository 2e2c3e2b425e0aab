package scoring

// ChapterDefinition declares one programme chapter and the skills it covers.
// The chapter registry is part of the policy, not the payload.
type ChapterDefinition struct {
	ChapterID    string   `json:"chapterId" koanf:"chapter_id"`
	ChapterLabel string   `json:"chapterLabel" koanf:"chapter_label"`
	DomainID     string   `json:"domainId" koanf:"domain_id"`
	Skills       []string `json:"skills" koanf:"skills"`
}

// DecisionThreshold is one (readiness, risk) gate for a recommendation tier.
type DecisionThreshold struct {
	Readiness int `koanf:"readiness"`
	Risk      int `koanf:"risk"`
}

// Thresholds gates the 3-valued recommendation: a profile at or above the
// confirmed gate is Pallier2_confirmed, at or above the conditional gate
// Pallier2_conditional, otherwise Pallier1_recommended.
type Thresholds struct {
	Confirmed   DecisionThreshold `koanf:"confirmed"`
	Conditional DecisionThreshold `koanf:"conditional"`
}

// PriorityBands are the domain-score cutoffs for priority banding:
// score < Critical -> critical, < High -> high, < Medium -> medium,
// else low. The critical/high cut is tunable pending product confirmation.
type PriorityBands struct {
	Critical int `koanf:"critical"`
	High     int `koanf:"high"`
	Medium   int `koanf:"medium"`
}

// Band returns the priority for a domain score.
func (b PriorityBands) Band(score int) Priority {
	switch {
	case score < b.Critical:
		return PriorityCritical
	case score < b.High:
		return PriorityHigh
	case score < b.Medium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Policy carries everything configurable about the engine: the domain
// registry and weights, decision thresholds, priority bands, alert
// thresholds, and the optional chapter registry.
type Policy struct {
	// DomainOrder is the closed domain registry, in output order.
	// Payload domains outside this list are ignored.
	DomainOrder []string `koanf:"domain_order"`

	// DomainWeights weighs each domain in the mastery index.
	DomainWeights map[string]float64 `koanf:"domain_weights"`

	// DefaultDomainWeight applies to registry domains missing a weight.
	DefaultDomainWeight float64 `koanf:"default_domain_weight"`

	Thresholds    Thresholds    `koanf:"thresholds"`
	PriorityBands PriorityBands `koanf:"priority_bands"`

	// StressAlertMin is the self-rated stress level (0-4) that fires
	// the HIGH_STRESS alert.
	StressAlertMin int `koanf:"stress_alert_min"`

	// HighUnknownMin is the unknown-competency count that fires HIGH_UNKNOWN.
	HighUnknownMin int `koanf:"high_unknown_min"`

	// Chapters is the optional programme chapter registry. Empty disables
	// coverageProgramme and the chapter alerts.
	Chapters []ChapterDefinition `koanf:"chapters"`
}

// DefaultPolicy returns the maths-premiere policy the engine ships with.
func DefaultPolicy() Policy {
	return Policy{
		DomainOrder: []string{"algebra", "analysis", "geometry", "probabilities", "python"},
		DomainWeights: map[string]float64{
			"analysis":      0.30,
			"algebra":       0.25,
			"geometry":      0.20,
			"probabilities": 0.15,
			"python":        0.10,
		},
		DefaultDomainWeight: 0.10,
		Thresholds: Thresholds{
			Confirmed:   DecisionThreshold{Readiness: 60, Risk: 55},
			Conditional: DecisionThreshold{Readiness: 48, Risk: 70},
		},
		PriorityBands:  PriorityBands{Critical: 30, High: 50, Medium: 70},
		StressAlertMin: 3,
		HighUnknownMin: 3,
	}
}

// Weight returns the mastery weight for a domain.
func (p *Policy) Weight(domain string) float64 {
	if w, ok := p.DomainWeights[domain]; ok {
		return w
	}
	return p.DefaultDomainWeight
}
