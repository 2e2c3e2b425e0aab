// Package scoring implements the competency-based diagnostic engine:
// per-domain aggregation, the four top-level indices, the pedagogical-tier
// recommendation, trust scoring, alert and inconsistency detection, and
// priority extraction. Everything here is a pure function over one student's
// payload; identical input produces an identical Result field-for-field.
package scoring

// Recommendation is the 3-valued pedagogical-tier decision.
type Recommendation string

const (
	Pallier1Recommended Recommendation = "Pallier1_recommended"
	Pallier2Conditional Recommendation = "Pallier2_conditional"
	Pallier2Confirmed   Recommendation = "Pallier2_confirmed"
)

// Priority bands a domain's urgency for remediation.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AlertType grades an alert's severity for display.
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertDanger  AlertType = "danger"
)

// Severity tags an inconsistency flag.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Quality is the overall data-quality tier.
type Quality string

const (
	QualityGood         Quality = "good"
	QualityPartial      Quality = "partial"
	QualityInsufficient Quality = "insufficient"
)

// TrustLevel is the display tier derived from the trust score.
type TrustLevel string

const (
	TrustGreen  TrustLevel = "green"
	TrustOrange TrustLevel = "orange"
	TrustRed    TrustLevel = "red"
)

// DomainScore is the per-domain aggregate over competency records.
// A domain is active iff EvaluatedCount >= 2; inactive domains score 0 with
// critical priority regardless of any partial data.
type DomainScore struct {
	Domain          string   `json:"domain"`
	Score           int      `json:"score"`
	EvaluatedCount  int      `json:"evaluatedCount"`
	TotalCount      int      `json:"totalCount"`
	NotStudiedCount int      `json:"notStudiedCount"`
	UnknownCount    int      `json:"unknownCount"`
	Gaps            []string `json:"gaps"`
	DominantErrors  []string `json:"dominantErrors"`
	Priority        Priority `json:"priority"`
}

// Active reports whether the domain had enough evidence to be scored.
func (d *DomainScore) Active() bool { return d.EvaluatedCount >= 2 }

// Alert is one detected warning/error/info signal.
type Alert struct {
	Type    AlertType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Impact  string    `json:"impact,omitempty"`
}

// Inconsistency flags contradictory fields in the submitted data.
type Inconsistency struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Fields   []string `json:"fields"`
	Severity Severity `json:"severity"`
}

// DataQuality summarizes how complete and coherent the submission is.
type DataQuality struct {
	ActiveDomains          int     `json:"activeDomains"`
	EvaluatedCompetencies  int     `json:"evaluatedCompetencies"`
	NotStudiedCompetencies int     `json:"notStudiedCompetencies"`
	UnknownCompetencies    int     `json:"unknownCompetencies"`
	LowConfidence          bool    `json:"lowConfidence"`
	Quality                Quality `json:"quality"`
	CoherenceIssues        int     `json:"coherenceIssues"`
	MiniTestFilled         bool    `json:"miniTestFilled"`
	CriticalFieldsMissing  int     `json:"criticalFieldsMissing"`
}

// PriorityItem is one skill-level recommendation.
type PriorityItem struct {
	SkillID      string `json:"skillId,omitempty"`
	SkillLabel   string `json:"skillLabel"`
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Impact       string `json:"impact"`
	ExerciseType string `json:"exerciseType,omitempty"`
}

// CoverageProgramme is the chapter-aware programme coverage, present only
// when the policy carries a chapter registry and the payload a selection.
type CoverageProgramme struct {
	SeenChapterRatio    float64 `json:"seenChapterRatio"`
	EvaluatedSkillRatio float64 `json:"evaluatedSkillRatio"`
	TotalChapters       int     `json:"totalChapters"`
	SeenChapters        int     `json:"seenChapters"`
	InProgressChapters  int     `json:"inProgressChapters"`
}

// Result is the complete output of the competency-based engine. It is a
// value object: produced fresh on every call, never mutated afterwards.
type Result struct {
	MasteryIndex       int `json:"masteryIndex"`
	CoverageIndex      int `json:"coverageIndex"`
	ExamReadinessIndex int `json:"examReadinessIndex"`
	ReadinessScore     int `json:"readinessScore"`
	RiskIndex          int `json:"riskIndex"`

	Recommendation        Recommendation `json:"recommendation"`
	RecommendationMessage string         `json:"recommendationMessage"`
	Justification         string         `json:"justification"`
	UpgradeConditions     []string       `json:"upgradeConditions"`

	DomainScores []DomainScore `json:"domainScores"`
	Alerts       []Alert       `json:"alerts"`

	DataQuality DataQuality `json:"dataQuality"`
	TrustScore  int         `json:"trustScore"`
	TrustLevel  TrustLevel  `json:"trustLevel"`

	TopPriorities []PriorityItem `json:"topPriorities"`
	QuickWins     []PriorityItem `json:"quickWins"`
	HighRisk      []PriorityItem `json:"highRisk"`

	Inconsistencies []Inconsistency `json:"inconsistencies"`

	CoverageProgramme *CoverageProgramme `json:"coverageProgramme,omitempty"`
}
