// Package diagnostic defines the input data model for the competency-based
// scoring engine: per-skill self-assessment records grouped by domain, plus
// the exam-preparation block (mini-test, self-ratings, signals) and the
// contextual sections the questionnaire collects.
package diagnostic

// Status represents a competency's study status as declared by the student.
type Status string

const (
	StatusStudied    Status = "studied"
	StatusInProgress Status = "in_progress"
	StatusNotStudied Status = "not_studied"
	StatusUnknown    Status = "unknown"
)

// Feeling is the student's declared feeling after the mini-test.
type Feeling string

const (
	FeelingPanic    Feeling = "panic"
	FeelingStressed Feeling = "stressed"
	FeelingOK       Feeling = "ok"
)

// CompetencyRecord is one self-assessed skill. Mastery, confidence and
// friction are nullable: mastery is required iff the status is studied or
// in_progress, and a studied record with nil mastery is an inconsistency
// the engine flags rather than rejects.
type CompetencyRecord struct {
	SkillID    string   `json:"skillId"`
	SkillLabel string   `json:"skillLabel"`
	Status     Status   `json:"status"`
	Mastery    *int     `json:"mastery"`    // 0-4
	Confidence *int     `json:"confidence"` // 0-3
	Friction   *int     `json:"friction"`   // 0-3
	ErrorTypes []string `json:"errorTypes"`
	Evidence   string   `json:"evidence"`
}

// Evaluated reports whether this record counts as evaluated:
// studied or in_progress with a non-nil mastery.
func (c *CompetencyRecord) Evaluated() bool {
	return (c.Status == StatusStudied || c.Status == StatusInProgress) && c.Mastery != nil
}

// MiniTest holds the timed automatism mini-test outcome (score out of 6).
type MiniTest struct {
	Score           int   `json:"score"`
	TimeUsedMinutes int   `json:"timeUsedMinutes"`
	CompletedInTime *bool `json:"completedInTime"`
}

// SelfRatings are the student's 0-4 self-assessments on exam skills.
type SelfRatings struct {
	SpeedNoCalc     int `json:"speedNoCalc"`
	CalcReliability int `json:"calcReliability"`
	Redaction       int `json:"redaction"`
	Justifications  int `json:"justifications"`
	Stress          int `json:"stress"`
}

// Signals are qualitative signals collected alongside the mini-test.
type Signals struct {
	HardestItems      []int   `json:"hardestItems"`
	DominantErrorType string  `json:"dominantErrorType,omitempty"`
	VerifiedAnswers   *bool   `json:"verifiedAnswers"`
	Feeling           Feeling `json:"feeling,omitempty"`
}

// ExamPrep groups everything the questionnaire collects about exam readiness.
type ExamPrep struct {
	MiniTest     MiniTest    `json:"miniTest"`
	SelfRatings  SelfRatings `json:"selfRatings"`
	Signals      Signals     `json:"signals"`
	ZeroSubjects string      `json:"zeroSubjects,omitempty"`
	MainRisk     string      `json:"mainRisk,omitempty"`
}

// Identity is contextual only; it never affects scoring.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city,omitempty"`
}

// SchoolContext describes the student's school situation.
type SchoolContext struct {
	Establishment string `json:"establishment,omitempty"`
	MathTrack     string `json:"mathTrack,omitempty"`
	MathTeacher   string `json:"mathTeacher,omitempty"`
	ClassSize     string `json:"classSize,omitempty"`
}

// Performance holds declared grades, as free-form strings on the form.
type Performance struct {
	GeneralAverage string `json:"generalAverage,omitempty"`
	MathAverage    string `json:"mathAverage,omitempty"`
	LastTestScore  string `json:"lastTestScore,omitempty"`
	ClassRanking   string `json:"classRanking,omitempty"`
}

// Methodology describes work habits; a few fields feed informational alerts.
type Methodology struct {
	LearningStyle    string   `json:"learningStyle,omitempty"`
	ProblemReflex    string   `json:"problemReflex,omitempty"`
	WeeklyWork       string   `json:"weeklyWork,omitempty"`
	MaxConcentration string   `json:"maxConcentration,omitempty"`
	ErrorTypes       []string `json:"errorTypes,omitempty"`
}

// Ambition is contextual only; it never affects scoring.
type Ambition struct {
	TargetMention string `json:"targetMention,omitempty"`
	PostBac       string `json:"postBac,omitempty"`
	Pallier2Pace  string `json:"pallier2Pace,omitempty"`
}

// FreeText carries the open-ended answers, passed through untouched.
type FreeText struct {
	MustImprove           string `json:"mustImprove,omitempty"`
	InvisibleDifficulties string `json:"invisibleDifficulties,omitempty"`
	Message               string `json:"message,omitempty"`
}

// ChapterSelection is the student's declared programme progress, referencing
// chapter IDs from the scoring policy's chapter registry. Nil when the
// questionnaire did not collect it.
type ChapterSelection struct {
	Selected   []string `json:"selected"`
	InProgress []string `json:"inProgress"`
}

// Data is the full diagnostic payload for one student.
type Data struct {
	Version     string `json:"version,omitempty"`
	SubmittedAt string `json:"submittedAt,omitempty"`

	Identity      Identity      `json:"identity"`
	SchoolContext SchoolContext `json:"schoolContext"`
	Performance   Performance   `json:"performance"`

	// Competencies maps a domain key (algebra, analysis, ...) to its
	// records. Keys outside the policy's domain registry are ignored.
	Competencies map[string][]CompetencyRecord `json:"competencies"`

	ExamPrep    ExamPrep    `json:"examPrep"`
	Methodology Methodology `json:"methodology"`
	Ambition    Ambition    `json:"ambition"`
	FreeText    FreeText    `json:"freeText"`

	Chapters *ChapterSelection `json:"chapters,omitempty"`
}

// AllCompetencies flattens the competency map in the given domain order,
// pairing each record with its domain key. Domains absent from the order
// are skipped, keeping iteration deterministic.
func (d *Data) AllCompetencies(domainOrder []string) []DomainRecord {
	var out []DomainRecord
	for _, domain := range domainOrder {
		for i := range d.Competencies[domain] {
			out = append(out, DomainRecord{Domain: domain, Record: &d.Competencies[domain][i]})
		}
	}
	return out
}

// DomainRecord pairs a competency record with its domain key.
type DomainRecord struct {
	Domain string
	Record *CompetencyRecord
}
