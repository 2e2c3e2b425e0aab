// Package stage implements the weight-tiered QCM scorer: a pure function
// over (question metadata, student answers) producing the global, confidence
// and precision indices, per-category scores with diagnostic tags, radar
// data, Bases Fragiles flags, the NSI error breakdown, and the assembled
// diagnostic text.
package stage

// Subject is the discipline a question belongs to. Subjects are never
// blended: a Maths category and an NSI category score independently.
type Subject string

const (
	SubjectMaths Subject = "MATHS"
	SubjectNSI   Subject = "NSI"
)

// Competence is the tested competency level (simplified Bloom taxonomy).
type Competence string

const (
	CompetenceRestituer Competence = "Restituer"
	CompetenceAppliquer Competence = "Appliquer"
	CompetenceRaisonner Competence = "Raisonner"
)

// Question weight tiers. W1 is basic, W3 expert.
const (
	WeightBasic        = 1
	WeightIntermediate = 2
	WeightExpert       = 3
)

// NSIErrorType classifies an incorrect NSI answer.
type NSIErrorType string

const (
	NSIErrorSyntax     NSIErrorType = "syntax"
	NSIErrorLogic      NSIErrorType = "logic"
	NSIErrorConceptual NSIErrorType = "conceptual"
)

// AnswerStatus is what the student did with one question. NSP ("ne sait
// pas") earns zero credit but is never penalized beyond that.
type AnswerStatus string

const (
	AnswerCorrect   AnswerStatus = "correct"
	AnswerIncorrect AnswerStatus = "incorrect"
	AnswerNSP       AnswerStatus = "nsp"
)

// QuestionMetadata describes one QCM question.
type QuestionMetadata struct {
	ID           string       `json:"id"`
	Subject      Subject      `json:"subject"`
	Category     string       `json:"category"`
	Competence   Competence   `json:"competence"`
	Weight       int          `json:"weight"` // 1-3
	NSIErrorType NSIErrorType `json:"nsiErrorType,omitempty"`
	Label        string       `json:"label"`
}

// StudentAnswer is one answer. Answers referencing unknown question IDs are
// ignored; questions with no matching answer count as NSP.
type StudentAnswer struct {
	QuestionID string       `json:"questionId"`
	Status     AnswerStatus `json:"status"`
}

// Tag is the automatic diagnostic tag for a category.
type Tag string

const (
	TagBasesFragiles Tag = "Bases Fragiles"
	TagADecouvrir    Tag = "À découvrir"
	TagConfusions    Tag = "Confusions"
	TagMaitrise      Tag = "Maîtrisé"
	TagIntermediaire Tag = "Profil intermédiaire"
)

// CategoryScore is the breakdown for one (subject, category) pair.
type CategoryScore struct {
	Category           string  `json:"category"`
	Subject            Subject `json:"subject"`
	Precision          int     `json:"precision"`
	Confidence         int     `json:"confidence"`
	TotalQuestions     int     `json:"totalQuestions"`
	AttemptedQuestions int     `json:"attemptedQuestions"`
	CorrectAnswers     int     `json:"correctAnswers"`
	IncorrectAnswers   int     `json:"incorrectAnswers"`
	NSPAnswers         int     `json:"nspAnswers"`
	WeightedScore      int     `json:"weightedScore"`
	WeightedMax        int     `json:"weightedMax"`
	Tag                Tag     `json:"tag"`
}

// RadarPoint is one visualization point per category.
type RadarPoint struct {
	Subject    string `json:"subject"`
	Score      int    `json:"score"`
	Confidence int    `json:"confidence"`
}

// NSIErrorBreakdown counts incorrect NSI answers per error type.
type NSIErrorBreakdown struct {
	SyntaxErrors     int `json:"syntaxErrors"`
	LogicErrors      int `json:"logicErrors"`
	ConceptualErrors int `json:"conceptualErrors"`
	TotalErrors      int `json:"totalErrors"`
}

// BasesFragilesFlag marks a category where the basic tier fails while the
// expert tier passes: fundamentals shaky despite surface success.
type BasesFragilesFlag struct {
	Category     string `json:"category"`
	BasicsFailed int    `json:"basicsFailed"`
	ExpertPassed int    `json:"expertPassed"`
	Message      string `json:"message"`
}

// Result is the complete stage scoring output, a pure value object.
// Invariants: TotalQuestions = TotalCorrect + TotalIncorrect + TotalNSP and
// TotalAttempted = TotalCorrect + TotalIncorrect.
type Result struct {
	GlobalScore     int `json:"globalScore"`
	ConfidenceIndex int `json:"confidenceIndex"`
	PrecisionIndex  int `json:"precisionIndex"`

	TotalQuestions int `json:"totalQuestions"`
	TotalAttempted int `json:"totalAttempted"`
	TotalCorrect   int `json:"totalCorrect"`
	TotalIncorrect int `json:"totalIncorrect"`
	TotalNSP       int `json:"totalNSP"`

	CategoryScores []CategoryScore `json:"categoryScores"`
	RadarData      []RadarPoint    `json:"radarData"`

	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`

	BasesFragiles []BasesFragilesFlag `json:"basesFragiles"`
	NSIErrors     *NSIErrorBreakdown  `json:"nsiErrors"`

	DiagnosticText string `json:"diagnosticText"`
	LucidityText   string `json:"lucidityText"`
}
