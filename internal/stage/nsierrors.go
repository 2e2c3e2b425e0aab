package stage

// computeNSIErrors breaks down incorrect NSI answers by error type.
// Only called when at least one NSI question exists; Maths-only inputs keep
// the breakdown nil.
func computeNSIErrors(status map[string]AnswerStatus, questions []QuestionMetadata) *NSIErrorBreakdown {
	var b NSIErrorBreakdown
	for i := range questions {
		q := &questions[i]
		if q.Subject != SubjectNSI || status[q.ID] != AnswerIncorrect {
			continue
		}
		switch q.NSIErrorType {
		case NSIErrorSyntax:
			b.SyntaxErrors++
		case NSIErrorLogic:
			b.LogicErrors++
		case NSIErrorConceptual:
			b.ConceptualErrors++
		default:
			continue
		}
		b.TotalErrors++
	}
	return &b
}
