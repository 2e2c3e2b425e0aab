package stage

// Tag thresholds.
const (
	tagNSPDiscoverMin    = 60 // nspPct above this -> "À découvrir"
	tagConfusionsMax     = 35 // precision at or below this -> "Confusions"
	tagMasteryPrecision  = 80
	tagMasteryConfidence = 60
)

// ComputeCategoryTag derives the diagnostic tag for a category. Precedence,
// first match wins:
//
//  1. Bases Fragiles: overrides everything, even high precision.
//  2. À découvrir: mostly unanswered (nspPct > 60).
//  3. Confusions: low precision among what was attempted.
//  4. Maîtrisé: high precision with high confidence.
//  5. Profil intermédiaire: everything else.
func ComputeCategoryTag(precision, confidence, nspPct int, basesFragiles bool) Tag {
	switch {
	case basesFragiles:
		return TagBasesFragiles
	case nspPct > tagNSPDiscoverMin:
		return TagADecouvrir
	case precision <= tagConfusionsMax:
		return TagConfusions
	case precision >= tagMasteryPrecision && confidence >= tagMasteryConfidence:
		return TagMaitrise
	default:
		return TagIntermediaire
	}
}
