package stage

import (
	"fmt"
	"strings"
)

// Diagnostic text score bands.
const (
	textSolidMin        = 75
	textIntermediateMin = 50
	textLowConfidence   = 50
)

// diagnosticText assembles the narrative summary from the score bands, the
// confidence caveat, and the strengths/weaknesses/fragile sections.
func diagnosticText(globalScore, confidenceIndex int, strengths, weaknesses []string, fragiles []BasesFragilesFlag) string {
	var parts []string

	switch {
	case globalScore >= textSolidMin:
		parts = append(parts, fmt.Sprintf("Score global de %d/100 — niveau solide.", globalScore))
	case globalScore >= textIntermediateMin:
		parts = append(parts, fmt.Sprintf("Score global de %d/100 — niveau intermédiaire, des axes de progression identifiés.", globalScore))
	default:
		parts = append(parts, fmt.Sprintf("Score global de %d/100 — des lacunes significatives à combler.", globalScore))
	}

	if confidenceIndex < textLowConfidence {
		parts = append(parts, fmt.Sprintf("Indice de confiance faible (%d%%) — l'élève a préféré ne pas répondre à de nombreuses questions.", confidenceIndex))
	}

	if len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Points forts : %s.", strings.Join(strengths, ", ")))
	}
	if len(weaknesses) > 0 {
		parts = append(parts, fmt.Sprintf("Points faibles : %s.", strings.Join(weaknesses, ", ")))
	}

	if len(fragiles) > 0 {
		msgs := make([]string, len(fragiles))
		for i, f := range fragiles {
			msgs[i] = f.Message
		}
		parts = append(parts, "Attention : "+strings.Join(msgs, " | "))
	}

	return strings.Join(parts, " ")
}

// LucidityText rates how lucidly the student assessed their own knowledge,
// crossing the confidence index (willingness to attempt) with the precision
// index (success among attempts).
func LucidityText(confidenceIndex, precisionIndex int) string {
	switch {
	case confidenceIndex >= 80 && precisionIndex >= 70:
		return "L'élève fait preuve d'assurance et de maîtrise — profil solide."
	case confidenceIndex >= 80 && precisionIndex < 50:
		return "L'élève tente beaucoup mais commet de nombreuses erreurs — fausses représentations à corriger."
	case confidenceIndex < 40 && precisionIndex >= 70:
		return "L'élève fait preuve d'une grande lucidité sur ses lacunes — ce qu'il tente, il le réussit."
	case confidenceIndex < 40 && precisionIndex < 50:
		return "L'élève hésite beaucoup et commet des erreurs — accompagnement prioritaire nécessaire."
	case confidenceIndex < 60:
		return "L'élève identifie ses zones d'incertitude — lucidité partielle, à approfondir en séance."
	default:
		return "Profil intermédiaire — des acquis solides mais des zones de fragilité à cibler."
	}
}
