package spectral

import (
	"fmt"
)

// Narrative templates. Kept as enumerated constants so each variant is
// independently testable instead of being assembled ad hoc.
const (
	summaryInsufficient = "Not enough cyclical structure was found in %s over the requested window to identify dominant cycles."

	summaryPrimary = "%s shows a dominant cycle of roughly %.1f days (amplitude %.2f) over the %s window."

	summarySecondary = " A secondary cycle of about %.1f days (amplitude %.2f) is also present."

	summaryNoSecondary = " No secondary cycle is prominent."

	summaryAdvice = " Traders may plan entries and exits around these recurring periods."
)

// Summarize renders a narrative description of the dominant cycles for
// an asset. It is a pure formatting function: no computation beyond
// string templating, and its inputs are never mutated.
func Summarize(assetLabel string, cycles []DominantCycle, rangeLabel string) string {
	if len(cycles) == 0 {
		return fmt.Sprintf(summaryInsufficient, assetLabel)
	}

	primary := cycles[0]
	text := fmt.Sprintf(summaryPrimary, assetLabel, primary.PeriodDays, primary.Amplitude, rangeLabel)

	if len(cycles) > 1 {
		secondary := cycles[1]
		text += fmt.Sprintf(summarySecondary, secondary.PeriodDays, secondary.Amplitude)
	} else {
		text += summaryNoSecondary
	}

	return text + summaryAdvice
}
