package ai

import (
	"fmt"
	"strings"

	"cropwise/pkg/suitability"
)

const topN = 3

func top(results []suitability.CropSuitability) []suitability.CropSuitability {
	if len(results) > topN {
		return results[:topN]
	}
	return results
}

func renderSummaryPrompt(field suitability.FieldContext, results []suitability.CropSuitability) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize crop recommendations for field %s (%.2f ha, %s soil) in at most 8 Markdown bullet lines.\n",
		field.FieldID, field.Area, field.SoilTexture)
	b.WriteString("- Name the best crop and why, quote scores and profit.\n")
	b.WriteString("- Flag risks and the first field action to take.\n\n")
	b.WriteString("RANKED CROPS:\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s score=%.1f confidence=%.1f risk=%s profit=%.0f margin=%.1f%% challenges=%v actions=%v\n",
			i+1, r.CropName, r.SuitabilityScore, r.Confidence, r.RiskLevel, r.ExpectedProfit, r.ProfitMargin,
			r.Challenges, r.Recommendations)
	}
	return b.String()
}

func fallbackSummary(field suitability.FieldContext, results []suitability.CropSuitability) string {
	if len(results) == 0 {
		return fmt.Sprintf("**Crop outlook**\n\n- Field %s: no crops in the catalog to compare.", field.FieldID)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Crop outlook**\n\n- Field %s, %.2f ha, %s soil\n", field.FieldID, field.Area, field.SoilTexture)
	for _, r := range top(results) {
		fmt.Fprintf(&b, "- %s: score %.1f, %s risk, expected profit %.0f (%.1f%% margin)\n",
			r.CropName, r.SuitabilityScore, r.RiskLevel, r.ExpectedProfit, r.ProfitMargin)
	}
	best := results[0]
	if len(best.Recommendations) > 0 {
		fmt.Fprintf(&b, "- First step for %s: %s\n", best.CropName, best.Recommendations[0])
	}
	return strings.TrimRight(b.String(), "\n")
}
