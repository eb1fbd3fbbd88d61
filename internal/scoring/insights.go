// internal/scoring/insights.go
package scoring

import (
	"fmt"
	"strings"

	"aagaz-backend/internal/models"
)

// quizInsights emits the completion insight: the fraction of quiz questions
// the user answered with at least one selection. A quiz with zero questions
// yields confidence 0 rather than a division error.
func quizInsights(answered, totalQuestions int) []models.Insight {
	confidence := 0.0
	if totalQuestions > 0 {
		confidence = float64(answered) / float64(totalQuestions)
	}
	return []models.Insight{{
		Type:       models.InsightCompletion,
		Message:    fmt.Sprintf("You answered %d out of %d questions", answered, totalQuestions),
		Confidence: confidence,
	}}
}

// profileInsights derives secondary analytics over the ranked top-N set.
// Every pass iterates the recommendations in ranked order so repeated calls
// produce identical output.
func profileInsights(recommendations []models.ProfileRecommendation, userSkills []string) []models.Insight {
	if len(recommendations) == 0 {
		return []models.Insight{{
			Type:       models.InsightWarning,
			Message:    "No specific recommendations found. Consider exploring different career paths or updating your profile.",
			Suggestion: "Try taking our career quiz to discover new interests and skills.",
		}}
	}

	insights := []models.Insight{clusterConcentration(recommendations)}

	if gap := skillGaps(recommendations, userSkills); gap != nil {
		insights = append(insights, *gap)
	}
	if edu := educationSummary(recommendations); edu != nil {
		insights = append(insights, *edu)
	}
	return insights
}

// clusterConcentration reports the most common cluster among the top-N.
// Ties go to the cluster encountered first in ranked order; this is an
// arbitrary but fixed rule.
func clusterConcentration(recommendations []models.ProfileRecommendation) models.Insight {
	counts := make(map[string]int)
	var order []string
	for _, rec := range recommendations {
		if counts[rec.Cluster] == 0 {
			order = append(order, rec.Cluster)
		}
		counts[rec.Cluster]++
	}

	top := order[0]
	for _, cluster := range order[1:] {
		if counts[cluster] > counts[top] {
			top = cluster
		}
	}

	return models.Insight{
		Type:       models.InsightClusterAnalysis,
		Message:    fmt.Sprintf("Most of your recommendations are in %s", top),
		Confidence: float64(counts[top]) / float64(len(recommendations)),
	}
}

// skillGaps lists up to three required skills the user has not claimed,
// in the order they first appear across the ranked recommendations.
func skillGaps(recommendations []models.ProfileRecommendation, userSkills []string) *models.Insight {
	seen := make(map[string]struct{})
	var gaps []string
	for _, rec := range recommendations {
		for _, skill := range rec.SkillsRequired {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			if !fuzzyMatchAny(skill, userSkills) {
				gaps = append(gaps, skill)
			}
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	return &models.Insight{
		Type:       models.InsightSkillGaps,
		Message:    fmt.Sprintf("Consider developing these skills: %s", strings.Join(gaps, ", ")),
		Suggestion: "Look for online courses or training programs to build these skills.",
	}
}

// educationSummary buckets education_path entries into degree levels. The
// first matching rule wins per entry and unclassifiable entries are dropped;
// no insight is emitted when nothing classifies.
func educationSummary(recommendations []models.ProfileRecommendation) *models.Insight {
	seen := make(map[string]struct{})
	var levels []string
	add := func(level string) {
		if _, ok := seen[level]; !ok {
			seen[level] = struct{}{}
			levels = append(levels, level)
		}
	}

	for _, rec := range recommendations {
		for _, path := range rec.EducationPath {
			lower := strings.ToLower(path)
			switch {
			case strings.Contains(lower, "master"):
				add("Master's")
			case strings.Contains(lower, "bachelor"), strings.Contains(lower, "b.tech"):
				add("Bachelor's")
			case strings.Contains(lower, "phd"):
				add("PhD")
			}
		}
	}

	if len(levels) == 0 {
		return nil
	}
	return &models.Insight{
		Type:       models.InsightEducation,
		Message:    fmt.Sprintf("Most careers require: %s", strings.Join(levels, ", ")),
		Suggestion: "Plan your educational path accordingly.",
	}
}
