// internal/scoring/quiz.go
package scoring

import (
	"sort"

	"aagaz-backend/internal/models"
)

// Scoring weights for the quiz path. The cluster term is also a hard gate:
// occupations in clusters with zero cluster signal are never candidates.
const (
	weightCluster = 3.0
	weightValue   = 2.0
	weightSkill   = 1.5
	weightExam    = 2.0
)

// scoreQuizCandidates walks the taxonomy in traversal order and scores every
// occupation whose cluster has a nonzero signal count. Emitted scores are
// always positive because the cluster term alone is positive.
func scoreQuizCandidates(tax *models.Taxonomy, signals *Signals) []models.QuizRecommendation {
	var candidates []models.QuizRecommendation

	for _, cluster := range tax.Clusters {
		clusterCount := signals.Clusters[cluster.Name]
		if clusterCount == 0 {
			continue
		}
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				score := float64(clusterCount) * weightCluster
				for _, value := range occ.Values {
					if n := signals.Values[value]; n > 0 {
						score += float64(n) * weightValue
					}
				}
				for _, skill := range occ.SkillsRequired {
					if n := signals.Skills[skill]; n > 0 {
						score += float64(n) * weightSkill
					}
				}
				for _, exam := range occ.ExamsRequired {
					if n := signals.Exams[exam]; n > 0 {
						score += float64(n) * weightExam
					}
				}
				if score <= 0 {
					continue
				}
				candidates = append(candidates, models.QuizRecommendation{
					Title:              occ.Title,
					Code:               occ.Code,
					Cluster:            cluster.Name,
					Group:              group.GroupName,
					SkillsRequired:     occ.SkillsRequired,
					EducationPath:      occ.EducationPath,
					ExamsRequired:      occ.ExamsRequired,
					JKColleges:         occ.JKColleges,
					TopColleges:        occ.TopColleges,
					Values:             occ.Values,
					LocalOpportunities: occ.LocalOpportunities,
					GovtJobs:           occ.GovtJobs,
					MatchScore:         score,
				})
			}
		}
	}
	return candidates
}

// rankQuiz sorts candidates by score descending and truncates to topN.
// The sort is stable so equal scores keep taxonomy traversal order.
func rankQuiz(candidates []models.QuizRecommendation, topN int) []models.QuizRecommendation {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
