// internal/scoring/profile.go
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"aagaz-backend/internal/models"
)

// Scoring weights for the profile path. No hard gate here; any occupation
// with a positive total is a candidate.
const (
	weightInterest  = 3.0
	weightUserSkill = 2.0
	weightEducation = 2.0
	weightLocality  = 1.0
	weightGoal      = 2.0
)

const localityReason = "Available in Jammu & Kashmir"

// fuzzyMatch is the loose comparison used throughout profile scoring:
// case-fold, then substring containment in either direction. Intentionally
// no tokenization or stemming; tightening it would change scores.
func fuzzyMatch(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func fuzzyMatchAny(candidate string, terms []string) bool {
	for _, term := range terms {
		if fuzzyMatch(candidate, term) {
			return true
		}
	}
	return false
}

// scoreProfileCandidates scores every occupation in traversal order against
// the profile and drops zero-score results. region is the home region the
// locality bonus applies to; an empty profile location defaults to it.
func scoreProfileCandidates(tax *models.Taxonomy, profile models.Profile, region string) []models.ProfileRecommendation {
	location := profile.Location
	if location == "" {
		location = region
	}
	local := location == region

	var candidates []models.ProfileRecommendation
	for _, cluster := range tax.Clusters {
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				career := models.Career{
					Occupation: occ,
					Cluster:    cluster.Name,
					Group:      group.GroupName,
				}
				if rec, ok := scoreCareer(career, profile, local); ok {
					candidates = append(candidates, rec)
				}
			}
		}
	}
	return candidates
}

func scoreCareer(career models.Career, profile models.Profile, local bool) (models.ProfileRecommendation, bool) {
	var score float64
	var reasons []string

	if len(profile.Interests) > 0 {
		var matched []string
		for _, value := range career.Values {
			if fuzzyMatchAny(value, profile.Interests) {
				matched = append(matched, value)
			}
		}
		if len(matched) > 0 {
			score += float64(len(matched)) * weightInterest
			reasons = append(reasons, fmt.Sprintf("Matches your interests: %s", strings.Join(matched, ", ")))
		}
	}

	if len(profile.Skills) > 0 {
		var matched []string
		for _, skill := range career.SkillsRequired {
			if fuzzyMatchAny(skill, profile.Skills) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			score += float64(len(matched)) * weightUserSkill
			reasons = append(reasons, fmt.Sprintf("Matches your skills: %s", strings.Join(matched, ", ")))
		}
	}

	if profile.EducationLevel != "" && educationCompatible(career.EducationPath, profile.EducationLevel) {
		score += weightEducation
		reasons = append(reasons, "Compatible with your education level")
	}

	if local && len(career.JKColleges) > 0 {
		score += weightLocality
		reasons = append(reasons, localityReason)
	}

	if len(profile.CareerGoals) > 0 {
		var matched []string
		for _, goal := range profile.CareerGoals {
			if containsLower(career.Title, goal) || containsLower(career.Group, goal) || containsLower(career.Cluster, goal) {
				matched = append(matched, goal)
			}
		}
		if len(matched) > 0 {
			score += float64(len(matched)) * weightGoal
			reasons = append(reasons, fmt.Sprintf("Aligns with your career goals: %s", strings.Join(matched, ", ")))
		}
	}

	if score <= 0 {
		return models.ProfileRecommendation{}, false
	}

	pct := score / 10 * 100
	if pct > 100 {
		pct = 100
	}
	return models.ProfileRecommendation{
		Career:          career,
		Score:           score,
		Reasons:         reasons,
		MatchPercentage: pct,
	}, true
}

// educationCompatible checks the profile's education level against each path
// entry. The only aliases are "12th" implying readiness for bachelor
// programs and "graduate" implying master programs; nothing else is mapped.
func educationCompatible(paths []string, level string) bool {
	lowerLevel := strings.ToLower(level)
	for _, path := range paths {
		lowerPath := strings.ToLower(path)
		if strings.Contains(lowerPath, lowerLevel) {
			return true
		}
		if level == "12th" && strings.Contains(lowerPath, "bachelor") {
			return true
		}
		if level == "graduate" && strings.Contains(lowerPath, "master") {
			return true
		}
	}
	return false
}

func containsLower(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// rankProfile sorts candidates by score descending, stable so equal scores
// keep taxonomy traversal order, and truncates to topN.
func rankProfile(candidates []models.ProfileRecommendation, topN int) []models.ProfileRecommendation {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
