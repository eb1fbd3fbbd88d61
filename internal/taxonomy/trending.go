// internal/taxonomy/trending.go
package taxonomy

import (
	"aagaz-backend/internal/models"
)

// trendingKeywords drive the demand heuristic: a career whose title or
// required skills mention one of these is flagged as trending.
var trendingKeywords = []string{"AI", "Data", "Machine Learning", "Cloud", "Cybersecurity", "Digital"}

const trendingReason = "High demand in current market"

// TrendingCareers returns up to max trending careers in traversal order,
// plus the total number of careers that matched the heuristic.
func (s *Store) TrendingCareers(max int) ([]models.TrendingCareer, int, error) {
	careers, err := s.Careers()
	if err != nil {
		return nil, 0, err
	}

	var trending []models.TrendingCareer
	for _, career := range careers {
		if !isTrending(career) {
			continue
		}
		trending = append(trending, models.TrendingCareer{
			Career:         career,
			TrendingReason: trendingReason,
		})
	}

	total := len(trending)
	if max > 0 && len(trending) > max {
		trending = trending[:max]
	}
	return trending, total, nil
}

func isTrending(career models.Career) bool {
	for _, keyword := range trendingKeywords {
		if containsFold(career.Title, keyword) {
			return true
		}
		for _, skill := range career.SkillsRequired {
			if containsFold(skill, keyword) {
				return true
			}
		}
	}
	return false
}
