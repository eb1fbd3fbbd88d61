// internal/models/recommendation.go
package models

// QuizRecommendation is the reduced occupation record returned for the
// quiz path: the occupation fields plus traversal position and match score.
type QuizRecommendation struct {
	Title              string   `json:"title"`
	Code               string   `json:"code"`
	Cluster            string   `json:"cluster"`
	Group              string   `json:"group"`
	SkillsRequired     []string `json:"skills_required"`
	EducationPath      []string `json:"education_path"`
	ExamsRequired      []string `json:"exams_required"`
	JKColleges         []string `json:"jk_colleges"`
	TopColleges        []string `json:"top_colleges"`
	Values             []string `json:"values"`
	LocalOpportunities []string `json:"local_opportunities"`
	GovtJobs           []string `json:"govt_jobs"`
	MatchScore         float64  `json:"matchScore"`
}

// ProfileRecommendation is the full occupation record returned for the
// profile path, with score, reasons and the 0-100 match percentage.
type ProfileRecommendation struct {
	Career
	Score           float64  `json:"score"`
	Reasons         []string `json:"reasons"`
	MatchPercentage float64  `json:"matchPercentage"`
}

// Insight is a derived, human-readable summary statistic.
type Insight struct {
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
}

// Insight type tags.
const (
	InsightCompletion      = "completion"
	InsightWarning         = "warning"
	InsightClusterAnalysis = "cluster_analysis"
	InsightSkillGaps       = "skill_gaps"
	InsightEducation       = "education_requirements"
)

// QuizResult is the payload returned by the quiz scoring entry point.
type QuizResult struct {
	Recommendations []QuizRecommendation `json:"recommendations"`
	Insights        []Insight            `json:"insights"`
	TotalQuestions  int                  `json:"totalQuestions"`
	Grade           string               `json:"grade"`
}

// ProfileResult is the payload returned by the profile scoring entry point.
type ProfileResult struct {
	Recommendations []ProfileRecommendation `json:"recommendations"`
	Insights        []Insight               `json:"insights"`
	TotalAnalyzed   int                     `json:"totalAnalyzed"`
}

// TrendingCareer is a career flagged by the trending keyword heuristic.
type TrendingCareer struct {
	Career
	TrendingReason string `json:"trendingReason"`
}
