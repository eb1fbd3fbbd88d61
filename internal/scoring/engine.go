// internal/scoring/engine.go
package scoring

import (
	"context"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/common/metrics"
	"aagaz-backend/internal/models"
)

// DataSource is what the engine needs from the taxonomy store.
type DataSource interface {
	Taxonomy() (*models.Taxonomy, error)
	Quiz(grade string) (*models.Quiz, error)
}

// Engine turns quiz answers or a free-form profile into ranked career
// recommendations with insights. Both entry points are pure over their
// inputs and the taxonomy snapshot, so concurrent calls are safe.
type Engine struct {
	source      DataSource
	logger      logger.Logger
	region      string
	quizTopN    int
	profileTopN int
}

func NewEngine(source DataSource, cfg config.DataConfig, log logger.Logger) *Engine {
	region := cfg.Region
	if region == "" {
		region = models.DefaultRegion
	}
	return &Engine{
		source:      source,
		logger:      log,
		region:      region,
		quizTopN:    cfg.QuizTopN,
		profileTopN: cfg.ProfileTopN,
	}
}

// ScoreQuiz scores submitted quiz answers for a grade and returns the top
// recommendations with a completion insight. An unknown grade is an
// InvalidGrade error; data load failures propagate unchanged.
func (e *Engine) ScoreQuiz(ctx context.Context, grade string, answers []models.Answer) (*models.QuizResult, error) {
	if !models.IsValidGrade(grade) {
		return nil, errors.NewInvalidGradeError(grade)
	}

	quiz, err := e.source.Quiz(grade)
	if err != nil {
		return nil, err
	}
	tax, err := e.source.Taxonomy()
	if err != nil {
		return nil, err
	}

	signals, answered := aggregate(quiz, answers)
	candidates := scoreQuizCandidates(tax, signals)
	recommendations := rankQuiz(candidates, e.quizTopN)

	e.logger.Info("Quiz scored", map[string]interface{}{
		"grade":           grade,
		"answers":         len(answers),
		"candidates":      len(candidates),
		"recommendations": len(recommendations),
	})
	metrics.RecommendationsGenerated.WithLabelValues("quiz").Inc()

	return &models.QuizResult{
		Recommendations: recommendations,
		Insights:        quizInsights(answered, len(quiz.Questions)),
		TotalQuestions:  len(quiz.Questions),
		Grade:           grade,
	}, nil
}

// ScoreProfile scores every occupation against a free-form profile. Empty
// profile fields score zero for their term; they are never errors.
func (e *Engine) ScoreProfile(ctx context.Context, profile models.Profile) (*models.ProfileResult, error) {
	tax, err := e.source.Taxonomy()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, cluster := range tax.Clusters {
		for _, group := range cluster.Groups {
			total += len(group.Occupations)
		}
	}

	candidates := scoreProfileCandidates(tax, profile, e.region)
	recommendations := rankProfile(candidates, e.profileTopN)

	e.logger.Info("Profile scored", map[string]interface{}{
		"analyzed":        total,
		"candidates":      len(candidates),
		"recommendations": len(recommendations),
	})
	metrics.RecommendationsGenerated.WithLabelValues("profile").Inc()

	return &models.ProfileResult{
		Recommendations: recommendations,
		Insights:        profileInsights(recommendations, profile.Skills),
		TotalAnalyzed:   total,
	}, nil
}
