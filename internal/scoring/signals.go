// internal/scoring/signals.go
package scoring

import "aagaz-backend/internal/models"

// Signals is the per-call accumulator of weighted mapping counts. Each map
// key is a taxonomy key (cluster name, value, skill or exam name) and the
// count is how many selected options pointed at it. Built fresh for every
// scoring call, never shared.
type Signals struct {
	Clusters map[string]int
	Values   map[string]int
	Skills   map[string]int
	Exams    map[string]int
}

func newSignals() *Signals {
	return &Signals{
		Clusters: make(map[string]int),
		Values:   make(map[string]int),
		Skills:   make(map[string]int),
		Exams:    make(map[string]int),
	}
}

// add tallies one resolved option's mapping lists into the accumulator.
// Repeated selections accumulate additively; there is no normalization.
func (s *Signals) add(opt models.Option) {
	for _, cluster := range opt.MapsToClusters {
		s.Clusters[cluster]++
	}
	for _, value := range opt.MapsToValues {
		s.Values[value]++
	}
	for _, skill := range opt.MapsToSkills {
		s.Skills[skill]++
	}
	for _, exam := range opt.MapsToExamsRequired {
		s.Exams[exam]++
	}
}

// aggregate resolves every answer against the quiz and tallies the mapping
// lists of each matched option. Unknown question ids and option values are
// skipped, not errors. The second return is the number of distinct questions
// answered with at least one selection, used by the completion insight;
// duplicate entries for the same question still accumulate signals but
// count as one answer, keeping confidence within [0,1].
func aggregate(quiz *models.Quiz, answers []models.Answer) (*Signals, int) {
	byID := make(map[int]*models.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		byID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	signals := newSignals()
	answeredIDs := make(map[int]struct{})
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}
		if len(answer.SelectedOptions) > 0 {
			answeredIDs[answer.QuestionID] = struct{}{}
		}
		for _, selected := range answer.SelectedOptions {
			for _, opt := range question.Options {
				if opt.Value == selected {
					signals.add(opt)
					break
				}
			}
		}
	}
	return signals, len(answeredIDs)
}
