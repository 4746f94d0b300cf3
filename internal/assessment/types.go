package assessment

// Difficulty labels a question's difficulty tag.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Question is a single multiple-choice question within a definition.
// Question ids are stable for the lifetime of a session.
type Question struct {
	ID         string     `json:"id"`
	Skill      string     `json:"skill"`
	Difficulty Difficulty `json:"difficulty"`
	Prompt     string     `json:"prompt"`
	Options    []string   `json:"options"`

	// AnswerIndex is the correct option index. It is only consulted by the
	// offline scorer; the remote scoring service keeps its own key.
	AnswerIndex int `json:"answer_index"`
}

// Definition is an immutable assessment: ordered questions plus a time limit.
type Definition struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	DurationSecs int        `json:"duration_secs"`
	Questions    []Question `json:"questions"`
}

// QuestionByID returns the question with the given id, or nil.
func (d *Definition) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// Skills returns the distinct skill tags in question order.
func (d *Definition) Skills() []string {
	seen := make(map[string]bool)
	var skills []string
	for _, q := range d.Questions {
		if !seen[q.Skill] {
			seen[q.Skill] = true
			skills = append(skills, q.Skill)
		}
	}
	return skills
}
