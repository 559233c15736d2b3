package topic

// Topic is one of the four fixed subject categories partitioning the
// question bank.
type Topic struct {
	ID       string
	Name     string
	DataFile string
}

// IDs of the four recognized topics, in display order.
const (
	Algebra        = "algebra"
	AdvancedMath   = "advanced_math"
	ProblemSolving = "problem_solving"
	Geometry       = "geometry"
)

// All returns the fixed topic list in display order.
func All() []Topic {
	return []Topic{
		{ID: Algebra, Name: "Algebra", DataFile: "algebra.json"},
		{ID: AdvancedMath, Name: "Advanced Math", DataFile: "advanced_math.json"},
		{ID: ProblemSolving, Name: "Problem Solving & Data Analysis", DataFile: "problem_solving.json"},
		{ID: Geometry, Name: "Geometry & Trigonometry", DataFile: "geometry.json"},
	}
}

// ByID returns the topic with the given id, or false if the id is not one
// of the four recognized topics.
func ByID(id string) (Topic, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// IsValid reports whether id names a recognized topic.
func IsValid(id string) bool {
	_, ok := ByID(id)
	return ok
}
