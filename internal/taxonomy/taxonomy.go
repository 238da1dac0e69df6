// Package taxonomy holds the fixed catalog of cognitive-error categories
// used to steer distractor generation. Entries are static reference data,
// loaded once per process.
package taxonomy

// Category is the high-level family of an integration error.
type Category string

const (
	CategoryAlgebraic     Category = "algebraic"
	CategoryCalculus      Category = "calculus_specific"
	CategoryTrigonometric Category = "trigonometric"
	CategoryNotational    Category = "notational"
	CategoryConceptual    Category = "conceptual"
)

// categoryPriority orders categories by decreasing pedagogical signal.
// Used as the tie-breaker when ranked distractor scores are equal.
var categoryPriority = map[Category]int{
	CategoryAlgebraic:     0,
	CategoryCalculus:      1,
	CategoryTrigonometric: 2,
	CategoryNotational:    3,
	CategoryConceptual:    4,
}

// Priority returns the rank of a category (lower is higher priority).
// Unknown categories sort last.
func Priority(c Category) int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return len(categoryPriority)
}

// ErrorType defines a specific student-error pattern.
type ErrorType struct {
	ID             string
	Name           string
	Category       Category
	Description    string
	ExampleCorrect string
	ExampleWrong   string

	// Applicability lists the integral types this error applies to.
	// The sentinel "all" matches everything.
	Applicability []string

	// Frequency estimates how common this error is among students (0-1).
	Frequency float64
}

// registry indexes error types by ID.
var registry map[string]*ErrorType

// byCategory indexes error types by category.
var byCategory map[Category][]*ErrorType

func init() {
	registry = make(map[string]*ErrorType, len(seedErrors))
	byCategory = make(map[Category][]*ErrorType)
	for i := range seedErrors {
		e := &seedErrors[i]
		registry[e.ID] = e
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
}

// Get returns an error type by ID, or nil if not found.
func Get(id string) *ErrorType {
	return registry[id]
}

// ByCategory returns all error types in a category.
func ByCategory(c Category) []*ErrorType {
	return byCategory[c]
}

// All returns every error type in the taxonomy, in seed order.
func All() []*ErrorType {
	result := make([]*ErrorType, 0, len(seedErrors))
	for i := range seedErrors {
		result = append(result, &seedErrors[i])
	}
	return result
}

// appliesTo reports whether the error is relevant to the integral type.
func (e *ErrorType) appliesTo(integralType string) bool {
	for _, a := range e.Applicability {
		if a == "all" || a == integralType {
			return true
		}
	}
	return false
}

// Applicable filters the taxonomy by integral type and difficulty.
// Easy questions only get high-frequency errors (the mistakes nearly every
// student makes); harder questions admit rarer patterns.
func Applicable(integralType, difficulty string) []*ErrorType {
	var minFreq float64
	switch difficulty {
	case "easy":
		minFreq = 0.6
	case "medium":
		minFreq = 0.4
	default: // hard
		minFreq = 0
	}

	var applicable []*ErrorType
	for i := range seedErrors {
		e := &seedErrors[i]
		if e.appliesTo(integralType) && e.Frequency >= minFreq {
			applicable = append(applicable, e)
		}
	}
	return applicable
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	_, ok := categoryPriority[Category(s)]
	return ok
}
