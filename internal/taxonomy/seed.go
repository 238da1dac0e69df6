package taxonomy

// seedErrors defines the integration-error taxonomy.
// 13 error patterns across 5 categories, derived from recurring mistakes
// in student work on integration problems.
var seedErrors = []ErrorType{
	// Algebraic (3)
	{
		ID:             "alg_sign_flip",
		Name:           "Sign Error",
		Category:       CategoryAlgebraic,
		Description:    "Student changes sign incorrectly (+ becomes -, - becomes +)",
		ExampleCorrect: `-\cot(\ln x)`,
		ExampleWrong:   `\cot(\ln x)`,
		Applicability:  []string{"all"},
		Frequency:      0.7,
	},
	{
		ID:             "alg_coeff_error",
		Name:           "Missing or Wrong Coefficient",
		Category:       CategoryAlgebraic,
		Description:    "Student forgets division factor (1/n, 1/a, etc) or uses wrong value",
		ExampleCorrect: `\frac{1}{3}\tan(nx)`,
		ExampleWrong:   `\tan(nx)`,
		Applicability:  []string{"substitution", "chain_rule"},
		Frequency:      0.8,
	},
	{
		ID:             "alg_exp_error",
		Name:           "Exponent Off-by-One",
		Category:       CategoryAlgebraic,
		Description:    "Uses n+1 instead of n-1, or 1-n instead of -n",
		ExampleCorrect: `\frac{ax^{1-n}}{1-n}`,
		ExampleWrong:   `\frac{ax^{n-1}}{n-1}`,
		Applicability:  []string{"power_rule"},
		Frequency:      0.6,
	},

	// Calculus-specific (4)
	{
		ID:             "calc_chain_forgotten",
		Name:           "Chain Rule Factor Missing",
		Category:       CategoryCalculus,
		Description:    "Student integrates without including du/dx factor",
		ExampleCorrect: `\frac{1}{2}\sin^{-1}(\frac{x^2}{2})`,
		ExampleWrong:   `\sin^{-1}(\frac{x^2}{2})`,
		Applicability:  []string{"substitution", "composition"},
		Frequency:      0.9,
	},
	{
		ID:             "calc_wrong_formula",
		Name:           "Integration Formula Confusion",
		Category:       CategoryCalculus,
		Description:    "Student applies wrong standard formula (e.g., sin formula for cos)",
		ExampleCorrect: `\frac{x}{2} + \frac{\sin 2ax}{4a}`,
		ExampleWrong:   `\frac{\cos ax}{2a}`,
		Applicability:  []string{"trigonometric", "exponential"},
		Frequency:      0.5,
	},
	{
		ID:             "calc_parts_error",
		Name:           "Integration by Parts Incomplete",
		Category:       CategoryCalculus,
		Description:    "Student forgets subtraction term or reverses u and dv",
		ExampleCorrect: `x\sin x + \cos x`,
		ExampleWrong:   `x\sin x`,
		Applicability:  []string{"by_parts"},
		Frequency:      0.6,
	},
	{
		ID:             "calc_limits_reversed",
		Name:           "Definite Integral Limits Reversed",
		Category:       CategoryCalculus,
		Description:    "Student evaluates F(a) - F(b) instead of F(b) - F(a)",
		ExampleCorrect: `F(b) - F(a)`,
		ExampleWrong:   `F(a) - F(b)`,
		Applicability:  []string{"definite_integral"},
		Frequency:      0.4,
	},

	// Trigonometric (2)
	{
		ID:             "trig_identity_confusion",
		Name:           "Trigonometric Identity Misapplied",
		Category:       CategoryTrigonometric,
		Description:    "Student confuses sin/cos, tan/cot, sec/csc",
		ExampleCorrect: `\sin^{-1}(\sin x - \cos x)`,
		ExampleWrong:   `\sin^{-1}(\sin x + \cos x)`,
		Applicability:  []string{"trigonometric"},
		Frequency:      0.7,
	},
	{
		ID:             "trig_inverse_error",
		Name:           "Inverse Trigonometric Function Confusion",
		Category:       CategoryTrigonometric,
		Description:    "Student confuses sin⁻¹ with cos⁻¹, or tan⁻¹ with cot⁻¹",
		ExampleCorrect: `\sin^{-1}((\frac{x}{a})^{3/2})`,
		ExampleWrong:   `\cos^{-1}((\frac{x}{a})^{3/2})`,
		Applicability:  []string{"inverse_trig"},
		Frequency:      0.5,
	},

	// Notational (2)
	{
		ID:             "not_abs_missing",
		Name:           "Missing Absolute Value in Logarithm",
		Category:       CategoryNotational,
		Description:    "Student writes ln(x) instead of ln|x|",
		ExampleCorrect: `\ln|x+3|`,
		ExampleWrong:   `\ln(x+3)`,
		Applicability:  []string{"logarithmic"},
		Frequency:      0.6,
	},
	{
		ID:             "not_const_omitted",
		Name:           "Constant of Integration Missing",
		Category:       CategoryNotational,
		Description:    "Student forgets +c in indefinite integral",
		ExampleCorrect: `\frac{x^5}{5} + 12x + c`,
		ExampleWrong:   `\frac{x^5}{5} + 12x`,
		Applicability:  []string{"indefinite_integral"},
		Frequency:      0.4,
	},

	// Conceptual (2)
	{
		ID:             "conc_deriv_instead",
		Name:           "Differentiation Instead of Integration",
		Category:       CategoryConceptual,
		Description:    "Student applies derivative rule instead of anti-derivative",
		ExampleCorrect: `\frac{x^5}{5} + 12x + c`,
		ExampleWrong:   `5x^4 + 12`,
		Applicability:  []string{"basic_integral"},
		Frequency:      0.3,
	},
	{
		ID:             "conc_prop_error",
		Name:           "Integration Property Misapplied",
		Category:       CategoryConceptual,
		Description:    "Student incorrectly applies linearity or other properties",
		ExampleCorrect: `\int [f(x) + g(x)] dx = \int f(x)dx + \int g(x)dx`,
		ExampleWrong:   `\int [f(x) \cdot g(x)] dx = \int f(x)dx \cdot \int g(x)dx`,
		Applicability:  []string{"properties"},
		Frequency:      0.5,
	},
}
