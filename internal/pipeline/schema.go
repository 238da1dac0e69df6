package pipeline

import "github.com/abhisek/mcqgen/internal/llm"

// ConceptListSchema defines the JSON schema for concept extraction
// responses.
var ConceptListSchema = &llm.Schema{
	Name:        "concept-list",
	Description: "Integration concepts extracted from textbook content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept_name": map[string]any{
							"type":        "string",
							"description": "Short name of the integration technique or formula",
						},
						"formula": map[string]any{
							"type":        "string",
							"description": "The key formula in LaTeX, without surrounding $ delimiters",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty for a first-course calculus student",
						},
						"context": map[string]any{
							"type":        "string",
							"description": "One sentence on when the technique applies",
						},
						"prerequisites": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Names of concepts a student must know first",
						},
						"worked_example": map[string]any{
							"type":        "string",
							"description": "One short worked application in LaTeX, or empty",
						},
					},
					"required":             []any{"concept_name", "formula", "difficulty", "context", "prerequisites", "worked_example"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}

// StemBatchSchema defines the JSON schema for stem generation responses.
// One stem per requested concept, each with a claimed answer.
var StemBatchSchema = &llm.Schema{
	Name:        "stem-batch",
	Description: "Integration question stems with claimed correct answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept_name": map[string]any{
							"type":        "string",
							"description": "The concept this question exercises, copied from the request",
						},
						"stem": map[string]any{
							"type":        "string",
							"description": "The question text with the integral in LaTeX between $ delimiters",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer in LaTeX, including + C for indefinite integrals",
						},
					},
					"required":             []any{"concept_name", "stem", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// DistractorBatchSchema defines the JSON schema for distractor
// generation responses.
var DistractorBatchSchema = &llm.Schema{
	Name:        "distractor-batch",
	Description: "Plausible wrong answers derived from known student error patterns",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"distractors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The wrong answer in LaTeX, formatted like the correct answer",
						},
						"error_type": map[string]any{
							"type":        "string",
							"description": "ID of the error pattern this distractor embodies, from the provided list",
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "One sentence describing the mistake a student makes to arrive here",
						},
					},
					"required":             []any{"text", "error_type", "rationale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"distractors"},
		"additionalProperties": false,
	},
}
