// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConceptRecord is the predicate function for conceptrecord builders.
type ConceptRecord func(*sql.Selector)

// GenerationSession is the predicate function for generationsession builders.
type GenerationSession func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MCQRecord is the predicate function for mcqrecord builders.
type MCQRecord func(*sql.Selector)
