package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mcqgen/ent"
	"github.com/abhisek/mcqgen/ent/conceptrecord"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
	"github.com/abhisek/mcqgen/ent/schema"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) SaveConcepts(ctx context.Context, sessionID, sourceName string, concepts []pipeline.Concept) error {
	for _, c := range concepts {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		create := r.client.ConceptRecord.Create().
			SetSequence(seqNum).
			SetSessionID(sessionID).
			SetConceptID(c.ID).
			SetName(c.Name).
			SetFormula(c.Formula).
			SetDifficulty(c.Difficulty).
			SetContext(c.Context).
			SetWorkedExample(c.WorkedExample)
		if len(c.Prerequisites) > 0 {
			create = create.SetPrerequisites(c.Prerequisites)
		}
		_, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("save concept %q: %w", c.Name, err)
		}
	}
	return nil
}

func (r *sessionRepo) SaveMCQs(ctx context.Context, sessionID string, mcqs []pipeline.MCQ) error {
	for _, m := range mcqs {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		create := r.client.MCQRecord.Create().
			SetSequence(seqNum).
			SetSessionID(sessionID).
			SetQuestionNumber(m.QuestionNumber).
			SetQuestionID(m.QuestionID).
			SetConceptName(m.ConceptName).
			SetDifficulty(m.Difficulty).
			SetStem(m.Stem).
			SetOptions(m.Options).
			SetCorrectLetter(m.CorrectLetter).
			SetValidationScore(m.ValidationScore).
			SetWasCorrected(m.WasCorrected)
		if len(m.Explanations) > 0 {
			create = create.SetExplanations(m.Explanations)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("save question %s: %w", m.QuestionID, err)
		}
	}
	return nil
}

func (r *sessionRepo) CompleteRun(ctx context.Context, summary pipeline.RunSummary) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	drops := make([]schema.DropSummary, 0, len(summary.Drops))
	for _, d := range summary.Drops {
		drops = append(drops, schema.DropSummary{
			QuestionID: d.QuestionID,
			Stage:      d.Stage,
			Reason:     d.Reason,
			Detail:     d.Detail,
		})
	}

	_, err = r.client.GenerationSession.Create().
		SetSequence(seqNum).
		SetSessionID(summary.SessionID).
		SetSourceName(summary.SourceName).
		SetPhase(string(summary.Phase)).
		SetConceptsExtracted(summary.Metrics.ConceptsExtracted).
		SetQuestionsGenerated(summary.Metrics.StemsGenerated).
		SetQuestionsValidated(summary.Metrics.QuestionsValidated).
		SetAnswersCorrected(summary.Metrics.AnswersCorrected).
		SetQuestionsDropped(summary.Metrics.QuestionsDropped).
		SetMcqCount(len(summary.MCQs)).
		SetDrops(drops).
		SetDifficultyDistribution(summary.Difficulty).
		SetDurationMs(summary.Duration.Milliseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session %s: %w", summary.SessionID, err)
	}
	return nil
}

func (r *sessionRepo) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.GenerationSession.Query().
		Order(ent.Desc(generationsession.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionSummary{
			SessionID:          row.SessionID,
			SourceName:         row.SourceName,
			Phase:              row.Phase,
			ConceptsExtracted:  row.ConceptsExtracted,
			QuestionsGenerated: row.QuestionsGenerated,
			QuestionsValidated: row.QuestionsValidated,
			AnswersCorrected:   row.AnswersCorrected,
			QuestionsDropped:   row.QuestionsDropped,
			MCQCount:           row.McqCount,
			Difficulty:         row.DifficultyDistribution,
			Duration:           time.Duration(row.DurationMs) * time.Millisecond,
			Timestamp:          row.Timestamp,
		})
	}
	return out, nil
}

func (r *sessionRepo) Questions(ctx context.Context, sessionID string) ([]pipeline.MCQ, error) {
	rows, err := r.client.MCQRecord.Query().
		Where(mcqrecord.SessionIDEQ(sessionID)).
		Order(ent.Asc(mcqrecord.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]pipeline.MCQ, 0, len(rows))
	for _, row := range rows {
		out = append(out, pipeline.MCQ{
			QuestionNumber:  row.QuestionNumber,
			QuestionID:      row.QuestionID,
			ConceptName:     row.ConceptName,
			Difficulty:      row.Difficulty,
			Stem:            row.Stem,
			Options:         row.Options,
			CorrectLetter:   row.CorrectLetter,
			Explanations:    row.Explanations,
			ValidationScore: row.ValidationScore,
			WasCorrected:    row.WasCorrected,
		})
	}
	return out, nil
}

func (r *sessionRepo) Concepts(ctx context.Context, sessionID string) ([]pipeline.Concept, error) {
	rows, err := r.client.ConceptRecord.Query().
		Where(conceptrecord.SessionIDEQ(sessionID)).
		Order(ent.Asc(conceptrecord.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	out := make([]pipeline.Concept, 0, len(rows))
	for _, row := range rows {
		out = append(out, pipeline.Concept{
			ID:            row.ConceptID,
			Name:          row.Name,
			Formula:       row.Formula,
			Difficulty:    row.Difficulty,
			Prerequisites: row.Prerequisites,
			Context:       row.Context,
			WorkedExample: row.WorkedExample,
		})
	}
	return out, nil
}
