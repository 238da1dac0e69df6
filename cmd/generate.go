package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/pipeline"
	"github.com/abhisek/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input-file>",
	Short: "Generate MCQs from a textbook content file",
	Long: `Runs the full pipeline on a markdown or plain-text content file:
concept extraction, stem generation, answer validation, distractor
generation, and assembly. Results are persisted and rendered as markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		output, _ := cmd.Flags().GetString("output")
		source, _ := cmd.Flags().GetString("source")
		kind, _ := cmd.Flags().GetString("kind")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		workers, _ := cmd.Flags().GetInt("workers")
		explanations, _ := cmd.Flags().GetBool("explanations")

		if !pipeline.ValidSourceKind(kind) {
			return fmt.Errorf("invalid --kind %q: must be %q or %q", kind,
				pipeline.SourceKindChapter, pipeline.SourceKindMCQs)
		}

		content, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return fmt.Errorf("input file %s is empty", inputPath)
		}
		if source == "" {
			source = sourceNameFromPath(inputPath)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		cfg := pipeline.DefaultConfig()
		if batchSize > 0 {
			cfg.BatchSize = batchSize
		}
		if workers > 0 {
			cfg.Workers = workers
		}
		cfg.Explanations = explanations

		orch := pipeline.New(provider, cfg, s.SessionRepo())
		orch.Progress = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}

		summary, err := orch.Run(ctx, source, kind, string(content))
		if err != nil {
			return err
		}

		md := pipeline.RenderMarkdown(summary)
		if output != "" {
			if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %d questions to %s\n", len(summary.MCQs), output)
		} else {
			fmt.Print(md)
		}

		printRunReport(os.Stderr, summary)
		return nil
	},
}

// sourceNameFromPath derives a session source label from the input filename.
func sourceNameFromPath(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func printRunReport(w *os.File, s *pipeline.RunSummary) {
	m := s.Metrics
	fmt.Fprintf(w, "\nSession %s (%s) finished in %s\n", s.SessionID, s.SourceName, s.Duration.Round(10*time.Millisecond))
	fmt.Fprintf(w, "  concepts extracted:   %d\n", m.ConceptsExtracted)
	fmt.Fprintf(w, "  stems generated:      %d/%d\n", m.StemsGenerated, m.StemsRequested)
	fmt.Fprintf(w, "  validated:            %d (%d corrected)\n", m.QuestionsValidated, m.AnswersCorrected)
	fmt.Fprintf(w, "  dropped:              %d\n", m.QuestionsDropped)
	if m.BatchesSkipped > 0 {
		fmt.Fprintf(w, "  batches skipped:      %d\n", m.BatchesSkipped)
	}
	if m.OptionCollisions > 0 || m.DistractorShortfalls > 0 {
		fmt.Fprintf(w, "  option collisions:    %d, shortfalls: %d\n", m.OptionCollisions, m.DistractorShortfalls)
	}
	fmt.Fprintf(w, "  final MCQs:           %d (easy %d / medium %d / hard %d)\n", len(s.MCQs),
		s.Difficulty[pipeline.DifficultyEasy], s.Difficulty[pipeline.DifficultyMedium], s.Difficulty[pipeline.DifficultyHard])
	for _, d := range s.Drops {
		fmt.Fprintf(w, "  drop [%s] %s: %s\n", d.Stage, d.QuestionID, d.Reason)
	}
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Write rendered markdown to this file (default: stdout)")
	generateCmd.Flags().String("source", "", "Source label stored with the session (default: input filename)")
	generateCmd.Flags().String("kind", "chapter", `Input kind: "chapter" for teaching material, "mcqs" for an existing question bank`)
	generateCmd.Flags().Int("batch-size", 0, "Concepts per stem-generation batch")
	generateCmd.Flags().Int("workers", 0, "Concurrent distractor-generation workers")
	generateCmd.Flags().Bool("explanations", true, "Include per-option explanations")
}
