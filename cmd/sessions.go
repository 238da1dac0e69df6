package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/mcqgen/internal/pipeline"
	"github.com/abhisek/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored generation runs",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.SessionRepo().ListSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-10s  %5s  %5s  %5s\n",
			"Session", "Timestamp", "Source", "Phase", "MCQs", "Drop", "Fix")
		fmt.Println(strings.Repeat("─", 104))
		for _, sess := range sessions {
			src := sess.SourceName
			if len(src) > 20 {
				src = src[:20]
			}
			fmt.Printf("%-36s  %-19s  %-20s  %-10s  %5d  %5d  %5d\n",
				sess.SessionID,
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				src,
				sess.Phase,
				sess.MCQCount,
				sess.QuestionsDropped,
				sess.AnswersCorrected,
			)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the questions of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		mcqs, err := s.SessionRepo().Questions(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(mcqs) == 0 {
			return fmt.Errorf("session %s has no questions", sessionID)
		}

		sep := strings.Repeat("─", 72)
		for i, m := range mcqs {
			fmt.Printf("Q%d [%s, %s]\n", i+1, m.ConceptName, m.Difficulty)
			fmt.Println(m.Stem)
			fmt.Println()
			for _, letter := range pipeline.OptionLetters {
				marker := " "
				if letter == m.CorrectLetter {
					marker = "*"
				}
				if opt, ok := m.Options[letter]; ok {
					fmt.Printf("  %s %s) %s\n", marker, strings.ToUpper(letter), opt)
				}
			}
			if expl := m.Explanations[m.CorrectLetter]; expl != "" {
				fmt.Printf("\n  %s\n", expl)
			}
			if i < len(mcqs)-1 {
				fmt.Println(sep)
			}
		}
		return nil
	},
}

var sessionsConceptsCmd = &cobra.Command{
	Use:   "concepts <session-id>",
	Short: "Show the concepts extracted in a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		concepts, err := s.SessionRepo().Concepts(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("load concepts: %w", err)
		}
		if len(concepts) == 0 {
			return fmt.Errorf("session %s has no concepts", sessionID)
		}

		fmt.Printf("%-32s  %-8s  %s\n", "Concept", "Level", "Formula")
		fmt.Println(strings.Repeat("─", 80))
		for _, c := range concepts {
			name := c.Name
			if len(name) > 32 {
				name = name[:32]
			}
			fmt.Printf("%-32s  %-8s  %s\n", name, c.Difficulty, c.Formula)
		}
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsConceptsCmd)
}
