package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/tutoriz/internal/engine"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutoriz",
	Short: "Adaptive practice scheduler for an AI math tutor",
	Long:  "Tutoriz — tracks topic mastery from tutoring dialogue, schedules spaced reviews, and plans interference-aware practice sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORIZ_DB env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newService wires the scheduler engine to an open store. The semantic
// classification path is enabled when an LLM provider is configured;
// otherwise classification is keyword-only.
func newService(ctx context.Context, st *store.Store, wantSemantic bool) *engine.Service {
	var classifier *topics.Classifier
	if wantSemantic {
		if provider, err := providerFromEnv(ctx, st.EventRepo()); err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to keyword classification.")
		} else {
			classifier = topics.NewClassifier(
				topics.NewLLMClassifier(provider),
				topics.NewTTLCache(topics.DefaultCacheTTL),
				topics.DefaultSemanticTimeout,
			)
		}
	}

	return engine.New(engine.Options{
		Events:     st.EventRepo(),
		Snapshots:  st.SnapshotRepo(),
		Classifier: classifier,
	})
}

// providerFromEnv builds an LLM provider from TUTORIZ_* variables,
// falling back to the standard provider key variables (GEMINI_API_KEY,
// OPENAI_API_KEY, ANTHROPIC_API_KEY).
func providerFromEnv(ctx context.Context, rec llm.CallRecorder) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, rec)
}
