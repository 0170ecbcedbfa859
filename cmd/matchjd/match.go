package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/matchmyjd/engine/internal/config"
	"github.com/matchmyjd/engine/internal/embedding"
	"github.com/matchmyjd/engine/internal/extract"
	"github.com/matchmyjd/engine/internal/logger"
	"github.com/matchmyjd/engine/internal/matching"
	"github.com/matchmyjd/engine/internal/observability"
	"github.com/matchmyjd/engine/internal/schemas"
	"github.com/matchmyjd/engine/internal/scoring"
	"github.com/matchmyjd/engine/internal/skills"
	"github.com/matchmyjd/engine/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a structured JD against a structured resume",
	Long: `Loads a structured job description and a structured resume (JSON files produced
by an upstream extraction step), runs the selected scoring policy, and prints the
match report.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath    string
	matchJD            string
	matchResume        string
	matchSynonyms      string
	matchPolicy        string
	matchSemanticScore float64
	matchUseEmbeddings bool
	matchAPIKey        string
	matchModel         string
	matchFromRaw       bool
	matchVerbose       bool
	matchJSONLogs      bool
	matchJSONOut       bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchJD, "jd", "j", "", "Path to structured JD JSON file")
	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to structured resume JSON file")
	matchCommand.Flags().StringVar(&matchSynonyms, "synonyms", "", "Path to synonym table JSON file (optional)")
	matchCommand.Flags().StringVarP(&matchPolicy, "policy", "p", "", "Scoring policy: category or hybrid (default hybrid)")
	matchCommand.Flags().Float64Var(&matchSemanticScore, "semantic-score", 0, "Precomputed structured semantic score in [0,1] (hybrid policy)")
	matchCommand.Flags().BoolVar(&matchUseEmbeddings, "use-embeddings", false, "Compute semantic signals via the Gemini embedding API")
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	matchCommand.Flags().StringVar(&matchModel, "embedding-model", "", "Gemini embedding model (optional)")
	matchCommand.Flags().BoolVar(&matchFromRaw, "from-raw", false, "Treat input files as raw model output and recover the JSON object")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed signal traces")
	matchCommand.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON")
	matchCommand.Flags().BoolVar(&matchJSONOut, "json", false, "Print the match result as JSON")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{}
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Flags override config file values.
	if matchJD != "" {
		cfg.JD = matchJD
	}
	if matchResume != "" {
		cfg.Resume = matchResume
	}
	if matchSynonyms != "" {
		cfg.Synonyms = matchSynonyms
	}
	if matchPolicy != "" {
		cfg.Policy = matchPolicy
	}
	// Changed distinguishes an explicit --semantic-score 0 from the default.
	if cmd.Flags().Changed("semantic-score") {
		cfg.SemanticScore = matchSemanticScore
	}
	if matchUseEmbeddings {
		cfg.UseEmbeddings = true
	}
	if matchAPIKey != "" {
		cfg.APIKey = matchAPIKey
	}
	if matchModel != "" {
		cfg.EmbeddingModel = matchModel
	}
	cfg.Verbose = cfg.Verbose || matchVerbose
	cfg.JSONLogs = cfg.JSONLogs || matchJSONLogs
	cfg.JSONOut = cfg.JSONOut || matchJSONOut

	if cfg.JD == "" || cfg.Resume == "" {
		return fmt.Errorf("both --jd and --resume are required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	jd, err := loadJD(cfg.JD)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	scorer, semantic, cleanup, err := buildScorer(ctx, &cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var result *types.MatchResult
	switch cfg.Policy {
	case "category":
		result = scorer.ScoreCategories(ctx, jd, resume)
	case "hybrid", "":
		semanticScore := cfg.SemanticScore
		if semantic != nil {
			semanticScore = semantic.MatchStructured(ctx, jd, resume)
		}
		result = scorer.ComputeHybridScore(jd, resume, semanticScore)
	default:
		return fmt.Errorf("unknown policy %q (want category or hybrid)", cfg.Policy)
	}

	log.Info("match complete",
		zap.String("report_id", uuid.NewString()),
		zap.String("policy", cfg.Policy),
		zap.Float64("overall_score", result.OverallScore))

	if cfg.JSONOut {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}

// buildScorer wires the normalizer, matchers, and optional Gemini embedder
// into a Scorer. The returned cleanup closes the embedder client.
func buildScorer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*scoring.Scorer, *matching.Semantic, func(), error) {
	table, err := config.LoadSynonyms(cfg.Synonyms)
	if err != nil {
		return nil, nil, nil, err
	}

	norm := skills.NewNormalizer(table, log)
	matcher := matching.NewMatcher(norm, nil, log)

	cleanup := func() {}
	var semantic *matching.Semantic
	if cfg.UseEmbeddings {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		embedder, err := embedding.NewGeminiEmbedder(ctx, apiKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		cleanup = func() { _ = embedder.Close() }
		semantic = matching.NewSemantic(embedder.Func(), log)
	}

	scorer, err := scoring.NewScorer(matcher, semantic, scoring.DefaultParams(), log)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return scorer, semantic, cleanup, nil
}

// loadJD reads, validates, and decodes a structured JD file. With --from-raw
// the file is treated as raw model output and decoded straight through the
// JSON recovery path; the typed decode then rejects wrongly shaped fields, so
// schema validation is not repeated.
func loadJD(path string) (*types.StructuredJD, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var jd types.StructuredJD
	if matchFromRaw {
		if err := extract.ExtractInto(string(data), &jd); err != nil {
			return nil, fmt.Errorf("failed to recover JD from %s: %w", path, err)
		}
		return &jd, nil
	}

	if err := schemas.ValidateJD(data); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("failed to parse JD %s: %w", path, err)
	}
	return &jd, nil
}

// loadResume reads, validates, and decodes a structured resume file.
func loadResume(path string) (*types.StructuredResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var resume types.StructuredResume
	if matchFromRaw {
		if err := extract.ExtractInto(string(data), &resume); err != nil {
			return nil, fmt.Errorf("failed to recover resume from %s: %w", path, err)
		}
		return &resume, nil
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume %s: %w", path, err)
	}
	return &resume, nil
}
