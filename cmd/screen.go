package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Nakul24-1/merge-dev-proto/internal/ai"
	"github.com/Nakul24-1/merge-dev-proto/internal/ai/gemini"
	"github.com/Nakul24-1/merge-dev-proto/internal/elevenlabs"
	"github.com/Nakul24-1/merge-dev-proto/internal/logger"
	"github.com/Nakul24-1/merge-dev-proto/internal/resume"
	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/Nakul24-1/merge-dev-proto/internal/secrets"
)

const (
	PromptDispatchCall = "Dispatch a screening call"
	PromptDumpToFile   = "Dump questions to file"
	PromptExit         = "Exit"

	defaultDumpFile = "questions.json"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptDispatchCall, PromptDumpToFile, PromptExit},
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Generate screening questions for a resume against the configured job",
	Run: func(cmd *cobra.Command, _ []string) {
		screen(cmd)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("resume", "r", "", "path to the candidate resume (pdf or txt)")
	screenCmd.Flags().StringP("out", "o", defaultDumpFile, "file for dumped questions")
	screenCmd.Flags().BoolP("print-only", "y", false, "print the questions and exit without prompting")
	screenCmd.MarkFlagRequired("resume")
}

// screen is the one-shot screening command.
func screen(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	job := jobFromConfig(config)
	if job == nil {
		logger.Fatal("a job section with title and description is required in the config")
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	text, err := resume.ExtractFile(resumePath)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}

	candidate := resume.Parse(text)
	logger.Info("resume parsed",
		zap.String("full_name", candidate.FullName),
		zap.Int("skills", len(candidate.Skills)),
	)

	engine := screening.NewEngine(logger)
	questions := engine.Generate(candidate, job)

	if questioner, err := newQuestioner(ctx, config.AI, logger); err != nil {
		logger.Warn("skipping ai questions", zap.Error(err))
	} else if questioner != nil {
		extra, err := questioner.GenerateQuestions(ctx, candidate, job)
		if err != nil {
			logger.Warn("ai question generation failed", zap.Error(err))
		} else {
			questions = append(questions, extra...)
		}
	}

	pretty, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		logger.Fatal("encoding questions", zap.Error(err))
	}
	fmt.Printf("%s\n", pretty)

	if printOnly, _ := cmd.Flags().GetBool("print-only"); printOnly {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("prompt failed", zap.Error(err))
		}

		err = handlePromptResult(ctx, cmd, action, config, logger, candidate, job, questions, pretty)
		if errors.Is(err, errExit) {
			return
		}
		if err != nil {
			logger.Error("action failed", zap.Error(err))
		}
	}
}

func handlePromptResult(ctx context.Context, cmd *cobra.Command, action string, config *Config, logger *zap.Logger, candidate *screening.Candidate, job *screening.Job, questions []screening.Question, encoded []byte) error {
	switch action {
	case PromptDispatchCall:
		return dispatchCall(ctx, config, logger, candidate, job)

	case PromptDumpToFile:
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = defaultDumpFile
		}
		if err := os.WriteFile(out, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("dumping questions: %w", err)
		}
		logger.Info("questions dumped", zap.String("file", out), zap.Int("count", len(questions)))
		return nil

	case PromptExit:
		return errExit

	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func dispatchCall(ctx context.Context, config *Config, logger *zap.Logger, candidate *screening.Candidate, job *screening.Job) error {
	if candidate.Phone == "" {
		return fmt.Errorf("candidate has no phone number")
	}

	el := config.ElevenLabs
	if el == nil || el.AgentID == "" || el.PhoneNumberID == "" {
		return fmt.Errorf("elevenlabs agent-id and phone-number-id are required in the config")
	}

	client, err := newCallClient(el, logger)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("elevenlabs api key is not configured")
	}

	personalization := screening.Personalize(candidate, job)

	result, err := client.InitiateOutboundCall(ctx, &elevenlabs.OutboundCallRequest{
		AgentID:            el.AgentID,
		AgentPhoneNumberID: el.PhoneNumberID,
		ToNumber:           candidate.Phone,
		DynamicVariables:   personalization.DynamicVariables,
		FirstMessage:       personalization.FirstMessage,
	})
	if err != nil {
		return fmt.Errorf("dispatching call: %w", err)
	}

	logger.Info("call dispatched",
		zap.String("conversation_id", result.ConversationID),
		zap.String("call_sid", result.CallSID),
	)
	return nil
}

func jobFromConfig(config *Config) *screening.Job {
	if config == nil || config.Job == nil {
		return nil
	}
	j := config.Job
	if j.Title == "" || j.Description == "" {
		return nil
	}

	return &screening.Job{
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
	}
}

// newQuestioner returns nil when the ai section is absent or disabled.
func newQuestioner(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Questioner, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewQuestioner(generator, genLogger, cfg.Gemini.MaxQuestions), nil
}

// newCallClient returns nil when no api key is configured.
func newCallClient(cfg *ElevenLabsConfig, logger *zap.Logger) (*elevenlabs.Client, error) {
	if cfg == nil {
		return nil, nil
	}

	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name:  "elevenlabs api key",
		Value: cfg.APIKey,
		Env:   "ELEVENLABS_API_KEY",
		File:  cfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, nil
	}

	return elevenlabs.New(apiKey, logger)
}
