package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "screener"
)

type Config struct {
	Server     *ServerConfig     `mapstructure:"server"`
	Job        *JobConfig        `mapstructure:"job"`
	ElevenLabs *ElevenLabsConfig `mapstructure:"elevenlabs"`
	AI         *AIConfig         `mapstructure:"ai"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	UploadDir string `mapstructure:"upload-dir"`
}

// JobConfig describes the opening the screen command generates questions for.
type JobConfig struct {
	Title           string   `mapstructure:"title"`
	Company         string   `mapstructure:"company"`
	Location        string   `mapstructure:"location"`
	Description     string   `mapstructure:"description"`
	RequiredSkills  []string `mapstructure:"required-skills"`
	PreferredSkills []string `mapstructure:"preferred-skills"`
}

type ElevenLabsConfig struct {
	APIKey        string `mapstructure:"api-key"`
	APIKeyFile    string `mapstructure:"api-key-file"`
	AgentID       string `mapstructure:"agent-id"`
	PhoneNumberID string `mapstructure:"phone-number-id"`
	WebhookSecret string `mapstructure:"webhook-secret"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxQuestions int    `mapstructure:"max-questions"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "screener generates candidate screening questions and dispatches screening calls",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the screen and serve commands.
	if screenCmd.CalledAs() == "" && serveCmd.CalledAs() == "" {
		return
	}

	// Secrets may arrive via a local .env file.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The serve command can run on flags and environment alone.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}

	return config, nil
}
