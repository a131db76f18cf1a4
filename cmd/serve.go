package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Nakul24-1/merge-dev-proto/internal/logger"
	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/Nakul24-1/merge-dev-proto/internal/secrets"
	"github.com/Nakul24-1/merge-dev-proto/internal/server"
	"github.com/Nakul24-1/merge-dev-proto/internal/store"
)

const defaultPort = 8000

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the screening HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", defaultPort, "port to listen on")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve(_ *cobra.Command) {
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

	logger.Info("starting the screener api", zap.String("version", version))

	// viper merges the flag with the server.port config key.
	srvCfg := server.Config{Port: viper.GetInt("server.port")}
	if srvCfg.Port == 0 {
		srvCfg.Port = defaultPort
	}
	if config.Server != nil {
		srvCfg.UploadDir = config.Server.UploadDir
	}

	if el := config.ElevenLabs; el != nil {
		srvCfg.AgentID = el.AgentID
		srvCfg.AgentPhoneNumberID = el.PhoneNumberID

		secret, err := secrets.LoadOptional(secrets.Source{
			Name:  "webhook secret",
			Value: el.WebhookSecret,
			Env:   "ELEVENLABS_WEBHOOK_SECRET",
		})
		if err != nil {
			logger.Fatal("loading webhook secret", zap.Error(err))
		}
		srvCfg.WebhookSecret = secret
	}

	calls, err := newCallClient(config.ElevenLabs, logger)
	if err != nil {
		logger.Fatal("building elevenlabs client", zap.Error(err))
	}
	if calls == nil {
		logger.Warn("elevenlabs api key not configured, call dispatch disabled")
	}

	questioner, err := newQuestioner(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("ai questions disabled", zap.Error(err))
		questioner = nil
	}

	srv := server.New(srvCfg, server.Deps{
		Logger:     logger,
		Store:      store.New(),
		Engine:     screening.NewEngine(logger),
		Questioner: questioner,
		Calls:      calls,
	})

	if err := srv.Listen(); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
