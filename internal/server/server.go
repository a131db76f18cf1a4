// Package server exposes the screening workflow over HTTP: resume upload,
// job management, question generation, call dispatch and the inbound-call
// personalization webhook consumed by the voice platform.
package server

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Nakul24-1/merge-dev-proto/internal/ai"
	"github.com/Nakul24-1/merge-dev-proto/internal/elevenlabs"
	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/Nakul24-1/merge-dev-proto/internal/store"
)

// Config carries the serve-mode settings.
type Config struct {
	Port int
	// Default ElevenLabs dispatch parameters; requests may override both.
	AgentID            string
	AgentPhoneNumberID string
	WebhookSecret      string
	UploadDir          string
}

// Deps aggregates the collaborators the handlers need. Calls and Questioner
// may be nil; the affected endpoints then report the missing configuration
// instead of failing at startup.
type Deps struct {
	Logger     *zap.Logger
	Store      *store.Store
	Engine     *screening.Engine
	Questioner ai.Questioner
	Calls      *elevenlabs.Client
}

type Server struct {
	app      *fiber.App
	cfg      Config
	logger   *zap.Logger
	store    *store.Store
	engine   *screening.Engine
	asker    ai.Questioner
	calls    *elevenlabs.Client
	validate *validator.Validate
}

func New(cfg Config, deps Deps) *Server {
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}

	s := &Server{
		cfg:      cfg,
		logger:   deps.Logger,
		store:    deps.Store,
		engine:   deps.Engine,
		asker:    deps.Questioner,
		calls:    deps.Calls,
		validate: validator.New(),
	}

	s.app = fiber.New(fiber.Config{
		AppName: "screener",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	s.app.Use(healthcheck.New())

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api/v1")

	candidates := api.Group("/candidates")
	candidates.Post("/upload-resume", s.uploadResume)
	candidates.Get("/", s.listCandidates)
	candidates.Post("/generate-questions", s.generateQuestions)
	candidates.Post("/initiate-call", s.initiateCall)
	candidates.Get("/calls/:id", s.getCall)
	candidates.Get("/calls/:id/details", s.getCallDetails)
	candidates.Get("/:id", s.getCandidate)

	api.Post("/jobs", s.createJob)
	api.Get("/jobs", s.listJobs)

	api.Post("/webhooks/elevenlabs/twilio-inbound", s.twilioInbound)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP until shutdown.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	if s.logger != nil {
		s.logger.Info("http server listening", zap.String("addr", addr))
	}
	return s.app.Listen(addr)
}
