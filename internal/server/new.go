package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/extractor"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/pipeline"
	"github.com/shivashettydarshan/Document-summerize/internal/session"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

// Server exposes the pipeline stages and playback control over HTTP.
type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	sessions    *session.Registry
	users       *userStore
	extractor   extractor.Extractor
	summarizer  summarizer.Summarizer
	translator  translator.Translator
	synthesizer speech.Synthesizer
	pipeline    pipeline.Pipeline
	app         *fiber.App
}

// New creates the HTTP server and registers all routes.
func New(
	cfg *config.Config,
	log logger.Logger,
	ext extractor.Extractor,
	sum summarizer.Summarizer,
	tr translator.Translator,
	syn speech.Synthesizer,
	pipe pipeline.Pipeline,
) *Server {
	s := &Server{
		cfg:         cfg,
		logger:      log,
		sessions:    session.NewRegistry(),
		users:       newUserStore(),
		extractor:   ext,
		summarizer:  sum,
		translator:  tr,
		synthesizer: syn,
		pipeline:    pipe,
	}

	s.app = fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
	})
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Post("/summarize", s.handleSummarize)
	s.app.Post("/translate", s.handleTranslate)
	s.app.Post("/speak", s.handleSpeak)
	s.app.Post("/pipeline", s.handlePipeline)
	s.app.Get("/uploads/:filename", s.handleUploads)

	s.app.Post("/playback/start", s.handlePlaybackStart)
	s.app.Post("/playback/tick", s.handlePlaybackTick)
	s.app.Post("/playback/pause", s.handlePlaybackPause)
	s.app.Post("/playback/stop", s.handlePlaybackStop)

	s.app.Post("/register", s.handleRegister)
	s.app.Post("/login", s.handleLogin)
	s.app.Get("/profile", s.handleProfileGet)
	s.app.Post("/profile", s.handleProfilePost)
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or Shutdown is called.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
