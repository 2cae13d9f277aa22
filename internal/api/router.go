package api

import (
	"net/http"

	"github.com/Rrens/focusbot/internal/api/handler"
	customMiddleware "github.com/Rrens/focusbot/internal/api/middleware"
	"github.com/Rrens/focusbot/internal/config"
	"github.com/Rrens/focusbot/internal/llm"
	"github.com/Rrens/focusbot/internal/llm/anthropic"
	"github.com/Rrens/focusbot/internal/llm/deepseek"
	"github.com/Rrens/focusbot/internal/llm/gemini"
	"github.com/Rrens/focusbot/internal/llm/huggingface"
	"github.com/Rrens/focusbot/internal/llm/ollama"
	"github.com/Rrens/focusbot/internal/llm/openai"
	"github.com/Rrens/focusbot/internal/repository"
	"github.com/Rrens/focusbot/internal/security"
	"github.com/Rrens/focusbot/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// Dependencies are the process-wide components the router wires into handlers
type Dependencies struct {
	Store      *repository.Store
	LLMRouter  *llm.Router
	JWTManager *security.JWTManager
}

// NewLLMRouter registers every provider that has credentials in cfg.
// Hugging Face is always registered so an unconfigured default reports a
// configuration error instead of an unknown provider.
func NewLLMRouter(cfg config.LLMConfig) *llm.Router {
	llmRouter := llm.NewRouter(cfg.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.DefaultProvider)

	llmRouter.RegisterProvider(huggingface.NewProvider(
		cfg.HuggingFace.APIKey,
		cfg.HuggingFace.BaseURL,
		cfg.HuggingFace.Model,
		cfg.Timeout,
	))
	if cfg.HuggingFace.APIKey == "" {
		log.Warn().Msg("HF_API_KEY/HF_TOKEN is not set, huggingface provider is unconfigured")
	}

	if cfg.Ollama.Host != "" {
		log.Info().Str("host", cfg.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.Ollama.Host, cfg.Ollama.DefaultModel, cfg.Timeout))
	}
	if cfg.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.Timeout))
	}
	if cfg.Anthropic.APIKey != "" {
		llmRouter.RegisterProvider(anthropic.NewProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Timeout))
	}
	if cfg.DeepSeek.APIKey != "" {
		llmRouter.RegisterProvider(deepseek.NewProvider(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model, cfg.Timeout))
	}
	if cfg.Gemini.APIKey != "" {
		log.Info().Msg("Registering Gemini provider")
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.Gemini))
	}

	log.Info().Strs("configured", llmRouter.ListProviders()).Msg("LLM providers ready")

	return llmRouter
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize services
	authService := service.NewAuthService(deps.Store.Users, deps.JWTManager)
	chatService := service.NewChatService(deps.LLMRouter, deps.Store.Chats, nil)
	historyService := service.NewHistoryService(deps.Store.Chats)
	subjectService := service.NewSubjectService(deps.Store.Subjects)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	historyHandler := handler.NewHistoryHandler(historyService)
	subjectHandler := handler.NewSubjectHandler(subjectService)

	identity := customMiddleware.NewIdentityMiddleware(deps.JWTManager)

	r.Route("/api", func(r chi.Router) {
		r.Use(identity.Resolve)

		r.Get("/", handler.APIInfo)
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.Store))
		r.Get("/llm-providers", handler.ListLLMProviders(deps.LLMRouter))

		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Post("/chat", chatHandler.Send)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", historyHandler.List)
			r.Delete("/", historyHandler.DeleteAll)
			r.Delete("/{chatID}", historyHandler.Delete)
		})

		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", subjectHandler.List)
			r.Post("/", subjectHandler.Add)
			r.Delete("/{subject}", subjectHandler.Delete)
		})
	})

	// Static frontend; API routes above take precedence
	r.NotFound(handler.Frontend(cfg.Server.StaticDir))

	return r
}
