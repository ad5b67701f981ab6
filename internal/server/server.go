package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/internal/util"
	"github.com/chmielvu/endecja-graph/pkg/ai"
	oai "github.com/chmielvu/endecja-graph/pkg/ai/ollama"
	gai "github.com/chmielvu/endecja-graph/pkg/ai/openai"
	"github.com/chmielvu/endecja-graph/pkg/graphstore"
	"github.com/chmielvu/endecja-graph/pkg/logger"
	"github.com/chmielvu/endecja-graph/pkg/similarity"
	"github.com/chmielvu/endecja-graph/pkg/snapshot"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, err := snapshot.NewBadgerStore(snapshot.BadgerOptions{
		DataDir: util.GetEnvString("GRAPH_DATA_DIR", "./data"),
	})
	if err != nil {
		logger.Fatal("Failed to open snapshot store", "err", err)
	}
	defer snapshots.Close()

	aiClient := newAIClient()

	var semantic *similarity.SemanticEngine
	if aiClient != nil {
		semantic = similarity.NewSemanticEngine(aiClient, 0, 0)
	}

	store := graphstore.New(graphstore.Options{
		Snapshots:        snapshots,
		AIClient:         aiClient,
		Semantic:         semantic,
		AutosaveInterval: time.Duration(util.GetEnvNumeric("AUTOSAVE_SEC", 30)) * time.Second,
	})
	if err := store.Hydrate(ctx); err != nil {
		logger.Fatal("Failed to hydrate graph", "err", err)
	}
	store.StartAutosave()
	defer store.Close()

	app := &mid.App{
		Store:    store,
		AiClient: aiClient,
		APIKey:   util.GetEnv("API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("16M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// newAIClient builds the configured oracle adapter. AI_ADAPTER=none (or
// a missing chat URL and key) disables oracle-backed features while the
// rest of the server keeps working.
func newAIClient() ai.GraphAIClient {
	adapter := util.GetEnv("AI_ADAPTER")
	if adapter == "none" {
		return nil
	}
	if util.GetEnv("AI_CHAT_URL") == "" && util.GetEnv("AI_CHAT_KEY") == "" {
		logger.Info("No AI adapter configured, research features disabled")
		return nil
	}

	switch adapter {
	case "ollama":
		client, err := oai.NewGraphOllamaClient(oai.NewGraphOllamaClientParams{
			EmbeddingModel:  util.GetEnv("AI_EMBED_MODEL"),
			ResearchModel:   util.GetEnv("AI_RESEARCH_MODEL"),
			ExtractionModel: util.GetEnv("AI_EXTRACT_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
			TimeoutMin:            int(util.GetEnvNumeric("AI_TIMEOUT_MIN", 5)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGraphOpenAIClient(gai.NewGraphOpenAIClientParams{
			EmbeddingModel:  util.GetEnv("AI_EMBED_MODEL"),
			ResearchModel:   util.GetEnv("AI_RESEARCH_MODEL"),
			ExtractionModel: util.GetEnv("AI_EXTRACT_MODEL"),

			EmbeddingURL: util.GetEnv("AI_EMBED_URL"),
			EmbeddingKey: util.GetEnv("AI_EMBED_KEY"),
			ChatURL:      util.GetEnv("AI_CHAT_URL"),
			ChatKey:      util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
			TimeoutMin:            int(util.GetEnvNumeric("AI_TIMEOUT_MIN", 5)),
		})
	}
}
