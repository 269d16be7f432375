// README: Entry point; loads config, builds the index, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"yatra/internal/ai"
	"yatra/internal/config"
	httptransport "yatra/internal/http"
	"yatra/internal/infra"
	"yatra/internal/knowledge"
	"yatra/internal/planner"
	"yatra/internal/retrieval"
)

func main() {
	// Best-effort: real env vars win over .env entries.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Index construction is the only fatal core error: an empty corpus means
	// there is nothing to retrieve against.
	index, err := retrieval.NewIndex(knowledge.Corpus)
	if err != nil {
		log.Fatalf("build index: %v", err)
	}

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	plannerSvc := planner.NewService(index, provider)

	var cache *planner.Store
	if cfg.Redis.Addr != "" {
		cache = planner.NewStore(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.CacheTTL)
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(plannerSvc, cache),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("yatra-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
