// Command profilescribe serves the LinkedIn Profile Assistant API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/profilescribe/profilescribe/chat"
	"github.com/profilescribe/profilescribe/config"
	"github.com/profilescribe/profilescribe/profile"
	"github.com/profilescribe/profilescribe/server"
	"github.com/profilescribe/profilescribe/tools"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	completer := chat.NewCompleter(settings.OpenAIAPIKey, settings.OpenAIModel, tools.Catalog())
	structurer, err := profile.NewStructurer(settings.OpenAIAPIKey, settings.OpenAIModel)
	if err != nil {
		log.Fatalf("structurer: %v", err)
	}
	extractor := profile.NewService(&profile.HTTPFetcher{}, structurer, settings.OutputDir)

	s := server.New(settings, completer, extractor)

	srv := &http.Server{
		Addr:    settings.Addr,
		Handler: s.Router(),
	}

	go func() {
		log.Printf("%s listening on %s (model %s)", settings.AppName, settings.Addr, settings.OpenAIModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
