package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"tagcomposer/api"
	"tagcomposer/composer"
	"tagcomposer/internal/config"
	"tagcomposer/status"
	"tagcomposer/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	var store storage.Store
	store, err = storage.Open(ctx, cfg.Store)
	if err != nil {
		// Without durable storage the editor still works; nothing is saved.
		log.Printf("storage %q unavailable, running without persistence: %v", cfg.Store.Driver, err)
		store = storage.Unavailable{}
	}
	defer store.Close()

	notifier := status.New(cfg.StatusTimeout)
	defer notifier.Close()

	c := composer.New(ctx, store, notifier, composer.WithHelpCount(cfg.HelpCount))

	var staticFS fs.FS = staticFiles
	if cfg.DevStatic {
		staticFS = os.DirFS("static")
	}
	router := api.RegisterRoutes(c, notifier, staticFS)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("tagcomposer listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
