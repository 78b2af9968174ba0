package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: catalog [export|controls|stats|reset]")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.NewSqliteStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage at %s: %v", cfg.Storage.Path, err)
	}
	defer store.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "export":
		data, err := store.Get(ctx, "medias")
		if err != nil {
			log.Fatalf("Failed to read catalog snapshot: %v", err)
		}
		fmt.Println(string(data))
	case "controls":
		data, err := store.Get(ctx, "cachedMediaControls")
		if err != nil {
			log.Fatalf("Failed to read control state: %v", err)
		}
		fmt.Println(string(data))
	case "stats":
		data, err := store.Get(ctx, "medias")
		if err != nil {
			log.Fatalf("Failed to read catalog snapshot: %v", err)
		}
		var items []domain.MediaItem
		if err := json.Unmarshal(data, &items); err != nil {
			log.Fatalf("Corrupted catalog snapshot: %v", err)
		}
		photos := 0
		for _, item := range items {
			if item.IsPhoto() {
				photos++
			}
		}
		fmt.Printf("items: %d\nphotos: %d\nvideos: %d\n", len(items), photos, len(items)-photos)
	case "reset":
		for _, key := range []string{"medias", "cachedMediaControls"} {
			if err := store.Delete(ctx, key); err != nil {
				log.Fatalf("Failed to delete %s: %v", key, err)
			}
		}
		fmt.Println("Catalog state cleared")
	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}
