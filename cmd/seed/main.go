package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/skatetube/config"
	"github.com/oksasatya/skatetube/internal/fixtures"
	esinfra "github.com/oksasatya/skatetube/internal/infrastructure/elasticsearch"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

// seed indexes the local catalog into Elasticsearch so /api/videos?search=
// can use full-text matching.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := fixtures.Load(); err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}

	client, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}
	if client == nil {
		log.Fatal("ELASTICSEARCH_ADDRS is empty, nothing to seed")
	}

	index := esinfra.NewVideoIndex(client, cfg.ESVideosIndex)
	ctx := context.Background()
	for _, v := range fixtures.Catalog() {
		if err := index.IndexVideo(ctx, v); err != nil {
			log.Fatalf("failed to index video %s: %v", v.ID, err)
		}
		fmt.Printf("indexed video: id=%s title=%q\n", v.ID, v.Title)
	}
	fmt.Printf("seeded %d videos into %s\n", len(fixtures.Catalog()), cfg.ESVideosIndex)
}
