package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"mangaapi/internal/catalog"
	"mangaapi/internal/config"

	"go.uber.org/zap"
)

func main() {
	count := flag.Int("count", 200, "Number of manga to generate")
	owner := flag.String("owner", "seed", "user_id stamped on generated manga")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	store, err := catalog.OpenStore(ctx, cfg.DBDriver, cfg.DBDSN, cfg.DBTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	svc := catalog.NewService(store, zap.NewNop())
	actor := catalog.Actor{UserID: *owner}

	log.Printf("Generating %d manga...", *count)
	for _, d := range generate(rand.New(rand.NewSource(1)), *count) {
		if _, err := svc.Save(ctx, actor, d); err != nil {
			log.Fatalf("Failed to save %s: %v", d.Item.ID, err)
		}
	}

	items, err := store.ListItems(ctx, catalog.ListQuery{})
	if err != nil {
		log.Fatalf("Failed to count manga: %v", err)
	}
	log.Printf("Total manga in database: %d", len(items))
}

var (
	words   = []string{"Dragon", "Sakura", "Blade", "Spirit", "Ocean", "Night", "School", "Hero", "Star", "Shadow", "Kitchen", "Garden"}
	authors = []string{"Tanaka Ichiro", "Sato Hanako", "Suzuki Ken", "Takahashi Mei", "Ito Ryo", "Watanabe Yui"}
	venues  = []string{"Weekly Shonen X", "Monthly Y", "Young Z", "Web Comic W"}
	reviews = []string{"Gripping from page one.", "Beautiful art.", "Slow start.", "Characters feel flat.", "Could not put it down."}
)

// generate builds n deterministic drafts. Ids are stable so re-running the
// seed updates rows instead of adding new ones.
func generate(rng *rand.Rand, n int) []catalog.Draft {
	out := make([]catalog.Draft, 0, n)
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %s %d", words[rng.Intn(len(words))], words[rng.Intn(len(words))], i+1)
		out = append(out, catalog.Draft{
			Item: catalog.Item{
				ID:              fmt.Sprintf("seed-%05d", i+1),
				Title:           title,
				Summary:         fmt.Sprintf("Volume 1 of %s.", title),
				PositiveReviews: pick(rng, reviews, 2),
				NegativeReviews: pick(rng, reviews, 1),
			},
			Authors: pick(rng, authors, 1+rng.Intn(2)),
			Venues:  pick(rng, venues, 1),
		})
	}
	return out
}

func pick(rng *rand.Rand, from []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(from))[:n] {
		out = append(out, from[i])
	}
	return out
}
