package lifecycle_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/equality"
	adapter "github.com/aretw0/equality/pkg/adapters/lifecycle"
)

// ExampleNewSource runs the rebuild loop of Service.Watch as a lifecycle source.
func ExampleNewSource() {
	dir, err := os.MkdirTemp("", "equality-watch-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	record := "- {type: simple, considerate: humankind, inconsiderate: mankind}\n"
	if err := os.WriteFile(filepath.Join(dir, "words.yml"), []byte(record), 0644); err != nil {
		log.Fatal(err)
	}

	svc, err := equality.New(dir)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := svc.Watch(ctx)
	if err != nil {
		log.Fatal(err)
	}

	source := adapter.NewSource(results)
	if err := source.Start(ctx); err != nil {
		log.Fatal(err)
	}

	fmt.Println(<-source.Events())
	// Output: build (initial): 1 patterns
}
