// Package equality is the Composition Root for the equality dataset compiler.
//
// It connects the core compile pipeline (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// The compiler reads human-authored records describing inconsiderate phrases
// and their considerate alternatives, validates them, derives a stable
// identifier for each one and writes the whole set as a single dataset for a
// downstream text matcher.
//
// Pipeline:
//
//   - **Shape Normalizer**: a phrase field may be a phrase, a list or a phrase to category mapping; it always leaves as a mapping.
//   - **Record Validator**: category count, dashes and undeclared apostrophes are rejected per record.
//   - **Corpus Checker**: a phrase listed by two records fails the whole compile, naming every collision.
//
// Compilation is all-or-nothing: no dataset is written unless every check passes.
//
// Usage:
//
//	svc, err := equality.New("./script",
//		equality.WithOutput("lib/patterns.json"),
//		equality.WithLogger(logger),
//	)
//
//	patterns, err := svc.Build(ctx)
package equality
