package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/equality/pkg/adapters/fs"
	"github.com/aretw0/equality/pkg/core"
)

// New assembles a compiler Service.
// The URI argument is adapter-specific (the data directory for 'fs').
//
//	svc, err := equality.New("./script", equality.WithOutput("lib/patterns.json"))
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source, sink := o.source, o.sink
	if source == nil || sink == nil {
		switch o.adapter {
		case "fs":
			repo, err := initFS(uri, o)
			if err != nil {
				return nil, err
			}
			if source == nil {
				source = repo
			}
			if sink == nil {
				sink = repo
			}
		default:
			return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
		}
	}

	return core.NewService(source, sink, o.logger), nil
}

// initFS builds and checks the filesystem adapter.
func initFS(path string, o *options) (*fs.Repository, error) {
	repo := fs.NewRepository(fs.Config{
		Path:         path,
		Patterns:     o.patterns,
		Output:       o.output,
		MustExist:    o.mustExist,
		NFC:          o.nfc,
		Debounce:     o.debounce,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}
