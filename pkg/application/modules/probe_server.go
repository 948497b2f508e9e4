package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hsc_predictor/pkg/probe"
)

// ProbeServer runs an already built probe.Server so the caller can flip its
// readiness once startup preconditions (model load) are met.
type ProbeServer struct {
	Server probe.Server
}

func NewProbeServer(name, version, model, listenAddress string) ProbeServer {
	return ProbeServer{
		Server: probe.NewServer(
			listenAddress,
			probe.Options{
				Name:    name,
				Version: version,
				Model:   model,
			},
		),
	}
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		if err := p.Server.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
