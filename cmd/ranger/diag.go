package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/ranger"
	"github.com/phanxgames/ranger/internal/diag"
)

// startDiag serves metrics and the running tree on addr for a configured
// world. The returned func stops the server.
func startDiag(w *ranger.World, addr string) (func(), error) {
	reg := prometheus.NewRegistry()
	metrics := diag.NewMetrics(reg)
	tree := &diag.TreeSnapshot{}

	core := w.Core()
	core.AddStatsObserver(metrics)
	core.AddStatsObserver(diag.TreeObserver(w.SceneManager(), tree))

	srv, err := diag.Start(addr, diag.NewHandler(reg, tree))
	if err != nil {
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			ranger.Logger().Warn("diag shutdown", "err", err)
		}
	}, nil
}
