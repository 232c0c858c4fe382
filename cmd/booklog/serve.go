package main

import (
	"fmt"

	"github.com/fwojciec/booklog/gin"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := gin.NewServer(deps.Catalog, deps.Bot, deps.Metrics, deps.Logger)
	server.Addr = c.Addr
	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s\n", c.Addr)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
