package main

import (
	webgrabchi "github.com/fwojciec/webgrab/chi"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	return webgrabchi.NewServer(deps.Grabber, deps.Logger).ListenAndServe(deps.Ctx, c.Addr)
}
