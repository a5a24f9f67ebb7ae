package main

import (
	"fmt"
	"net"

	hlhttp "github.com/fwojciec/headlines/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", deps.Config.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	server := hlhttp.NewServer(deps.Digester, deps.Logger)
	server.Source = deps.Config.Source
	server.KeywordLimit = deps.Config.KeywordLimit
	server.AllowSource = c.AllowSource

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())
	return server.Serve(deps.Ctx, ln)
}
