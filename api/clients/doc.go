/*
Package clients provides a Go client for the gold certificate API.

GoldClient wraps every public endpoint. Calls that need authentication use
the token set by Login or WithToken:

	c := clients.NewGoldClient("http://localhost:5000", nil)
	if err := c.Signup(ctx, email, password); err != nil { ... }
	if _, err := c.Login(ctx, email, password); err != nil { ... }
	cert, err := c.Mint(ctx, &api.MintRequest{Name: &name})

Non-2xx responses are returned as *APIError, which keeps the status code and
the transaction id of mint failures that happened after submission.
*/
package clients
