/*
Package httpserver runs the public API of the gold certificate backend.

The router applies CORS and request logging to every route, then mounts the
handler packages: public ones directly and protected ones (POST /mint-nft)
behind the bearer-token middleware.

# Operational Endpoints

  - GET /livez - Liveness check
  - GET /readyz - Readiness check, 503 while draining
  - GET /drain - Mark the server not ready so load balancers move traffic away
  - GET /undrain - Mark the server ready again
  - /debug/* - pprof, only with EnablePprof

Metrics are served by a separate listener on MetricsAddr.

# Example Usage

	metricsSrv, _ := metrics.New(common.PackageName, cfg.MetricsAddr)
	server, err := httpserver.New(cfg, metricsSrv, httpserver.Routes{
		Public:       []httpserver.RouteRegistrar{authHandler, reservesHandler},
		Protected:    []httpserver.RouteRegistrar{mintHandler},
		Authenticate: auth.RequireBearer(tokens, logger),
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	server.RunInBackground()
	defer server.Shutdown()

Shutdown waits up to GracefulShutdownDuration for in-flight requests. A mint
still waiting for confirmation when that expires loses its response, but the
submitted transaction stays on the ledger.
*/
package httpserver
