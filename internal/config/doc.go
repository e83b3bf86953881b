// Package config provides configuration management for the hello API.
//
// Configuration is loaded from environment variables using the env package.
// Defaults bind the HTTP server to 0.0.0.0:8000 with the gRPC health
// server disabled.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
