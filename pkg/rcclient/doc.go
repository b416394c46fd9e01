// Package rcclient provides the primary entry point for constructing a
// Resource Controller API client that implements the rc.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the rc package. Most applications
// should import rcclient to build a client, then use the returned rc.Client
// to access resource-specific clients, for example ResourceInstances(),
// ResourceKeys(), Reclamations(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/rcontrol-io/rc-client/pkg/rc"
//	  "github.com/rcontrol-io/rc-client/pkg/rcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an API key. Tokens are fetched and refreshed automatically
//	  // from the platform token service.
//	  cli, err := rcclient.New(&rc.Config{
//	    APIEndpoint: "https://resource-controller.rcontrol.io",
//	    APIKey:      "my-api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = rcclient.New(&rc.Config{
//	    APIEndpoint: "https://resource-controller.rcontrol.io",
//	    AccessToken: "eyJhbGciOi...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the rc.Client interface
//	  instances, err := cli.ResourceInstances().List(ctx, &rc.ListResourceInstancesOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = instances
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithToken, and NewWithAPIKey that wrap New with the appropriate
// configuration.
package rcclient
