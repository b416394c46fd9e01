// Package rc provides types, interfaces, and helpers for working with the
// Resource Controller API.
//
// # Overview
//
// The rc package defines the domain types (ResourceInstance, ResourceKey,
// ResourceBinding, ResourceAlias, Reclamation) and the interfaces for the
// resource-oriented clients. A concrete implementation of these clients is
// provided by the rcclient package, which wires configuration, transport, and
// authentication. Most consumers should import rcclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := rcclient.New(&rc.Config{
//	    APIEndpoint: "https://resource-controller.example.com",
//	    APIKey:      "...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  instances, err := cli.ResourceInstances().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = instances
//	}
//
// # Models
//
// Model fields mirror the wire schema: optional fields are pointers tagged
// omitempty, so absent fields never appear in encoded output and survive a
// decode as nil. Fields the schema requires are enforced on decode and fail
// with MissingRequiredFieldError when absent. Credentials preserves
// broker-defined fields it does not declare in its Extra map, byte-for-byte
// across a decode/encode round trip.
//
// # Lists and pagination
//
// List operations return one page and expose HasNext plus the raw NextURL;
// callers decide whether to follow it. There is no automatic page traversal.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
// Client-side failures use InvalidArgumentError (bad call parameters, raised
// before any I/O), MissingRequiredFieldError, and DecodeError.
package rc
