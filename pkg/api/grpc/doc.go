// Package grpc provides the optional gRPC listener.
//
// Only the standard grpc.health.v1.Health service is registered, for
// orchestrators that probe over gRPC instead of HTTP.
package grpc
