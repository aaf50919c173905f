// Package http implements the HTTP transport of the selector server.
//
// It exposes the section query routes, the node routes a host uses to
// declare, invoke and cache selector nodes, the version routes and the
// websocket push channel. Tracing, access logging, compression and
// response signing are handled here before requests reach the service
// layer.
package http
