// Package api handles incoming HTTP requests for the marketing relay: request
// decoding and validation, dispatch to the generation service, and response
// formatting. It translates HTTP concerns into generation calls and maps
// generation failures back onto status codes.
package api
