// Package serialterminal holds the generated bindings of the
// serial_terminal.SerialComService gRPC service: its request and reply
// messages, the service descriptor and the client stub.
//
// Regenerate with `go generate ./proto` after editing
// proto/serial_terminal.proto.
package serialterminal
