// Package proto holds the protobuf schema of the serial_terminal service. The
// Go bindings are generated into internal/serialterminal.
package proto

//go:generate protoc -I . --go_out=.. --go_opt=module=github.com/allbin/serialterm --go-grpc_out=.. --go-grpc_opt=module=github.com/allbin/serialterm serial_terminal.proto
