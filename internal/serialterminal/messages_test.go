package serialterminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Field numbers are fixed by deployed peers; these are the expected bytes.
func TestWireFormat(t *testing.T) {
	t.Run("OpenPortReq", func(t *testing.T) {
		var want []byte
		want = protowire.AppendTag(want, 1, protowire.BytesType)
		want = protowire.AppendString(want, "/dev/ttyUSB0")
		want = protowire.AppendTag(want, 2, protowire.VarintType)
		want = protowire.AppendVarint(want, 115200)

		got, err := proto.Marshal(&OpenPortReq{Port: "/dev/ttyUSB0", Baudrate: 115200})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("PortListRep", func(t *testing.T) {
		var want []byte
		for _, p := range []string{"/dev/ttyACM0", "", "COM3"} {
			want = protowire.AppendTag(want, 1, protowire.BytesType)
			want = protowire.AppendString(want, p)
		}

		got, err := proto.Marshal(&PortListRep{Ports: []string{"/dev/ttyACM0", "", "COM3"}})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ReadOnceRep", func(t *testing.T) {
		var want []byte
		want = protowire.AppendTag(want, 1, protowire.BytesType)
		want = protowire.AppendString(want, "OK\r\n")
		want = protowire.AppendTag(want, 2, protowire.VarintType)
		want = protowire.AppendVarint(want, 1)

		got, err := proto.Marshal(&ReadOnceRep{Content: "OK\r\n", Success: true})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestDefaultsAreOmitted(t *testing.T) {
	for _, m := range []proto.Message{
		&SerialPingReq{},
		&OpenPortRep{},
		&OpenPortReq{},
		&PortListRep{},
		&SendOnceRep{Content: "", Success: false},
	} {
		assert.Zero(t, proto.Size(m), "%T", m)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "Request sent")
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{1, 2, 3})
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)

	rep := &SendOnceRep{}
	require.NoError(t, proto.Unmarshal(b, rep))
	assert.Equal(t, "Request sent", rep.GetContent())
	assert.True(t, rep.GetSuccess())

	require.NoError(t, proto.Unmarshal(b, &ReadOnceReq{}))
}

func TestUnmarshalRejectsInvalidUTF8(t *testing.T) {
	var bad []byte
	bad = protowire.AppendTag(bad, 1, protowire.BytesType)
	bad = protowire.AppendBytes(bad, []byte{0xff, 0xfe})

	require.Error(t, proto.Unmarshal(bad, &SendOnceReq{}))
}

func TestServiceDescriptor(t *testing.T) {
	assert.Equal(t, "serial_terminal.proto", File_serial_terminal_proto.Path())
	assert.Equal(t, protoreflect.FullName("serial_terminal"), File_serial_terminal_proto.Package())

	svc := File_serial_terminal_proto.Services().ByName("SerialComService")
	require.NotNil(t, svc)
	assert.Equal(t, SerialComService_ServiceDesc.ServiceName, string(svc.FullName()))

	methods := svc.Methods()
	require.Equal(t, len(SerialComService_ServiceDesc.Methods), methods.Len())
	for i, m := range SerialComService_ServiceDesc.Methods {
		assert.Equal(t, m.MethodName, string(methods.Get(i).Name()))
	}

	open := methods.ByName("OpenPort")
	require.NotNil(t, open)
	assert.Equal(t, (&OpenPortReq{}).ProtoReflect().Descriptor().FullName(), open.Input().FullName())
	assert.Equal(t, protoreflect.Uint32Kind, open.Input().Fields().ByName("baudrate").Kind())
}
