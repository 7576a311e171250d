package log

import (
	"testing"

	"github.com/datarhei/sitesrv/log"

	"github.com/stretchr/testify/require"
)

func TestWrapperJSON(t *testing.T) {
	buffer := log.NewBufferWriter(log.Ldebug, 10)
	w := NewWrapper(log.New("HTTP").WithOutput(buffer))

	p := []byte(`{"time":"2023-11-14T22:13:20Z","level":"ERROR","prefix":"echo","message":"first\nsecond"}` + "\n")

	n, err := w.Write(p)
	require.NoError(t, err)
	require.Equal(t, len(p), n)

	events := buffer.Events()
	require.Equal(t, 2, len(events))
	require.Equal(t, "first", events[0].Message)
	require.Equal(t, "second", events[1].Message)
	require.Equal(t, log.Lerror, events[0].Level)
	require.Equal(t, "HTTP", events[0].Component)
}

func TestWrapperPlain(t *testing.T) {
	buffer := log.NewBufferWriter(log.Ldebug, 10)
	w := NewWrapper(log.New("HTTP").WithOutput(buffer))

	_, err := w.Write([]byte("http: TLS handshake error\n"))
	require.NoError(t, err)

	events := buffer.Events()
	require.Equal(t, 1, len(events))
	require.Equal(t, "http: TLS handshake error", events[0].Message)
	require.Equal(t, log.Linfo, events[0].Level)
}
