package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testEvent(level Level) *Event {
	return &Event{
		logger:    &logger{},
		Time:      time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC),
		Level:     level,
		Component: "test",
		Caller:    "me",
		Message:   "hello world",
		Data:      map[string]interface{}{"foo": "bar"},
	}
}

func TestJSONWriter(t *testing.T) {
	buffer := bytes.Buffer{}

	writer := NewJSONWriter(&buffer, Linfo)
	writer.Write(testEvent(Linfo))

	require.Equal(t, `{"caller":"me","component":"test","foo":"bar","level":"INFO","message":"hello world","ts":"2009-11-10T23:00:00Z"}`+"\n", buffer.String())
}

func TestConsoleWriter(t *testing.T) {
	buffer := bytes.Buffer{}

	writer := NewConsoleWriter(&buffer, Linfo, false)
	writer.Write(testEvent(Linfo))

	require.Equal(t, `ts=2009-11-10T23:00:00Z level=INFO component="test" msg="hello world" foo="bar"`+"\n", buffer.String())
}

func TestConsoleWriterLevel(t *testing.T) {
	buffer := bytes.Buffer{}

	writer := NewConsoleWriter(&buffer, Lwarn, false)
	writer.Write(testEvent(Linfo))

	require.Equal(t, 0, buffer.Len())
}

func TestBufferWriter(t *testing.T) {
	bufwriter := NewBufferWriter(Linfo, 2)

	e := testEvent(Linfo)

	bufwriter.Write(e)
	bufwriter.Write(e)
	bufwriter.Write(e)

	events := bufwriter.Events()

	require.Equal(t, 2, len(events))
	require.Equal(t, "hello world", events[0].Message)
	require.Equal(t, "bar", events[0].Data["foo"])
}

func TestLoggerBufferWriter(t *testing.T) {
	bufwriter := NewBufferWriter(Ldebug, 10)

	logger := New("component").WithOutput(bufwriter)

	logger.Info().WithField("key", "value").Log("message")

	events := bufwriter.Events()

	require.Equal(t, 1, len(events))
	require.Equal(t, Linfo, events[0].Level)
	require.Equal(t, "component", events[0].Component)
	require.Equal(t, "message", events[0].Message)
	require.Equal(t, "value", events[0].Data["key"])
	require.NotEmpty(t, events[0].Caller)
}
