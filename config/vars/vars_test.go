package vars

import (
	"testing"

	"github.com/datarhei/sitesrv/config/value"

	"github.com/stretchr/testify/require"
)

func TestVars(t *testing.T) {
	v1 := Variables{}

	s := ""

	v1.Register(value.NewString(&s, "foobar"), "string", "", nil, "a string", false)

	require.Equal(t, "foobar", s)

	v := v1.findVariable("string")
	require.NotNil(t, v)
	require.Equal(t, "a string", v.description)

	v.value.Set("barfoo")
	require.Equal(t, "barfoo", s)

	require.Nil(t, v1.findVariable("unknown"))
	require.Empty(t, v1.Overrides())
}

func TestMerge(t *testing.T) {
	v1 := Variables{}

	s := ""
	p := 0

	v1.Register(value.NewString(&s, "foobar"), "string", "SITESRV_TEST_STRING", nil, "a string", false)
	v1.Register(value.NewPort(&p, 3000), "port", "SITESRV_TEST_PORT", []string{"SITESRV_TEST_OLDPORT"}, "a port", false)

	t.Setenv("SITESRV_TEST_STRING", "barfoo")
	t.Setenv("SITESRV_TEST_OLDPORT", "8080")

	v1.Merge()

	require.Equal(t, "barfoo", s)
	require.Equal(t, 8080, p)
	require.ElementsMatch(t, []string{"string", "port"}, v1.Overrides())

	levels := []string{}
	v1.Messages(func(level string, v Variable, message string) {
		levels = append(levels, level)
		require.Equal(t, "port", v.Name)
		require.Equal(t, "deprecated name, please use SITESRV_TEST_PORT", message)
	})

	require.Equal(t, []string{"warn"}, levels)
	require.Equal(t, false, v1.HasErrors())
}

func TestMergeInvalid(t *testing.T) {
	v1 := Variables{}

	p := 0

	v1.Register(value.NewPort(&p, 3000), "port", "SITESRV_TEST_PORT", nil, "a port", false)

	t.Setenv("SITESRV_TEST_PORT", "http")

	v1.Merge()

	require.Equal(t, 3000, p)
	require.Equal(t, true, v1.HasErrors())
}

func TestMergeEmpty(t *testing.T) {
	v1 := Variables{}

	p := 0

	v1.Register(value.NewPort(&p, 3000), "port", "SITESRV_TEST_PORT", nil, "a port", false)

	t.Setenv("SITESRV_TEST_PORT", "")

	v1.Merge()

	require.Equal(t, 3000, p)
	require.Empty(t, v1.Overrides())
	require.Equal(t, false, v1.HasErrors())
}

func TestValidate(t *testing.T) {
	v1 := Variables{}

	s := ""
	p := 0

	v1.Register(value.NewString(&s, ""), "string", "", nil, "a string", true)
	v1.Register(value.NewPort(&p, 70000), "port", "", nil, "a port", false)

	v1.Validate()

	require.Equal(t, true, v1.HasErrors())

	errors := map[string]string{}
	v1.Messages(func(level string, v Variable, message string) {
		if level == "error" {
			errors[v.Name] = message
		}
	})

	require.Equal(t, map[string]string{
		"string": "a value is required",
		"port":   "70000 is not in the range of [0, 65535]",
	}, errors)

	v1.ResetLogs()

	require.Equal(t, false, v1.HasErrors())
}
