package shell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/link"
)

func TestFormatParam(t *testing.T) {
	require.Equal(t, "SYS_ID           1",
		FormatParam(&link.ParamValue{ParamID: "SYS_ID", Type: link.ParamTypeInt32, IntValue: 1}))
	require.Equal(t, "ARM_THRESHOLD    0.15",
		FormatParam(&link.ParamValue{ParamID: "ARM_THRESHOLD", Type: link.ParamTypeFloat, FloatValue: 0.15}))
	require.Equal(t, "BAD              ?", FormatParam(&link.ParamValue{ParamID: "BAD"}))
}

func TestFormatMessage(t *testing.T) {
	require.Equal(t, "[1] Heartbeat", FormatMessage(1, &link.Heartbeat{}))
	text := FormatMessage(2, &link.Version{Version: "dev"})
	require.Contains(t, text, "[2] Version ")
	require.Contains(t, text, `"dev"`)
}

func TestParseFloats(t *testing.T) {
	vals, err := parseFloats([]string{"0", "0.5", "-1"})
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0.5, -1}, vals)
	_, err = parseFloats([]string{"x"})
	require.Error(t, err)
}
