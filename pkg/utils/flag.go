package utils

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetTestFlag sets the global flag `name` to `value` for the duration of the test.
// The previous value is restored once the test and its subtests are done.
func SetTestFlag(tb testing.TB, name, value string) {
	tb.Helper()
	flagHolder := flag.Lookup(name)
	require.NotNilf(tb, flagHolder, "Flag %s not found", name)
	prevValue := flagHolder.Value.String()
	tb.Cleanup(func() { require.NoError(tb, flag.Set(name, prevValue)) })
	require.NoError(tb, flag.Set(name, value))
}
