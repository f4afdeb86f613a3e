package paramils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_String(t *testing.T) {
	t.Parallel()

	r := NewSAT(1.000095, -1.0316284229)
	assert.Equal(t, "Result for ParamILS: SAT, 1.000095, 1, -1.031628, -1, camelback.rb", r.String())
}

func TestReport_StringRoundsToSixDecimals(t *testing.T) {
	t.Parallel()

	r := NewSAT(2, 3.2333333333)
	assert.Equal(t, "Result for ParamILS: SAT, 2.000000, 1, 3.233333, -1, camelback.rb", r.String())
}

func TestCrashLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Result for ParamILS: CRASH, 1, 1, 10, -1, camelback.rb", CrashLine)

	r, err := Parse(CrashLine)
	require.NoError(t, err)
	want := Report{Status: StatusCrash, Runtime: 1, RunLength: 1, Quality: 10, Seed: -1, Instance: Instance}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Parse(CrashLine) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_IgnoresLeadingText(t *testing.T) {
	t.Parallel()

	r, err := Parse("runsolver: Result for ParamILS: SAT, 0.35, 1, 0.5, 4, branin")
	require.NoError(t, err)
	assert.Equal(t, StatusSAT, r.Status)
	assert.Equal(t, 0.35, r.Runtime)
	assert.Equal(t, 4, r.Seed)
	assert.Equal(t, "branin", r.Instance)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"no prefix", "SAT, 1, 1, 1, 1, x", ErrNoReport.Error()},
		{"too few fields", "Result for ParamILS: SAT, 1, 1", "expected 6 fields"},
		{"bad runtime", "Result for ParamILS: SAT, fast, 1, 1, -1, x", "invalid runtime"},
		{"bad runlength", "Result for ParamILS: SAT, 1, one, 1, -1, x", "invalid runlength"},
		{"bad quality", "Result for ParamILS: SAT, 1, 1, good, -1, x", "invalid quality"},
		{"bad seed", "Result for ParamILS: SAT, 1, 1, 1, 0.5, x", "invalid seed"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	output := "a\nb\nParams: \n0.1\n0.2\n\nResult for ParamILS: SAT, 1.000100, 1, -0.500000, -1, camelback.rb\n"
	r, err := Find(output)
	require.NoError(t, err)
	assert.Equal(t, StatusSAT, r.Status)
	assert.InDelta(t, 1.0001, r.Runtime, 1e-9)
	assert.Equal(t, -0.5, r.Quality)

	_, err = Find("nothing here\n")
	assert.ErrorIs(t, err, ErrNoReport)
}
