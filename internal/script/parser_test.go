package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_When_FullScript(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# arithmetic checks",
		"test Arithmetic",
		"check pass",
		"",
		"sub string concat",
		"check fail concat mismatch at index 3",
		"endsub",
		"end",
		"final",
	}, "\n")

	ops, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ops, 7)

	assert.Equal(t, OpStartTest, ops[0].Kind)
	assert.Equal(t, "Arithmetic", ops[0].Name)
	assert.Equal(t, 2, ops[0].Line)

	assert.Equal(t, OpCheck, ops[1].Kind)
	assert.True(t, ops[1].OK)

	assert.Equal(t, OpStartSub, ops[2].Kind)
	assert.Equal(t, "string concat", ops[2].Name)

	assert.Equal(t, OpCheck, ops[3].Kind)
	assert.False(t, ops[3].OK)
	assert.Equal(t, "concat mismatch at index 3", ops[3].Message)

	assert.Equal(t, OpEndSub, ops[4].Kind)
	assert.Equal(t, OpEndTest, ops[5].Kind)
	assert.Equal(t, OpFinal, ops[6].Kind)
}

func TestParse_When_UnknownDirective(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("test a\nfrobnicate\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestParse_When_MissingNames(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("test\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test requires a name")

	_, err = Parse(strings.NewReader("test a\nsub\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub requires a name")
}

func TestParse_When_CheckFailWithoutMessage(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("test a\ncheck fail\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check fail requires a message")
}

func TestParse_When_CheckWithoutVerdict(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("test a\ncheck maybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check requires pass or fail")
}

func TestParse_When_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("\n# only comments\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operations")
}
