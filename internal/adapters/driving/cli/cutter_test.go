package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutterBuild(t *testing.T) {
	newTestServices(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"personal name", []string{"cutter", "build", "Smith, John"}, ".S655"},
		{"title skips article", []string{"cutter", "build", "The Great War", "--tag", "245"}, ".G786"},
		{"short tag flag", []string{"cutter", "build", "The Great War", "-t", "245"}, ".G786"},
		{"no match", []string{"cutter", "build", "Zwingli"}, `No Cutter number for "Zwingli" (table has 3 entries)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCutterBuild_JSON(t *testing.T) {
	newTestServices(t)

	out, err := execute(t, "", "cutter", "build", "The Great War", "--tag", "245", "--json")
	require.NoError(t, err)

	var got cutterResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, ".G786", got.Cutter)
	assert.Equal(t, "245", got.Tag)
	assert.Equal(t, "Great", got.Name.Lastname)
	assert.Equal(t, "War", got.Name.Firstname)
}

func TestCutterGenerate(t *testing.T) {
	newTestServices(t)

	out, err := execute(t, "", "cutter", "generate", "Smith", "John", "--suffix", "1990")
	require.NoError(t, err)
	assert.Contains(t, out, "S6631990")

	out, err = execute(t, "", "cutter", "generate", "Smith")
	require.NoError(t, err)
	assert.Contains(t, out, "S655")
	assert.NotContains(t, out, "1990", "flags do not leak between runs")

	out, err = execute(t, "", "cutter", "generate", "Zwingli")
	require.NoError(t, err)
	assert.Contains(t, out, "No Cutter number")
}

func TestCutterGenerate_Args(t *testing.T) {
	newTestServices(t)

	_, err := execute(t, "", "cutter", "generate")
	assert.Error(t, err)

	_, err = execute(t, "", "cutter", "generate", "a", "b", "c")
	assert.Error(t, err)
}

func TestCutterParse(t *testing.T) {
	newTestServices(t)

	out, err := execute(t, "", "cutter", "parse", "A tale of two cities", "--tag", "245")
	require.NoError(t, err)
	assert.Contains(t, out, "Lastname:  tale")
	assert.Contains(t, out, "Firstname: of")
}
