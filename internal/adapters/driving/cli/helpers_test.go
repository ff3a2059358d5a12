package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marcassist/internal/adapters/driven/tablefile"
	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	coresvc "github.com/custodia-labs/marcassist/internal/core/services"
)

const testPack = `{
	"245$a": {"suffix": "."},
	"245$b": {"preceded_by": " :"}
}`

func testEntries() map[string]string {
	return map[string]string{
		"smith":    "655",
		"smith,j.": "663",
		"great":    "786",
	}
}

// testServices wires real services over in-memory stores.
type testServices struct {
	*Services
	config *memory.ConfigStore
	table  *memory.CutterTableStore
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	config := memory.NewConfigStore()
	table := memory.NewCutterTableStore(testEntries())
	open := func(path string) (driven.CutterTableFile, error) {
		return tablefile.New(path)
	}

	ts := &testServices{
		Services: &Services{
			Cutter:      coresvc.NewCutterService(domain.NewCutterTable(testEntries()), domain.CutterOptions{}),
			Punctuation: coresvc.NewPunctuationService(nil),
			Settings:    coresvc.NewSettingsService(config),
			Tables:      coresvc.NewTableService(table, open),
		},
		config: config,
		table:  table,
	}
	SetServices(ts.Services)
	t.Cleanup(func() { SetServices(nil) })
	return ts
}

// resetFlags restores command flag variables between runs.
func resetFlags() {
	verbose = false
	configPath = ""
	cutterTag = domain.TagPersonalName
	cutterJSON = false
	cutterSuffix = ""
	cutterFold = false
	validateTag = domain.TagTitle
	validateDelimiter = ""
	validateJSON = false
	validateStrict = false
	validateRules = ""
	validateOptions = ""
	tableJSON = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := run(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
