package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		mappingOutput, mappingFormat = "", "yaml"
		remapMapping, remapOutput, remapBackslash, remapColumns = "", "", "", nil
		remapDryRun, remapJSON = false, false
		exportDir, exportOutput, exportEncoding, exportJSON = "", "", "", false
	})
	return rootCmd.Execute()
}

func TestMappingCommandLiteral(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "product_list.csv")
	require.NoError(t, os.WriteFile(src, []byte("old,new\nCGG01A,CGK01A\n"), 0644))
	out := filepath.Join(dir, "text_to_py.txt")

	err := execute(t, "mapping", src, "--format", "literal", "-o", out,
		"--config", filepath.Join(dir, "plancode.yaml"))
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[\n('CGG01A','CGK01A'),\n]", string(data))

	_, err = os.Stat(filepath.Join(dir, "debug.log"))
	assert.NoError(t, err)
}

func TestRemapCommandWithMappingFile(t *testing.T) {
	dir := t.TempDir()
	mappingPath := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(mappingPath, []byte("pairs:\n  - from: OLD1\n    to: NEW1\n"), 0644))

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "PROD_NAME"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "OLD1"))
	book := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(book))
	require.NoError(t, f.Close())
	out := filepath.Join(dir, "out.xlsx")

	err := execute(t, "remap", book, "-m", mappingPath, "-o", out,
		"--config", filepath.Join(dir, "plancode.yaml"))
	require.NoError(t, err)

	wb, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer wb.Close()
	v, err := wb.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "NEW1", v)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Reinstate.csv"), []byte(
		"CHDRNUM,Historical no. of months,Current PH Start Date,Current PH End Date\n1,2,3,4\n"), 0644))

	err := execute(t, "export", "--dir", dir, "--config", filepath.Join(dir, "plancode.yaml"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "PREM_HOL_INFO.fac"))
	require.NoError(t, err)
	assert.Equal(t, "!2,POL_NUMBER,PAST_PH_M,CUR_PH_START,CUR_PH_END\n*,1,2,3,4\n", string(data))
}

func TestRemapCommandRequiresWorkbook(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "remap", "--config", filepath.Join(dir, "plancode.yaml"))
	assert.Error(t, err)
}

func TestMappingCommandBadFormatKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "product_list.csv")
	require.NoError(t, os.WriteFile(src, []byte("old,new\nCGG01A,CGK01A\n"), 0644))
	out := filepath.Join(dir, "mapping.yaml")
	existing := "pairs:\n  - from: A\n    to: B\n"
	require.NoError(t, os.WriteFile(out, []byte(existing), 0644))

	err := execute(t, "mapping", src, "--format", "toml", "-o", out,
		"--config", filepath.Join(dir, "plancode.yaml"))
	require.Error(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}
