package importer_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/programme-lv/console/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func makeTaskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "problem.toml", `
[task]
display_id = "SUM1"
title = "Summation"
difficulty = "Low"
visible = true

[constraints]
time_limit_ms = 1000
memory_limit_mb = 256

tags = ["math"]
languages = ["C++", "Go"]
`)
	writeFile(t, dir, "statement.md", "# Sum\nadd the numbers")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tests"), 0755))
	writeFile(t, dir, "tests/a.in", "1 2\n")
	writeFile(t, dir, "tests/a.out", "3\n")
	writeFile(t, dir, "tests/b.in", "2 3\n")
	writeFile(t, dir, "tests/b.out", "5\n")
	return dir
}

func TestLoadFullTask(t *testing.T) {
	dir := makeTaskDir(t)

	task, err := importer.Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "SUM1", task.Params.DisplayID)
	assert.Equal(t, "Summation", task.Params.Title)
	assert.Equal(t, "Low", task.Params.Difficulty)
	assert.Equal(t, 1000, task.Params.TimeLimitMs)
	assert.Equal(t, []string{"math"}, task.Params.Tags)
	assert.Contains(t, task.Params.Description, "add the numbers")
	assert.Equal(t, 2, task.TestCount)
	require.NotEmpty(t, task.TestArchive)

	zr, err := zip.NewReader(bytes.NewReader(task.TestArchive), int64(len(task.TestArchive)))
	require.NoError(t, err)
	names := []string{}
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"1.in", "1.out", "2.in", "2.out"}, names,
		"test files are renamed by pair index")
}

func TestLoadWithoutTestsOrStatement(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "problem.toml", `
[task]
display_id = "X1"
title = "Bare"
`)

	task, err := importer.Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 0, task.TestCount)
	assert.Empty(t, task.TestArchive)
	assert.Empty(t, task.Params.Description)
}

func TestLoadMissingDisplayID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "problem.toml", `
[task]
title = "No id"
`)
	_, err := importer.Load(context.Background(), dir)
	assert.Error(t, err)
}

func TestLoadUnpairedTest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "problem.toml", `
[task]
display_id = "X1"
`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tests"), 0755))
	writeFile(t, dir, "tests/a.in", "1\n")

	_, err := importer.Load(context.Background(), dir)
	assert.Error(t, err, "input without output is a broken task")
}

func TestLoadMissingToml(t *testing.T) {
	_, err := importer.Load(context.Background(), t.TempDir())
	assert.Error(t, err)
}
