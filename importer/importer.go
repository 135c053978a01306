// Package importer turns a task directory on disk into a create-problem
// payload plus a test-case archive ready for upload. The directory
// layout is the one task authors already use:
//
//	problem.toml    metadata and limits
//	statement.md    the statement, verbatim
//	tests/          <name>.in / <name>.out pairs
//	illustration.*  optional cover image, downscaled before upload
package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"goa.design/clue/log"

	"github.com/programme-lv/console/ojclient"
)

type taskInfo struct {
	Task struct {
		DisplayID  string `toml:"display_id"`
		Title      string `toml:"title"`
		Difficulty string `toml:"difficulty"`
		Visible    bool   `toml:"visible"`
		Source     string `toml:"source"`
	} `toml:"task"`
	Constraints struct {
		TimeLimitMs int `toml:"time_limit_ms"`
		MemoryLimMb int `toml:"memory_limit_mb"`
	} `toml:"constraints"`
	Tags      []string `toml:"tags"`
	Languages []string `toml:"languages"`
}

// Task is a parsed task directory.
type Task struct {
	Params      ojclient.ProblemParams
	TestArchive []byte // zip of tests/, empty when there are none
	TestCount   int
	Illustration []byte // resized image, nil when absent
}

// Load reads a task directory. Metadata problems are errors; a missing
// statement or tests directory is not, partial tasks upload fine and get
// finished in the editor.
func Load(ctx context.Context, dirPath string) (*Task, error) {
	abs, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, fmt.Errorf("resolve task dir: %w", err)
	}

	infoBytes, err := os.ReadFile(filepath.Join(abs, "problem.toml"))
	if err != nil {
		return nil, fmt.Errorf("read problem.toml: %w", err)
	}
	var info taskInfo
	if err := toml.Unmarshal(infoBytes, &info); err != nil {
		return nil, fmt.Errorf("parse problem.toml: %w", err)
	}
	if info.Task.DisplayID == "" {
		return nil, fmt.Errorf("problem.toml is missing task.display_id")
	}

	task := &Task{
		Params: ojclient.ProblemParams{
			DisplayID:   info.Task.DisplayID,
			Title:       info.Task.Title,
			Difficulty:  info.Task.Difficulty,
			TimeLimitMs: info.Constraints.TimeLimitMs,
			MemoryLimMb: info.Constraints.MemoryLimMb,
			Tags:        info.Tags,
			Languages:   info.Languages,
			Visible:     info.Task.Visible,
			Source:      info.Task.Source,
		},
	}

	if body, err := os.ReadFile(filepath.Join(abs, "statement.md")); err == nil {
		task.Params.Description = string(body)
	} else {
		log.Printf(ctx, "task %s has no statement.md", info.Task.DisplayID)
	}

	archive, count, err := zipTests(filepath.Join(abs, "tests"))
	if err != nil {
		return nil, err
	}
	task.TestArchive = archive
	task.TestCount = count
	if count == 0 {
		log.Printf(ctx, "task %s has no tests", info.Task.DisplayID)
	}

	illustration, err := loadIllustration(abs)
	if err != nil {
		log.Errorf(ctx, err, "skipping illustration of task %s", info.Task.DisplayID)
	} else {
		task.Illustration = illustration
	}

	return task, nil
}

// zipTests packs <name>.in/<name>.out pairs into the zip layout the
// test-case upload endpoint expects: 1.in/1.out, files renamed by pair
// index in lexicographic order of their base names.
func zipTests(testsDir string) ([]byte, int, error) {
	entries, err := os.ReadDir(testsDir)
	if os.IsNotExist(err) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read tests dir: %w", err)
	}

	inputs := map[string]string{}
	outputs := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		switch filepath.Ext(e.Name()) {
		case ".in":
			inputs[base] = filepath.Join(testsDir, e.Name())
		case ".out", ".ans":
			outputs[base] = filepath.Join(testsDir, e.Name())
		}
	}

	bases := make([]string, 0, len(inputs))
	for base := range inputs {
		if _, ok := outputs[base]; !ok {
			return nil, 0, fmt.Errorf("test %s has an input but no output", base)
		}
		bases = append(bases, base)
	}
	sort.Strings(bases)
	if len(bases) == 0 {
		return nil, 0, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, base := range bases {
		if err := addZipFile(zw, fmt.Sprintf("%d.in", i+1), inputs[base]); err != nil {
			return nil, 0, err
		}
		if err := addZipFile(zw, fmt.Sprintf("%d.out", i+1), outputs[base]); err != nil {
			return nil, 0, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("finish test archive: %w", err)
	}
	return buf.Bytes(), len(bases), nil
}

func addZipFile(zw *zip.Writer, name, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s in archive: %w", name, err)
	}
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("write %s to archive: %w", name, err)
	}
	return nil
}
