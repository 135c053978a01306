package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"goa.design/clue/log"

	"github.com/programme-lv/console/importer"
	"github.com/programme-lv/console/msclient"
	"github.com/programme-lv/console/ojclient"
	"github.com/programme-lv/console/session"
)

// runImport loads a task directory and uploads it as a new problem.
// Credentials come from the environment since there is no TUI to ask.
func runImport(dir string, oj *ojclient.Client, ms *msclient.Client, sess *session.Session) error {
	ctx := log.Context(context.Background())
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if token := os.Getenv("CONSOLE_TOKEN"); token != "" {
		if err := sess.SetToken(token); err != nil {
			return fmt.Errorf("set token from CONSOLE_TOKEN: %w", err)
		}
	} else {
		username := os.Getenv("CONSOLE_USERNAME")
		password := os.Getenv("CONSOLE_PASSWORD")
		if username == "" || password == "" {
			return fmt.Errorf("set CONSOLE_TOKEN or CONSOLE_USERNAME and CONSOLE_PASSWORD")
		}
		token, err := ms.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if err := sess.SetToken(token); err != nil {
			return fmt.Errorf("set token: %w", err)
		}
	}

	task, err := importer.Load(ctx, dir)
	if err != nil {
		return err
	}

	detail, err := oj.CreateProblem(ctx, task.Params)
	if err != nil {
		return fmt.Errorf("create problem %s: %w", task.Params.DisplayID, err)
	}
	log.Printf(ctx, "created problem %s (id %d)", detail.DisplayID, detail.ID)

	if len(task.TestArchive) > 0 {
		info, scores, err := oj.UploadTestCases(ctx, detail.ID, task.TestArchive, false)
		if err != nil {
			return fmt.Errorf("upload tests for %s: %w", detail.DisplayID, err)
		}
		log.Printf(ctx, "uploaded %d test cases (%s)", len(scores), info)
	}

	fmt.Printf("Imported %q as %s.\n", task.Params.Title, detail.DisplayID)
	return nil
}
