// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// databases_cmd.go - Database listing and import commands for datachat.
//
// Command: databases (aliases: dbs, db)
// Short:   List imported databases
//
// Command: scan
// Short:   List importable files found in the backend's data directory
//
// Command: import PATH [--name NAME]
// Short:   Import a file as a queryable database
//
// Examples:
//   datachat databases
//   datachat scan
//   datachat import ./exports/clients.csv --name clients
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/datachat-tui/internal/api"
)

// listCmdTimeout bounds the list commands.
const listCmdTimeout = 15 * time.Second

// importTimeout bounds an import; large CSV files take a while.
const importTimeout = 5 * time.Minute

// HandleDatabases lists the imported databases.
func HandleDatabases(args Args) error {
	client, tr := setup(args)

	ctx, cancel := context.WithTimeout(context.Background(), listCmdTimeout)
	defer cancel()

	dbs, err := client.ListDatabases(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorConnection))
		return err
	}

	if len(dbs) == 0 {
		fmt.Println(mutedStyle.Render(tr.NoDB))
		fmt.Println(mutedStyle.Render(tr.NoDBSub))
		return nil
	}

	fmt.Println(titleStyle.Render(tr.DBConnected(len(dbs))))
	fmt.Println()

	rows := make([][]string, 0, len(dbs))
	for _, db := range dbs {
		rows = append(rows, []string{
			db.Name,
			strconv.Itoa(db.RowCount),
			strconv.Itoa(len(db.Columns)),
			db.Source,
		})
	}
	printColumns([]string{"NAME", "ROWS", "COLUMNS", "SOURCE"}, rows)
	return nil
}

// HandleScan lists importable files found by the backend.
func HandleScan(args Args) error {
	client, tr := setup(args)

	ctx, cancel := context.WithTimeout(context.Background(), listCmdTimeout)
	defer cancel()

	entries, err := client.ScanFiles(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorConnection))
		return err
	}

	if len(entries) == 0 {
		fmt.Println(mutedStyle.Render("No importable files found."))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := e.Status
		if e.Imported {
			status = successStyle.Render("imported")
		}
		rows = append(rows, []string{
			e.Filename,
			e.Type,
			fmt.Sprintf("%.1f MB", e.SizeMB),
			status,
		})
	}
	printColumns([]string{"FILE", "TYPE", "SIZE", "STATUS"}, rows)
	return nil
}

// HandleImport imports a file as a queryable database. On failure the
// backend's detail message is shown when present; otherwise the
// localized unknown-error text.
func HandleImport(args Args) error {
	if args.Path == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Usage: datachat import PATH [--name NAME]"))
		return fmt.Errorf("missing path")
	}

	client, tr := setup(args)

	name := args.Name
	if name == "" {
		base := filepath.Base(args.Path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	fmt.Println(mutedStyle.Render("Importing " + args.Path + " as " + name + "..."))

	res, err := client.ImportDatabase(ctx, api.ImportRequest{Path: args.Path, Name: name})
	if err != nil {
		var apiErr *api.Error
		switch {
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorConnection))
		case errors.As(err, &apiErr) && apiErr.Detail != "":
			fmt.Fprintln(os.Stderr, errorStyle.Render(apiErr.Detail))
		case errors.Is(err, api.ErrBadRequest):
			detail := strings.TrimPrefix(err.Error(), api.ErrBadRequest.Error()+": ")
			fmt.Fprintln(os.Stderr, errorStyle.Render(detail))
		default:
			fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorUnknown))
		}
		return err
	}

	if !res.Success {
		detail := res.Detail
		if detail == "" {
			detail = tr.ErrorUnknown
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(detail))
		return fmt.Errorf("import failed")
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Imported %s (%d rows)", name, res.RowCount)))
	return nil
}
