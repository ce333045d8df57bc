// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats_cmd.go - Server statistics and health commands for datachat.
//
// Command: stats
// Short:   Show the backend's aggregate counters
//
// Command: status (alias: health)
// Short:   Check backend liveness
//
// Examples:
//   datachat stats
//   datachat status
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// healthTimeout keeps the liveness probe snappy.
const healthTimeout = 5 * time.Second

// HandleStats prints the backend's aggregate counters.
func HandleStats(args Args) error {
	client, tr := setup(args)

	ctx, cancel := context.WithTimeout(context.Background(), listCmdTimeout)
	defer cancel()

	stats, err := client.Stats(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorConnection))
		return err
	}

	fmt.Println(titleStyle.Render("Server statistics"))
	fmt.Println()
	printStat("Databases", stats.TotalDatabases)
	printStat("Records", stats.TotalRecords)
	printStat("Queries", stats.TotalQueries)
	printStat("Conversations", stats.TotalConversations)
	return nil
}

func printStat(label string, value int) {
	fmt.Printf("  %s %s\n",
		labelStyle.Render(padRight(label+":", 16)),
		valueStyle.Render(strconv.Itoa(value)))
}

// HandleStatus probes the backend and reports liveness.
func HandleStatus(args Args) error {
	client, tr := setup(args)

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	h, err := client.CheckHealth(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render("Backend: unreachable"))
		fmt.Println(mutedStyle.Render(tr.ErrorConnection))
		return err
	}

	fmt.Println(successStyle.Render("Backend: " + h.Status))
	fmt.Println(labelStyle.Render(tr.DBConnected(h.Databases)))
	return nil
}
