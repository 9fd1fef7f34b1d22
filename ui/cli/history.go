// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
)

// historyExport is the document written by 'sena history export'.
type historyExport struct {
	ExportedAt time.Time           `json:"exported_at"`
	Messages   []model.ChatMessage `json:"messages"`
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect, export or clear the chat history",
	}
	cmd.AddCommand(newHistoryShowCmd(), newHistoryExportCmd(), newHistoryClearCmd())
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := store.CurrentConversation(cmd.Context())
			if err != nil {
				return err
			}
			messages, err := store.Messages(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("chat.empty"))
				return nil
			}
			for _, m := range messages {
				fmt.Fprintln(cmd.OutOrStdout(), m.String())
			}
			return nil
		},
	}
}

func newHistoryExportCmd() *cobra.Command {
	var compress bool
	cmd := &cobra.Command{
		Use:   "export [output-file]",
		Short: "Export every stored message as JSON",
		Long: `Writes all stored messages of all conversations as a JSON document.

Without an output file the JSON is printed to stdout. With --zstd the output
is Zstandard-compressed and '.zst' is appended to the file name if missing.

Examples:
  # Print the history
  sena history export

  # Write a compressed export
  sena history export sena-history.json --zstd`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			messages, err := store.AllMessages(cmd.Context())
			if err != nil {
				return err
			}
			data := historyExport{ExportedAt: time.Now().UTC(), Messages: messages}

			if len(args) == 0 {
				return writeHistory(cmd.OutOrStdout(), &data, compress)
			}

			outputFile := args[0]
			if compress && !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := writeHistory(f, &data, compress); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("history.exported", len(messages), outputFile))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "zstd", false, "Compress the export with Zstandard")
	return cmd
}

// writeHistory encodes data as indented JSON, optionally through a zstd
// stream.
func writeHistory(w io.Writer, data *historyExport, compress bool) error {
	if compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("could not create zstd writer: %w", err)
		}
		if err := writeHistory(zw, data, false); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode history: %w", err)
	}
	return nil
}

// readHistory decodes an export written by writeHistory.
func readHistory(r io.Reader, compressed bool) (*historyExport, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var data historyExport
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode history: %w", err)
	}
	return &data, nil
}

func newHistoryClearCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the current conversation, or every conversation with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var n int
			if all {
				n, err = store.ClearAll(ctx)
			} else {
				var id string
				if id, err = store.CurrentConversation(ctx); err == nil {
					n, err = store.ClearConversation(ctx, id)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("history.cleared", n))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Delete all conversations")
	return cmd
}
