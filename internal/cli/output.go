// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefront/result"
)

// openOutput resolves the -o flag: the command's stdout when empty, a
// freshly created file otherwise. The returned func closes the file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", path, err)
	}

	return f, func() { _ = f.Close() }, nil
}

// writeTable renders one distance table in the requested format.
func writeTable(w io.Writer, t *result.Table, format string) error {
	if format == "csv" {
		return t.WriteCSV(w)
	}

	return t.WriteText(w)
}
