package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatUsersText formats CLIUser results as aligned columns.
func formatUsersText(w io.Writer, users []CLIUser) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tVALID\tRETRIEVED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%t\n",
			u.ID, u.Name, u.Email, u.Valid, u.Retrieved)
	}
	tw.Flush()
}

// formatEmailChecksText formats CLIEmailCheck results as aligned columns.
func formatEmailChecksText(w io.Writer, checks []CLIEmailCheck) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tVALID")
	for _, c := range checks {
		fmt.Fprintf(tw, "%s\t%t\n", c.Email, c.Valid)
	}
	tw.Flush()
}

// outputResultText dispatches to the appropriate text formatter based
// on the result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case []CLIUser:
		formatUsersText(w, v)
	case []CLIEmailCheck:
		formatEmailChecksText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so
// RunE can propagate it to Cobra. In JSON mode the error is written to
// stdout as a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

// validStores lists accepted values for --store.
var validStores = []string{"memory", "sqlite"}

// validateStore checks that the --store flag value is recognized.
func validateStore(store string) error {
	for _, s := range validStores {
		if store == s {
			return nil
		}
	}
	return fmt.Errorf("invalid store %q: must be %s", store, strings.Join(validStores, " or "))
}
