package main

import (
	"fmt"

	"github.com/jward/roster"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <email>...",
	Short: "Check email validity",
	Long:  "Reports whether each email is valid under the directory's rule: an email is valid iff it contains an @ character. Exits nonzero if any input is invalid.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]CLIEmailCheck, 0, len(args))
	invalid := 0
	for _, email := range args {
		u := roster.NewUser("", email)
		ok := u.IsValid()
		if !ok {
			invalid++
		}
		results = append(results, CLIEmailCheck{Email: email, Valid: ok})
	}

	if err := outputResult(CLIResult{Command: "validate", Results: results}); err != nil {
		return err
	}
	if invalid > 0 {
		errorHandled = true // the per-email output already says which failed
		return fmt.Errorf("%d invalid email(s)", invalid)
	}
	return nil
}
