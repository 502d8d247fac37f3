// Package cli implements the dnparse command.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-rfc2253"
	"github.com/KimNorgaard/go-rfc2253/internal/flags/enum"
	"github.com/KimNorgaard/go-rfc2253/internal/flags/log"
)

const (
	FlagOutput      = "output"
	FlagMaxLength   = "max-length"
	FlagRejectEmpty = "reject-empty"

	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

// New returns the root command of dnparse.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnparse [flags] DN...",
		Short: "Parse distinguished names in RFC 2253 string representation",
		Long: `Parse one or more distinguished names and print their attributes.

Every argument is parsed even if an earlier one is invalid. The command
exits with an error if any argument could not be parsed.`,
		Example: `  dnparse "C=DE,CN=Hans Tester,O=ACME Inc."
  dnparse -o yaml 'CN=Nyan\21Cat' 'CN=#4E59414E'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	log.RegisterLoggingFlags(cmd.Flags())
	enum.VarP(cmd.Flags(), FlagOutput, "o", []string{
		OutputTable,
		OutputYAML,
		OutputJSON,
	}, "output format (table, yaml, json)")
	cmd.Flags().Int(FlagMaxLength, 0, "reject distinguished names longer than this many characters (0 disables the limit)")
	cmd.Flags().Bool(FlagRejectEmpty, false, "reject attributes with an empty value")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return err
	}

	output, err := enum.Get(cmd.Flags(), FlagOutput)
	if err != nil {
		return err
	}

	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	results := make([]Result, 0, len(args))
	var errs []error
	for _, arg := range args {
		logger.Debug("parsing distinguished name", "dn", arg)
		dn, err := rfc2253.Parse(arg, opts...)
		if err != nil {
			logger.Debug("rejected distinguished name", "dn", arg, "error", err)
			errs = append(errs, fmt.Errorf("parsing %q failed: %w", arg, err))
			continue
		}
		logger.Debug("parsed distinguished name", "dn", arg, "attributes", dn.Len())
		results = append(results, Result{DN: arg, Attributes: dn.Attributes})
	}

	if len(results) > 0 {
		data, err := encodeResults(output, results)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing output failed: %w", err)
		}
	}

	return errors.Join(errs...)
}

func parseOptions(cmd *cobra.Command) ([]rfc2253.Option, error) {
	var opts []rfc2253.Option

	maxLength, err := cmd.Flags().GetInt(FlagMaxLength)
	if err != nil {
		return nil, err
	}
	if maxLength < 0 {
		return nil, fmt.Errorf("--%s must not be negative", FlagMaxLength)
	}
	if maxLength > 0 {
		opts = append(opts, rfc2253.MaxLength(maxLength))
	}

	rejectEmpty, err := cmd.Flags().GetBool(FlagRejectEmpty)
	if err != nil {
		return nil, err
	}
	if rejectEmpty {
		opts = append(opts, rfc2253.RejectEmptyValues())
	}

	return opts, nil
}
