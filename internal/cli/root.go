package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrUsage indicates the command line could not be accepted.
var ErrUsage = errors.New("usage error")

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	cfgFile string
	verbose bool
	compact bool
}

// newRootCmd builds the javadecl command. Records go to stdout; every
// diagnostic goes to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "javadecl <path-to-java-file>",
		Short: "List the declarations of a Java source file as JSON",
		Long: `javadecl parses one Java source file and prints a JSON array describing
its package, imports, top-level types and their fields, constructors and
methods, in source order.

A file that does not parse prints [] and exits 0 after reporting the
syntax error on stderr, so a caller processing many files can carry on.

Examples:
  # Pretty-printed records
  javadecl src/main/java/com/acme/Server.java

  # One line of JSON
  javadecl --compact Server.java
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one file argument, got %d", ErrUsage, len(args))
			}
			return nil
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), opts, args[0], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is .javadecl.yaml in the working directory or $HOME)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print the JSON array on a single line")

	return cmd
}

// Run executes javadecl with args (excluding the program name) and returns
// the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}

// Execute runs javadecl against the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
