package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const envPrefix = "MATRIXGEN"

const (
	flagDir   = "dir"
	flagSeed  = "seed"
	flagDebug = "debug"
	flagAddr  = "addr"
)

// newRootCmd builds the command tree with its own viper instance, so flags
// and MATRIXGEN_* environment variables resolve per invocation.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "matrixgen",
		Short:         "Generate a square matrix of random integers into a new file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			InitLogger(v.GetBool(flagDebug))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String(flagDir, defaultOutputDir, "directory receiving the matrix files, must exist")
	rootCmd.PersistentFlags().Int64(flagSeed, 0, "random seed, 0 seeds from the clock")
	rootCmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rootCmd.AddCommand(newVerifyCmd(), newServeCmd(v))
	return rootCmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Generate a matrix file")

	gen := NewGenerator(v.GetString(flagDir), newRandSource(v.GetInt64(flagSeed)))
	path, err := gen.Generate(newPromptReader(cmd.InOrStdin(), out))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "The file %s was created\n", path)
	return nil
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that matrix files are well formed and values lie in range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				s, err := verifyFile(path)
				if err != nil {
					logger.Errorf("%s: %v", path, err)
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, min %d, max %d, sum %d\n",
					path, s.Size, s.Size, s.Min, s.Max, s.Sum)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func verifyFile(path string) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer file.Close()

	m, err := ReadMatrix(file)
	if err != nil {
		return Summary{}, err
	}
	if err = m.checkRange(minValue, maxValue); err != nil {
		return Summary{}, err
	}
	return m.Summary(), nil
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve matrix generation over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := echo.New()
			e.HideBanner = true
			Init(e, NewGenerator(v.GetString(flagDir), newRandSource(v.GetInt64(flagSeed))))

			addr := v.GetString(flagAddr)
			logger.Infof("serving matrices from %s on %s", v.GetString(flagDir), addr)
			return e.Start(addr)
		},
	}
	serveCmd.Flags().String(flagAddr, ":8080", "listen address")
	return serveCmd
}

// Execute runs the command line and exits 1 on any error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
