package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/rhx-tools/rhx-launcher/pkg/launcher"
)

var (
	diagLogger  hclog.Logger
	versionFlag bool
	diagCmd     *cobra.Command
)

func init() {
	diagCmd = &cobra.Command{
		Use:   "rhx-launcher",
		Short: "Inspect the rhx launcher's dispatch decisions",
		Long: `Inspect the rhx launcher's dispatch decisions.

This mode is entered by setting RHX_LAUNCHER_CLI=1; without it, rhx
forwards all arguments to the wrapped CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			if versionFlag {
				fmt.Printf("rhx-launcher %s\n", version)
				fmt.Printf("Built: %s\n", getBuildTimestamp())
				return
			}
			_ = cmd.Help()
		},
	}

	diagCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	diagCmd.AddCommand(
		newTargetsCmd(),
		newResolveCmd(),
		newLaunchersCmd(),
		newDoctorCmd(),
	)
}

func runDiagCLI(logger hclog.Logger) {
	diagLogger = logger
	if err := diagCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(launcher.ExitFailure)
	}
}

// newTargetsCmd lists the native target table and marks the current platform.
func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List platforms with prebuilt native binaries",
		Run: func(cmd *cobra.Command, args []string) {
			current := launcher.TargetKey(runtime.GOOS, runtime.GOARCH)
			for _, key := range launcher.TargetKeys() {
				marker := " "
				if key == current {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, key)
			}
			if _, ok := launcher.TargetFor(runtime.GOOS, runtime.GOARCH); !ok {
				fmt.Printf("\ncurrent platform %s has no native binary; the Python launcher chain is used\n", current)
			}
		},
	}
}

// newResolveCmd runs native resolution and prints the result.
func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Show how the native binary resolves on this platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := launcher.ResolveNative(runtime.GOOS, runtime.GOARCH, launcher.Options{Logger: diagLogger})
			if err != nil {
				return err
			}
			fmt.Printf("supported: %v\n", res.Supported)
			if res.Supported {
				fmt.Printf("package:   %s\n", res.Package)
				if res.Path != "" {
					fmt.Printf("path:      %s\n", res.Path)
				} else {
					fmt.Printf("path:      (package not installed)\n")
				}
			}
			return nil
		},
	}
}

// newLaunchersCmd prints the fallback chain that would be attempted.
func newLaunchersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launchers [args...]",
		Short: "Print the Python launcher fallback chain, in order",
		Run: func(cmd *cobra.Command, args []string) {
			dist := os.Getenv(launcher.EnvPackageOverride)
			if dist == "" {
				dist = launcher.DefaultPackage
			}
			for i, l := range launcher.BuildLaunchers(dist, args) {
				fmt.Printf("%d. %s", i+1, l.Command)
				for _, a := range l.Args {
					fmt.Printf(" %s", a)
				}
				fmt.Println()
			}
		},
	}
}

// newDoctorCmd probes PATH for each launcher runtime.
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check which launcher runtimes are installed",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range []string{"uvx", "pipx", "python3", "python"} {
				if path, err := exec.LookPath(name); err == nil {
					fmt.Printf("✅ %-8s %s\n", name, path)
				} else {
					fmt.Printf("❌ %-8s not found\n", name)
				}
			}
		},
	}
}
