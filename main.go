package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stegex/internal/cli"
)

func main() {
	var cpuProfile, memProfileDir string

	rootCmd := &cobra.Command{
		Use:           "stegex",
		Short:         "Extracts byte streams hidden in the least significant bits of images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	var cpuProfTeardown, memProfTeardown func()
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cpuProfile != "" {
			cpuProfTeardown = setupCPUProfilingAndReturnTeardown(cpuProfile)
		}
		if memProfileDir != "" {
			memProfTeardown = setupMemProfilingAndReturnTeardown(memProfileDir)
		}
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if cpuProfTeardown != nil {
			cpuProfTeardown()
		}
		if memProfTeardown != nil {
			memProfTeardown()
		}
	}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		if cpuProfTeardown != nil {
			cpuProfTeardown()
		}
		if memProfTeardown != nil {
			memProfTeardown()
		}
		os.Exit(0)
	}()

	rootCmd.AddCommand(cli.ImageCommands(), cli.ServeAppCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func setupCPUProfilingAndReturnTeardown(cpuProfile string) (deferredTeardown func()) {
	cpuProfileFile, err := os.Create(cpuProfile)
	if err != nil {
		log.Fatal(err)
	}
	cli.StartCPUProfiler(cpuProfileFile)

	return func() {
		cli.StopCPUProfiler()
		cpuProfileFile.Close()
	}
}

func setupMemProfilingAndReturnTeardown(memProfileDir string) (deferredTeardown func()) {
	cli.StartMemoryProfiler(memProfileDir)
	return func() {
		cli.StopMemoryProfiler()
	}
}
