package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Connect and print every load, RGB load, blind, button and thermostat, one per line",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	client, err := openClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.Connect(ctx, false); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	for obj := range client.Loads().Iter(ctx) {
		fmt.Printf("%-8s %6d\n", obj.Kind(), obj.ObjectVID())
	}
	for obj := range client.RGBLoads().Iter(ctx) {
		fmt.Printf("%-8s %6d\n", obj.Kind(), obj.ObjectVID())
	}
	for obj := range client.Blinds().Iter(ctx) {
		fmt.Printf("%-8s %6d\n", obj.Kind(), obj.ObjectVID())
	}
	for obj := range client.Buttons().Iter(ctx) {
		fmt.Printf("%-8s %6d %s\n", obj.Kind(), obj.ObjectVID(), obj.Name)
	}
	for obj := range client.Thermostats().Iter(ctx) {
		fmt.Printf("%-8s %6d %s\n", obj.Kind(), obj.ObjectVID(), obj.Name)
	}

	return nil
}
