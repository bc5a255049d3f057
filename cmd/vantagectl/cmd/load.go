package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/loopj/aiovantage-sub001/objects"
)

var loadTransition float64

var loadCmd = &cobra.Command{
	Use:   "load <on|off|level> <vid> [level]",
	Short: "Turn a load on/off, or set its level",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().Float64Var(&loadTransition, "transition", 0, "transition time in seconds")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	action := args[0]
	vid, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid vid %q: %w", args[1], err)
	}

	client, err := openClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.Connect(ctx, false); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	load, ok := client.Loads().Get(objects.VID(vid))
	if !ok {
		return fmt.Errorf("no load with vid %d", vid)
	}
	l, ok := load.(*objects.Load)
	if !ok {
		return fmt.Errorf("vid %d is a %s, not a Load", vid, load.Kind())
	}

	switch action {
	case "on":
		return l.TurnOn(ctx, loadTransition)
	case "off":
		return l.TurnOff(ctx, loadTransition)
	case "level":
		if len(args) != 3 {
			return fmt.Errorf("level requires a value argument")
		}
		level, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[2], err)
		}
		return l.SetLevel(ctx, level)
	default:
		return fmt.Errorf("unknown action %q, want on/off/level", action)
	}
}
