package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toasthud/toasthud/internal/sound"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Inspect the bundled sound catalog",
}

var soundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled sound names",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range sound.Catalog() {
			path, err := sound.Resolve(name)
			if err != nil {
				return err
			}
			status := "missing"
			if _, err := os.Stat(path); err == nil {
				status = "ok"
			}
			fmt.Printf("%-16s %s (%s)\n", name, path, status)
		}
		return nil
	},
}

var soundsPreviewCmd = &cobra.Command{
	Use:   "preview NAME|PATH",
	Short: "Play a sound by catalog name or file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sound.Validate(args[0]); err != nil {
			return err
		}
		path, err := sound.Resolve(args[0])
		if err != nil {
			return err
		}

		player := sound.NewPlayer(logger)
		defer player.Close()
		player.SetVolume(float64(cfg.Audio.Volume) / 100.0)

		return player.PlayAndWait(path)
	},
}

func init() {
	soundsCmd.AddCommand(soundsListCmd)
	soundsCmd.AddCommand(soundsPreviewCmd)
	rootCmd.AddCommand(soundsCmd)
}
