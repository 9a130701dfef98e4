package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export the mesh whenever the --params file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if paramsFile == "" {
			return errors.New("watch needs a parameter file (--params)")
		}
		format, err := formatFor(watchOut, "")
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		regenerate := func() {
			p, err := resolveParams(cmd)
			if err != nil {
				slog.Error("could not load parameters", "err", err)
				return
			}
			m := buildForExport(p)
			if err := exportMesh(watchOut, m, format, solidName); err != nil {
				slog.Error("could not export mesh", "err", err)
				return
			}
			slog.Info("regenerated mesh", "path", watchOut, "triangles", m.TriangleCount())
		}
		regenerate()

		return watchFile(ctx, paramsFile, regenerate)
	},
}

// watchFile calls onChange each time path is written or replaced. The parent
// directory is watched because editors often save by renaming a temp file.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch %s: %w", path, err)
	}
	slog.Info("watching parameter file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "output", "o", "cv_boot.stl", "output file (.stl or .ply)")
	watchCmd.Flags().StringVar(&solidName, "name", cvboot.DefaultSolidName, "solid name")
	watchCmd.Flags().BoolVar(&flipWinding, "flip", false, "reverse the winding of every triangle")
	rootCmd.AddCommand(watchCmd)
}
