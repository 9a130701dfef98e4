package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var (
	paramsFile   string
	saveTo       string
	windowWidth  int
	windowHeight int
)

var rootCmd = &cobra.Command{
	Use:          "bootview",
	Short:        "Interactive preview of a CV joint boot",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&paramsFile, "params", "p", "", "parameter file, reloaded when it changes")
	rootCmd.Flags().StringVarP(&saveTo, "save", "o", "cv_boot.stl", "STL written by the S key")
	rootCmd.Flags().IntVar(&windowWidth, "width", 1024, "window width")
	rootCmd.Flags().IntVar(&windowHeight, "height", 768, "window height")
}

func loadParams() (cvboot.Params, error) {
	if paramsFile == "" {
		return cvboot.DefaultParams(), nil
	}
	p, err := cvboot.LoadParams(paramsFile)
	if err != nil {
		return p, err
	}
	return p, p.Validate()
}

// watchParams sends a freshly loaded parameter set every time the file
// changes. Invalid files are logged and skipped.
func watchParams(ctx context.Context, path string) (<-chan cvboot.Params, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan cvboot.Params, 1)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				p, err := loadParams()
				if err != nil {
					slog.Warn("ignoring parameter file", "path", path, "err", err)
					continue
				}
				select {
				case out <- p:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("watch error", "err", err)
			}
		}
	}()
	return out, nil
}

func run(cmd *cobra.Command, args []string) error {
	cvboot.SetLogger(slog.Default())

	p, err := loadParams()
	if err != nil {
		return err
	}

	var reload <-chan cvboot.Params
	if paramsFile != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if reload, err = watchParams(ctx, paramsFile); err != nil {
			return fmt.Errorf("could not watch %s: %w", paramsFile, err)
		}
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("CV Boot Designer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(p, windowWidth, windowHeight, reload, saveTo))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
