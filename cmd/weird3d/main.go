package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weird3d/internal/tui"
)

func main() {
	var opts tui.Options
	flag.StringVar(&opts.Scene, "scene", "terrain", "built-in scene: terrain, orrery or empty")
	flag.Float64Var(&opts.FovY, "fov", 60, "vertical field of view in degrees")
	debug := flag.String("debug", "", "write debug log to `file`")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file.wkt|file.csv|file.obj]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.Path = flag.Arg(0)

	if *debug != "" {
		f, err := tea.LogToFile(*debug, "weird3d")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.New(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
