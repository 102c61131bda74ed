package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"hexglow/internal/config"
	"hexglow/internal/dump"
	"hexglow/internal/profile"
	"hexglow/internal/tui"
)

// CLI is the root command structure for hexglow.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose debug output"`

	// Default command - dump to stdout
	Dump DumpCmd `cmd:"" default:"withargs" help:"Dump files as colorized hex (default)"`

	View     ViewCmd     `cmd:"" help:"Browse a file's hex dump interactively"`
	Profiles ProfilesCmd `cmd:"" help:"List registered colour profiles"`
}

// --- Dump Command ---

type DumpCmd struct {
	Profile     string `help:"Colour profile name" default:"default"`
	RowLength   int    `help:"Bytes per output row" default:"32"`
	ChunkLength int    `help:"Bytes per hex group" default:"4"`
	NoColour    bool   `help:"Disable colour output"`

	Files []string `arg:"" optional:"" type:"existingfile" help:"Files to dump (stdin when omitted)"`
}

func (c *DumpCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	return c.dump(os.Stdout, os.Stderr, os.Stdin)
}

// dump resolves configuration, then drains every source in order. The
// writers are parameters so tests can capture output.
func (c *DumpCmd) dump(stdout, stderr io.Writer, stdin io.Reader) error {
	// Configuration errors must surface before anything is written.
	layout, prof, err := c.configure()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	err = c.dumpAll(out, stderr, stdin, layout, prof)
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func (c *DumpCmd) dumpAll(out *bufio.Writer, stderr io.Writer, stdin io.Reader, layout dump.Layout, prof *profile.Profile) error {
	if len(c.Files) == 0 {
		config.Debugf("dumping stdin, row=%d chunk=%d profile=%s", layout.RowLength, layout.ChunkLength, prof.Name)
		return dumpSource(stdin, layout, prof, out, "")
	}

	// With more than one file each section opens with a head-style
	// heading and each line gets a filename prefix, the way grep labels
	// matches. A failing file is reported and the rest still run.
	labelled := len(c.Files) > 1
	failures := 0
	for _, name := range c.Files {
		prefix, heading := "", ""
		if labelled {
			prefix = name + ": "
			heading = "==> " + name + " <==\n"
		}
		if err := dumpFile(name, layout, prof, out, prefix, heading); err != nil {
			out.Flush()
			fmt.Fprintf(stderr, "hexglow: %s: %v\n", name, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d file(s) could not be dumped", failures)
	}
	return nil
}

// configure validates the layout and resolves the profile name.
func (c *DumpCmd) configure() (dump.Layout, *profile.Profile, error) {
	layout, err := dump.NewLayout(c.RowLength, c.ChunkLength, !c.NoColour)
	if err != nil {
		return dump.Layout{}, nil, err
	}
	prof, err := profile.Lookup(c.Profile)
	if err != nil {
		return dump.Layout{}, nil, err
	}
	return layout, prof, nil
}

func dumpFile(name string, layout dump.Layout, prof *profile.Profile, out *bufio.Writer, prefix, heading string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	config.Debugf("dumping %s", name)
	// The heading goes out only once the file actually opened, so a
	// failing file never leaves an orphan heading behind.
	out.WriteString(heading)
	return dumpSource(f, layout, prof, out, prefix)
}

func dumpSource(r io.Reader, layout dump.Layout, prof *profile.Profile, out *bufio.Writer, prefix string) error {
	rows := 0
	err := dump.FormatStream(r, layout, prof, func(line string) {
		out.WriteString(prefix)
		out.WriteString(line)
		out.WriteByte('\n')
		rows++
	})
	config.Debugf("emitted %d row(s)", rows)
	return err
}

// --- View Command ---

type ViewCmd struct {
	Profile     string `help:"Colour profile name" default:"default"`
	RowLength   int    `help:"Bytes per output row" default:"16"`
	ChunkLength int    `help:"Bytes per hex group" default:"4"`

	File string `arg:"" type:"existingfile" help:"File to browse"`
}

func (c *ViewCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose

	layout, err := dump.NewLayout(c.RowLength, c.ChunkLength, true)
	if err != nil {
		return err
	}
	prof, err := profile.Lookup(c.Profile)
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	if err := dump.FormatStream(f, layout, prof, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}

	return tui.Run(tui.Dump{
		Name:  c.File,
		Size:  info.Size(),
		Lines: lines,
	})
}

// --- Profiles Command ---

type ProfilesCmd struct{}

func (c *ProfilesCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	for _, name := range profile.Names() {
		fmt.Println(name)
	}
	return nil
}
