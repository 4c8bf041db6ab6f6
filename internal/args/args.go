package args

import (
	"flag"
	"fmt"
	"io"
)

type Args struct {
	ConfigFilePath string
	ResourceDir    string
	Mode           string
}

// ParseArgs parses the headless launcher's flags from argv (without the
// program name).
func ParseArgs(name string, argv []string, output io.Writer) (*Args, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	configFilePath := fs.String("config", "", "Path to the configuration file (optional)")
	fs.StringVar(configFilePath, "c", *configFilePath, "Path to the configuration file (optional) (short)")

	resourceDir := fs.String("resource-dir", "", "Directory holding bin/flask-backend (optional)")
	mode := fs.String("mode", "", "Resource mode: packaged or development (optional)")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [options]\n", name)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return &Args{
		ConfigFilePath: *configFilePath,
		ResourceDir:    *resourceDir,
		Mode:           *mode,
	}, nil
}
