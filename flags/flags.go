package flags

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	ProcRoot = kingpin.Flag("procfs-root", "The mount point of procfs, uptime is read from <procfs-root>/uptime").Default("/proc").String()

	// positional arguments are accepted and ignored
	_ = kingpin.Arg("args", "Ignored").Strings()

	version = kingpin.Flag("version", "Print version and exit").Default("false").Bool()
	Version = "unknown"
)

func init() {
	if strings.HasSuffix(os.Args[0], ".test") {
		return
	}
	Parse(os.Args[1:])
}

func Parse(args []string) {
	kingpin.HelpFlag.Short('h').Hidden()
	kingpin.MustParse(kingpin.CommandLine.Parse(args))

	if *version {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	if *ProcRoot == "" {
		*ProcRoot = "/proc"
	}
}
