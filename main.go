package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coroot/uptime-reporter/flags"
	"github.com/coroot/uptime-reporter/node"
	"k8s.io/klog/v2"
)

func report(w io.Writer, uptime float64) error {
	_, err := fmt.Fprintf(w, "System Uptime: %.2f seconds\n", uptime)
	return err
}

func run(w io.Writer, procRoot string) error {
	uptime, err := node.Uptime(procRoot)
	if err != nil {
		return err
	}
	return report(w, uptime)
}

func main() {
	defer klog.Flush()

	if err := run(os.Stdout, *flags.ProcRoot); err != nil {
		klog.Exitln(err)
	}
}
