package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/ogrekit/ogrekit/exchanges/tradeogre"
	"github.com/ogrekit/ogrekit/log"
	"github.com/urfave/cli/v2"
)

func jsonOutput(c *cli.Context, in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Fprintln(c.App.Writer, string(j))
}

// checkResponse turns a rejected request into a highlighted exit error
func checkResponse(r *tradeogre.Response) error {
	if err := r.Err(); err != nil {
		return cli.Exit(fmt.Sprintf("%s %s", aurora.Bold(aurora.Red("REJECTED")), aurora.Red(err)), 1)
	}
	return nil
}

// argOrFlag returns the named flag if set, otherwise the positional argument
// at index
func argOrFlag(c *cli.Context, name string, index int) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return c.Args().Get(index)
}

// logToStderr moves every stdout log writer onto stderr so that command output
// written to stdout stays machine readable
func logToStderr(cfg *log.Config) {
	cfg.Output = stderrOutput(cfg.Output)
	for i := range cfg.SubLoggers {
		cfg.SubLoggers[i].Output = stderrOutput(cfg.SubLoggers[i].Output)
	}
}

func stderrOutput(output string) string {
	writers := strings.Split(output, "|")
	for i := range writers {
		switch strings.ToLower(writers[i]) {
		case "stdout", "console":
			writers[i] = "stderr"
		}
	}
	return strings.Join(writers, "|")
}
