package cli

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uitestext/pkg/control"
	"github.com/devicelab-dev/uitestext/pkg/core"
)

var hierarchyCommand = &cli.Command{
	Name:      "hierarchy",
	Usage:     "Print the control tree of a snapshot",
	ArgsUsage: "<snapshot.xml>",
	Description: `Print the control tree of a snapshot, indented or in CSV format.

Examples:
  uitestext hierarchy window.xml
  uitestext hierarchy --compact window.xml`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "Output in CSV format",
		},
	},
	Action: runHierarchy,
}

var csvHeader = []string{"depth", "type", "automationId", "name", "className", "state", "x", "y", "width", "height"}

func runHierarchy(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	if c.Bool("compact") {
		w := csv.NewWriter(c.App.Writer)
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		err := control.Walk(s.host.Root(), func(node core.Node, depth int) error {
			state, err := node.State()
			if err != nil {
				return err
			}
			b := node.Bounds()
			return w.Write([]string{
				strconv.Itoa(depth),
				node.Type().String(),
				node.AutomationID(),
				node.Name(),
				node.ClassName(),
				state.String(),
				strconv.Itoa(b.X),
				strconv.Itoa(b.Y),
				strconv.Itoa(b.Width),
				strconv.Itoa(b.Height),
			})
		})
		if err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	}

	return control.Walk(s.host.Root(), func(node core.Node, depth int) error {
		state, err := node.State()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.App.Writer, "%s%s\n", strings.Repeat("  ", depth-1), describeNode(node, state))
		return err
	})
}

// describeNode formats a node as: button id="ok" name="OK" [disabled]
func describeNode(node core.Node, state core.ControlState) string {
	var sb strings.Builder
	sb.WriteString(node.Type().String())
	if id := node.AutomationID(); id != "" {
		fmt.Fprintf(&sb, " id=%q", id)
	}
	if name := node.Name(); name != "" {
		fmt.Fprintf(&sb, " name=%q", name)
	}
	if state != 0 {
		fmt.Fprintf(&sb, " [%s]", state)
	}
	return sb.String()
}
