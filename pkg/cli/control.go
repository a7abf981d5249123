package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uitestext/pkg/control"
	"github.com/devicelab-dev/uitestext/pkg/core"
)

// selectionFlags choose the control a command works on.
var selectionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "id",
		Usage: "Automation id of the control",
	},
	&cli.StringFlag{
		Name:  "declared",
		Usage: "Control name declared in the config file",
	},
	&cli.StringSliceFlag{
		Name:  "prop",
		Usage: "Property condition Name=value, or Name~=value for contains (repeatable)",
	},
	&cli.StringFlag{
		Name:  "type",
		Usage: "Control type (button, text, edit, ...); any type when omitted",
	},
}

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "Print the first control matching the selection",
	ArgsUsage: "<snapshot.xml>",
	Description: `Find a control and print it. Fails when nothing matches.

Examples:
  uitestext find --id login window.xml
  uitestext find --type text --prop "Name~=welcome" window.xml`,
	Flags:  selectionFlags,
	Action: runFind,
}

var existsCommand = &cli.Command{
	Name:      "exists",
	Usage:     "Print whether a control matching the selection exists",
	ArgsUsage: "<snapshot.xml>",
	Flags:     selectionFlags,
	Action:    runExists,
}

var clickCommand = &cli.Command{
	Name:      "click",
	Usage:     "Click the control matching the selection",
	ArgsUsage: "<snapshot.xml>",
	Description: `Click a control at the centre of its bounds through the configured
pointer backend (dry-run by default).

Examples:
  uitestext click --declared LoginButton window.xml
  uitestext --pointer robot click --id panel --first-visible-child window.xml`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "first-visible-child",
			Usage: "Click the first visible text control inside the selected control",
		},
	}, selectionFlags...),
	Action: runClick,
}

func runFind(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	handle, err := selectControl(c, s)
	if err != nil {
		return err
	}

	node, err := handle.Resolve()
	if err != nil {
		return err
	}
	state, err := node.State()
	if err != nil {
		return err
	}
	b := node.Bounds()
	_, err = fmt.Fprintf(c.App.Writer, "%s at (%d, %d) %dx%d\n", describeNode(node, state), b.X, b.Y, b.Width, b.Height)
	return err
}

func runExists(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	handle, err := selectControl(c, s)
	if err != nil {
		return err
	}

	exists, err := control.Exists(handle)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, exists)
	return err
}

func runClick(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	handle, err := selectControl(c, s)
	if err != nil {
		return err
	}

	if c.Bool("first-visible-child") {
		err = control.ClickOnFirstVisibleChild(handle)
	} else {
		err = control.Click(handle)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "clicked %s\n", handle)
	return err
}

// selectControl builds the handle described by the selection flags.
// --declared wins over --id, which wins over --prop.
func selectControl(c *cli.Context, s *session) (*control.Control, error) {
	typ := core.TypeUnknown
	if t := c.String("type"); t != "" {
		if err := typ.UnmarshalText([]byte(t)); err != nil {
			return nil, core.ErrInvalidArgument.WithMessage(fmt.Sprintf("unknown control type %q", t))
		}
	}

	switch {
	case c.String("declared") != "":
		return s.registry.Find(s.root, c.String("declared"))
	case c.String("id") != "":
		return control.FindByID(s.root, typ, c.String("id"))
	case len(c.StringSlice("prop")) > 0:
		props, err := parseProps(c.StringSlice("prop"))
		if err != nil {
			return nil, err
		}
		return control.FindBy(s.root, typ, props)
	}
	return nil, core.ErrInvalidArgument.WithMessage("a selection flag is required (--id, --declared or --prop)")
}

// parseProps parses Name=value and Name~=value conditions.
func parseProps(specs []string) (core.PropertyExpressions, error) {
	var props core.PropertyExpressions
	for _, spec := range specs {
		if name, value, ok := strings.Cut(spec, "~="); ok && name != "" {
			props = append(props, core.PropertyExpression{Name: name, Value: value, Operator: core.OpContains})
			continue
		}
		name, value, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, core.ErrInvalidArgument.WithMessage(fmt.Sprintf("invalid property condition %q (want Name=value)", spec))
		}
		props = props.Add(name, value)
	}
	return props, nil
}
