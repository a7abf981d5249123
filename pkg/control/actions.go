package control

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/devicelab-dev/uitestext/pkg/core"
	"github.com/devicelab-dev/uitestext/pkg/logger"
)

// Exists reports whether the host finds at least one node for c.
// The host conditions core.ErrControlNotAvailable and
// core.ErrElementNotAvailable count as "does not exist"; every other
// error is returned.
func Exists(c *Control) (bool, error) {
	if c == nil {
		return false, core.InvalidArgument("control")
	}

	matches, err := c.FindMatching()
	if err != nil {
		if errors.Is(err, core.ErrControlNotAvailable) || errors.Is(err, core.ErrElementNotAvailable) {
			logger.Debug("%s treated as missing: %v", c, err)
			return false, nil
		}
		return false, err
	}
	return len(matches) > 0, nil
}

// Click resolves c and simulates a primary pointer click on it.
func Click(c *Control) error {
	if c == nil {
		return core.InvalidArgument("control")
	}

	node, err := c.Resolve()
	if err != nil {
		return err
	}
	if err := c.host.Click(node); err != nil {
		return err
	}

	kind := c.kind
	if kind == "" {
		kind = node.Type().String()
	}
	label := core.Label(node)
	logger.L().Info(fmt.Sprintf("%s %s clicked.", kind, label),
		zap.String("type", node.Type().String()),
		zap.String("id", label),
	)
	return nil
}

// ClickOnFirstVisibleChild clicks the first visible text descendant of c.
func ClickOnFirstVisibleChild(c *Control) error {
	if c == nil {
		return core.InvalidArgument("control")
	}

	node, err := c.Resolve()
	if err != nil {
		return err
	}
	target, err := FirstVisibleDescendant(node, core.TypeText)
	if err != nil {
		return err
	}
	return Click(FromNode(c.host, target))
}
