package emit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/archscope/depscope/core"
)

// ErrDotBinaryUnavailable is returned by Rasterize when the system "dot"
// binary cannot be located on PATH.
var ErrDotBinaryUnavailable = errors.New("emit: graphviz dot binary not found on PATH")

// RasterFormat selects the Graphviz output renderer.
type RasterFormat string

const (
	RasterPNG RasterFormat = "png"
	RasterSVG RasterFormat = "svg"
)

// Rasterize shells out to the system Graphviz "dot" binary (≥ 2.38, per §6)
// to render dotSource into the requested raster/vector format. If the
// binary is missing, Rasterize does not fail the caller's pipeline: it
// returns a core.Warning of kind WarningRasterizationUnavailable alongside
// ErrDotBinaryUnavailable, so callers can treat image export as best-effort.
func Rasterize(ctx context.Context, dotSource []byte, format RasterFormat) ([]byte, *core.Warning, error) {
	path, err := exec.LookPath("dot")
	if err != nil {
		return nil, &core.Warning{
			Stage:   "emit",
			Kind:    core.WarningRasterizationUnavailable,
			Message: "graphviz dot binary not found on PATH; skipping image rasterisation",
		}, ErrDotBinaryUnavailable
	}

	cmd := exec.CommandContext(ctx, path, "-T"+string(format))
	cmd.Stdin = bytes.NewReader(dotSource)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, nil, fmt.Errorf("emit: dot -T%s failed: %w: %s", format, err, stderr.String())
	}
	return stdout.Bytes(), nil, nil
}
