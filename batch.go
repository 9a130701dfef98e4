package cvboot

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildAll builds one mesh per parameter set, in parallel. Each set is
// validated first; the first invalid set or a cancelled ctx stops the batch.
// Results are returned in input order.
func BuildAll(ctx context.Context, params []Params, res Resolution) ([]*Mesh, error) {
	meshes := make([]*Mesh, len(params))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range params {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("parameter set %d: %w", i, err)
			}
			meshes[i] = BuildMeshWithResolution(p, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return meshes, nil
}
