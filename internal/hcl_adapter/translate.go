package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/stnsched/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	matrixType = cty.List(cty.List(cty.Number))
	vectorType = cty.List(cty.Number)
)

// translateInstance converts a decoded instance block into the
// format-agnostic model.
func translateInstance(ctx context.Context, b *instanceBlock, source string) (*config.Instance, error) {
	inst := &config.Instance{Name: b.Name, Source: source}

	if !isExprDefined(ctx, b.Durations, "durations") {
		return nil, fmt.Errorf("instance '%s': durations is required", b.Name)
	}
	if err := decodeExpr(b.Durations, matrixType, &inst.Durations); err != nil {
		return nil, fmt.Errorf("instance '%s': durations: %w", b.Name, err)
	}

	if isExprDefined(ctx, b.Locations, "locations") {
		var pairs [][]int
		if err := decodeExpr(b.Locations, matrixType, &pairs); err != nil {
			return nil, fmt.Errorf("instance '%s': locations: %w", b.Name, err)
		}
		for i, p := range pairs {
			if len(p) != 2 {
				return nil, fmt.Errorf("instance '%s': locations[%d]: expected [x, y], got %d values", b.Name, i, len(p))
			}
			inst.Locations = append(inst.Locations, config.Location{X: p[0], Y: p[1]})
		}
	}

	for _, d := range b.Deadlines {
		inst.Deadlines = append(inst.Deadlines, config.Deadline{Task: d.Task, Bound: d.Bound})
	}
	for _, w := range b.Waits {
		inst.Waits = append(inst.Waits, config.Wait{Task: w.Task, After: w.After, Gap: w.Gap})
	}

	if b.Solution != nil {
		sol := &config.Solution{}
		if err := decodeExpr(b.Solution.Robots, matrixType, &sol.Robots); err != nil {
			return nil, fmt.Errorf("instance '%s': solution robots: %w", b.Name, err)
		}
		if err := decodeExpr(b.Solution.Order, vectorType, &sol.Order); err != nil {
			return nil, fmt.Errorf("instance '%s': solution order: %w", b.Name, err)
		}
		inst.Solution = sol
	}

	return inst, nil
}

// decodeExpr evaluates a constant expression, converts it to want and
// stores it in target.
func decodeExpr(expr hcl.Expression, want cty.Type, target any) error {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value must be a constant")
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("expected %s: %w", want.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return err
	}
	return nil
}
