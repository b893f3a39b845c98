package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL instance loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and returns their instances in
// file order. Instance names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Instance, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var out []*config.Instance
	seen := make(map[string]string)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Instances {
			if prev, dup := seen[b.Name]; dup {
				return nil, fmt.Errorf("duplicate instance '%s' in %s (first defined in %s)", b.Name, file, prev)
			}
			seen[b.Name] = file

			inst, err := translateInstance(ctx, b, file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			out = append(out, inst)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "instances", len(out))
	return out, nil
}
