// Package yaml_adapter reads problem instances from YAML documents. A file
// may hold several documents separated by "---"; each is one instance.
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML instance loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml and .yml file under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Instance, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, ext := range []string{".yaml", ".yml"} {
		found, err := fsutil.FindFiles(paths, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	var out []*config.Instance
	for _, file := range files {
		insts, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, insts...)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "instances", len(out))
	return out, nil
}

func (l *Loader) loadFile(file string) ([]*config.Instance, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var out []*config.Instance
	for i := 0; ; i++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode YAML file %s (document %d): %w", file, i, err)
		}
		inst := doc.toInstance(file)
		if inst.Name == "" {
			inst.Name = base
			if i > 0 {
				inst.Name = fmt.Sprintf("%s-%d", base, i)
			}
		}
		out = append(out, inst)
	}
	return out, nil
}
