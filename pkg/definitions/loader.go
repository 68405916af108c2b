// Package definitions loads loom model definitions from HCL, YAML or JSON
// files and builds them into validated models.
//
// HCL files declare one block per definition; the block type is the model
// kind and the single label is the definition name:
//
//	role "analysts" {
//	  organization_id = "550e8400-e29b-41d4-a716-446655440000"
//	  title           = "Analysts"
//	  principal       = { type = "ROLE", id = "analysts" }
//	}
//
// YAML and JSON files hold a top-level definitions list:
//
//	definitions:
//	  - kind: access_check
//	    name: can-read-org
//	    acl_key: ["550e8400-e29b-41d4-a716-446655440000"]
//	    permissions: [READ]
package definitions

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/models"
)

// Definition is one model declaration read from a file.
type Definition struct {
	Kind   string
	Name   string
	Source string
	Fields map[string]interface{}
}

// Built pairs a Definition with the model it produced.
type Built struct {
	Definition
	Model models.Model
}

// Options configures a Loader.
type Options struct {
	// Fs is the filesystem definitions are read from. Defaults to the OS filesystem.
	Fs afero.Fs

	// Logger defaults to a null logger.
	Logger hclog.Logger

	// Strict rejects fields the model does not declare instead of dropping them.
	Strict bool
}

// Loader reads definition files and builds models from them.
type Loader struct {
	fs     afero.Fs
	logger hclog.Logger
	strict bool
}

// NewLoader creates a Loader.
func NewLoader(opts Options) *Loader {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Loader{
		fs:     opts.Fs,
		logger: opts.Logger,
		strict: opts.Strict,
	}
}

// LoadFile reads the definitions in path. The format is chosen by extension.
func (l *Loader) LoadFile(path string) ([]Definition, error) {
	src, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading definitions file: %w", err)
	}

	var defs []Definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		defs, err = decodeHCL(path, src)
	case ".yaml", ".yml":
		defs, err = decodeYAML(path, src)
	case ".json":
		defs, err = decodeJSON(path, src)
	default:
		return nil, fmt.Errorf("unsupported definitions file extension %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	l.logger.Debug("loaded definitions", "path", path, "count", len(defs))
	return defs, nil
}

// LoadFiles reads every path, collecting all read and parse errors.
func (l *Loader) LoadFiles(paths ...string) ([]Definition, error) {
	var (
		all    []Definition
		result *multierror.Error
	)
	for _, path := range paths {
		defs, err := l.LoadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		all = append(all, defs...)
	}
	return all, result.ErrorOrNil()
}

// Build builds every definition. Definitions that fail are reported together
// in the returned error; the ones that succeed are still returned.
func (l *Loader) Build(defs []Definition) ([]Built, error) {
	var result *multierror.Error
	built := make([]Built, 0, len(defs))

	for _, def := range defs {
		fields, err := l.fieldsFor(def)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", def.Source, err))
			continue
		}

		m, err := models.Build(def.Kind, fields)
		if err != nil {
			l.logger.Debug("definition failed validation",
				"kind", def.Kind, "name", def.Name, "source", def.Source, "error", err)
			result = multierror.Append(result,
				fmt.Errorf("%s: %s %q: %w", def.Source, def.Kind, def.Name, err))
			continue
		}

		l.logger.Trace("built definition", "kind", m.Kind(), "name", def.Name)
		built = append(built, Built{Definition: def, Model: m})
	}

	return built, result.ErrorOrNil()
}

// fieldsFor drops fields the schema does not declare unless the loader is
// strict. Kinds with a name field take the definition name when the field is
// not given explicitly.
func (l *Loader) fieldsFor(def Definition) (map[string]interface{}, error) {
	schema, ok := models.Schema(def.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (known kinds: %s)",
			def.Kind, strings.Join(models.Kinds(), ", "))
	}

	fields := make(map[string]interface{}, len(def.Fields)+1)
	for k, v := range def.Fields {
		if !l.strict && !schema.Has(builder.NormalizeKey(k)) {
			l.logger.Warn("ignoring unknown field",
				"kind", def.Kind, "name", def.Name, "field", k, "source", def.Source)
			continue
		}
		fields[k] = v
	}
	if _, ok := fields["name"]; !ok && def.Name != "" && schema.Has("name") {
		fields["name"] = def.Name
	}
	return fields, nil
}
