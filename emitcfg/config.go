// Package emitcfg loads ast.CompilerOptions from a YAML configuration
// file using gopkg.in/yaml.v3, applied to the emitter's own runtime
// configuration.
package emitcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/jsemit/ast"
)

// rawOptions mirrors the YAML shape: string tokens for target/module so a
// config file can say `target: es6` rather than a numeric enum value.
type rawOptions struct {
	Target                string `yaml:"target"`
	Module                string `yaml:"module"`
	SourceMap             bool   `yaml:"sourceMap"`
	SourceRoot            string `yaml:"sourceRoot"`
	MapRoot               string `yaml:"mapRoot"`
	Out                   string `yaml:"out"`
	EmitBOM               bool   `yaml:"emitBOM"`
	RemoveComments        bool   `yaml:"removeComments"`
	PreserveConstEnums    bool   `yaml:"preserveConstEnums"`
	SeparateCompilation   bool   `yaml:"separateCompilation"`
	Declaration           bool   `yaml:"declaration"`
	EmitDecoratorMetadata bool   `yaml:"emitDecoratorMetadata"`
}

// Load reads and parses a YAML compiler-options file at path.
func Load(path string) (*ast.CompilerOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML document data into ast.CompilerOptions, defaulting
// any field the document omits.
func Parse(data []byte) (*ast.CompilerOptions, error) {
	var raw rawOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("emitcfg: %w", err)
	}

	options := ast.DefaultCompilerOptions()

	if raw.Target != "" {
		target, ok := ast.ParseScriptTarget(raw.Target)
		if !ok {
			return nil, fmt.Errorf("emitcfg: unknown target %q", raw.Target)
		}
		options.Target = target
	}
	if raw.Module != "" {
		module, ok := ast.ParseModuleKind(raw.Module)
		if !ok {
			return nil, fmt.Errorf("emitcfg: unknown module kind %q", raw.Module)
		}
		options.Module = module
	}

	options.SourceMap = raw.SourceMap
	options.SourceRoot = raw.SourceRoot
	options.MapRoot = raw.MapRoot
	options.Out = raw.Out
	options.EmitBOM = raw.EmitBOM
	options.RemoveComments = raw.RemoveComments
	options.PreserveConstEnums = raw.PreserveConstEnums
	options.SeparateCompilation = raw.SeparateCompilation
	options.Declaration = raw.Declaration
	options.EmitDecoratorMetadata = raw.EmitDecoratorMetadata

	return options, nil
}
