package stdlib

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shiika-lang/shiika-core/internal/ast"
	"gopkg.in/yaml.v3"
)

// augmentFile is the shape of a manifest side-file: per built-in class,
// extra ivars and opaque-bodied methods to bolt on without touching Go
// source (spec_full §4.7).
type augmentFile struct {
	Augment map[string]classAugment `yaml:"augment"`
}

type classAugment struct {
	IVars   []ivarAugment   `yaml:"ivars"`
	Methods []methodAugment `yaml:"methods"`
}

type ivarAugment struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type methodAugment struct {
	Name    string         `yaml:"name"`
	Params  []paramAugment `yaml:"params"`
	Returns string         `yaml:"returns"`
}

type paramAugment struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadManifestFile builds the default manifest and merges in extra
// ivars/methods a YAML side-file at path describes, for embedding
// applications that want to extend a built-in class without recompiling
// the core.
func LoadManifestFile(path string) (*Manifest, error) {
	m := LoadManifest()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest file %q", path)
	}

	var doc augmentFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest file %q", path)
	}

	for className, aug := range doc.Augment {
		decl, ok := m.Classes[className]
		if !ok {
			return nil, errors.Errorf("manifest file %q augments unknown class %q", path, className)
		}
		for _, iv := range aug.IVars {
			decl.IVars = append(decl.IVars, &ast.IVarDecl{Name: iv.Name, Type: named(iv.Type)})
		}
		for _, meth := range aug.Methods {
			params := make([]*ast.Param, len(meth.Params))
			for i, p := range meth.Params {
				params[i] = param(p.Name, p.Type)
			}
			decl.InstanceMethods = append(decl.InstanceMethods, opaqueMethod(meth.Name, params, named(meth.Returns)))
		}
	}

	return m, nil
}
