package getpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
	"github.com/lyraproj/issue/issue"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Text render output as plain key=value lines
	Text = RenderName(`s`)
	// Env render output as shell export statements
	Env = RenderName(`env`)
)

// EnvPrefix is the prefix of the variable names produced by the Env rendering
const EnvPrefix = `GETPATH_`

type facts []string

func (f facts) MarshalJSONArray(enc *gojay.Encoder) {
	for _, s := range f {
		enc.String(s)
	}
}

func (f facts) IsNil() bool {
	return f == nil
}

type provenances struct {
	Stdlib     facts `yaml:"stdlib,flow"`
	Extensions facts `yaml:"extensions,flow"`
	Prefix     facts `yaml:"prefix,flow"`
	ExecPrefix facts `yaml:"exec_prefix,flow"`
}

func (p *provenances) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey(`stdlib`, p.Stdlib)
	enc.ArrayKey(`extensions`, p.Extensions)
	enc.ArrayKey(`prefix`, p.Prefix)
	enc.ArrayKey(`exec_prefix`, p.ExecPrefix)
}

func (p *provenances) IsNil() bool {
	return p == nil
}

// document is the rendered form of an api.PathConfig. The field order is the order of the output.
type document struct {
	ExecutablePath   string      `yaml:"executable_path"`
	StdlibDir        string      `yaml:"stdlib_dir"`
	ExtensionsDir    string      `yaml:"extensions_dir"`
	Prefix           string      `yaml:"prefix"`
	ExecPrefix       string      `yaml:"exec_prefix"`
	ZipPath          string      `yaml:"zip_path"`
	ModuleSearchPath string      `yaml:"module_search_path"`
	PrefixFound      bool        `yaml:"prefix_found"`
	ExecPrefixFound  bool        `yaml:"exec_prefix_found"`
	Provenance       provenances `yaml:"provenance"`
}

func newDocument(pc *api.PathConfig) *document {
	return &document{
		ExecutablePath:   pc.ExecutablePath,
		StdlibDir:        pc.StdlibDir,
		ExtensionsDir:    pc.ExtensionsDir,
		Prefix:           pc.Prefix,
		ExecPrefix:       pc.ExecPrefix,
		ZipPath:          pc.ZipPath,
		ModuleSearchPath: pc.ModuleSearchPath,
		PrefixFound:      pc.PrefixFound,
		ExecPrefixFound:  pc.ExecPrefixFound,
		Provenance: provenances{
			Stdlib:     pc.StdlibProvenance.Facts(),
			Extensions: pc.ExtensionsProvenance.Facts(),
			Prefix:     pc.PrefixProvenance.Facts(),
			ExecPrefix: pc.ExecPrefixProvenance.Facts()}}
}

func (d *document) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(`executable_path`, d.ExecutablePath)
	enc.StringKey(`stdlib_dir`, d.StdlibDir)
	enc.StringKey(`extensions_dir`, d.ExtensionsDir)
	enc.StringKey(`prefix`, d.Prefix)
	enc.StringKey(`exec_prefix`, d.ExecPrefix)
	enc.StringKey(`zip_path`, d.ZipPath)
	enc.StringKey(`module_search_path`, d.ModuleSearchPath)
	enc.BoolKey(`prefix_found`, d.PrefixFound)
	enc.BoolKey(`exec_prefix_found`, d.ExecPrefixFound)
	enc.ObjectKey(`provenance`, &d.Provenance)
}

func (d *document) IsNil() bool {
	return d == nil
}

// entries returns the scalar values of the document as ordered key value pairs
func (d *document) entries() [][2]string {
	return [][2]string{
		{`executable_path`, d.ExecutablePath},
		{`stdlib_dir`, d.StdlibDir},
		{`extensions_dir`, d.ExtensionsDir},
		{`prefix`, d.Prefix},
		{`exec_prefix`, d.ExecPrefix},
		{`zip_path`, d.ZipPath},
		{`module_search_path`, d.ModuleSearchPath},
		{`prefix_found`, strconv.FormatBool(d.PrefixFound)},
		{`exec_prefix_found`, strconv.FormatBool(d.ExecPrefixFound)},
		{`stdlib_provenance`, strings.Join(d.Provenance.Stdlib, `|`)},
		{`extensions_provenance`, strings.Join(d.Provenance.Extensions, `|`)},
		{`prefix_provenance`, strings.Join(d.Provenance.Prefix, `|`)},
		{`exec_prefix_provenance`, strings.Join(d.Provenance.ExecPrefix, `|`)}}
}

// Render renders a path configuration on a writer using a specified RenderName
func Render(renderAs RenderName, pc *api.PathConfig, out io.Writer) error {
	d := newDocument(pc)
	switch renderAs {
	case JSON:
		bs, err := gojay.MarshalJSONObject(d)
		if err != nil {
			return err
		}
		return writeLine(out, string(bs))
	case YAML:
		bs, err := yaml.Marshal(d)
		if err != nil {
			return err
		}
		_, err = out.Write(bs)
		return err
	case Text:
		for _, e := range d.entries() {
			if err := writeLine(out, e[0]+`=`+e[1]); err != nil {
				return err
			}
		}
		return nil
	case Env:
		for _, e := range d.entries() {
			if err := writeLine(out, `export `+EnvPrefix+strings.ToUpper(e[0])+`=`+shellQuote(e[1])); err != nil {
				return err
			}
		}
		return nil
	default:
		return unknownRendering(renderAs)
	}
}

// RenderList renders a list of paths on a writer using a specified RenderName
func RenderList(renderAs RenderName, paths []string, out io.Writer) error {
	if paths == nil {
		paths = []string{}
	}
	switch renderAs {
	case JSON:
		bs, err := gojay.MarshalJSONArray(facts(paths))
		if err != nil {
			return err
		}
		return writeLine(out, string(bs))
	case YAML:
		bs, err := yaml.Marshal(paths)
		if err != nil {
			return err
		}
		_, err = out.Write(bs)
		return err
	case Text:
		for _, p := range paths {
			if err := writeLine(out, p); err != nil {
				return err
			}
		}
		return nil
	case Env:
		return writeLine(out, `export `+EnvPrefix+`EXTENSIONS=`+shellQuote(strings.Join(paths, string(util.ListSeparator))))
	default:
		return unknownRendering(renderAs)
	}
}

func unknownRendering(renderAs RenderName) error {
	return api.Error(api.UnknownRendering, issue.H{`name`: string(renderAs)})
}

func writeLine(out io.Writer, s string) error {
	_, err := fmt.Fprintln(out, s)
	return err
}

// shellQuote quotes a string for a POSIX shell
func shellQuote(s string) string {
	return `'` + strings.Replace(s, `'`, `'\''`, -1) + `'`
}
