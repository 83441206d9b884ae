package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/tree"
)

// Defaults for omitted profile fields.
const (
	DefaultOffenseWeight = 0.7
	DefaultPointBudget   = 128
)

var (
	// ErrUnsupportedFormat indicates a file extension with no registered loader.
	ErrUnsupportedFormat = errors.New("profile: unsupported profile format")

	// ErrDecode indicates a profile that could not be parsed or decoded.
	ErrDecode = errors.New("profile: cannot decode profile")

	// ErrNoBuilds indicates a profile without any build.
	ErrNoBuilds = errors.New("profile: no builds defined")

	// ErrDuplicateName indicates two builds sharing a name.
	ErrDuplicateName = errors.New("profile: duplicate build name")

	// ErrBuildNotFound is returned by Select for an unknown build name.
	ErrBuildNotFound = errors.New("profile: build not found")
)

// FileLoader decodes one profile format into raw build entries.
type FileLoader interface {
	// Decode parses src; filename is used in diagnostics only.
	Decode(filename string, src []byte, ks Keystones) ([]Entry, error)

	// Extensions lists the handled file extensions, with the leading dot.
	Extensions() []string
}

// Entry is one build as written in a profile, before defaults apply.
type Entry struct {
	Name              string
	Class             string
	OffenseWeight     *float64
	DefenseWeight     *float64
	PointBudget       *int
	RequiredKeystones []string
	SkillTags         []string
	WeaponTags        []string
}

// Config applies the defaults and resolves keystone references.
func (e Entry) Config(ks Keystones) optimizer.Config {
	cfg := optimizer.Config{
		Name:          e.Name,
		Class:         e.Class,
		OffenseWeight: DefaultOffenseWeight,
		PointBudget:   DefaultPointBudget,
		SkillTags:     e.SkillTags,
		WeaponTags:    e.WeaponTags,
	}
	switch {
	case e.OffenseWeight != nil && e.DefenseWeight != nil:
		cfg.OffenseWeight, cfg.DefenseWeight = *e.OffenseWeight, *e.DefenseWeight
	case e.OffenseWeight != nil:
		cfg.OffenseWeight = *e.OffenseWeight
		cfg.DefenseWeight = 1 - cfg.OffenseWeight
	case e.DefenseWeight != nil:
		cfg.DefenseWeight = *e.DefenseWeight
		cfg.OffenseWeight = 1 - cfg.DefenseWeight
	default:
		cfg.DefenseWeight = 1 - cfg.OffenseWeight
	}
	if e.PointBudget != nil {
		cfg.PointBudget = *e.PointBudget
	}
	for _, ref := range e.RequiredKeystones {
		cfg.RequiredKeystones = append(cfg.RequiredKeystones, ks.Resolve(ref))
	}

	return cfg
}

// Loader picks a FileLoader by file extension.
type Loader struct {
	keystones Keystones
	loaders   map[string]FileLoader
}

// NewLoader returns a Loader with the HCL and YAML formats registered.
// g supplies the keystone references; it may be nil.
func NewLoader(g *tree.Graph) *Loader {
	l := &Loader{
		keystones: KeystoneIndex(g),
		loaders:   make(map[string]FileLoader),
	}
	l.Register(HCLLoader{})
	l.Register(YAMLLoader{})

	return l
}

// Register adds fl for each of its extensions, replacing earlier loaders.
func (l *Loader) Register(fl FileLoader) {
	for _, ext := range fl.Extensions() {
		l.loaders[strings.ToLower(ext)] = fl
	}
}

// Keystones returns the keystone index used for references.
func (l *Loader) Keystones() Keystones { return l.keystones }

// LoadFile reads and decodes the profile at path.
func (l *Loader) LoadFile(path string) ([]optimizer.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	defer f.Close()

	return l.Load(path, f)
}

// Load decodes a profile read from r. The format is chosen from the
// extension of filename. Every returned config has passed Validate.
func (l *Loader) Load(filename string, r io.Reader) ([]optimizer.Config, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	fl, ok := l.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", filename, err)
	}

	entries, err := fl.Decode(filename, src, l.keystones)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBuilds, filename)
	}

	cfgs := make([]optimizer.Config, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			e.Name = fmt.Sprintf("build-%d", i+1)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = true

		cfg := e.Config(l.keystones)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("build %q: %w", e.Name, err)
		}
		cfgs = append(cfgs, cfg)
	}

	return cfgs, nil
}

// Select returns the configs named in names, in that order. No names selects
// every config.
func Select(cfgs []optimizer.Config, names ...string) ([]optimizer.Config, error) {
	if len(names) == 0 {
		return cfgs, nil
	}
	byName := make(map[string]optimizer.Config, len(cfgs))
	for _, c := range cfgs {
		byName[c.Name] = c
	}
	out := make([]optimizer.Config, 0, len(names))
	for _, n := range names {
		c, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrBuildNotFound, n, strings.Join(sortedNames(byName), ", "))
		}
		out = append(out, c)
	}

	return out, nil
}

func sortedNames(m map[string]optimizer.Config) []string {
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
