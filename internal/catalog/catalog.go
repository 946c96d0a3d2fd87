package catalog

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/smartenum/enum"
	"github.com/roach88/smartenum/flagenum"
)

// Kind distinguishes plain enumerations from flag sets.
type Kind string

const (
	KindEnum  Kind = "enum"
	KindFlags Kind = "flags"
)

// kinds lists the top-level keys of a catalog file, in load order.
var kinds = []Kind{KindEnum, KindFlags}

// Member is the instance type of every catalog-defined enumeration.
type Member struct{ enum.Entry[int64] }

// MemberDef is one declared (name, value) pair.
type MemberDef struct {
	Name  string `yaml:"name" json:"name"`
	Value int64  `yaml:"value" json:"value"`
}

// Definition is one declared enumeration type.
type Definition struct {
	Name               string      `yaml:"-" json:"name"`
	Kind               Kind        `yaml:"-" json:"kind"`
	AllowNegativeInput bool        `yaml:"allow_negative_input,omitempty" json:"allow_negative_input,omitempty"`
	AllowUnsafeValues  bool        `yaml:"allow_unsafe_values,omitempty" json:"allow_unsafe_values,omitempty"`
	Members            []MemberDef `yaml:"members" json:"members"`

	File string `yaml:"-" json:"file,omitempty"`
	Line int    `yaml:"-" json:"-"`
}

// Policy returns the flag policy declared by d.
func (d *Definition) Policy() flagenum.Policy {
	return flagenum.Policy{
		AllowNegativeInput: d.AllowNegativeInput,
		AllowUnsafeValues:  d.AllowUnsafeValues,
	}
}

// Catalog holds materialized enumeration types by name.
type Catalog struct {
	logger *slog.Logger

	defs  map[string]*Definition
	enums map[string]*enum.Registry[Member, int64]
	flags map[string]*flagenum.Set[Member, int64]
}

// New creates an empty catalog. A nil logger means slog.Default().
func New(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		logger: logger,
		defs:   make(map[string]*Definition),
		enums:  make(map[string]*enum.Registry[Member, int64]),
		flags:  make(map[string]*flagenum.Set[Member, int64]),
	}
}

// Add materializes a definition into a registry or flag set.
func (c *Catalog) Add(def *Definition) error {
	if prev, exists := c.defs[def.Name]; exists {
		return &LoadError{
			Code:    ErrCodeDuplicateType,
			Message: fmt.Sprintf("type %q already declared in %s", def.Name, prev.File),
			Type:    def.Name,
			File:    def.File,
			Line:    def.Line,
		}
	}
	if len(def.Members) == 0 {
		return &LoadError{
			Code:    ErrCodeNoMembers,
			Message: fmt.Sprintf("type %q declares no members", def.Name),
			Type:    def.Name,
			File:    def.File,
			Line:    def.Line,
		}
	}

	var register func(Member) (Member, error)
	switch def.Kind {
	case KindEnum:
		if def.AllowNegativeInput || def.AllowUnsafeValues {
			return &LoadError{
				Code:    ErrCodeInvalidField,
				Message: fmt.Sprintf("enum %q cannot declare flag capabilities", def.Name),
				Type:    def.Name,
				File:    def.File,
				Line:    def.Line,
			}
		}
		r := enum.New[Member, int64](def.Name, enum.WithLogger(c.logger))
		c.enums[def.Name] = r
		register = r.Register
	case KindFlags:
		s := flagenum.New[Member, int64](def.Name,
			flagenum.WithPolicy(def.Policy()),
			flagenum.WithLogger(c.logger))
		c.flags[def.Name] = s
		register = s.Register
	default:
		return &LoadError{
			Code:    ErrCodeInvalidField,
			Message: fmt.Sprintf("unknown kind %q for type %q", def.Kind, def.Name),
			Type:    def.Name,
			File:    def.File,
			Line:    def.Line,
		}
	}
	c.defs[def.Name] = def

	for _, m := range def.Members {
		if _, err := register(Member{enum.NewEntry(m.Name, m.Value)}); err != nil {
			c.remove(def.Name)
			return &LoadError{
				Code:    CodeForEnumError(err),
				Message: fmt.Sprintf("type %q: %v", def.Name, err),
				Type:    def.Name,
				File:    def.File,
				Line:    def.Line,
				Err:     err,
			}
		}
	}

	c.logger.Debug("enumeration loaded",
		"type", def.Name,
		"kind", def.Kind,
		"members", len(def.Members),
		"file", def.File)
	return nil
}

func (c *Catalog) remove(name string) {
	delete(c.defs, name)
	delete(c.enums, name)
	delete(c.flags, name)
}

// Len returns the number of types in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Names returns all type names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Definition returns the declaration of the named type.
func (c *Catalog) Definition(name string) (*Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Enum returns the registry of a plain enumeration.
func (c *Catalog) Enum(name string) (*enum.Registry[Member, int64], bool) {
	r, ok := c.enums[name]
	return r, ok
}

// Flags returns the flag set of a flags type.
func (c *Catalog) Flags(name string) (*flagenum.Set[Member, int64], bool) {
	s, ok := c.flags[name]
	return s, ok
}

// Registry returns the instance registry of any type, enum or flags.
func (c *Catalog) Registry(name string) (*enum.Registry[Member, int64], bool) {
	if r, ok := c.enums[name]; ok {
		return r, true
	}
	if s, ok := c.flags[name]; ok {
		return s.Registry(), true
	}
	return nil, false
}

// Validate runs flag definition validation for every flags type, in name
// order, and returns every failure.
func (c *Catalog) Validate() []*LoadError {
	var errs []*LoadError
	for _, name := range c.Names() {
		s, ok := c.flags[name]
		if !ok {
			continue
		}
		if err := s.Validate(); err != nil {
			def := c.defs[name]
			errs = append(errs, &LoadError{
				Code:    CodeForEnumError(err),
				Message: err.Error(),
				Type:    name,
				File:    def.File,
				Line:    def.Line,
				Err:     err,
			})
		}
	}
	return errs
}
