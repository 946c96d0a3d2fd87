package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/smartenum/enum"
	"github.com/roach88/smartenum/flagenum"
)

func loadPath(t *testing.T, path string, mode LoadMode) (*Catalog, []error) {
	t.Helper()
	c := New(nil)
	return c, c.Load(path, mode)
}

func requireLoadError(t *testing.T, err error) *LoadError {
	t.Helper()
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T: %v", err, err)
	return loadErr
}

func TestLoadValidDirectory(t *testing.T) {
	c, errs := loadPath(t, "testdata/valid", LoadModeFailFast)
	require.Empty(t, errs)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"Color", "Permission", "Style", "Weekday"}, c.Names())
	assert.Empty(t, c.Validate())

	_, ok := c.Enum("Color")
	assert.True(t, ok)
	_, ok = c.Flags("Color")
	assert.False(t, ok)
	_, ok = c.Flags("Permission")
	assert.True(t, ok)
	_, ok = c.Registry("Nope")
	assert.False(t, ok)
}

func TestLoadCUEEnum(t *testing.T) {
	c, errs := loadPath(t, "testdata/valid/colors.cue", LoadModeFailFast)
	require.Empty(t, errs)

	colors, ok := c.Enum("Color")
	require.True(t, ok)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, colors.Names())

	blue, err := colors.FromName("blue", true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), blue.Value())

	def, ok := c.Definition("Color")
	require.True(t, ok)
	assert.Equal(t, KindEnum, def.Kind)
	assert.Equal(t, filepath.Join("testdata", "valid", "colors.cue"), def.File)
}

func TestLoadCUEFlags(t *testing.T) {
	c, errs := loadPath(t, "testdata/valid/colors.cue", LoadModeFailFast)
	require.Empty(t, errs)

	perms, ok := c.Flags("Permission")
	require.True(t, ok)
	assert.True(t, perms.Policy().AllowNegativeInput)
	assert.False(t, perms.Policy().AllowUnsafeValues)

	str, err := perms.FromValueToString(3)
	require.NoError(t, err)
	assert.Equal(t, "Write, Read", str)

	str, err = perms.FromValueToString(-1)
	require.NoError(t, err)
	assert.Equal(t, "All", str)

	str, err = perms.FromValueToString(0)
	require.NoError(t, err)
	assert.Equal(t, "None", str)
}

func TestLoadYAML(t *testing.T) {
	c, errs := loadPath(t, "testdata/valid/days.yaml", LoadModeFailFast)
	require.Empty(t, errs)
	assert.Equal(t, []string{"Style", "Weekday"}, c.Names())

	def, ok := c.Definition("Weekday")
	require.True(t, ok)
	assert.Equal(t, KindEnum, def.Kind)
	assert.Equal(t, 2, def.Line)
	assert.Equal(t, []MemberDef{{"Monday", 1}, {"Tuesday", 2}, {"Wednesday", 3}}, def.Members)

	style, ok := c.Flags("Style")
	require.True(t, ok)
	assert.Equal(t, flagenum.Policy{}, def.Policy())
	assert.True(t, style.Policy().AllowUnsafeValues)

	got, err := style.FromValue(3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BoldItalic", got[0].Name())

	str, err := style.FromValueToString(5)
	require.NoError(t, err)
	assert.Equal(t, "Underline, Bold", str)
}

func TestReadHCL(t *testing.T) {
	path := filepath.Join("testdata", "hcl", "modes.hcl")
	defs, err := ReadFile(path)
	require.NoError(t, err)

	want := []*Definition{
		{
			Name:    "Level",
			Kind:    KindEnum,
			Members: []MemberDef{{"Low", 1}, {"High", 10}},
			File:    path,
			Line:    1,
		},
		{
			Name:               "Mode",
			Kind:               KindFlags,
			AllowNegativeInput: true,
			Members:            []MemberDef{{"None", 0}, {"Read", 1}, {"Write", 2}, {"Exec", 4}, {"All", -1}},
			File:               path,
			Line:               6,
		},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Errorf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHCLFlags(t *testing.T) {
	c, errs := loadPath(t, "testdata/hcl", LoadModeFailFast)
	require.Empty(t, errs)
	assert.Equal(t, []string{"Level", "Mode"}, c.Names())

	mode, ok := c.Flags("Mode")
	require.True(t, ok)

	str, err := mode.FromValueToString(7)
	require.NoError(t, err)
	assert.Equal(t, "Exec, Write, Read", str)

	str, err = mode.FromValueToString(-1)
	require.NoError(t, err)
	assert.Equal(t, "All", str)
}

func TestHCLErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		line     int
		contains string
	}{
		{"bit out of range", "testdata/hcl_bad/range.hcl", 2, "out of range"},
		{"unknown attribute", "testdata/hcl_bad/unknown.hcl", 2, "Unsupported argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.file)
			require.Error(t, err)

			loadErr := requireLoadError(t, err)
			assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
			assert.Equal(t, tt.line, loadErr.Line)
			assert.Contains(t, loadErr.Message, tt.contains)
		})
	}
}

func TestFlagValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		typ  string
		code string
	}{
		{"missing bit", "testdata/invalid/gap.yaml", "Gap", ErrCodeMissingFlag},
		{"not a power of two", "testdata/invalid/power.cue", "Odd", ErrCodeNotPowerOfTwo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, errs := loadPath(t, tt.file, LoadModeFailFast)
			require.Empty(t, errs, "flag validation happens after loading")

			failures := c.Validate()
			require.Len(t, failures, 1)
			assert.Equal(t, tt.code, failures[0].Code)
			assert.Equal(t, tt.typ, failures[0].Type)
			assert.Equal(t, tt.file, failures[0].File)
			assert.True(t, enum.IsDefinitionError(failures[0]))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		code     string
		contains string
	}{
		{"unknown yaml field", "testdata/invalid/typo.yaml", ErrCodeParseFailed, "member"},
		{"duplicate member", "testdata/invalid/dupmember.cue", ErrCodeDuplicateMember, `"A"`},
		{"unknown cue field", "testdata/invalid/unknown.cue", ErrCodeInvalidField, `unknown field "colour"`},
		{"cue syntax", "testdata/invalid/syntax.cue", ErrCodeParseFailed, ""},
		{"unsupported extension", "testdata/invalid/notes.txt", ErrCodeUnsupported, ".txt"},
		{"missing path", "testdata/nope.cue", ErrCodeNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, errs := loadPath(t, tt.path, LoadModeFailFast)
			require.Len(t, errs, 1)

			loadErr := requireLoadError(t, errs[0])
			assert.Equal(t, tt.code, loadErr.Code)
			assert.Contains(t, loadErr.Error(), tt.contains)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestLoadDuplicateMemberKeepsCause(t *testing.T) {
	_, errs := loadPath(t, "testdata/invalid/dupmember.cue", LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.True(t, enum.IsDuplicateName(errs[0]))
	assert.Equal(t, "Twice", requireLoadError(t, errs[0]).Type)
}

func TestLoadCollectAll(t *testing.T) {
	c, errs := loadPath(t, "testdata/invalid", LoadModeCollectAll)

	// dupmember, syntax, typo, unknown; notes.txt is not a catalog file.
	require.Len(t, errs, 4)
	assert.Equal(t, []string{"Gap", "Odd"}, c.Names())
	assert.Len(t, c.Validate(), 2)
}

func TestLoadFailFastStopsAtFirstError(t *testing.T) {
	c, errs := loadPath(t, "testdata/invalid", LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeDuplicateMember, requireLoadError(t, errs[0]).Code)
	assert.Equal(t, 0, c.Len())
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, errs := loadPath(t, t.TempDir(), LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeNoFiles, requireLoadError(t, errs[0]).Code)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, errs := loadPath(t, path, LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeGeneric, requireLoadError(t, errs[0]).Code)
}

func TestFindFiles(t *testing.T) {
	files, err := FindFiles("testdata/valid")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "valid", "colors.cue"),
		filepath.Join("testdata", "valid", "days.yaml"),
	}, files)
}

func TestAddRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
		code string
	}{
		{
			name: "no members",
			def:  &Definition{Name: "Empty", Kind: KindEnum},
			code: ErrCodeNoMembers,
		},
		{
			name: "empty member name",
			def:  &Definition{Name: "Blank", Kind: KindEnum, Members: []MemberDef{{"", 1}}},
			code: ErrCodeMemberName,
		},
		{
			name: "flag capability on enum",
			def:  &Definition{Name: "Plain", Kind: KindEnum, AllowUnsafeValues: true, Members: []MemberDef{{"A", 1}}},
			code: ErrCodeInvalidField,
		},
		{
			name: "unknown kind",
			def:  &Definition{Name: "Weird", Kind: Kind("set"), Members: []MemberDef{{"A", 1}}},
			code: ErrCodeInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			err := c.Add(tt.def)
			require.Error(t, err)
			assert.Equal(t, tt.code, requireLoadError(t, err).Code)
			assert.Equal(t, 0, c.Len())
			_, ok := c.Registry(tt.def.Name)
			assert.False(t, ok)
		})
	}
}

func TestAddDuplicateType(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(&Definition{Name: "Dir", Kind: KindEnum, File: "a.cue", Members: []MemberDef{{"North", 1}}}))

	err := c.Add(&Definition{Name: "Dir", Kind: KindFlags, File: "b.yaml", Members: []MemberDef{{"Up", 1}}})
	require.Error(t, err)
	loadErr := requireLoadError(t, err)
	assert.Equal(t, ErrCodeDuplicateType, loadErr.Code)
	assert.Equal(t, `b.yaml: E104: type "Dir" already declared in a.cue`, loadErr.Error())

	_, ok := c.Enum("Dir")
	assert.True(t, ok)
}

func TestLoadErrorFormatting(t *testing.T) {
	assert.Equal(t, "a.cue:3: E101: msg", (&LoadError{Code: ErrCodeNoMembers, Message: "msg", File: "a.cue", Line: 3}).Error())
	assert.Equal(t, "a.cue: E101: msg", (&LoadError{Code: ErrCodeNoMembers, Message: "msg", File: "a.cue"}).Error())
	assert.Equal(t, "E101: msg", (&LoadError{Code: ErrCodeNoMembers, Message: "msg"}).Error())
}
