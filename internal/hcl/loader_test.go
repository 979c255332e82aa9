package hcl

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/param"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

const studentsManifest = `
group "students" {
  doc    = "Student helper."
  on_run = "OnRunStudents"

  param "verbosity" {
    type    = choice_by_flag
    choices = ["info", "debug"]
    help    = "Verbosity level"
  }
  param "context" {
    type = context
  }

  group "admin" {
    doc = "Admin tool."

    command "remove" {
      doc    = "Remove a student."
      on_run = "OnRunRemove"
      param "name" { type = string }
    }
  }

  command "add" {
    doc    = "Add a student."
    on_run = "OnRunAdd"

    param "name" { type = string }
    param "age" { type = integer }
    param "interests" {
      type  = list(string)
      short = "-i"
    }
    param "certificate" {
      type    = file
      short   = "-c"
      exists  = true
      resolve = true
      env     = "CERTIFICATE_FILE"
    }
  }
}
`

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	fs := memFs(t, map[string]string{"/manifests/students.hcl": studentsManifest})
	loader := NewLoader(fs)

	// --- Act ---
	model, conv, err := loader.Load(context.Background(), "/manifests")

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, conv)
	root := model.Root
	require.NotNil(t, root)
	assert.Equal(t, "students", root.Name)
	assert.True(t, root.IsGroup)
	assert.Equal(t, "OnRunStudents", root.OnRun)
	require.Len(t, root.Params, 2)
	assert.Equal(t, "choice_by_flag", root.Params[0].Type)
	assert.Equal(t, []string{"info", "debug"}, root.Params[0].Choices)
	assert.Nil(t, root.Params[0].Default)
	assert.Equal(t, "context", root.Params[1].Type)

	require.Len(t, root.Children, 2)
	admin, add := root.Children[0], root.Children[1]
	assert.Equal(t, "admin", admin.Name, "children keep declaration order")
	assert.True(t, admin.IsGroup)
	assert.Contains(t, admin.Source, "students.hcl:")
	require.Len(t, admin.Children, 1)
	assert.Equal(t, "remove", admin.Children[0].Name)

	assert.Equal(t, "add", add.Name)
	assert.False(t, add.IsGroup)
	require.Len(t, add.Params, 4)
	interests := add.Params[2]
	assert.Equal(t, "list", interests.Type)
	assert.Equal(t, "-i", interests.Short)
	cert := add.Params[3]
	assert.Equal(t, "file", cert.Type)
	assert.True(t, cert.Exists)
	assert.True(t, cert.Resolve)
	assert.Equal(t, "CERTIFICATE_FILE", cert.Env)
}

func TestLoader_LoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		paths   []string
		wantErr string
	}{
		{
			name:    "no root",
			files:   map[string]string{"/m/empty.hcl": "# nothing here\n"},
			paths:   []string{"/m"},
			wantErr: "no top-level command or group block found",
		},
		{
			name: "two roots",
			files: map[string]string{
				"/m/a.hcl": `command "a" {}`,
				"/m/b.hcl": `group "b" {}`,
			},
			paths:   []string{"/m"},
			wantErr: "expected exactly one top-level command or group, found 2",
		},
		{
			name:    "syntax error",
			files:   map[string]string{"/m/bad.hcl": "command \"a\" {\n"},
			paths:   []string{"/m"},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing path",
			files:   map[string]string{},
			paths:   []string{"/missing"},
			wantErr: "error accessing path /missing",
		},
		{
			name:    "list of integers",
			files:   map[string]string{"/m/a.hcl": `command "a" { param "n" { type = list(integer) } }`},
			paths:   []string{"/m"},
			wantErr: "lists can only hold strings",
		},
		{
			name:    "unknown constructor",
			files:   map[string]string{"/m/a.hcl": `command "a" { param "n" { type = map(string) } }`},
			paths:   []string{"/m"},
			wantErr: `unknown type constructor function "map"`,
		},
		{
			name:    "quoted type",
			files:   map[string]string{"/m/a.hcl": `command "a" { param "n" { type = "string" } }`},
			paths:   []string{"/m"},
			wantErr: "unsupported expression for type definition",
		},
		{
			name: "misspelled group attribute",
			files: map[string]string{"/m/a.hcl": `
group "g" {
  alow_direct_exec = true
  command "c" {}
}`},
			paths:   []string{"/m"},
			wantErr: `An argument named "alow_direct_exec" is not expected here`,
		},
		{
			name: "misspelled attribute in nested group",
			files: map[string]string{"/m/a.hcl": `
group "g" {
  group "inner" {
    on_rn = "OnRunInner"
  }
}`},
			paths:   []string{"/m"},
			wantErr: `An argument named "on_rn" is not expected here`,
		},
		{
			name: "unknown block in group",
			files: map[string]string{"/m/a.hcl": `
group "g" {
  comand "c" {}
}`},
			paths:   []string{"/m"},
			wantErr: `Blocks of type "comand" are not expected here`,
		},
		{
			name: "stray top-level attribute",
			files: map[string]string{"/m/a.hcl": `
top_level_typo = 1
command "c" {}
`},
			paths:   []string{"/m"},
			wantErr: `An argument named "top_level_typo" is not expected here`,
		},
		{
			name:    "param without type",
			files:   map[string]string{"/m/a.hcl": `command "a" { param "n" {} }`},
			paths:   []string{"/m"},
			wantErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader := NewLoader(memFs(t, tc.files))

			_, _, err := loader.Load(context.Background(), tc.paths...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_UnknownKeywordPassesThrough(t *testing.T) {
	fs := memFs(t, map[string]string{"/a.hcl": `command "a" { param "n" { type = number } }`})

	model, _, err := NewLoader(fs).Load(context.Background(), "/a.hcl")

	require.NoError(t, err)
	assert.Equal(t, "number", model.Root.Params[0].Type)
}

func TestConverter_ConvertDefault(t *testing.T) {
	testCases := []struct {
		name    string
		kind    param.Kind
		def     string
		want    any
		wantErr string
	}{
		{name: "string", kind: param.KindString, def: `"bob"`, want: "bob"},
		{name: "integer", kind: param.KindInteger, def: `42`, want: 42},
		{name: "integer from string", kind: param.KindInteger, def: `"7"`, want: 7},
		{name: "float", kind: param.KindFloat, def: `0.5`, want: 0.5},
		{name: "boolean", kind: param.KindBoolean, def: `true`, want: true},
		{name: "list", kind: param.KindList, def: `["a", "b"]`, want: []string{"a", "b"}},
		{name: "empty list", kind: param.KindList, def: `[]`, want: []string{}},
		{name: "choice", kind: param.KindChoice, def: `"OP"`, want: "OP"},
		{name: "file", kind: param.KindFile, def: `"/etc/hosts"`, want: "/etc/hosts"},
		{name: "fractional integer", kind: param.KindInteger, def: `1.5`, wantErr: "failed to apply default"},
		{name: "list for integer", kind: param.KindInteger, def: `[1]`, wantErr: "cannot convert"},
		{name: "context takes no default", kind: param.KindContext, def: `"x"`, wantErr: "does not take a default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			manifest := `command "c" {
  param "p" {
    type    = string
    default = ` + tc.def + `
  }
}`
			fs := memFs(t, map[string]string{"/c.hcl": manifest})
			model, conv, err := NewLoader(fs).Load(context.Background(), "/c.hcl")
			require.NoError(t, err)

			// --- Act ---
			got, err := conv.ConvertDefault(context.Background(), model.Root.Params[0], tc.kind)

			// --- Assert ---
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConverter_NoDefault(t *testing.T) {
	got, err := NewConverter().ConvertDefault(context.Background(), &config.ParamDefinition{Name: "p"}, param.KindInteger)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoader_NullDefaultIsAbsent(t *testing.T) {
	fs := memFs(t, map[string]string{"/c.hcl": `command "c" {
  param "p" {
    type    = string
    default = null
  }
}`})

	model, _, err := NewLoader(fs).Load(context.Background(), "/c.hcl")

	require.NoError(t, err)
	assert.Nil(t, model.Root.Params[0].Default)
}
