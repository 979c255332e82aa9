package param

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named[P Parameter](p P, name string) P {
	p.SetName(name)
	return p
}

func TestBase_Flags(t *testing.T) {
	p := named(NewString(Options{Short: "-p", Long: "--parameter", Default: "1"}), "param")
	assert.Equal(t, "-p", p.ShortFlag())
	assert.Equal(t, "--parameter", p.LongFlag())
	assert.Equal(t, []string{"-p", "--parameter"}, p.Flags())

	derived := named(NewString(Options{}), "blood_group")
	assert.Equal(t, "--blood-group", derived.LongFlag())
	assert.Equal(t, "<BLOOD_GROUP type=str>", derived.Metavar())
	assert.Equal(t, "BLOOD_GROUP", derived.Var())
}

func TestIsPositional(t *testing.T) {
	testCases := []struct {
		name string
		p    Parameter
		want bool
	}{
		{name: "no default no short flag", p: NewString(Options{}), want: true},
		{name: "default", p: NewString(Options{Default: "x"}), want: false},
		{name: "short flag", p: NewInteger(Options{Short: "-n"}), want: false},
		{name: "boolean always has a default", p: NewBoolean(Options{}), want: false},
		{name: "string list always has a default", p: NewStringList(Options{}), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPositional(tc.p))
		})
	}
}

func TestInteger_Parse(t *testing.T) {
	p := named(NewInteger(Options{Default: 1}), "param")

	v, err := p.Parse("3", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = p.Parse("a", nil)
	var perr *ParsingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Error parsing value for <PARAM type=int>; Provided value=a; Expected type=int", perr.Error())
	assert.Equal(t, "a", perr.Value)
}

func TestFloat_Parse(t *testing.T) {
	p := named(NewFloat(Options{Default: 0.1}), "param")

	v, err := p.Parse("3", nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = p.Parse("a", nil)
	require.EqualError(t, err, "Error parsing value for <PARAM type=float>; Provided value=a; Expected type=float")
}

func TestString_Parse(t *testing.T) {
	p := named(NewString(Options{Default: "p"}), "param")
	assert.Equal(t, "p", p.Default())

	v, err := p.Parse("3", nil)
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestBoolean_ParseTogglesDefault(t *testing.T) {
	off := named(NewBoolean(Options{}), "param")
	assert.Equal(t, false, off.Default())
	v, err := off.Parse("ignored", nil)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	on := named(NewBoolean(Options{Default: true}), "param")
	v, err = on.Parse("true", nil)
	require.NoError(t, err)
	assert.Equal(t, false, v, "the token is ignored; only the default matters")
}

func TestStringList_AccumulatesIntoCallerState(t *testing.T) {
	p := named(NewStringList(Options{Short: "-i"}), "interests")
	assert.True(t, p.IsContainer())

	acc := NewAccumulator()
	for _, raw := range []string{"a", "b"} {
		_, err := p.Parse(raw, acc)
		require.NoError(t, err)
	}
	v, err := p.Parse("c", acc)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)

	// A second accumulator starts empty: the descriptor holds no state.
	v, err = p.Parse("hello", NewAccumulator())
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, v)

	v, err = p.Parse("solo", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, v)
}

func TestStringList_DefaultIsCopied(t *testing.T) {
	def := []string{"x"}
	p := NewStringList(Options{Default: def})
	def[0] = "mutated"

	assert.Equal(t, []string{"x"}, p.DefaultValues())
	assert.Equal(t, []string{}, NewStringList(Options{}).DefaultValues())
}

var testEnum = NewEnum("one", "two")

func TestChoice_Parse(t *testing.T) {
	p := named(NewChoice(testEnum, Options{}), "param")

	v, err := p.Parse("one", nil)
	require.NoError(t, err)
	assert.Equal(t, Member{Name: "ONE", Value: "one"}, v)

	_, err = p.Parse("three", nil)
	require.EqualError(t, err, "Error parsing value for <PARAM type=enum>; Provided value=three; Expected value from {one, two}")
}

func TestChoiceByFlag_Parse(t *testing.T) {
	p := named(NewChoiceByFlag(NewEnum("male", "female", "none-binary"), Options{}), "gender")
	assert.Equal(t, []string{"--male", "--female", "--none-binary"}, p.Flags())

	v, err := p.Parse("--none-binary", nil)
	require.NoError(t, err)
	assert.Equal(t, "NONE_BINARY", v.(Member).Name)

	_, err = p.Parse("three", nil)
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "Provided value=three; Expected value from {male, female, none-binary}")
}

func pathFixture(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/dir", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/file.txt", []byte("x"), 0o644))
	return fs
}

func TestFile_Parse(t *testing.T) {
	fs := pathFixture(t)

	testCases := []struct {
		name    string
		opts    PathOptions
		raw     string
		want    string
		wantErr string
	}{
		{name: "existing file", opts: PathOptions{Fs: fs}, raw: "/work/file.txt", want: "/work/file.txt"},
		{name: "missing file allowed", opts: PathOptions{Fs: fs}, raw: "/work/new.txt", want: "/work/new.txt"},
		{name: "path is cleaned", opts: PathOptions{Fs: fs}, raw: "/work/./file.txt", want: "/work/file.txt"},
		{
			name:    "directory rejected",
			opts:    PathOptions{Fs: fs},
			raw:     "/work/dir/",
			wantErr: "Invalid value for --param provided path `/work/dir` is not a file",
		},
		{
			name:    "missing file with exists",
			opts:    PathOptions{Fs: fs, Exists: true},
			raw:     "/work/none.txt",
			wantErr: "Invalid value for --param provided path `/work/none.txt` does not exist",
		},
		{
			name:    "short flag named in message",
			opts:    PathOptions{Fs: fs, Exists: true, Options: Options{Short: "-c"}},
			raw:     "/nope",
			wantErr: "Invalid value for -c provided path `/nope` does not exist",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := named(NewFile(tc.opts), "param")
			v, err := p.Parse(tc.raw, nil)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestDirectory_Parse(t *testing.T) {
	fs := pathFixture(t)
	p := named(NewDirectory(PathOptions{Fs: fs}), "param")

	v, err := p.Parse("/work/dir", nil)
	require.NoError(t, err)
	assert.Equal(t, "/work/dir", v)

	_, err = p.Parse("/work/file.txt", nil)
	require.EqualError(t, err, "Invalid value for --param provided path `/work/file.txt` is not a directory")
}

func TestPath_Resolve(t *testing.T) {
	p := named(NewDirectory(PathOptions{Resolve: true, Fs: afero.NewMemMapFs()}), "param")

	v, err := p.Parse("relative/dir", nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(v.(string)))
	assert.Equal(t, "dir", filepath.Base(v.(string)))
}

func TestHelpLine(t *testing.T) {
	testCases := []struct {
		name string
		p    Parameter
		want string
	}{
		{
			name: "long flag only",
			p:    named(NewBoolean(Options{Help: "Round up the answer"}), "round"),
			want: "--round                       Round up the answer",
		},
		{
			name: "short and long",
			p:    named(NewStringList(Options{Short: "-i", Help: "List of hobbies"}), "interests"),
			want: "-i, --interests               List of hobbies",
		},
		{
			name: "no help text",
			p:    named(NewInteger(Options{Default: 1}), "n"),
			want: "--n",
		},
		{
			name: "choice fits",
			p:    named(NewChoice(NewEnum("a", "b"), Options{Short: "-x", Help: "Pick"}), "x"),
			want: "-x, --x  [a|b]                Pick",
		},
		{
			name: "choice wraps",
			p:    named(NewChoice(NewEnum("OP", "ON", "AP", "AN"), Options{Short: "-b", Help: "Blood group"}), "blood_group"),
			want: "-b, --blood-group  [OP|ON|AP|AN]\n" + "                              " + "    Blood group",
		},
		{
			name: "choice by flag",
			p:    named(NewChoiceByFlag(NewEnum("male", "female"), Options{Help: "Gender"}), "gender"),
			want: "--male, --female              Gender",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.HelpLine())
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := range kindKeywords {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("uuid")
	assert.False(t, ok)
}

func TestVersion(t *testing.T) {
	v := named(NewVersion(Options{}), "version")
	assert.False(t, IsPositional(v))
	assert.Equal(t, "--version", v.LongFlag())

	got, err := v.Parse("--version", nil)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}
