package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/cleago/internal/command"
)

func TestOnRunPrint(t *testing.T) {
	testCases := []struct {
		name    string
		values  []string
		want    string
		wantErr string
	}{
		{name: "nothing", values: []string{}, want: "(null)\n"},
		{name: "sorted", values: []string{"b=2", "a=1", "c=x=y"}, want: "a = \"1\"\nb = \"2\"\nc = \"x=y\"\n"},
		{name: "last wins", values: []string{"a=1", "a=2"}, want: "a = \"2\"\n"},
		{name: "bad entry", values: []string{"oops"}, wantErr: `invalid value "oops"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			call := &command.Call{Flags: map[string]any{"value": tc.values}, Stdout: out}

			err := OnRunPrint(context.Background(), call)

			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}
