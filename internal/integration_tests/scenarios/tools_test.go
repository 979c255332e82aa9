package integration_tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/cleago/internal/app"
	it "github.com/specialistvlad/cleago/internal/integration_tests"
)

func TestScenario_ToolsPrint(t *testing.T) {
	testApp, out, _ := app.SetupAppTest(t, it.Manifest(t, "tools.hcl"), app.Config{Isolated: true})

	code, err := testApp.Run(context.Background(), []string{"print", "-v=b=2", "--value=a=1"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a = \"1\"\nb = \"2\"\n", out.String())
}

func TestScenario_ToolsRequest(t *testing.T) {
	// --- Arrange ---
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Method + " " + r.Header.Get("Accept")))
	}))
	defer server.Close()
	testApp, out, _ := app.SetupAppTest(t, it.Manifest(t, "tools.hcl"), app.Config{Isolated: true})

	// --- Act ---
	code, err := testApp.Run(context.Background(), []string{"request", "--method=PUT", "-H=Accept: text/plain", server.URL})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "200 OK\nPUT text/plain\n", out.String())
}

func TestScenario_ToolsUpload_MissingSource(t *testing.T) {
	testApp, _, errOut := app.SetupAppTest(t, it.Manifest(t, "tools.hcl"), app.Config{Isolated: true})

	code, err := testApp.Run(context.Background(), []string{"upload", "/definitely/not/here.bin", "http://localhost"})

	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "does not exist")
}
