package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokeBlob = "query_id=AAE&user=%7B%22id%22%3A4242%2C%22username%22%3A%22smoke%22%7D&hash=s"

func TestSmokeFlow(t *testing.T) {
	var claims atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/user/auth":
			w.WriteHeader(http.StatusCreated)
			_, _ = fmt.Fprint(w, `{"success":true,"data":["smoke-token",{"userData":{"userId":4242}}]}`)
		case "/v1/user":
			_, _ = fmt.Fprint(w, `{"success":true,"data":{"userData":{"userId":4242,"username":"smoke","wallet":"UQBlinked"}}}`)
		case "/v1/quests/list":
			_, _ = fmt.Fprint(w, `{"success":true,"data":[{"_id":"q1","title":"Smoke quest","progress":{"claimed":false}}]}`)
		case "/v1/quests/completed":
			_, _ = fmt.Fprint(w, `{"success":false,"data":true}`)
		case "/v1/quests/claim":
			claims.Add(1)
			w.WriteHeader(http.StatusCreated)
			_, _ = fmt.Fprint(w, `{"success":true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	home := t.TempDir()
	binaryPath := buildBinary(t)
	configPath := writeWorkspace(t, home, server.URL+"/v1")

	_, stderr, err := runPaws(t, binaryPath, home, "--config", configPath, "run", "--once", "--plain")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stderr, "cycle finished")
	assert.Equal(t, int32(1), claims.Load())

	stdout, stderr, err := runPaws(t, binaryPath, home, "--config", configPath, "tokens")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "4242")
	assert.Contains(t, stdout, "undecodable")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "paws-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/paws")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build paws binary: %s", string(output))
	return binaryPath
}

func runPaws(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+filepath.Join(home, ".config"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeWorkspace(t *testing.T, home, baseURL string) string {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(home, "data.txt"), []byte(smokeBlob+"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, "wallet.txt"), []byte("UQBsmoke\n"), 0o600))

	config := fmt.Sprintf(`[api]
base_url = %q

[retry]
attempts = 1
delay = "1ms"

[pacing]
quest_delay = "0s"
account_delay = "0s"

[files]
accounts = %q
wallets = %q
tokens = %q
`, baseURL,
		filepath.Join(home, "data.txt"),
		filepath.Join(home, "wallet.txt"),
		filepath.Join(home, "tokens.toml"),
	)

	configPath := filepath.Join(home, "paws.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))
	return configPath
}
