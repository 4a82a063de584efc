package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/splitkit/cmd/splitcheck/commands"
	"github.com/dmitrymomot/splitkit/pkg/api"
	"github.com/dmitrymomot/splitkit/pkg/entry"
)

const (
	balancedExpense = `{
		"group_id": "6f1c1f3e-7f43-4d7e-9a55-0c1f5b7d2a10",
		"description": "Dinner",
		"amount": 100,
		"splits": [{"member": "Ann", "amount": 50}, {"member": "Bo", "amount": 49.995}]
	}`
	unbalancedExpense = "group_id: 6f1c1f3e-7f43-4d7e-9a55-0c1f5b7d2a10\n" +
		"description: Dinner\n" +
		"amount: 100\n" +
		"splits:\n" +
		"  - member: Ann\n    amount: 40\n" +
		"  - member: Bo\n    amount: 40\n"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	cmd := commands.NewRootCommand(
		commands.WithEnvironment(env),
		commands.WithLogOutput(io.Discard),
	)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExpenseCommand(t *testing.T) {
	t.Parallel()

	t.Run("accepts balanced splits", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "dinner.json", balancedExpense)

		out, err := run(t, nil, "", "expense", path)
		require.NoError(t, err)
		assert.Equal(t, path+": ok\n", out)
	})

	t.Run("rejects unbalanced splits", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "dinner.yaml", unbalancedExpense)

		out, err := run(t, nil, "", "expense", path)
		require.ErrorIs(t, err, commands.ErrRejected)
		assert.Equal(t,
			path+": splits: splits add up to 80 but the total is 100 (off by 20) [splits_sum_mismatch]\n", out)
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "dinner.yml", unbalancedExpense)

		out, err := run(t, nil, "", "expense", "--lang", "de", path)
		require.ErrorIs(t, err, commands.ErrRejected)
		assert.Contains(t, out, "splits ergeben 80, der Gesamtbetrag ist aber 100 (Differenz 20)")

		out, err = run(t, map[string]string{"SPLITKIT_DEFAULT_LANG": "de"}, "", "expense", path)
		require.ErrorIs(t, err, commands.ErrRejected)
		assert.Contains(t, out, "Differenz 20")
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "dinner.yaml", unbalancedExpense)

		out, err := run(t, nil, "", "expense", "-o", "json", path)
		require.ErrorIs(t, err, commands.ErrRejected)

		var v api.Verdict
		require.NoError(t, json.Unmarshal([]byte(out), &v))
		assert.False(t, v.Valid)
		require.Len(t, v.Errors, 1)
		assert.Equal(t, "splits_sum_mismatch", v.Errors[0].Reason)
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, nil, balancedExpense, "expense", "-")
		require.NoError(t, err)
		assert.Equal(t, "-: ok\n", out)

		_, err = run(t, nil, unbalancedExpense, "expense", "--format", "yaml", "-")
		assert.ErrorIs(t, err, commands.ErrRejected)
	})

	t.Run("input errors are not rejections", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, nil, "", "expense", writeFile(t, "dinner.toml", ""))
		assert.ErrorIs(t, err, entry.ErrUnsupportedFormat)

		_, err = run(t, nil, "", "expense", writeFile(t, "dinner.json", `{"total": 1}`))
		assert.ErrorIs(t, err, entry.ErrDecode)
		assert.NotErrorIs(t, err, commands.ErrRejected)

		_, err = run(t, nil, "", "expense", filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)

		_, err = run(t, nil, "", "expense")
		assert.Error(t, err)
	})
}

func TestProfileCommand(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "ann.json", `{"name":"Ann","email":"ann@example.com","password":"secret"}`)

	_, err := run(t, nil, "", "profile", path)
	require.NoError(t, err)

	out, err := run(t, map[string]string{"SPLITKIT_MIN_PASSWORD_LENGTH": "10"}, "", "profile", path)
	require.ErrorIs(t, err, commands.ErrRejected)
	assert.Contains(t, out, "[password_too_short]")
}

func TestGroupCommand(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "trip.yaml",
		"name: Trip\nmembers:\n  - name: Ann\n    email: ann@example.com\n  - name: Bo\n    email: ANN@example.com\n")

	out, err := run(t, nil, "", "group", path)
	require.ErrorIs(t, err, commands.ErrRejected)
	assert.Contains(t, out, "[duplicate_value]")
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"SPLITKIT_SPLIT_TOLERANCE": "0.05"}, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "profile  name, email, password\n")
	assert.Contains(t, out, "expense  group, description, amount, currency, splits\n")
	assert.Contains(t, out, "split tolerance:     0.05\n")
}

func TestInvalidConfiguration(t *testing.T) {
	t.Parallel()

	_, err := run(t, map[string]string{"SPLITKIT_SPLIT_TOLERANCE": "-1"}, "", "rules")
	assert.ErrorIs(t, err, entry.ErrInvalidPolicy)

	_, err = run(t, map[string]string{"SPLITKIT_MIN_PASSWORD_LENGTH": "many"}, "", "rules")
	assert.Error(t, err)
}
