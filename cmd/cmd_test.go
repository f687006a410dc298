package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listselect/internal/config"
	"listselect/internal/domain"
	"listselect/internal/ui"
)

func TestApplyItemSources(t *testing.T) {
	t.Run("arguments win over stdin", func(t *testing.T) {
		cfg := config.DefaultConfig()
		err := applyItemSources(cfg, []string{"a", "b"}, strings.NewReader("c\nd\n"))
		require.NoError(t, err)
		assert.Equal(t, config.ItemsFromStrings([]string{"a", "b"}), cfg.Items)
	})

	t.Run("stdin lines", func(t *testing.T) {
		cfg := config.DefaultConfig()
		err := applyItemSources(cfg, nil, strings.NewReader("one\r\n\n  \ntwo words\n"))
		require.NoError(t, err)
		assert.Equal(t, config.ItemsFromStrings([]string{"one", "two words"}), cfg.Items)
	})

	t.Run("empty stdin keeps the file items", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Items = config.ItemsFromStrings([]string{"from file"})
		require.NoError(t, applyItemSources(cfg, nil, strings.NewReader("")))
		assert.Len(t, cfg.Items, 1)
	})
}

func TestApplyFlagsOnlyWhenSet(t *testing.T) {
	opts := &runOptions{}
	root := newRootCmd(opts)
	require.NoError(t, root.ParseFlags([]string{"--search", "--no-keyboard"}))

	cfg := config.DefaultConfig()
	cfg.Multiple = true
	applyFlags(root, cfg, opts)

	assert.True(t, cfg.Multiple, "unset flags keep the file value")
	assert.True(t, cfg.Search)
	assert.False(t, cfg.KeyboardEnabled())
}

func TestWriteResult(t *testing.T) {
	result := &ui.Result{
		Selection: domain.Selection{Multiple: true, Indices: []int{0, 2}, Index: domain.None},
		Items:     []domain.Item{domain.Primitive("apple"), domain.Labeled("Cherry", int64(3))},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, result, "text"))
		assert.Equal(t, "apple\n3\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, result, "json"))

		var decoded struct {
			Selection domain.Selection `json:"selection"`
			Items     []struct {
				Kind  string `json:"kind"`
				Text  string `json:"text"`
				Name  string `json:"name"`
				Value any    `json:"value"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []int{0, 2}, decoded.Selection.Indices)
		require.Len(t, decoded.Items, 2)
		assert.Equal(t, "primitive", decoded.Items[0].Kind)
		assert.Equal(t, "apple", decoded.Items[0].Text)
		assert.Equal(t, "labeled", decoded.Items[1].Kind)
		assert.Equal(t, float64(3), decoded.Items[1].Value)
	})
}

func TestInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewCLI()
		root.SetOut(&out)
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}

	out, err := run("init", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	_, err = run("init", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = run("validate", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 0 items ok\n", out)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[items]]\n"), 0o644))
	_, err = run("validate", bad)
	assert.ErrorIs(t, err, domain.ErrMalformedItem)
}

func TestRejectsUnknownOutput(t *testing.T) {
	root := NewCLI()
	root.SetArgs([]string{"--output", "yaml", "--log-file", "", "a"})
	err := root.Execute()
	assert.ErrorContains(t, err, "unknown output format")
}
