//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchFilter(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("--search", "Apple", "Banana", "Apricot")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render first frame")

	tf.Search("ap")
	require.True(t, tf.SeePlain("[Filter: ap]"), "Filter indicator should be shown")
	require.True(t, tf.SeePlain("2/3 items"), "Two of three items should match")

	// Esc in the search box restores the full list
	mark := tf.Mark()
	tf.SendKeys(KeySearch)
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlainSince(mark, "3 items"), "Cancelling search should restore every row")
}

func TestSearchDisabledByDefault(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("Apple", "Banana")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render first frame")

	tf.SendKeys(KeySearch)
	time.Sleep(200 * time.Millisecond)
	require.False(t, strings.Contains(tf.SnapshotPlain(), "Search:"), "No search box without --search")
}
