package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAccessionList(t *testing.T) {
	list, err := ResolveAccession("ERR000001,ERR000002 ERR000003")
	require.NoError(t, err)
	require.Equal(t, []string{"ERR000001", "ERR000002", "ERR000003"}, list)
}

func TestResolveAccessionDropsDuplicates(t *testing.T) {
	list, err := ResolveAccession("ERR000001,ERR000001,ERR000002")
	require.NoError(t, err)
	require.Equal(t, []string{"ERR000001", "ERR000002"}, list)
}

func TestResolveAccessionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessions.txt")
	require.NoError(t, os.WriteFile(path, []byte("ERR000001\nERR000002\n"), 0644))
	list, err := ResolveAccession(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ERR000001", "ERR000002"}, list)
}

func TestResolveAccessionEmpty(t *testing.T) {
	_, err := ResolveAccession(" ,\n\t")
	require.Error(t, err)
}

func TestResolveAccessionBadURL(t *testing.T) {
	_, err := ResolveAccession("https://example.org/not-s3/accessions.txt")
	require.Error(t, err)
}
