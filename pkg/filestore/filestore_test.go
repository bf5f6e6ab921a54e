package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

// repeatReader yields the same byte forever.
type repeatReader byte

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"letter.pdf", "letter.exe", "letter", "letter.docx.zip"} {
		_, err := s.Save("wordfilenoticeletter", name, 4, strings.NewReader("data"))
		assert.True(t, apperr.IsKind(err, apperr.KindUnsupportedFileType), "expected rejection for %s", name)
	}

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not leave files behind")
}

func TestSaveAcceptsCaseInsensitiveExtension(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"a.doc", "b.DOCX", "c.Doc"} {
		_, err := s.Save("wordfileboth", name, 4, strings.NewReader("data"))
		assert.NoError(t, err, "expected %s to be accepted", name)
	}
}

func TestSaveRejectsDeclaredOversize(t *testing.T) {
	s := newStore(t)
	_, err := s.Save("wordfileboth", "big.docx", MaxFileSize+1, strings.NewReader("data"))
	assert.True(t, apperr.IsKind(err, apperr.KindFileTooLarge))

	entries, _ := os.ReadDir(s.Dir())
	assert.Empty(t, entries)
}

func TestSaveRejectsActualOversize(t *testing.T) {
	// The declared size is client-supplied and may lie.
	s := newStore(t)
	_, err := s.Save("wordfileboth", "big.docx", 4, repeatReader('a'))
	assert.True(t, apperr.IsKind(err, apperr.KindFileTooLarge))

	entries, _ := os.ReadDir(s.Dir())
	assert.Empty(t, entries, "oversize upload must be removed from disk")
}

func TestSaveWritesFileAndGeneratesName(t *testing.T) {
	s := newStore(t)
	name, err := s.Save("wordfilepaymentletter", "payment letter.docx", 7, strings.NewReader("content"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "wordfilepaymentletter-"))
	assert.True(t, strings.HasSuffix(name, ".docx"))

	data, err := os.ReadFile(filepath.Join(s.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s := newStore(t)
	first, err := s.Save("wordfileboth", "x.doc", 1, strings.NewReader("a"))
	require.NoError(t, err)
	second, err := s.Save("wordfileboth", "x.doc", 1, strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
