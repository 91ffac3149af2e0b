package dict_test

import (
	"strings"
	"testing"

	"github.com/dirvine/three-word-networking/dict"
	"github.com/stretchr/testify/require"
)

func TestDefault_Size(t *testing.T) {
	d := dict.Default()
	require.Equal(t, dict.Size, d.Len())
}

func TestDefault_RoundTrip(t *testing.T) {
	d := dict.Default()
	for i := 0; i < dict.Size; i++ {
		w, err := d.Word(i)
		require.NoError(t, err)
		got, err := d.Index(w)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

func TestIndex_CaseInsensitive(t *testing.T) {
	d := dict.Default()
	w, err := d.Word(0)
	require.NoError(t, err)

	lo, err := d.Index(strings.ToLower(w))
	require.NoError(t, err)
	up, err := d.Index(strings.ToUpper(w))
	require.NoError(t, err)
	require.Equal(t, 0, lo)
	require.Equal(t, 0, up)
}

func TestIndex_NotFound(t *testing.T) {
	d := dict.Default()

	_, err := d.Index("nonexistent-word-123")
	require.ErrorIs(t, err, dict.ErrNotFound)

	_, err = d.Index("")
	require.ErrorIs(t, err, dict.ErrNotFound)
}

func TestWord_OutOfRange(t *testing.T) {
	d := dict.Default()
	_, err := d.Word(-1)
	require.ErrorIs(t, err, dict.ErrNotFound)
	_, err = d.Word(dict.Size)
	require.ErrorIs(t, err, dict.ErrNotFound)
}

func TestLoad_WrongCount(t *testing.T) {
	_, err := dict.LoadBytes([]byte("ab\ncd\n"))
	require.ErrorIs(t, err, dict.ErrMalformed)
}

func TestLoad_Duplicate(t *testing.T) {
	// Build a set of Size unique words plus one duplicate to trigger the error
	// without depending on the real embedded asset's contents.
	seen := map[string]bool{"ab": true}
	uniq := []string{"ab", "ab"}
	for c := 'a'; c <= 'z' && len(uniq) < dict.Size+1; c++ {
		for c2 := 'a'; c2 <= 'z' && len(uniq) < dict.Size+1; c2++ {
			for c3 := 'a'; c3 <= 'z' && len(uniq) < dict.Size+1; c3++ {
				w := string(c) + string(c2) + string(c3)
				if !seen[w] {
					seen[w] = true
					uniq = append(uniq, w)
				}
			}
		}
	}
	_, err := dict.LoadBytes([]byte(strings.Join(uniq[:dict.Size+1], "\n") + "\n"))
	require.ErrorIs(t, err, dict.ErrMalformed)
}

func TestLoad_BadLength(t *testing.T) {
	words := make([]string, 0, dict.Size)
	words = append(words, "a") // too short
	for c := 'a'; c <= 'z' && len(words) < dict.Size; c++ {
		for c2 := 'a'; c2 <= 'z' && len(words) < dict.Size; c2++ {
			words = append(words, string(c)+string(c2)+"xy")
		}
	}
	_, err := dict.LoadBytes([]byte(strings.Join(words, "\n") + "\n"))
	require.ErrorIs(t, err, dict.ErrMalformed)
}
