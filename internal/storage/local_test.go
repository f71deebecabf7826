package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	ref, err := store.Put(context.Background(), "e1_resume_cv.pdf", []byte("pdf bytes"), "application/pdf")
	assert.NoError(t, err)
	assert.Equal(t, "e1_resume_cv.pdf", ref)

	data, err := store.Get(context.Background(), ref)
	assert.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)

	assert.NoError(t, store.Delete(context.Background(), ref))

	_, err = store.Get(context.Background(), ref)
	assert.Error(t, err)
}

func TestLocalStoreRejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", `a\b`, "..", "."} {
		_, err := store.Put(context.Background(), key, []byte("x"), "text/plain")
		assert.Error(t, err, key)
	}
}

func TestLocalStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestBuildObjectKeyFlattensClientPaths(t *testing.T) {
	key := BuildObjectKey("e1", "resume", "../../etc/passwd")
	assert.Equal(t, "e1_resume_passwd", key)

	key = BuildObjectKey("e1", "aadhar", `C:\Users\bob\card.png`)
	assert.Equal(t, "e1_aadhar_card.png", key)

	key = BuildObjectKey("e1", "other", "")
	assert.Equal(t, "e1_other_upload", key)
}
