package service

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestUploadAndDownloadAttachment(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "with file")
	files := NewFileService(env.authz, env.posts, env.attachments, t.TempDir(), 1<<20)

	content := "hello attachment"
	attachment, err := files.Upload(alice, post.ID, "notes.txt", "text/plain", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if attachment.OriginalName != "notes.txt" || attachment.StoredName == "notes.txt" {
		t.Errorf("stored name must be randomized, got %q", attachment.StoredName)
	}

	meta, f, err := files.Open(attachment.ID)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("content mismatch: %q", data)
	}
	if meta.ContentType != "text/plain" {
		t.Errorf("unexpected content type %q", meta.ContentType)
	}
}

func TestUploadToForeignPostForbidden(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	_, bob := env.createUser(t, "bob")
	post := env.createPost(t, alice, "alice's post")
	files := NewFileService(env.authz, env.posts, env.attachments, t.TempDir(), 1<<20)

	_, err := files.Upload(bob, post.ID, "x.txt", "text/plain", 4, strings.NewReader("data"))
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestUploadSizeLimit(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "post")
	files := NewFileService(env.authz, env.posts, env.attachments, t.TempDir(), 8)

	_, err := files.Upload(alice, post.ID, "big.bin", "application/octet-stream", 100, strings.NewReader(strings.Repeat("x", 100)))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for oversized file, got %v", err)
	}
}

func TestDeleteAttachment(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "post")
	files := NewFileService(env.authz, env.posts, env.attachments, t.TempDir(), 1<<20)

	attachment, err := files.Upload(alice, post.ID, "x.txt", "text/plain", 4, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := files.Delete(alice, attachment.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, _, err := files.Open(attachment.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
