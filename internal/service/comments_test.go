package service

import (
	"errors"
	"testing"
)

func TestCommentOnMissingPost(t *testing.T) {
	env := setupTestEnv(t)
	_, bob := env.createUser(t, "bob")

	_, err := env.commentSvc.Create(bob, 9999, "hello?")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentOwnership(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	_, bob := env.createUser(t, "bob")
	_, adminIdentity := env.createAdmin(t, "root")
	post := env.createPost(t, alice, "hello")

	comment, err := env.commentSvc.Create(bob, post.ID, "first")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := env.commentSvc.Update(alice, comment.ID, "edited"); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner edit: expected ErrForbidden, got %v", err)
	}
	if _, err := env.commentSvc.Update(bob, comment.ID, "edited"); err != nil {
		t.Errorf("owner edit failed: %v", err)
	}
	if err := env.commentSvc.Delete(adminIdentity, comment.ID); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "hello")

	for _, text := range []string{"one", "two", "three"} {
		if _, err := env.commentSvc.Create(alice, post.ID, text); err != nil {
			t.Fatalf("create %q failed: %v", text, err)
		}
	}

	comments, err := env.commentSvc.List(post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	if comments[0].Content != "one" || comments[2].Content != "three" {
		t.Errorf("comments out of order: %q ... %q", comments[0].Content, comments[2].Content)
	}
}

func TestCommentAuthorUsesDisplayName(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "hello")

	_, dave, err := env.authSvc.Register("dave", "dave@example.com", testPassword, "Dave the Brave")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	comment, err := env.commentSvc.Create(
		identityFor(dave.Username, dave.Role), post.ID, "hi")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if comment.Author != "Dave the Brave" {
		t.Errorf("expected display name as author, got %q", comment.Author)
	}
}

func TestCommentValidation(t *testing.T) {
	env := setupTestEnv(t)
	_, alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "hello")

	if _, err := env.commentSvc.Create(alice, post.ID, "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank content: expected ErrValidation, got %v", err)
	}
}
