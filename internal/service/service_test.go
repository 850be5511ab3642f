package service

import (
	"testing"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	users       *storage.UserRepository
	posts       *storage.PostRepository
	comments    *storage.CommentRepository
	reactions   *storage.ReactionRepository
	suspensions *storage.SuspensionRepository
	attachments *storage.AttachmentRepository

	ledger     *SuspensionLedger
	authz      *Authorizer
	authSvc    *AuthService
	postSvc    *PostService
	commentSvc *CommentService
	engagement *EngagementService
	moderation *ModerationService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	env := &testEnv{
		db:          db,
		users:       storage.NewUserRepository(db),
		posts:       storage.NewPostRepository(db),
		comments:    storage.NewCommentRepository(db),
		reactions:   storage.NewReactionRepository(db),
		suspensions: storage.NewSuspensionRepository(db),
		attachments: storage.NewAttachmentRepository(db),
	}
	env.ledger = NewSuspensionLedger(db, env.users, env.suspensions)
	env.authz = NewAuthorizer(env.users, env.ledger)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	env.authSvc = NewAuthService(env.users, env.authz, env.ledger, tokens)
	env.postSvc = NewPostService(env.authz, env.posts)
	env.commentSvc = NewCommentService(env.authz, env.posts, env.comments)
	env.engagement = NewEngagementService(db, env.authz, env.posts, env.reactions)
	env.moderation = NewModerationService(env.authz, env.ledger, env.users, env.posts)
	return env
}

const testPassword = "secret123"

func identityFor(username, role string) auth.Identity {
	return auth.Identity{Username: username, Role: role}
}

func (e *testEnv) createUser(t *testing.T, username string) (*models.User, auth.Identity) {
	t.Helper()
	_, user, err := e.authSvc.Register(username, username+"@example.com", testPassword, "")
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return user, auth.Identity{Username: user.Username, Role: user.Role}
}

func (e *testEnv) createAdmin(t *testing.T, username string) (*models.User, auth.Identity) {
	t.Helper()
	user, _ := e.createUser(t, username)
	if err := e.db.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote %s: %v", username, err)
	}
	user.Role = models.RoleAdmin
	return user, auth.Identity{Username: user.Username, Role: models.RoleAdmin}
}

func (e *testEnv) createPost(t *testing.T, owner auth.Identity, title string) *models.Post {
	t.Helper()
	post, err := e.postSvc.Create(owner, title, "some content", "general")
	if err != nil {
		t.Fatalf("failed to create post %q: %v", title, err)
	}
	return post
}

func (e *testEnv) reloadPost(t *testing.T, postID uint) *models.Post {
	t.Helper()
	post, err := e.posts.GetByID(postID)
	if err != nil {
		t.Fatalf("failed to reload post %d: %v", postID, err)
	}
	if post == nil {
		t.Fatalf("post %d vanished", postID)
	}
	return post
}
