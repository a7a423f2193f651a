package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"carousel/internal/core"
)

var (
	// ErrNotAuthenticated is returned when a store operation is attempted
	// without an owner identity.
	ErrNotAuthenticated = errors.New("user not authenticated")
	// ErrPostNotFound is returned when no post matches the id (and owner,
	// for owner-scoped operations).
	ErrPostNotFound = errors.New("post not found")
	// ErrScheduleInPast is returned when scheduling requires a future
	// timestamp and the given one is not.
	ErrScheduleInPast = errors.New("scheduled time must be in the future")
)

// Store persists carousel posts in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store instance backed by a SQLite database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "carousel.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	postsTable := `
	CREATE TABLE IF NOT EXISTS carousel_posts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT,
		platform TEXT,
		status TEXT,
		slides_data TEXT,
		caption TEXT,
		hashtags TEXT,
		template_settings TEXT,
		scheduled_for DATETIME,
		published_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`

	if _, err := s.db.Exec(postsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SavePost upserts a post for the owning user, stamping the update
// timestamp. A post without an id is created as a new row; the saved post is
// returned with its id and timestamps populated.
func (s *Store) SavePost(post core.CarouselPost, userID string) (core.CarouselPost, error) {
	if userID == "" {
		return core.CarouselPost{}, ErrNotAuthenticated
	}

	now := time.Now().UTC()
	post.UserID = userID
	post.UpdatedAt = now
	if post.Status == "" {
		post.Status = core.StatusDraft
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
		post.CreatedAt = now
	} else if post.CreatedAt.IsZero() {
		// Keep the original creation time on update.
		existing, err := s.getPost(post.ID)
		if err == nil {
			post.CreatedAt = existing.CreatedAt
		} else {
			post.CreatedAt = now
		}
	}

	slidesJSON, err := json.Marshal(post.Slides)
	if err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to encode slides: %w", err)
	}
	hashtagsJSON, err := json.Marshal(post.Hashtags)
	if err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to encode hashtags: %w", err)
	}
	settingsJSON, err := json.Marshal(post.TemplateSettings)
	if err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to encode template settings: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO carousel_posts
	(id, user_id, title, platform, status, slides_data, caption, hashtags, template_settings, scheduled_for, published_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		post.ID,
		post.UserID,
		post.Title,
		string(post.Platform),
		string(post.Status),
		string(slidesJSON),
		post.Caption,
		string(hashtagsJSON),
		string(settingsJSON),
		nullableTime(post.ScheduledFor),
		nullableTime(post.PublishedAt),
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to save post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts for the owner, newest first.
func (s *Store) ListPosts(userID string) ([]core.CarouselPost, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	rows, err := s.db.Query(`
	SELECT id, user_id, title, platform, status, slides_data, caption, hashtags, template_settings, scheduled_for, published_at, created_at, updated_at
	FROM carousel_posts WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []core.CarouselPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPost returns a single post for the owner.
func (s *Store) GetPost(id, userID string) (core.CarouselPost, error) {
	if userID == "" {
		return core.CarouselPost{}, ErrNotAuthenticated
	}
	post, err := s.getPost(id)
	if err != nil {
		return core.CarouselPost{}, err
	}
	if post.UserID != userID {
		return core.CarouselPost{}, ErrPostNotFound
	}
	return post, nil
}

func (s *Store) getPost(id string) (core.CarouselPost, error) {
	row := s.db.QueryRow(`
	SELECT id, user_id, title, platform, status, slides_data, caption, hashtags, template_settings, scheduled_for, published_at, created_at, updated_at
	FROM carousel_posts WHERE id = ?`, id)

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.CarouselPost{}, ErrPostNotFound
	}
	return post, err
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(id string) error {
	result, err := s.db.Exec(`DELETE FROM carousel_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrPostNotFound
	}
	return nil
}

// SchedulePost saves the post with status scheduled and the given future
// timestamp.
func (s *Store) SchedulePost(post core.CarouselPost, userID string, scheduledFor time.Time) (core.CarouselPost, error) {
	if !scheduledFor.After(time.Now()) {
		return core.CarouselPost{}, ErrScheduleInPast
	}
	scheduledFor = scheduledFor.UTC()
	post.Status = core.StatusScheduled
	post.ScheduledFor = &scheduledFor
	return s.SavePost(post, userID)
}

// PublishPost transitions a post to published, stamping the publish
// timestamp. Only the owning user can publish.
func (s *Store) PublishPost(id, userID string) (core.CarouselPost, error) {
	if userID == "" {
		return core.CarouselPost{}, ErrNotAuthenticated
	}

	now := time.Now().UTC()
	result, err := s.db.Exec(`
	UPDATE carousel_posts SET status = ?, published_at = ?, updated_at = ?
	WHERE id = ? AND user_id = ?`,
		string(core.StatusPublished), now, now, id, userID)
	if err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to publish post: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return core.CarouselPost{}, ErrPostNotFound
	}

	return s.GetPost(id, userID)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (core.CarouselPost, error) {
	var (
		post         core.CarouselPost
		platform     string
		status       string
		slidesJSON   string
		hashtagsJSON string
		settingsJSON string
		scheduledFor sql.NullTime
		publishedAt  sql.NullTime
	)

	err := row.Scan(
		&post.ID, &post.UserID, &post.Title, &platform, &status,
		&slidesJSON, &post.Caption, &hashtagsJSON, &settingsJSON,
		&scheduledFor, &publishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return core.CarouselPost{}, err
	}

	post.Platform = core.Platform(platform)
	post.Status = core.PostStatus(status)
	if err := json.Unmarshal([]byte(slidesJSON), &post.Slides); err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to decode slides: %w", err)
	}
	if err := json.Unmarshal([]byte(hashtagsJSON), &post.Hashtags); err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to decode hashtags: %w", err)
	}
	if err := json.Unmarshal([]byte(settingsJSON), &post.TemplateSettings); err != nil {
		return core.CarouselPost{}, fmt.Errorf("failed to decode template settings: %w", err)
	}
	if scheduledFor.Valid {
		t := scheduledFor.Time
		post.ScheduledFor = &t
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		post.PublishedAt = &t
	}
	return post, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
