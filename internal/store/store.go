package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports an unknown decision slug.
	ErrNotFound = errors.New("decision not found")
	// ErrAlreadyExists reports a create for a slug that is already persisted.
	ErrAlreadyExists = errors.New("decision already exists")
)

const slugWordLimit = 10

// Store persists one YAML document per decision under a root directory.
// The mutex serializes the load-mutate-save sequences of a single process;
// concurrent writers from separate processes still race (last writer wins).
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens the store rooted at dir, creating it when absent.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Slugify derives the stable identifier for a decision text: the first ten
// whitespace-separated words joined with hyphens, stripped of every rune
// that is not a letter, digit or hyphen, lowercased.
func Slugify(text string) string {
	words := strings.Fields(text)
	if len(words) > slugWordLimit {
		words = words[:slugWordLimit]
	}
	joined := strings.Join(words, "-")
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

// Create persists a new decision with no framework records and returns its slug.
func (s *Store) Create(text string) (string, error) {
	slug := Slugify(text)
	if slug == "" {
		return "", errors.New("decision text produced an empty slug")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path(slug)); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, slug)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat decision: %w", err)
	}

	now := time.Now()
	decision := &Decision{
		Decision: Meta{
			Text:        text,
			Slug:        slug,
			CreatedAt:   now,
			LastUpdated: now,
		},
		Frameworks: []FrameworkRecord{},
	}
	decision.refreshCounts()

	if err := s.save(decision); err != nil {
		return "", err
	}
	return slug, nil
}

// Load reads the full decision aggregate for the slug.
func (s *Store) Load(slug string) (*Decision, error) {
	path, err := s.resolve(slug)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("read decision: %w", err)
	}
	var decision Decision
	if err := yaml.Unmarshal(data, &decision); err != nil {
		return nil, fmt.Errorf("unmarshal decision %s: %w", slug, err)
	}
	return &decision, nil
}

// List returns summaries of every readable decision sorted by creation time,
// newest first. Corrupt documents are logged and skipped; the second return
// value reports how many were skipped.
func (s *Store) List() ([]Summary, int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read data directory: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".yaml")
		decision, err := s.Load(slug)
		if err != nil {
			logrus.WithError(err).WithField("slug", slug).Warn("skipping unreadable decision")
			skipped++
			continue
		}
		summaries = append(summaries, Summary{
			Slug:            decision.Decision.Slug,
			Text:            truncate(decision.Decision.Text, 100),
			CreatedAt:       decision.Decision.CreatedAt,
			FrameworksCount: decision.Metadata.TotalFrameworks,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, skipped, nil
}

// Upsert merges the framework record into the decision: a record with a
// matching name is replaced in place, otherwise the record is appended.
// Summary metadata and last_updated are refreshed and the whole document
// rewritten.
func (s *Store) Upsert(slug string, record FrameworkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decision, err := s.Load(slug)
	if err != nil {
		return err
	}

	replaced := false
	for i := range decision.Frameworks {
		if decision.Frameworks[i].Name == record.Name {
			decision.Frameworks[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		decision.Frameworks = append(decision.Frameworks, record)
	}

	decision.Decision.LastUpdated = time.Now()
	decision.refreshCounts()
	return s.save(decision)
}

// save rewrites the decision document atomically via a temp file rename.
func (s *Store) save(decision *Decision) error {
	data, err := yaml.Marshal(decision)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "decision-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write decision: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close decision: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(decision.Decision.Slug)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist decision: %w", err)
	}
	return nil
}

func (s *Store) path(slug string) string {
	return filepath.Join(s.dir, slug+".yaml")
}

// resolve validates the slug before touching the filesystem.
func (s *Store) resolve(slug string) (string, error) {
	if slug == "" || slug != filepath.Base(slug) || strings.Contains(slug, "..") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return s.path(slug), nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
