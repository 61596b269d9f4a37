package toml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultFileName = "tokens.toml"

	tokensFileMode  = 0o600
	tokensDirMode   = 0o700
	tempFilePattern = ".tokens-*.toml.tmp"
)

// Store keeps the userId → token map in memory and mirrors it to one TOML
// file. Every Save rewrites the whole file.
type Store struct {
	path   string
	logger *log.Logger

	mu     sync.RWMutex
	loaded bool
	tokens map[domain.UserID]domain.Token
}

var _ ports.TokenStore = (*Store)(nil)

// NewStore opens the cache at path, DefaultFileName in the working
// directory when path is blank. Nothing is read until Load.
func NewStore(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultFileName
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve token cache path: %w", err)
	}

	return &Store{
		path:   filepath.Clean(absPath),
		logger: logger,
		tokens: map[domain.UserID]domain.Token{},
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory map with the file contents. A missing or
// unreadable cache is treated as empty.
func (s *Store) Load(ctx context.Context) (map[domain.UserID]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked()

	return s.snapshot(), nil
}

func (s *Store) loadLocked() {
	file, err := s.readSchema()
	if err != nil {
		s.logger.Warn("ignoring unreadable token cache", "path", s.path, "error", err)
		file = fileSchema{}
		file.applyDefaults()
	}

	s.tokens = make(map[domain.UserID]domain.Token, len(file.Tokens))
	for userID, token := range file.Tokens {
		if strings.TrimSpace(userID) == "" || strings.TrimSpace(token) == "" {
			continue
		}
		s.tokens[domain.UserID(userID)] = domain.Token(token)
	}
	s.loaded = true
}

func (s *Store) Lookup(userID domain.UserID) (domain.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[userID]
	return token, ok
}

// Save replaces the token of userID and persists the whole map. The
// in-memory entry is kept even when persisting fails.
func (s *Store) Save(ctx context.Context, userID domain.UserID, token domain.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(string(userID)) == "" {
		return errors.New("token user id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loadLocked()
	}
	s.tokens[userID] = token

	file := fileSchema{Tokens: make(map[string]string, len(s.tokens))}
	for id, value := range s.tokens {
		file.Tokens[string(id)] = string(value)
	}

	return s.writeSchema(file)
}

func (s *Store) Entries() []domain.CachedToken {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.CachedToken, 0, len(s.tokens))
	for userID, token := range s.tokens {
		entries = append(entries, domain.CachedToken{UserID: userID, Token: token})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UserID < entries[j].UserID
	})

	return entries
}

func (s *Store) snapshot() map[domain.UserID]domain.Token {
	out := make(map[domain.UserID]domain.Token, len(s.tokens))
	for userID, token := range s.tokens {
		out[userID] = token
	}
	return out
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read token cache: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode token cache: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), tokensDirMode); err != nil {
		return fmt.Errorf("create token cache directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode token cache: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp token cache: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp token cache: %w", err)
	}

	if err := tempFile.Chmod(tokensFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp token cache: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp token cache: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace token cache: %w", err)
	}

	cleanup = false

	return nil
}
