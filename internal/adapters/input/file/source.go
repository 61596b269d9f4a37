package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/paws-quests-cli/internal/ports"
)

const (
	DefaultAccountsFile = "data.txt"
	DefaultWalletsFile  = "wallet.txt"

	commentPrefix = "#"
)

// Source reads the credential and wallet line files of one batch.
type Source struct {
	accountsPath string
	walletsPath  string
	mu           sync.RWMutex
}

var _ ports.AccountSource = (*Source)(nil)

func NewSource(accountsPath, walletsPath string) *Source {
	if strings.TrimSpace(accountsPath) == "" {
		accountsPath = DefaultAccountsFile
	}
	if strings.TrimSpace(walletsPath) == "" {
		walletsPath = DefaultWalletsFile
	}

	return &Source{
		accountsPath: filepath.Clean(accountsPath),
		walletsPath:  filepath.Clean(walletsPath),
	}
}

func (s *Source) AccountsPath() string {
	return s.accountsPath
}

func (s *Source) WalletsPath() string {
	return s.walletsPath
}

func (s *Source) Credentials(ctx context.Context) ([]string, error) {
	return s.readLines(ctx, s.accountsPath, "accounts")
}

func (s *Source) Wallets(ctx context.Context) ([]string, error) {
	return s.readLines(ctx, s.walletsPath, "wallets")
}

func (s *Source) readLines(ctx context.Context, path, kind string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s file %q not found: %w", kind, path, err)
		}
		return nil, fmt.Errorf("open %s file %q: %w", kind, path, err)
	}
	defer func() { _ = file.Close() }()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	// init-data blobs can exceed the default 64KiB token limit
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s file %q: %w", kind, path, err)
	}

	return lines, nil
}
