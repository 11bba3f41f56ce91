package integrity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"site-server/feature/static"

	"go.uber.org/zap"
)

// Service handles integrity checks of the site root.
type Service struct {
	root          string
	criticalFiles []string
	logger        *zap.Logger
}

// NewService creates a new integrity service.
func NewService(root string, criticalFiles []string, logger *zap.Logger) *Service {
	return &Service{
		root:          root,
		criticalFiles: criticalFiles,
		logger:        logger,
	}
}

// CriticalFiles returns the files the service checks for.
func (s *Service) CriticalFiles() []string {
	return s.criticalFiles
}

// CheckStructure returns the critical files that are missing under the root.
// A critical file resolving to a directory, or through a symlink leaving the
// root, counts as missing.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	missing := []string{}

	for _, name := range s.criticalFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		ok, err := s.present(name)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", name, err)
		}
		if !ok {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

func (s *Service) present(name string) (bool, error) {
	full, err := static.Resolve(s.root, "/"+strings.TrimPrefix(name, "/"))
	if errors.Is(err, static.ErrNotFound) || errors.Is(err, static.ErrForbidden) {
		s.logger.Debug("Critical file unresolvable", zap.String("file", name), zap.Error(err))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
