// Package seed loads bootstrap categories and admin accounts from YAML.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/logger"
)

// File is the on-disk seed format.
//
//	categories:
//	  - Billing
//	admins:
//	  - name: Root
//	    gender: other
//	    email: root@example.com
//	    password: change-me
//	    category: Operations
type File struct {
	Categories []string    `yaml:"categories"`
	Admins     []AdminSeed `yaml:"admins"`
}

type AdminSeed struct {
	Name     string `yaml:"name"`
	Gender   string `yaml:"gender"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Category string `yaml:"category"`
}

// Result counts rows actually inserted or promoted.
type Result struct {
	Categories int
	Admins     int
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	categoryRepo category.Repository
	userRepo     user.Repository
	hasher       PasswordHasher
	txManager    db.TxRunner
	logger       logger.Interface
}

func NewSeeder(
	categoryRepo category.Repository,
	userRepo user.Repository,
	hasher PasswordHasher,
	txManager db.TxRunner,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		txManager:    txManager,
		logger:       logger,
	}
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Apply is idempotent: existing category names are skipped and existing
// accounts are only promoted to admin.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	result := &Result{}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.categoryRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		seen := make(map[string]struct{}, len(existing))
		for _, c := range existing {
			seen[strings.ToLower(c.Name())] = struct{}{}
		}

		for _, name := range f.Categories {
			c, err := category.NewCategory(name)
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			key := strings.ToLower(c.Name())
			if _, ok := seen[key]; ok {
				continue
			}
			if err := s.categoryRepo.Save(txCtx, c); err != nil {
				return fmt.Errorf("failed to save category %q: %w", name, err)
			}
			seen[key] = struct{}{}
			result.Categories++
		}

		for _, a := range f.Admins {
			added, err := s.applyAdmin(txCtx, a)
			if err != nil {
				return err
			}
			if added {
				result.Admins++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("seed applied", "categories", result.Categories, "admins", result.Admins)
	return result, nil
}

func (s *Seeder) applyAdmin(ctx context.Context, a AdminSeed) (bool, error) {
	email, err := user.NormalizeEmail(a.Email)
	if err != nil {
		return false, fmt.Errorf("admin %q: %w", a.Email, err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", email, err)
	}
	if existing != nil {
		changed, err := existing.ChangeRole(authorization.RoleAdmin)
		if err != nil || !changed {
			return false, err
		}
		if err := s.userRepo.UpdateRole(ctx, existing); err != nil {
			return false, fmt.Errorf("failed to promote %s: %w", email, err)
		}
		return true, nil
	}

	if a.Password == "" {
		return false, fmt.Errorf("admin %s: password is required", email)
	}
	hash, err := s.hasher.Hash(a.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password for %s: %w", email, err)
	}

	u, err := user.NewUser(a.Name, a.Gender, email, hash, a.Category)
	if err != nil {
		return false, fmt.Errorf("admin %s: %w", email, err)
	}
	if _, err := u.ChangeRole(authorization.RoleAdmin); err != nil {
		return false, err
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return false, fmt.Errorf("failed to create admin %s: %w", email, err)
	}
	return true, nil
}
