package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"

	"go.uber.org/zap"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults lists the seeders run by `jobmatch seed`.
func Defaults() []Seeder {
	return []Seeder{SkillsSeeder{}}
}

type Runner struct {
	Seeders []Seeder
	Log     *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seed applied", zap.String("seeder", s.Name()))
	}
	return nil
}
