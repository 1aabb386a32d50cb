package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres"
	attemptrepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/attempt"
	masteryrepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/mastery"
	phraserepo "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/phrase"
	"github.com/heartmarshall/myenglish-dictation/internal/config"
	"github.com/heartmarshall/myenglish-dictation/internal/observe"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
)

// PhraseFile is the YAML document accepted by the import-phrases command.
// Language and LessonID apply to every phrase that does not set its own.
type PhraseFile struct {
	Language string       `yaml:"language"`
	LessonID *uuid.UUID   `yaml:"lesson_id"`
	Phrases  []PhraseItem `yaml:"phrases"`
}

// PhraseItem is one reference phrase in a PhraseFile.
type PhraseItem struct {
	ID       uuid.UUID  `yaml:"id"`
	Language string     `yaml:"language"`
	Text     string     `yaml:"text"`
	LessonID *uuid.UUID `yaml:"lesson_id"`
}

// LoadPhraseFile reads and parses a phrase file from disk.
func LoadPhraseFile(path string) (*PhraseFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrase file %q: %w", path, err)
	}
	defer f.Close()

	pf, err := LoadPhrasesFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse phrase file %q: %w", path, err)
	}
	return pf, nil
}

// LoadPhrasesFromReader parses a phrase file. Unknown keys are rejected.
func LoadPhrasesFromReader(r io.Reader) (*PhraseFile, error) {
	var pf PhraseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode phrase yaml: %w", err)
	}
	return &pf, nil
}

// Inputs converts the file into service inputs, applying file-level defaults.
func (pf *PhraseFile) Inputs() []dictation.CreatePhraseInput {
	out := make([]dictation.CreatePhraseInput, len(pf.Phrases))
	for i, p := range pf.Phrases {
		in := dictation.CreatePhraseInput{
			ID:       p.ID,
			Language: p.Language,
			Text:     p.Text,
			LessonID: p.LessonID,
		}
		if in.Language == "" {
			in.Language = pf.Language
		}
		if in.LessonID == nil {
			in.LessonID = pf.LessonID
		}
		out[i] = in
	}
	return out
}

// ImportPhrases loads path and stores its phrases in one transaction. With
// dryRun the file is only parsed and validated.
func ImportPhrases(ctx context.Context, cfg *config.Config, logger *slog.Logger, path string, dryRun bool) (int, error) {
	pf, err := LoadPhraseFile(path)
	if err != nil {
		return 0, err
	}
	inputs := pf.Inputs()

	if dryRun {
		for i, in := range inputs {
			if err := in.Validate(cfg.Dictation.MaxReferenceLength); err != nil {
				return 0, fmt.Errorf("phrase %d: %w", i, err)
			}
		}
		logger.Info("dry run: phrase file is valid", slog.Int("count", len(inputs)))
		return len(inputs), nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	metrics := observe.NewNoopMetrics()

	// With Redis, the import must drop stale entries the servers still hold.
	phrases, _, closeCache, err := newPhraseCache(ctx, cfg.Cache, metrics, logger)
	if err != nil {
		return 0, err
	}
	defer closeCache()

	svc := dictation.NewService(
		logger,
		phraserepo.New(pool),
		attemptrepo.New(pool),
		masteryrepo.New(pool),
		phrases,
		postgres.NewTxManager(pool),
		metrics,
		serviceConfig(cfg.Dictation),
	)

	return svc.ImportPhrases(ctx, inputs)
}
