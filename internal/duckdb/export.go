package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"quizconv/internal/quiz"
)

// ImportResult identifies the stored import for a set of records.
type ImportResult struct {
	ImportID   string
	ContentKey string
	Created    bool
}

// ContentKey fingerprints a source path together with its records. The same
// file with the same content always maps to the same key.
func ContentKey(source string, records []quiz.Record) (string, error) {
	if records == nil {
		records = []quiz.Record{}
	}
	return FingerprintJSON(map[string]interface{}{
		"source":  source,
		"records": records,
	})
}

// ImportRecords stores records under a new import in one transaction. An
// import with the same content key is reused instead of duplicated.
func ImportRecords(ctx context.Context, db *sql.DB, source string, records []quiz.Record) (ImportResult, error) {
	if ctx == nil {
		return ImportResult{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return ImportResult{}, errors.New("duckdb: db is nil")
	}
	key, err := ContentKey(source, records)
	if err != nil {
		return ImportResult{}, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := lookupID(ctx, tx, "quiz_imports", "import_id", "content_key", key)
	if err == nil {
		return ImportResult{ImportID: existing, ContentKey: key}, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return ImportResult{}, fmt.Errorf("lookup import: %w", err)
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO quiz_imports (import_id, content_key, source_path, question_count, imported_at)
		 VALUES (?, ?, ?, ?, now())`,
		id,
		key,
		source,
		len(records),
	); err != nil {
		return ImportResult{}, fmt.Errorf("insert import: %w", err)
	}
	for position, record := range records {
		if err := insertQuestion(ctx, tx, id, position, record); err != nil {
			return ImportResult{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit import: %w", err)
	}
	return ImportResult{ImportID: id, ContentKey: key, Created: true}, nil
}

func insertQuestion(ctx context.Context, tx *sql.Tx, importID string, position int, record quiz.Record) error {
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO quiz_questions (import_id, position, question, answer_index, option_count)
		 VALUES (?, ?, ?, ?, ?)`,
		importID,
		position,
		record.Question,
		record.AnswerIndex,
		len(record.Options),
	); err != nil {
		return fmt.Errorf("insert question %d: %w", position, err)
	}
	for optionPosition, text := range record.Options {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO quiz_options (import_id, question_position, option_position, text, is_correct)
			 VALUES (?, ?, ?, ?, ?)`,
			importID,
			position,
			optionPosition,
			text,
			optionPosition == record.AnswerIndex,
		); err != nil {
			return fmt.Errorf("insert option %d of question %d: %w", optionPosition, position, err)
		}
	}
	return nil
}
