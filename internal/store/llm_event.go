package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LLMEventLog implements EventRepo and the read side used by the CLI.
type LLMEventLog struct {
	db  *sql.DB
	now func() time.Time
}

var _ EventRepo = (*LLMEventLog)(nil)

func (r *LLMEventLog) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *LLMEventLog) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO llm_request_events
		(created_at, provider, model, purpose, input_tokens, output_tokens,
		 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.clock().UTC().UnixMilli(),
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		boolToInt(data.Success),
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

const llmEventColumns = `id, created_at, provider, model, purpose, input_tokens, output_tokens,
	latency_ms, success, error_message, request_body, response_body`

// QueryLLMEvents returns events newest first.
func (r *LLMEventLog) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "id > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "id < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UTC().UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UTC().UnixMilli())
	}
	if opts.Purpose != "" {
		where = append(where, "purpose = ?")
		args = append(args, opts.Purpose)
	}

	q := "SELECT " + llmEventColumns + " FROM llm_request_events"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var records []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM events: %w", err)
	}
	return records, nil
}

// GetLLMEvent returns a single event, or nil if it does not exist.
func (r *LLMEventLog) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+llmEventColumns+" FROM llm_request_events WHERE id = ?", id)
	rec, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// LLMUsageByPurpose aggregates successful and failed calls per purpose.
func (r *LLMEventLog) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0),
		COALESCE(SUM(output_tokens), 0), CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER)
		FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMPurposeUsage
	for rows.Next() {
		var u LLMPurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage by purpose: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// LLMUsageByModel aggregates token usage per model, for cost estimates.
func (r *LLMEventLog) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0),
		COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage by model: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(s rowScanner) (LLMEventRecord, error) {
	var (
		rec       LLMEventRecord
		createdAt int64
		success   int
	)
	err := s.Scan(
		&rec.ID,
		&createdAt,
		&rec.Provider,
		&rec.Model,
		&rec.Purpose,
		&rec.InputTokens,
		&rec.OutputTokens,
		&rec.LatencyMs,
		&success,
		&rec.ErrorMessage,
		&rec.RequestBody,
		&rec.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan LLM event: %w", err)
	}
	rec.Timestamp = time.UnixMilli(createdAt).UTC()
	rec.Success = success != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
