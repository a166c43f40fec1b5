package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the ent SQL driver and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "action", "mode", "category", "correct", "total").
		Values(seqNum, nowMillis(), data.SessionID, data.Action, data.Mode, data.Category, data.Correct, data.Total).
		Query()
	if err := r.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "mode", "category",
			"question_text", "selected", "correct_choice", "correct").
		Values(seqNum, nowMillis(), data.SessionID, data.Mode, data.Category,
			data.QuestionText, data.Selected, data.CorrectChoice, data.Correct).
		Query()
	if err := r.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) exec(ctx context.Context, query string, args []any) error {
	var res sql.Result
	return r.drv.Exec(ctx, query, args, &res)
}

// eventFilter returns the QueryOpts predicate, or nil when nothing filters.
// Each side of the union needs its own predicate.
func eventFilter(opts QueryOpts) *entsql.Predicate {
	var preds []*entsql.Predicate
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ("session_id", opts.SessionID))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if len(preds) == 0 {
		return nil
	}
	return entsql.And(preds...)
}

// RecentEvents lists both tables as one stream. Both selects project the
// same column order; literals stand in for columns a table lacks.
func (r *eventRepo) RecentEvents(ctx context.Context, opts QueryOpts) ([]Event, error) {
	b := entsql.Dialect(dialect.SQLite)

	sessions := b.Select().
		AppendSelectAs("sequence", "sequence").
		AppendSelect("timestamp").
		AppendSelectExpr(entsql.Expr("?", KindSession)).
		AppendSelect("session_id", "mode", "category", "action", "total").
		AppendSelectExpr(entsql.Expr("''"), entsql.Expr("''"), entsql.Expr("''")).
		AppendSelect("correct").
		From(b.Table(sessionEventsTable.Name))

	answers := b.Select().
		AppendSelect("sequence", "timestamp").
		AppendSelectExpr(entsql.Expr("?", KindAnswer)).
		AppendSelect("session_id", "mode", "category").
		AppendSelectExpr(entsql.Expr("''"), entsql.Expr("0")).
		AppendSelect("question_text", "selected", "correct_choice", "correct").
		From(b.Table(answerEventsTable.Name))

	if p := eventFilter(opts); p != nil {
		sessions.Where(p)
		answers.Where(eventFilter(opts))
	}

	sessions.UnionAll(answers).OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sessions.Limit(opts.Limit)
	}

	query, args := sessions.Query()
	if err := sessions.Err(); err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e  Event
			ts int64
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.Kind, &e.SessionID, &e.Mode, &e.Category,
			&e.Action, &e.Total, &e.QuestionText, &e.Selected, &e.CorrectChoice, &e.Correct); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts).UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) AnswerStats(ctx context.Context, sessionID string) (int, int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*"), "COALESCE("+entsql.Sum("correct")+", 0)").
		From(entsql.Table(answerEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, 0, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var answered, correct int
	if rows.Next() {
		if err := rows.Scan(&answered, &correct); err != nil {
			return 0, 0, fmt.Errorf("scan answer stats: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("query answer stats: %w", err)
	}
	return answered, correct, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
