package model

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ReportsModel = (*customReportsModel)(nil)

var (
	reportsRows = strings.Join([]string{
		"`id`", "`source`", "`is_valid`", "`sanitized_html`", "`plain_text`",
		"`issues`", "`fixes`", "`score`", "`score_structure`", "`score_compatibility`",
		"`score_accessibility`", "`score_content`", "`status`", "`error`",
		"`created_at`", "`updated_at`",
	}, ",")

	// ErrNotFound is returned when a report does not exist.
	ErrNotFound = sqlc.ErrNotFound
)

type (
	// ReportsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customReportsModel.
	ReportsModel interface {
		FindOne(ctx context.Context, id string) (*Report, error)
		ListByStatus(ctx context.Context, status string, limit int) ([]*Report, error)
		Stats(ctx context.Context) (map[string]int, error)
		Delete(ctx context.Context, id string) error
	}

	customReportsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	// Report is a stored validation report row.
	Report struct {
		Id                 string         `db:"id"`
		Source             string         `db:"source"`
		IsValid            int            `db:"is_valid"`
		SanitizedHtml      string         `db:"sanitized_html"`
		PlainText          sql.NullString `db:"plain_text"`
		Issues             string         `db:"issues"`
		Fixes              string         `db:"fixes"`
		Score              int            `db:"score"`
		ScoreStructure     int            `db:"score_structure"`
		ScoreCompatibility int            `db:"score_compatibility"`
		ScoreAccessibility int            `db:"score_accessibility"`
		ScoreContent       int            `db:"score_content"`
		Status             string         `db:"status"`
		Error              sql.NullString `db:"error"`
		CreatedAt          time.Time      `db:"created_at"`
		UpdatedAt          time.Time      `db:"updated_at"`
	}
)

// NewReportsModel returns a model for the database table.
func NewReportsModel(conn sqlx.SqlConn) ReportsModel {
	return &customReportsModel{conn: conn, table: "`reports`"}
}

// FindOne returns a report by id.
func (m *customReportsModel) FindOne(ctx context.Context, id string) (*Report, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", reportsRows, m.table)

	var resp Report
	err := m.conn.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// ListByStatus returns reports filtered by status with a limit.
func (m *customReportsModel) ListByStatus(ctx context.Context, status string, limit int) ([]*Report, error) {
	var resp []*Report
	var query string
	var args []any

	if status != "" && status != "all" {
		query = fmt.Sprintf("select %s from %s where `status` = ? order by `created_at` desc limit ?", reportsRows, m.table)
		args = []any{status, limit}
	} else {
		query = fmt.Sprintf("select %s from %s order by `created_at` desc limit ?", reportsRows, m.table)
		args = []any{limit}
	}

	err := m.conn.QueryRowsCtx(ctx, &resp, query, args...)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Stats returns report counts grouped by status.
func (m *customReportsModel) Stats(ctx context.Context) (map[string]int, error) {
	type statusCount struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []statusCount
	query := fmt.Sprintf("select `status`, count(*) as `count` from %s group by `status`", m.table)
	err := m.conn.QueryRowsCtx(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}

// Delete removes a report and its events.
func (m *customReportsModel) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("delete from %s where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}
