package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ReportEventsModel = (*customReportEventsModel)(nil)

type (
	// ReportEventsModel reads the pipeline activity trail for a report.
	// Writes go through the queue's batching EventRecorder instead.
	ReportEventsModel interface {
		ListByReport(ctx context.Context, reportID string, limit int) ([]*ReportEvent, error)
	}

	customReportEventsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	// ReportEvent is one pipeline lifecycle event.
	ReportEvent struct {
		Id        string         `db:"id"`
		ReportId  string         `db:"report_id"`
		EventType string         `db:"event_type"`
		Timestamp string         `db:"timestamp"`
		Details   sql.NullString `db:"details"`
	}
)

// NewReportEventsModel returns a model for the database table.
func NewReportEventsModel(conn sqlx.SqlConn) ReportEventsModel {
	return &customReportEventsModel{conn: conn, table: "`report_events`"}
}

// ListByReport returns the most recent events for a report.
func (m *customReportEventsModel) ListByReport(ctx context.Context, reportID string, limit int) ([]*ReportEvent, error) {
	var resp []*ReportEvent
	query := fmt.Sprintf("select `id`, `report_id`, `event_type`, `timestamp`, `details` from %s where `report_id` = ? order by `timestamp` desc limit ?", m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, reportID, limit); err != nil {
		return nil, err
	}
	return resp, nil
}
