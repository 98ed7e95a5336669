package timeusage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	createSummariesTable = `
		CREATE TABLE summaries (
			working       TEXT NOT NULL,
			sex           TEXT NOT NULL,
			age           TEXT NOT NULL,
			primary_needs REAL NOT NULL,
			work          REAL NOT NULL,
			other         REAL NOT NULL
		)`

	insertSummary = `
		INSERT INTO summaries (working, sex, age, primary_needs, work, other)
		VALUES (?, ?, ?, ?, ?, ?)`

	selectGroupAverages = `
		SELECT working, sex, age,
		       ROUND(AVG(primary_needs), 1),
		       ROUND(AVG(work), 1),
		       ROUND(AVG(other), 1)
		FROM summaries
		GROUP BY working, sex, age
		ORDER BY working, sex, age`
)

// GroupAveragesSQL is the declarative form of GroupAverages: a single
// GROUP BY query over an in-memory sqlite database. For any input it
// returns exactly the rows and order GroupAverages returns.
func GroupAveragesSQL(ctx context.Context, summaries []Summary) ([]GroupAverage, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createSummariesTable); err != nil {
		return nil, fmt.Errorf("create summaries table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertSummary)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	for _, s := range summaries {
		if _, err := stmt.ExecContext(ctx, s.Working, s.Sex, s.Age, s.PrimaryNeeds, s.Work, s.Other); err != nil {
			stmt.Close()
			tx.Rollback()
			return nil, fmt.Errorf("insert summary: %w", err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit summaries: %w", err)
	}

	rows, err := db.QueryContext(ctx, selectGroupAverages)
	if err != nil {
		return nil, fmt.Errorf("query group averages: %w", err)
	}
	defer rows.Close()

	var averages []GroupAverage
	for rows.Next() {
		var g GroupAverage
		if err := rows.Scan(&g.Working, &g.Sex, &g.Age, &g.PrimaryNeeds, &g.Work, &g.Other); err != nil {
			return nil, fmt.Errorf("scan group average: %w", err)
		}
		averages = append(averages, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group averages: %w", err)
	}

	return averages, nil
}
