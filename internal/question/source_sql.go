package question

import (
	"context"
	"database/sql"
)

// LoadSQL reads every row of the questions table in insertion order. It is the
// startup path for the sqlite/postgres source drivers; the service itself only
// ever touches the in-memory repository afterwards.
func LoadSQL(ctx context.Context, db *sql.DB) ([]Question, error) {
	rows, err := db.QueryContext(ctx, `SELECT question, subject, use, correct,
		response_a, response_b, response_c, response_d, remark
		FROM questions ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var subject, use, correct, respD, remark sql.NullString
		if err := rows.Scan(&q.Question, &subject, &use, &correct,
			&q.ResponseA, &q.ResponseB, &q.ResponseC, &respD, &remark); err != nil {
			return nil, err
		}
		q.Subject = splitCell(subject.String)
		q.Use = splitCell(use.String)
		q.Correct = splitCell(correct.String)
		q.ResponseD = respD.String
		q.Remark = remark.String
		out = append(out, q)
	}
	return out, rows.Err()
}
