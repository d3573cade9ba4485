package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/courier/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, errNotFound},
		{"unique violation maps to duplicate", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg errors pass through", &pgconn.PgError{Code: "23503"}, &pgconn.PgError{Code: "23503"}},
		{"arbitrary errors pass through", errors.New("broken"), errors.New("broken")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := repository.MapError(tc.err, errNotFound, errDuplicate)

			switch tc.want {
			case nil:
				if got != nil {
					t.Errorf("MapError = %v, want nil", got)
				}
			case errNotFound, errDuplicate:
				if !errors.Is(got, tc.want) {
					t.Errorf("MapError = %v, want %v", got, tc.want)
				}
			default:
				if got == nil || got.Error() != tc.want.Error() {
					t.Errorf("MapError = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type fakeExecutor struct {
	result sql.Result
	err    error
}

func (e fakeExecutor) ExecContext(_ context.Context, _ string, _ ...any) (sql.Result, error) {
	return e.result, e.err
}

func TestExecExpectOne(t *testing.T) {
	ctx := context.Background()

	t.Run("one affected row succeeds", func(t *testing.T) {
		e := fakeExecutor{result: fakeResult{affected: 1}}
		if err := repository.ExecExpectOne(ctx, e, "UPDATE runs SET outcome = $1"); err != nil {
			t.Errorf("ExecExpectOne error: %v", err)
		}
	})

	t.Run("zero affected rows returns ErrNoRows", func(t *testing.T) {
		e := fakeExecutor{result: fakeResult{affected: 0}}
		if err := repository.ExecExpectOne(ctx, e, "DELETE FROM runs"); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("error = %v, want sql.ErrNoRows", err)
		}
	})

	t.Run("execution errors pass through", func(t *testing.T) {
		e := fakeExecutor{err: errors.New("connection reset")}
		if err := repository.ExecExpectOne(ctx, e, "UPDATE runs"); err == nil {
			t.Error("expected error")
		}
	})
}
