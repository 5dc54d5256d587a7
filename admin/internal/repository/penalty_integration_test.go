//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
	"github.com/Astemirdum/library-admin/admin/migrations"
	"github.com/Astemirdum/library-admin/pkg/postgres"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
)

// Run with: TEST_DB_HOST=localhost TEST_DB_PASSWORD=... go test -tags integration ./admin/internal/repository/
func newIntegrationRepo(t *testing.T) (*repository, *pgxpool.Pool) {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST is not set")
	}
	var cfg postgres.DB
	require.NoError(t, envconfig.Process("TEST", &cfg))

	ctx := context.Background()
	pool, err := postgres.NewPostgresDB(ctx, &cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `truncate penalty_audit_log, penalties, transactions, book_copies, books, users restart identity cascade`)
	require.NoError(t, err)

	repo, err := NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo, pool
}

type seed struct {
	t    *testing.T
	pool *pgxpool.Pool
}

func (s seed) id(query string, args ...any) int64 {
	s.t.Helper()
	var id int64
	require.NoError(s.t, s.pool.QueryRow(context.Background(), query, args...).Scan(&id))
	return id
}

func (s seed) user() int64 {
	return s.id(`insert into users (name, role) values ('Ana', 'student') returning id`)
}

func (s seed) copy(number int) int64 {
	book := s.id(`insert into books (batch_key, title, author, price) values (gen_random_uuid(), 'Dune', 'Frank Herbert', 20) returning id`)
	return s.id(`insert into book_copies (book_id, copy_number, qr_payload, price) values ($1, $2, $3, 20) returning id`,
		book, number, qrcode.Encode(book, number))
}

// loan inserts a borrow due at due; a non-nil returned closes it.
func (s seed) loan(userID int64, copyID *int64, due time.Time, returned *time.Time) int64 {
	status := model.StatusBorrowed
	if returned != nil {
		status = model.StatusReturned
	}
	return s.id(`insert into transactions (transaction_type, book_copy_id, user_id, reference_number, transaction_date, due_date, return_date, status)
values ('borrow', $1, $2, 'TXN-20240301-AAAAAAAA', $3, $4, $5, $6) returning id`,
		copyID, userID, due.AddDate(0, 0, -3), due, returned, string(status))
}

func (s seed) penalty(txID, userID int64, status *string) int64 {
	return s.id(`insert into penalties (transaction_id, user_id, fine, status) values ($1, $2, 10, $3) returning id`, txID, userID, status)
}

func (s seed) count(query string, args ...any) int64 {
	return s.id(query, args...)
}

func strPtr(v string) *string { return &v }

func TestRepository_DeleteOnTimePenalties(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	s := seed{t: t, pool: pool}
	ctx := context.Background()

	due := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	early, late := due.Add(-2*time.Hour), due.AddDate(0, 0, 2)
	user := s.user()

	onTime := s.penalty(s.loan(user, nil, due, &early), user, nil)
	lateRow := s.penalty(s.loan(user, nil, due, &late), user, strPtr(string(model.PenaltyPending)))
	paid := s.penalty(s.loan(user, nil, due, &early), user, strPtr(string(model.PenaltyPaid)))
	open := s.penalty(s.loan(user, nil, due, nil), user, nil)

	n, err := repo.DeleteOnTimePenalties(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.Zero(t, s.count(`select count(*) from penalties where id = $1`, onTime))
	for _, id := range []int64{lateRow, paid, open} {
		require.Equal(t, int64(1), s.count(`select count(*) from penalties where id = $1`, id), id)
	}
}

func TestRepository_DeleteDuplicateUnpaid(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	s := seed{t: t, pool: pool}
	ctx := context.Background()

	// duplicates only exist in data written before the partial unique index
	_, err := pool.Exec(ctx, `drop index if exists penalties_unpaid_pair_idx`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := pool.Exec(context.Background(), `create unique index if not exists penalties_unpaid_pair_idx on penalties (transaction_id, user_id)
    where status is null or status = 'Pending Payment'`)
		require.NoError(t, err)
	})

	user := s.user()
	tx := s.loan(user, nil, time.Now().AddDate(0, 0, -5), nil)
	older := s.penalty(tx, user, nil)
	newer := s.penalty(tx, user, strPtr(string(model.PenaltyPending)))
	paid := s.penalty(tx, user, strPtr(string(model.PenaltyPaid)))
	other := s.penalty(s.loan(user, nil, time.Now().AddDate(0, 0, -5), nil), user, nil)

	n, err := repo.DeleteDuplicateUnpaid(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.Zero(t, s.count(`select count(*) from penalties where id = $1`, older))
	for _, id := range []int64{newer, paid, other} {
		require.Equal(t, int64(1), s.count(`select count(*) from penalties where id = $1`, id), id)
	}
}

func TestRepository_WithPairLockRollsBack(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	s := seed{t: t, pool: pool}
	ctx := context.Background()

	user := s.user()
	copyID := s.copy(1)
	tx := s.loan(user, &copyID, time.Now().AddDate(0, 0, -5), nil)
	item := model.LostItem{TransactionID: tx, UserID: user, BookCopyID: &copyID}

	errAbort := errors.New("abort")
	err := repo.WithPairLock(ctx, tx, user, func(ctx context.Context, q penalty.PairStore) error {
		if _, err := q.InsertPenalty(ctx, tx, user, model.DefaultFineSettings().StudentDailyFine); err != nil {
			return err
		}
		if err := q.MarkItemLost(ctx, item); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	require.Zero(t, s.count(`select count(*) from penalties where transaction_id = $1`, tx))
	require.Equal(t, int64(0), s.count(`select count(*) from book_copies where id = $1 and status = 'Lost'`, copyID))

	err = repo.WithPairLock(ctx, tx, user, func(ctx context.Context, q penalty.PairStore) error {
		if _, err := q.InsertPenalty(ctx, tx, user, model.DefaultFineSettings().StudentDailyFine); err != nil {
			return err
		}
		return q.MarkItemLost(ctx, item)
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), s.count(`select count(*) from penalties where transaction_id = $1`, tx))
	require.Equal(t, int64(1), s.count(`select count(*) from book_copies where id = $1 and status = 'Lost'`, copyID))
}
