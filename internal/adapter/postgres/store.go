package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

// Store implements port.Store using pgxpool for PostgreSQL. Every unit of
// work runs in a SERIALIZABLE transaction that locks the campaign row and the
// balance rows it debits.
type Store struct {
	pool      *pgxpool.Pool
	custodian *custody.Custodian
	maxTries  uint
}

// NewStore returns a new store instance. Serialization conflicts are retried
// up to maxTries times in total.
func NewStore(pool *pgxpool.Pool, custodian *custody.Custodian, maxTries uint) *Store {
	if maxTries == 0 {
		maxTries = 1
	}
	return &Store{pool: pool, custodian: custodian, maxTries: maxTries}
}

var _ port.Store = (*Store)(nil)

const campaignColumns = `id, brand, creator, cpm, like_weight, max_budget, escrow_balance, views, likes,
	start_time, end_time, is_active, total_paid, total_refunded, created_at, updated_at`

// Atomic implements port.Store.
func (s *Store) Atomic(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx port.Tx) error) error {
	_, err := backoff.Retry[struct{}](ctx, func() (struct{}, error) {
		err := s.atomicOnce(ctx, id, fn)
		if err != nil && !isRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(s.maxTries),
	)
	return err
}

func (s *Store) atomicOnce(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx port.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(ctx, &pgTx{tx: tx, id: id, custodian: s.custodian}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// isRetryable reports serialization failures and deadlocks, which leave no
// trace once the transaction is rolled back.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// GetCampaign implements port.Store.
func (s *Store) GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error) {
	return scanCampaign(s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

// ListActive implements port.Store.
func (s *Store) ListActive(ctx context.Context, after domain.CampaignID, limit int) ([]domain.CampaignID, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM campaigns WHERE is_active AND id > $1
		ORDER BY id LIMIT NULLIF(GREATEST($2::int, 0), 0)`, after, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignID, error) {
		var id string
		err := row.Scan(&id)
		return domain.CampaignID(id), err
	})
}

// Transfers implements port.Store.
func (s *Store) Transfers(ctx context.Context, id domain.CampaignID) ([]domain.Transfer, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, campaign_id, kind, from_account, to_account, amount, created_at
		FROM transfers WHERE campaign_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transfer, error) {
		var (
			t                        domain.Transfer
			campaign, kind, from, to string
			amount                   pgtype.Numeric
		)
		if err := row.Scan(&t.ID, &campaign, &kind, &from, &to, &amount, &t.CreatedAt); err != nil {
			return t, err
		}
		t.CampaignID = domain.CampaignID(campaign)
		t.Kind = domain.TransferKind(kind)
		t.From, t.To = domain.AccountID(from), domain.AccountID(to)
		var err error
		t.Amount, err = toUint64(amount)
		return t, err
	})
}

// Balance implements port.Store.
func (s *Store) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	var amount pgtype.Numeric
	err := s.pool.QueryRow(ctx, `SELECT amount FROM balances WHERE account = $1`, account).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return toUint64(amount)
}

// Mint implements port.Store.
func (s *Store) Mint(ctx context.Context, account domain.AccountID, amount uint64) error {
	if custody.IsEscrow(account) {
		return domain.ErrUnauthorizedTransfer
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO balances (account, amount, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (account) DO UPDATE SET amount = balances.amount + EXCLUDED.amount, updated_at = now()`,
		account, numeric(amount))
	return mapConstraintError(err)
}

// mapConstraintError turns the balance range check into an overflow error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == "balances_amount_range" {
		return domain.ErrArithmeticOverflow
	}
	return err
}

type pgTx struct {
	tx        pgx.Tx
	id        domain.CampaignID
	custodian *custody.Custodian
}

func (t *pgTx) Campaign(ctx context.Context) (*domain.Campaign, error) {
	return scanCampaign(t.tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, t.id))
}

func (t *pgTx) Insert(ctx context.Context, c domain.Campaign) error {
	if c.ID != t.id {
		return fmt.Errorf("insert campaign %q in unit of work for %q", c.ID, t.id)
	}
	tag, err := t.tx.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16) ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Brand, c.Creator, numeric(c.CPM), numeric(c.LikeWeight), numeric(c.MaxBudget),
		numeric(c.EscrowBalance), numeric(c.Views), numeric(c.Likes), c.StartTime, c.EndTime,
		c.IsActive, numeric(c.TotalPaid), numeric(c.TotalRefunded), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignExists
	}
	return nil
}

func (t *pgTx) Save(ctx context.Context, c domain.Campaign) error {
	if c.ID != t.id {
		return fmt.Errorf("save campaign %q in unit of work for %q", c.ID, t.id)
	}
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns SET escrow_balance = $2, views = $3, likes = $4,
		is_active = $5, total_paid = $6, total_refunded = $7, updated_at = $8 WHERE id = $1`,
		c.ID, numeric(c.EscrowBalance), numeric(c.Views), numeric(c.Likes), c.IsActive,
		numeric(c.TotalPaid), numeric(c.TotalRefunded), c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (t *pgTx) Transfer(ctx context.Context, tr domain.Transfer, auth custody.Authority) error {
	if tr.Amount == 0 || tr.From == tr.To {
		return domain.ErrInvalidTransfer
	}
	if err := t.custodian.Authorize(auth, tr.From); err != nil {
		return err
	}
	// lock source balance
	var raw pgtype.Numeric
	err := t.tx.QueryRow(ctx, `SELECT amount FROM balances WHERE account = $1 FOR UPDATE`, tr.From).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInsufficientFunds
	}
	if err != nil {
		return err
	}
	balance, err := toUint64(raw)
	if err != nil {
		return err
	}
	if balance < tr.Amount {
		return domain.ErrInsufficientFunds
	}
	now := tr.CreatedAt
	if _, err = t.tx.Exec(ctx, `UPDATE balances SET amount = amount - $1, updated_at = $2 WHERE account = $3`,
		numeric(tr.Amount), now, tr.From); err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO balances (account, amount, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (account) DO UPDATE SET amount = balances.amount + EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
		tr.To, numeric(tr.Amount), now)
	if err = mapConstraintError(err); err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO transfers (id, campaign_id, kind, from_account, to_account, amount, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		tr.ID, tr.CampaignID, tr.Kind, tr.From, tr.To, numeric(tr.Amount), tr.CreatedAt)
	return err
}

type campaignRow struct {
	id, brand, creator                               string
	cpm, likeWeight, maxBudget, escrow, views, likes pgtype.Numeric
	totalPaid, totalRefunded                         pgtype.Numeric
	c                                                domain.Campaign
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var r campaignRow
	err := row.Scan(&r.id, &r.brand, &r.creator, &r.cpm, &r.likeWeight, &r.maxBudget, &r.escrow,
		&r.views, &r.likes, &r.c.StartTime, &r.c.EndTime, &r.c.IsActive, &r.totalPaid, &r.totalRefunded,
		&r.c.CreatedAt, &r.c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := r.c
	c.ID = domain.CampaignID(r.id)
	c.Brand = domain.Identity(r.brand)
	c.Creator = domain.Identity(r.creator)
	for _, f := range []struct {
		src pgtype.Numeric
		dst *uint64
	}{
		{r.cpm, &c.CPM},
		{r.likeWeight, &c.LikeWeight},
		{r.maxBudget, &c.MaxBudget},
		{r.escrow, &c.EscrowBalance},
		{r.views, &c.Views},
		{r.likes, &c.Likes},
		{r.totalPaid, &c.TotalPaid},
		{r.totalRefunded, &c.TotalRefunded},
	} {
		if *f.dst, err = toUint64(f.src); err != nil {
			return nil, fmt.Errorf("campaign %s: %w", r.id, err)
		}
	}
	c.StartTime, c.EndTime = c.StartTime.UTC(), c.EndTime.UTC()
	return &c, nil
}
